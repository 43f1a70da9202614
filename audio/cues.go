// Package audio plays short synthesized cues for fire, hit, and expiry.
// Pure glue: the simulation core never touches it.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cues owns the speaker and a mixer the one-shot tones are added to
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker; call once before any Play method
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences everything; beep has no speaker close
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

// PlayFire is a rising launch chirp
func (c *Cues) PlayFire() {
	c.play(newTone(220, 880, 180*time.Millisecond, 0.4))
}

// PlayHit is a low impact thud
func (c *Cues) PlayHit() {
	c.play(newTone(180, 40, 300*time.Millisecond, 0.6))
}

// PlayExpire is a fading fizzle
func (c *Cues) PlayExpire() {
	c.play(newTone(500, 300, 220*time.Millisecond, 0.25))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// tone sweeps a sine from startFreq to endFreq over its duration with a
// linear fade-out envelope
type tone struct {
	startFreq, endFreq float64
	gain               float64
	total, pos         int
	phase              float64
}

func newTone(startFreq, endFreq float64, d time.Duration, gain float64) *tone {
	return &tone{
		startFreq: startFreq,
		endFreq:   endFreq,
		gain:      gain,
		total:     sampleRate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		t.phase += freq / float64(sampleRate)
		if t.phase >= 1 {
			t.phase -= 1
		}
		v := math.Sin(2*math.Pi*t.phase) * t.gain * (1 - progress)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error {
	return nil
}
