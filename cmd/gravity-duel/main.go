package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"gravityduel/audio"
	"gravityduel/config"
	"gravityduel/event"
	"gravityduel/game"
	"gravityduel/mapgen"
	"gravityduel/render"
	"gravityduel/vmath"
)

// generateRetries is how many fresh seeds to try when placement fails
const generateRetries = 16

type app struct {
	settings config.Settings
	log      zerolog.Logger

	screen   tcell.Screen
	renderer *render.TerminalRenderer
	cues     *audio.Cues
	inputs   *event.Queue

	state *game.GameState
	aim   render.Aim
}

func newApp(settings config.Settings, log zerolog.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{
		settings: settings,
		log:      log,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		cues:     audio.NewCues(),
		inputs:   event.NewQueue(),
		aim:      render.Aim{Speed: settings.Physics.MissileMaxVelocity / 2},
	}

	if settings.AudioEnabled {
		if err := a.cues.Initialize(); err != nil {
			// A headless box without audio is still playable
			log.Warn().Err(err).Msg("audio unavailable")
		}
	}

	if err := a.newGame(); err != nil {
		screen.Fini()
		return nil, err
	}
	return a, nil
}

// newGame generates a fresh map, retrying with derived seeds when the
// arena is too crowded to place everything
func (a *app) newGame() error {
	seed := a.settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := mapgen.Options{
		Width:       a.settings.ArenaWidth,
		Height:      a.settings.ArenaHeight,
		PlayerCount: a.settings.Players,
	}
	var err error
	for attempt := 0; attempt < generateRetries; attempt++ {
		var state *game.GameState
		state, err = mapgen.Generate(a.settings.Physics, opts, vmath.NewRand(seed+uint64(attempt)))
		if err == nil {
			a.state = state
			a.state.RendererFactory = a.renderer.MissileRenderer(a.state)
			// Start zoomed out far enough to see the whole arena
			a.state.Camera.LogScale = math.Log10(a.settings.ArenaHeight / 2)
			a.log.Info().Uint64("seed", seed+uint64(attempt)).
				Int("entities", len(state.Entities)).Msg("map generated")
			return nil
		}
		a.log.Warn().Err(err).Int("attempt", attempt).Msg("map generation retry")
	}
	return fmt.Errorf("map generation failed after %d attempts: %w", generateRetries, err)
}

func (a *app) run() {
	interval := time.Duration(float64(time.Second) * a.settings.Physics.TickInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	terminalEvents := make(chan tcell.Event, 64)
	go func() {
		for {
			terminalEvents <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-terminalEvents:
			if !a.handleTerminalEvent(ev) {
				return
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

// tick drains pending inputs, advances the simulation one step, and
// redraws
func (a *app) tick() {
	for _, in := range a.inputs.Drain() {
		if err := a.state.HandleInput(in); err != nil {
			a.log.Debug().Err(err).Msg("command rejected")
		} else if _, isFire := in.(event.FireMissile); isFire {
			a.cues.PlayFire()
		}
	}

	for _, ev := range a.state.Tick() {
		switch ev.(type) {
		case game.HitEntity:
			a.cues.PlayHit()
			a.log.Info().Msg("missile hit")
		case game.Expired:
			a.cues.PlayExpire()
			a.log.Debug().Msg("missile expired")
		}
	}

	a.renderer.Draw(a.state, a.aim)
}

func (a *app) handleTerminalEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	panStep := a.state.Camera.Scale() / 10

	switch {
	case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q':
		return false

	case key.Key() == tcell.KeyEnter:
		if a.state.Phase.Kind == game.PhaseNotStarted {
			a.state.StartGame()
		} else {
			a.inputs.Push(event.FireMissile{Angle: a.aim.Angle, Speed: a.aim.Speed})
		}

	case key.Rune() == ' ':
		a.inputs.Push(event.FireMissile{Angle: a.aim.Angle, Speed: a.aim.Speed})

	case key.Key() == tcell.KeyLeft:
		a.aim.Angle += 2 * math.Pi / 180

	case key.Key() == tcell.KeyRight:
		a.aim.Angle -= 2 * math.Pi / 180

	case key.Key() == tcell.KeyUp:
		a.aim.Speed = math.Min(a.aim.Speed+0.25, a.settings.Physics.MissileMaxVelocity)

	case key.Key() == tcell.KeyDown:
		a.aim.Speed = math.Max(a.aim.Speed-0.25, 0)

	case key.Rune() == 'a':
		a.inputs.Push(event.PanCamera{DX: -panStep})
	case key.Rune() == 'd':
		a.inputs.Push(event.PanCamera{DX: panStep})
	case key.Rune() == 'w':
		a.inputs.Push(event.PanCamera{DY: panStep})
	case key.Rune() == 's':
		a.inputs.Push(event.PanCamera{DY: -panStep})

	case key.Rune() == '+' || key.Rune() == '=':
		a.inputs.Push(event.ZoomCamera{Factor: 1.0 / 1.25})
	case key.Rune() == '-':
		a.inputs.Push(event.ZoomCamera{Factor: 1.25})
	}
	return true
}

func (a *app) cleanup() {
	a.cues.Cleanup()
	a.screen.Fini()
}

func main() {
	settings, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := zerolog.New(logFile).Level(level).With().Timestamp().Logger()

	a, err := newApp(settings, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
