// Package event defines the closed set of input events the simulation
// consumes and a FIFO queue decoupling input glue from the tick loop.
package event

// InputEvent is the closed set of commands produced by input glue.
// Only FireMissile reaches the hard game logic; the camera events are
// pass-through view state.
type InputEvent interface {
	isInputEvent()
}

// PanCamera moves the camera by a world-space delta
type PanCamera struct {
	DX, DY float64
}

// ZoomCamera adjusts the camera log-scale by Factor
type ZoomCamera struct {
	Factor float64
}

// FireMissile asks the current player's ship to fire
type FireMissile struct {
	Angle float64 // radians on the plane
	Speed float64 // command units, validated by the core
}

func (PanCamera) isInputEvent()   {}
func (ZoomCamera) isInputEvent()  {}
func (FireMissile) isInputEvent() {}
