package game

import (
	"math"

	"gravityduel/vmath"
)

// Camera is render-facing pass-through state: a plane position plus a
// log-scale zoom. It never feeds back into the simulation.
type Camera struct {
	Position vmath.Vec2
	LogScale float64
}

func NewCamera() Camera {
	return Camera{}
}

// Scale returns the world-units-per-half-viewport zoom factor
func (c *Camera) Scale() float64 {
	return math.Pow(10, c.LogScale)
}

// Pan moves the camera by a world-space delta
func (c *Camera) Pan(dx, dy float64) {
	c.Position.X += dx
	c.Position.Y += dy
}

// Zoom multiplies the view scale by factor (factor > 1 zooms out)
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.LogScale += math.Log10(factor)
}
