package game

import (
	"errors"
	"math"

	"gravityduel/entity"
	"gravityduel/shape"
	"gravityduel/vmath"
)

// Command validation errors. All are rejected before any state mutation.
var (
	ErrInvalidAngle = errors.New("game: fire angle is not finite")
	ErrInvalidSpeed = errors.New("game: fire speed outside [0, max]")
	ErrNotAiming    = errors.New("game: no turn in the aiming state")
	ErrNoActiveShip = errors.New("game: current player has no active ship")
)

// spawnClearProbes bounds the walk-forward loop; at one eighth of the
// bounding radius per step this allows eight radii of clearance, far
// beyond what any hull needs.
const spawnClearProbes = 64

// FireMissile validates and executes the current player's fire command:
// a new missile entity starts just clear of the firing ship, aimed at
// angle radians with the given command speed, and the turn moves to
// Firing. Any validation failure leaves the state untouched.
func (g *GameState) FireMissile(angle, speed float64) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return ErrInvalidAngle
	}
	if speed < 0 || speed > g.Config.MissileMaxVelocity {
		return ErrInvalidSpeed
	}
	turn, ok := g.Phase.CurrentTurn()
	if !ok || turn.State != TurnAiming {
		return ErrNotAiming
	}
	ship, ok := g.ShipForPlayer(turn.CurrentPlayer)
	if !ok || ship.Ship.State != entity.ShipActive {
		return ErrNoActiveShip
	}

	sin, cos := math.Sincos(angle)
	velocity := vmath.V3(cos, sin, 0).Scale(speed * g.Config.MissileVelocityScale)
	start := g.clearSpawnPoint(ship, velocity)

	missile := entity.NewMissile(turn.CurrentPlayer, start, velocity, g.Config.MissileTimeToLive)
	if g.RendererFactory != nil {
		missile.Renderer = g.RendererFactory(missile)
	}
	g.AddEntity(missile)

	g.Phase = PlayingPhase(Turn{CurrentPlayer: turn.CurrentPlayer, State: TurnFiring})
	return nil
}

// clearSpawnPoint walks the spawn position forward along the velocity
// ray until the missile no longer collides with its own launcher and
// sits outside the ship's bounding radius, so the first tick cannot
// report a self-hit.
func (g *GameState) clearSpawnPoint(ship *entity.Entity, velocity vmath.Vec3) vmath.Vec3 {
	start := ship.Position()
	if ship.CollisionShape == nil || velocity.MagSq() == 0 {
		return start
	}

	radius := ship.CollisionShape.BoundingRadius()
	if radius == 0 {
		return start
	}
	step := velocity.Normalize().Scale(radius / 8)

	for i := 0; i < spawnClearProbes; i++ {
		ray := shape.Ray{Origin: start.XY(), Dir: velocity.XY()}
		_, hits := ship.RayTimeToImpact(ray, g.Config.TickInterval, true)
		if !hits && start.Sub(ship.Position()).Mag() > radius {
			break
		}
		start = start.Add(step)
	}
	return start
}
