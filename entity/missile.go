package entity

import (
	"gravityduel/shape"
	"gravityduel/vmath"
)

// MissileTrail is the projectile record owned by a missile entity. The
// position history is append-only; renderers watch DataVersion to detect
// new samples without deep comparison.
type MissileTrail struct {
	PlayerID   int
	TimeToLive float64
	Velocity   vmath.Vec3

	positions   []vmath.Vec3
	dataVersion uint64
}

// NewMissileTrail starts a trail at position with the given velocity
func NewMissileTrail(playerID int, position, velocity vmath.Vec3, timeToLive float64) *MissileTrail {
	return &MissileTrail{
		PlayerID:   playerID,
		TimeToLive: timeToLive,
		Velocity:   velocity,
		positions:  []vmath.Vec3{position},
	}
}

// Positions returns the full position history, oldest first
func (t *MissileTrail) Positions() []vmath.Vec3 {
	return t.positions
}

// LastPosition returns the most recent trail sample
func (t *MissileTrail) LastPosition() vmath.Vec3 {
	return t.positions[len(t.positions)-1]
}

// DataVersion is a monotonic counter bumped on every position append
func (t *MissileTrail) DataVersion() uint64 {
	return t.dataVersion
}

// AddPosition appends a sample and bumps the data version
func (t *MissileTrail) AddPosition(position vmath.Vec3) {
	t.dataVersion++
	t.positions = append(t.positions, position)
}

// TimeToCollision casts the missile's velocity ray from its last
// position against other, returning the impact time within maxTime
func (t *MissileTrail) TimeToCollision(other *Entity, maxTime float64, solid bool) (float64, bool) {
	velocity := t.Velocity.XY()
	if velocity.MagSq() == 0 {
		return 0, false
	}
	ray := shape.Ray{Origin: t.LastPosition().XY(), Dir: velocity}
	return other.RayTimeToImpact(ray, maxTime, solid)
}
