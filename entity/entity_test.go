package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravityduel/shape"
	"gravityduel/vmath"
)

func TestGravityDirectionAndMagnitude(t *testing.T) {
	const g = 5e-10
	planet := NewPlanet(vmath.V3(10, 0, 0), 1000, shape.Disc(1))

	accel := planet.GravityAt(vmath.V3(0, 0, 0), g)

	// Points from the test point toward the attractor
	assert.Greater(t, accel.X, 0.0)
	assert.Zero(t, accel.Y)
	assert.Zero(t, accel.Z)

	// Magnitude is exactly d^2 * mass * G (squared-distance model)
	want := 100.0 * 1000 * g
	assert.InDelta(t, want, accel.Mag(), 1e-18)
}

func TestGravityOfMasslessEntity(t *testing.T) {
	ship := NewShip(vmath.V3(5, 5, 0), 0, 0, shape.Disc(2))
	assert.Equal(t, vmath.Vec3{}, ship.GravityAt(vmath.V3(0, 0, 0), 5e-10))
}

func TestCollisionIsoProjectsHeading(t *testing.T) {
	e := New(vmath.V3(3, 4, 7))
	e.Transform.Rotation = vmath.QuatFromAxisAngle(vmath.V3(0, 0, 1), math.Pi/2)

	iso := e.CollisionIso()
	assert.Equal(t, vmath.V2(3, 4), iso.Pos, "Z is dropped")
	assert.InDelta(t, math.Pi/2, iso.Rot, 1e-9)
}

func TestRoleConstructors(t *testing.T) {
	planet := NewPlanet(vmath.V3(0, 0, 0), 50, shape.Disc(3))
	assert.Nil(t, planet.Ship)
	assert.Nil(t, planet.MissileTrail)
	assert.NotNil(t, planet.CollisionShape)

	ship := NewShip(vmath.V3(1, 0, 0), 2, 8000, shape.Disc(1))
	require.NotNil(t, ship.Ship)
	assert.Equal(t, 2, ship.Ship.PlayerID)
	assert.Equal(t, ShipActive, ship.Ship.State)
	assert.Nil(t, ship.MissileTrail)
	assert.Equal(t, 8000.0, ship.Mass, "craft mass attracts missiles")

	missile := NewMissile(0, vmath.V3(0, 0, 0), vmath.V3(1, 0, 0), 30)
	require.NotNil(t, missile.MissileTrail)
	assert.Nil(t, missile.CollisionShape, "missiles do not block rays")
	assert.Zero(t, missile.Mass, "missiles do not attract")
}

func TestTrailAppendBumpsVersion(t *testing.T) {
	trail := NewMissileTrail(0, vmath.V3(0, 0, 0), vmath.V3(1, 0, 0), 30)
	require.Len(t, trail.Positions(), 1)
	assert.Zero(t, trail.DataVersion())

	trail.AddPosition(vmath.V3(1, 0, 0))
	assert.EqualValues(t, 1, trail.DataVersion())
	assert.Equal(t, vmath.V3(1, 0, 0), trail.LastPosition())
	assert.Len(t, trail.Positions(), 2)
}

func TestTimeToCollision(t *testing.T) {
	planet := NewPlanet(vmath.V3(10, 0, 0), 100, shape.Disc(2))
	trail := NewMissileTrail(0, vmath.V3(0, 0, 0), vmath.V3(4, 0, 0), 30)

	toi, ok := trail.TimeToCollision(planet, 10, true)
	require.True(t, ok)
	assert.InDelta(t, 2.0, toi, 1e-9)

	// Stationary missile casts no ray
	still := NewMissileTrail(0, vmath.V3(0, 0, 0), vmath.Vec3{}, 30)
	_, ok = still.TimeToCollision(planet, 10, true)
	assert.False(t, ok)
}
