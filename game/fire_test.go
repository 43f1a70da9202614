package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravityduel/entity"
	"gravityduel/vmath"
)

// snapshot captures everything a rejected command must leave untouched
func snapshot(g *GameState) (int, GamePhase) {
	return len(g.Entities), g.Phase
}

func TestFireRejectsBadArguments(t *testing.T) {
	cases := []struct {
		name  string
		angle float64
		speed float64
		err   error
	}{
		{"negative speed", 0, -1, ErrInvalidSpeed},
		{"speed above max", 0, 10.5, ErrInvalidSpeed},
		{"nan angle", math.NaN(), 5, ErrInvalidAngle},
		{"inf angle", math.Inf(1), 5, ErrInvalidAngle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))
			g.StartGame()
			entities, phase := snapshot(g)

			err := g.FireMissile(tc.angle, tc.speed)

			require.ErrorIs(t, err, tc.err)
			gotEntities, gotPhase := snapshot(g)
			assert.Equal(t, entities, gotEntities, "no entity mutation on rejection")
			assert.Equal(t, phase, gotPhase, "no phase mutation on rejection")
		})
	}
}

func TestFireRejectsOutsideAiming(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))

	// Before the game starts
	require.ErrorIs(t, g.FireMissile(0, 5), ErrNotAiming)

	// While a missile is already in flight
	g.StartGame()
	require.NoError(t, g.FireMissile(0, 5))
	require.ErrorIs(t, g.FireMissile(0, 5), ErrNotAiming)
}

func TestFireRejectsWithoutActiveShip(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))
	g.StartGame()
	g.Entities[0].Ship.Disable()

	require.ErrorIs(t, g.FireMissile(0, 5), ErrNoActiveShip)
}

func TestFireSpawnsMissileAndTransitionsToFiring(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))
	g.StartGame()

	require.NoError(t, g.FireMissile(0, 5))

	turn, ok := g.Phase.CurrentTurn()
	require.True(t, ok)
	assert.Equal(t, TurnFiring, turn.State)
	assert.Equal(t, 0, turn.CurrentPlayer, "firing does not change whose turn it is")

	missile := g.Entities[len(g.Entities)-1]
	require.NotNil(t, missile.MissileTrail)
	trail := missile.MissileTrail
	assert.Equal(t, 0, trail.PlayerID)
	assert.Equal(t, g.Config.MissileTimeToLive, trail.TimeToLive)

	// Velocity: unit heading at angle 0, scaled by speed and the
	// velocity scale constant
	assert.InDelta(t, 5*g.Config.MissileVelocityScale, trail.Velocity.X, 1e-9)
	assert.InDelta(t, 0, trail.Velocity.Y, 1e-9)
}

func TestFireClearsOwnShip(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))
	g.StartGame()
	require.NoError(t, g.FireMissile(math.Pi/3, 5))

	missile := g.Entities[len(g.Entities)-1]
	ship := g.Entities[0]
	radius := ship.CollisionShape.BoundingRadius()

	start := missile.MissileTrail.LastPosition()
	assert.Greater(t, start.Sub(ship.Position()).Mag(), radius,
		"spawn point walked clear of the launcher")

	// The very first tick must not report a self-hit
	events := g.Tick()
	for _, ev := range events {
		if hit, ok := ev.(HitEntity); ok {
			assert.NotEqual(t, 0, hit.Target, "missile struck its own launcher on the fire tick")
		}
	}
}

func TestFireAttachesRendererFromFactory(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))
	calls := 0
	g.RendererFactory = func(e *entity.Entity) entity.Renderer {
		calls++
		return nil
	}
	g.StartGame()

	require.NoError(t, g.FireMissile(0, 5))
	assert.Equal(t, 1, calls, "factory called once per fired missile")
}

func TestFireSpeedZeroIsValid(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))
	g.StartGame()
	assert.NoError(t, g.FireMissile(0, 0))
}
