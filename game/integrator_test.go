package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravityduel/constant"
	"gravityduel/entity"
	"gravityduel/shape"
	"gravityduel/vmath"
)

func TestMissileFliesStraightWithoutMass(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(100, 100, 0))
	g.StartGame()
	require.NoError(t, g.FireMissile(0, 1)) // 10 units/s along +X

	trail := g.Entities[len(g.Entities)-1].MissileTrail
	start := trail.LastPosition()

	g.Tick()
	moved := trail.LastPosition().Sub(start)
	assert.InDelta(t, 10*g.Config.TickInterval, moved.X, 1e-9)
	assert.InDelta(t, 0, moved.Y, 1e-9, "zero-mass bodies bend nothing")
}

func TestShipGravityBendsTrajectory(t *testing.T) {
	players := make([]entity.Player, 2)
	g := New(constant.Default(), players)
	g.AddEntity(entity.NewShip(vmath.V3(0, 0, 0), 0, 0, shape.Disc(2)))
	// Heavy craft below the flight path
	g.AddEntity(entity.NewShip(vmath.V3(50, -40, 0), 1, 5e6, shape.Disc(2)))
	g.StartGame()
	require.NoError(t, g.FireMissile(0, 5))

	trail := g.Entities[len(g.Entities)-1].MissileTrail
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	assert.Less(t, trail.Velocity.Y, 0.0, "craft mass pulls missiles like planet mass")
}

func TestGravityBendsTrajectory(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(200, 0, 0))
	// Heavy planet below the flight path
	g.AddEntity(entity.NewPlanet(vmath.V3(50, -40, 0), 5e6, shape.Disc(3)))
	g.StartGame()
	require.NoError(t, g.FireMissile(0, 5))

	trail := g.Entities[len(g.Entities)-1].MissileTrail
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	assert.Less(t, trail.Velocity.Y, 0.0, "velocity pulled toward the planet")
}

func TestMissileHitsPlanetAndAdvancesTurn(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(0, 80, 0))
	planetIdx := g.AddEntity(entity.NewPlanet(vmath.V3(30, 0, 0), 100, shape.Disc(4)))
	g.StartGame()
	require.NoError(t, g.FireMissile(0, 3)) // straight at the planet

	trail := g.Entities[len(g.Entities)-1].MissileTrail

	var hit *HitEntity
	for i := 0; i < 10*constant.TicksPerSecond && hit == nil; i++ {
		for _, ev := range g.Tick() {
			if h, ok := ev.(HitEntity); ok {
				hit = &h
			}
		}
	}
	require.NotNil(t, hit, "missile never reached the planet")
	assert.Equal(t, planetIdx, hit.Target)
	assert.Zero(t, trail.TimeToLive, "hit is terminal")

	// Impact point lies on the planet's rim
	impact := trail.LastPosition()
	gap := impact.Sub(vmath.V3(30, 0, 0)).Mag()
	assert.InDelta(t, 4.0, gap, 1e-6)

	turn, ok := g.Phase.CurrentTurn()
	require.True(t, ok)
	assert.Equal(t, 1, turn.CurrentPlayer)
	assert.Equal(t, TurnAiming, turn.State)
}

func TestMissileHitsShipAndDisablesIt(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(40, 0, 0), vmath.V3(0, 60, 0))
	g.StartGame()
	require.NoError(t, g.FireMissile(0, 3)) // straight at player 1's ship

	var hit *HitEntity
	for i := 0; i < 10*constant.TicksPerSecond && hit == nil; i++ {
		for _, ev := range g.Tick() {
			if h, ok := ev.(HitEntity); ok {
				hit = &h
			}
		}
	}
	require.NotNil(t, hit)
	assert.Equal(t, 1, hit.Target)
	assert.Equal(t, entity.ShipDisabled, g.Entities[1].Ship.State)

	turn, ok := g.Phase.CurrentTurn()
	require.True(t, ok)
	assert.Equal(t, 2, turn.CurrentPlayer, "player 1 is out, turn skips to player 2")
}

func TestMissileLifetime(t *testing.T) {
	cfg := constant.Default()
	cfg.MissileTimeToLive = 2 * cfg.TickInterval

	players := make([]entity.Player, 2)
	g := New(cfg, players)
	g.AddEntity(entity.NewShip(vmath.V3(0, 0, 0), 0, 0, shape.Disc(2)))
	g.AddEntity(entity.NewShip(vmath.V3(0, 500, 0), 1, 0, shape.Disc(2)))
	g.StartGame()
	require.NoError(t, g.FireMissile(0, 1))

	trail := g.Entities[len(g.Entities)-1].MissileTrail

	events := g.Tick()
	assert.Empty(t, events, "one tick of lifetime left")

	events = g.Tick()
	require.Len(t, events, 1, "lifetime exhausted exactly now")
	assert.IsType(t, Expired{}, events[0])
	assert.LessOrEqual(t, trail.TimeToLive, 0.0)

	// Inert thereafter: no further trail mutation, no repeat events
	version := trail.DataVersion()
	positions := len(trail.Positions())
	for i := 0; i < 5; i++ {
		assert.Empty(t, g.Tick())
	}
	assert.Equal(t, version, trail.DataVersion())
	assert.Len(t, trail.Positions(), positions)
}

func TestTickDeterminism(t *testing.T) {
	run := func() *GameState {
		g := duelState(vmath.V3(0, 0, 0), vmath.V3(120, 30, 0))
		g.AddEntity(entity.NewPlanet(vmath.V3(60, -20, 0), 4e6, shape.Disc(5)))
		g.AddEntity(entity.NewPlanet(vmath.V3(40, 50, 0), 2e6, shape.Disc(3)))
		g.StartGame()
		require.NoError(t, g.FireMissile(0.3, 7))
		for i := 0; i < 5*constant.TicksPerSecond; i++ {
			g.Tick()
		}
		return g
	}

	a, b := run(), run()
	trailA := a.Entities[len(a.Entities)-1].MissileTrail
	trailB := b.Entities[len(b.Entities)-1].MissileTrail

	require.Equal(t, trailA.DataVersion(), trailB.DataVersion())
	assert.Equal(t, trailA.Positions(), trailB.Positions(), "replay must be bit-identical")
	assert.Equal(t, trailA.Velocity, trailB.Velocity)
	assert.Equal(t, a.Phase, b.Phase)
}

func TestTickWithNoMissilesIsQuiet(t *testing.T) {
	g := duelState(vmath.V3(0, 0, 0), vmath.V3(50, 0, 0))
	g.StartGame()
	phase := g.Phase

	assert.Empty(t, g.Tick())
	assert.Equal(t, phase, g.Phase)
}
