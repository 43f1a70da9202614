// Package mapgen procedurally places planets and ships inside a
// rectangular arena. Every random draw comes from the injected source,
// so a seed fully determines the map; a placement that cannot find room
// within the attempt budget aborts the whole generation.
package mapgen

import (
	"errors"
	"fmt"
	"math"

	"gravityduel/constant"
	"gravityduel/entity"
	"gravityduel/game"
	"gravityduel/shape"
	"gravityduel/vmath"
)

// ErrPlacementFailed aborts generation when the rejection sampler
// exhausts its attempt budget. The caller retries with fresh randomness
// or surfaces the failure; no partial world is ever returned.
var ErrPlacementFailed = errors.New("mapgen: could not place entity")

// Options describes one generation request
type Options struct {
	// Arena extents, centered on the origin
	Width, Height float64

	PlayerCount int

	// ShipContour, when non-empty, becomes each ship's polyline hull
	// (mesh-derived collision contour); otherwise ships get the default
	// disc from the config.
	ShipContour []vmath.Vec2
}

// playerPalette cycles for rosters larger than the palette
var playerPalette = []entity.Color{
	{R: 0xe6, G: 0x4b, B: 0x35},
	{R: 0x4b, G: 0x9c, B: 0xe6},
	{R: 0x5c, G: 0xc8, B: 0x62},
	{R: 0xe6, G: 0xc8, B: 0x4b},
	{R: 0xb0, G: 0x62, B: 0xe6},
	{R: 0x4b, G: 0xe6, B: 0xc8},
}

// Generate builds a complete initial GameState: sampled planets first,
// then one ship per player, all pairwise disjoint under the proximity
// test at generation time.
func Generate(cfg constant.Config, opts Options, rng *vmath.Rand) (*game.GameState, error) {
	players := make([]entity.Player, opts.PlayerCount)
	for i := range players {
		players[i] = entity.Player{Color: playerPalette[i%len(playerPalette)]}
	}
	state := game.New(cfg, players)

	for i, n := 0, planetCount(cfg, opts, rng); i < n; i++ {
		radius := math.Max(cfg.PlanetRadiusMin, rng.Norm(cfg.PlanetRadiusMean, cfg.PlanetRadiusStdDev))
		density := math.Max(0, rng.Norm(cfg.PlanetMassDensityMean, cfg.PlanetMassDensityStdDev))
		mass := 4.0 / 3.0 * math.Pi * radius * radius * radius * density

		s := shape.Disc(radius)
		pos, err := place(state, cfg, opts, s, rng)
		if err != nil {
			return nil, fmt.Errorf("planet %d: %w", i, err)
		}
		state.AddEntity(entity.NewPlanet(pos, mass, s))
	}

	for id := range players {
		s := shipShape(cfg, opts)
		hull := s.BoundingRadius()
		mass := 4.0 / 3.0 * math.Pi * hull * hull * hull * cfg.ShipMassDensity

		pos, err := place(state, cfg, opts, s, rng)
		if err != nil {
			return nil, fmt.Errorf("ship for player %d: %w", id, err)
		}
		state.AddEntity(entity.NewShip(pos, id, mass, s))
	}

	return state, nil
}

// planetCount samples the planet density distribution scaled by arena
// area, floored to at least one planet
func planetCount(cfg constant.Config, opts Options, rng *vmath.Rand) int {
	area := opts.Width * opts.Height
	count := int(rng.Norm(cfg.PlanetDensityMean, cfg.PlanetDensityStdDev) * area)
	if count < 1 {
		count = 1
	}
	return count
}

func shipShape(cfg constant.Config, opts Options) *shape.Shape {
	if len(opts.ShipContour) >= 3 {
		return shape.Polyline(opts.ShipContour)
	}
	return shape.Disc(cfg.ShipRadius)
}

// place rejection-samples a position for s: uniform draws inside the
// arena until the candidate is disjoint from every already-placed
// entity, within the configured attempt budget
func place(state *game.GameState, cfg constant.Config, opts Options, s *shape.Shape, rng *vmath.Rand) (vmath.Vec3, error) {
	halfW, halfH := opts.Width/2, opts.Height/2

	for attempt := 0; attempt < cfg.MaxPlacementAttempts; attempt++ {
		pos := vmath.V3(rng.InRange(-halfW, halfW), rng.InRange(-halfH, halfH), 0)
		if fits(state, cfg, s, pos) {
			return pos, nil
		}
	}
	return vmath.Vec3{}, ErrPlacementFailed
}

func fits(state *game.GameState, cfg constant.Config, s *shape.Shape, pos vmath.Vec3) bool {
	candidate := shape.Iso2{Pos: pos.XY()}
	for _, placed := range state.Entities {
		if placed.CollisionShape == nil {
			continue
		}
		prox := shape.ProximityTest(s, candidate, placed.CollisionShape, placed.CollisionIso(), cfg.PlacementMargin)
		if prox != shape.Disjoint {
			return false
		}
	}
	return true
}
