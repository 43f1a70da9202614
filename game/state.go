// Package game owns the simulation core: the game state container, the
// turn/phase machine, the per-tick missile integrator, and the fire
// command. Everything here is single-threaded and synchronous; the
// caller owns the GameState for the duration of any call.
package game

import (
	"gravityduel/constant"
	"gravityduel/entity"
	"gravityduel/event"
)

// GameState owns the entity collection, the player roster, the phase,
// and the pass-through camera state. Entities are kept in insertion
// order and never removed; missiles and ships go inert instead.
type GameState struct {
	Config   constant.Config
	Entities []*entity.Entity
	Players  []entity.Player
	Phase    GamePhase
	Camera   Camera

	// RendererFactory, when set, is called once per fired missile to
	// attach an opaque renderer handle. The core never inspects it.
	RendererFactory func(*entity.Entity) entity.Renderer
}

// New returns a game state in the NotStarted phase
func New(cfg constant.Config, players []entity.Player) *GameState {
	return &GameState{
		Config:  cfg,
		Players: players,
		Phase:   GamePhase{Kind: PhaseNotStarted},
		Camera:  NewCamera(),
	}
}

// AddEntity appends to the world collection and returns the new index
func (g *GameState) AddEntity(e *entity.Entity) int {
	g.Entities = append(g.Entities, e)
	return len(g.Entities) - 1
}

// ShipForPlayer returns the player's ship entity, active or not
func (g *GameState) ShipForPlayer(playerID int) (*entity.Entity, bool) {
	for _, e := range g.Entities {
		if e.Ship != nil && e.Ship.PlayerID == playerID {
			return e, true
		}
	}
	return nil, false
}

// playerHasActiveShip derives eliminations from ship state; nothing is
// stored
func (g *GameState) playerHasActiveShip(playerID int) bool {
	for _, e := range g.Entities {
		if e.Ship != nil && e.Ship.PlayerID == playerID && e.Ship.State == entity.ShipActive {
			return true
		}
	}
	return false
}

// ActivePlayerIDs returns the distinct players with an active ship, in
// roster order
func (g *GameState) ActivePlayerIDs() []int {
	var active []int
	for id := range g.Players {
		if g.playerHasActiveShip(id) {
			active = append(active, id)
		}
	}
	return active
}

// HandleInput applies one input event. Camera events always succeed;
// fire commands go through full validation.
func (g *GameState) HandleInput(ev event.InputEvent) error {
	switch ev := ev.(type) {
	case event.PanCamera:
		g.Camera.Pan(ev.DX, ev.DY)
	case event.ZoomCamera:
		g.Camera.Zoom(ev.Factor)
	case event.FireMissile:
		return g.FireMissile(ev.Angle, ev.Speed)
	}
	return nil
}
