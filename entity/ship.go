package entity

// ShipState tracks whether a craft is still in play
type ShipState uint8

const (
	ShipActive ShipState = iota
	ShipDisabled
)

// Ship is the player-craft record owned by a ship entity. Once disabled
// a ship never returns to active.
type Ship struct {
	PlayerID int
	State    ShipState
}

// Disable marks the ship out of play
func (s *Ship) Disable() {
	s.State = ShipDisabled
}

// Color is a display color, pass-through state for the renderer
type Color struct {
	R, G, B uint8
}

// Player is the immutable per-game roster record
type Player struct {
	Color Color
}
