package game

// MissileEvent is the outcome a missile reports from one tick
type MissileEvent interface {
	isMissileEvent()
}

// HitEntity reports a strike on the entity at Target (an index into the
// GameState collection; indices are stable because entities are never
// removed)
type HitEntity struct {
	Target int
}

// Expired reports a missile running out of lifetime without a hit
type Expired struct{}

func (HitEntity) isMissileEvent() {}
func (Expired) isMissileEvent()   {}
