package game

// Tick advances the simulation one fixed timestep: every live missile
// integrates gravity and tests collision, then the turn machine consumes
// whatever resolved. Returns the events emitted this tick.
func (g *GameState) Tick() []MissileEvent {
	var events []MissileEvent
	// Index loop: each missile must see "all other entities" while
	// mutating its own trail, and entities appended mid-tick (none
	// today) must not be visited.
	count := len(g.Entities)
	for i := 0; i < count; i++ {
		if ev, ok := g.updateMissile(i); ok {
			events = append(events, ev)
		}
	}

	if len(events) == 0 {
		return nil
	}
	if turn, ok := g.Phase.CurrentTurn(); ok && turn.State == TurnFiring {
		g.AdvanceAfterResolution(events)
	} else {
		g.applyHits(events)
	}
	return events
}

// updateMissile advances the missile at index idx by one tick. The trail
// decrements its lifetime, then walks every other entity in collection
// order: the first impact within the tick window wins and freezes the
// missile at the exact impact point; entities passed without impact
// contribute their gravity to the velocity.
func (g *GameState) updateMissile(idx int) (MissileEvent, bool) {
	trail := g.Entities[idx].MissileTrail
	if trail == nil || trail.TimeToLive <= 0 {
		return nil, false
	}

	dt := g.Config.TickInterval
	lastPos := trail.LastPosition()
	trail.TimeToLive -= dt

	for j, other := range g.Entities {
		if j == idx {
			continue
		}
		if toi, ok := trail.TimeToCollision(other, dt, true); ok {
			trail.TimeToLive = 0
			trail.AddPosition(lastPos.Add(trail.Velocity.Scale(toi)))
			return HitEntity{Target: j}, true
		}
		trail.Velocity = trail.Velocity.Add(other.GravityAt(lastPos, g.Config.GravitationalConstant))
	}
	trail.AddPosition(lastPos.Add(trail.Velocity.Scale(dt)))

	if trail.TimeToLive <= 0 {
		return Expired{}, true
	}
	return nil, false
}
