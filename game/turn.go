package game

// TurnState is the sub-state within one player's turn
type TurnState uint8

const (
	// TurnAiming waits for a fire command
	TurnAiming TurnState = iota
	// TurnFiring has a missile in flight
	TurnFiring
)

// Turn tracks whose turn it is and whether a missile is in flight
type Turn struct {
	CurrentPlayer int
	State         TurnState
}

func NewTurn(currentPlayer int) Turn {
	return Turn{CurrentPlayer: currentPlayer, State: TurnAiming}
}

// PhaseKind is the game-level phase discriminant
type PhaseKind uint8

const (
	PhaseNotStarted PhaseKind = iota
	PhasePlaying
	PhaseGameOver
)

// GamePhase is the game-level state. Turn is meaningful only while
// Kind == PhasePlaying.
type GamePhase struct {
	Kind PhaseKind
	Turn Turn
}

// PlayingPhase wraps a turn into the Playing phase
func PlayingPhase(t Turn) GamePhase {
	return GamePhase{Kind: PhasePlaying, Turn: t}
}

// CurrentTurn returns the active turn while playing
func (p GamePhase) CurrentTurn() (Turn, bool) {
	if p.Kind != PhasePlaying {
		return Turn{}, false
	}
	return p.Turn, true
}

// StartGame moves from NotStarted into the first turn: the lowest-indexed
// player with an active ship aims first. With no active ships the game is
// over before it begins.
func (g *GameState) StartGame() {
	if g.Phase.Kind != PhaseNotStarted {
		return
	}
	for id := range g.Players {
		if g.playerHasActiveShip(id) {
			g.Phase = PlayingPhase(NewTurn(id))
			return
		}
	}
	g.Phase = GamePhase{Kind: PhaseGameOver}
}

// AdvanceAfterResolution consumes the missile events of the turn that
// just resolved: ship hits become eliminations, then the turn passes to
// the next player strictly after the firer (wrapping) who still has an
// active ship. No such player, or the wrap landing back on the firer as
// sole survivor, ends the game.
func (g *GameState) AdvanceAfterResolution(events []MissileEvent) {
	g.applyHits(events)

	turn, ok := g.Phase.CurrentTurn()
	if !ok {
		return
	}
	n := len(g.Players)
	for step := 1; step <= n; step++ {
		candidate := (turn.CurrentPlayer + step) % n
		if !g.playerHasActiveShip(candidate) {
			continue
		}
		if candidate == turn.CurrentPlayer {
			// Wrapped all the way around: the firer is the sole survivor
			break
		}
		g.Phase = PlayingPhase(NewTurn(candidate))
		return
	}
	g.Phase = GamePhase{Kind: PhaseGameOver}
}

// applyHits disables every ship named by a HitEntity event; Expired
// events mutate nothing
func (g *GameState) applyHits(events []MissileEvent) {
	for _, ev := range events {
		hit, ok := ev.(HitEntity)
		if !ok {
			continue
		}
		if s := g.Entities[hit.Target].Ship; s != nil {
			s.Disable()
		}
	}
}
