// Package game implements the textquest state machine: the phases of a run,
// the legal moves between them, and the signals that drive it.
package game

// Phase is the active mode of the game. Exactly one is active at a time.
type Phase int

const (
	// PhaseMainMenu is the title menu: start, change difficulty, exit.
	PhaseMainMenu Phase = iota
	// PhaseExploring rolls random events until one leads somewhere.
	PhaseExploring
	// PhaseFighting is a turn-based fight against one enemy.
	PhaseFighting
	// PhaseShop spends coins on upgrades.
	PhaseShop
	// PhaseGameOver waits for the player to acknowledge defeat.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhaseExploring:
		return "exploring"
	case PhaseFighting:
		return "fighting"
	case PhaseShop:
		return "shop"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// transitions lists every legal edge of the state machine.
var transitions = map[Phase][]Phase{
	PhaseMainMenu:  {PhaseExploring},
	PhaseExploring: {PhaseFighting, PhaseShop},
	PhaseFighting:  {PhaseExploring, PhaseGameOver},
	PhaseShop:      {PhaseExploring},
	PhaseGameOver:  {PhaseMainMenu},
}

// requestable lists the edges Request may queue. Every other edge is taken
// only once the phase itself has decided its outcome.
var requestable = map[Phase][]Phase{
	PhaseExploring: {PhaseFighting, PhaseShop},
}

// CanRequest reports whether a transition from one phase to another may be
// queued with Game.Request.
func CanRequest(from, to Phase) bool {
	for _, p := range requestable[from] {
		if p == to {
			return true
		}
	}
	return false
}

// CanTransition reports whether the machine may move from one phase to another.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
