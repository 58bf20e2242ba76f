package state

// GameState represents the current top-level mode of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateWorldMap
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateWorldMap:
		return "WorldMap"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

const (
	// WorldCount is the number of worlds before progression wraps.
	WorldCount = 8

	// LevelsPerWorld is the number of levels in each world.
	LevelsPerWorld = 4
)

// Session tracks progression across levels: which world/level is active
// and which top-level mode the game is in. Player counters (lives, score,
// coins) live on the player entity; Session owns only the indices.
type Session struct {
	World int
	Level int
	Mode  GameState
}

// NewSession starts at world 1-1 in the menu.
func NewSession() *Session {
	return &Session{World: 1, Level: 1, Mode: StateMenu}
}

// Reset returns to world 1-1. Called on game-over restart.
func (s *Session) Reset() {
	s.World = 1
	s.Level = 1
	s.Mode = StateMenu
}

// AdvanceLevel moves to the next level after the goal is reached and
// returns the resulting mode: Playing to re-enter immediately, WorldMap
// when a world is cleared, or Menu when the final world wraps back to 1-1.
func (s *Session) AdvanceLevel() GameState {
	s.Level++
	if s.Level > LevelsPerWorld {
		s.Level = 1
		s.World++
		if s.World > WorldCount {
			s.World = 1
			s.Mode = StateMenu
		} else {
			s.Mode = StateWorldMap
		}
	} else {
		s.Mode = StatePlaying
	}
	return s.Mode
}
