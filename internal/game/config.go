package game

// Difficulty is the game's difficulty level.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard

	difficultyCount = 3
)

// Normalized maps any value onto the three levels.
func (d Difficulty) Normalized() Difficulty {
	return ((d % difficultyCount) + difficultyCount) % difficultyCount
}

// Next returns the following level, wrapping Hard back to Easy.
func (d Difficulty) Next() Difficulty {
	return (d.Normalized() + 1) % difficultyCount
}

// Multiplier scales enemy stats, rewards and shop prices.
func (d Difficulty) Multiplier() float64 {
	switch d.Normalized() {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// String returns a human-readable difficulty name.
func (d Difficulty) String() string {
	switch d.Normalized() {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// Config holds the session settings. The difficulty multiplier is never
// stored; it is always derived from Difficulty.
type Config struct {
	Difficulty Difficulty

	// SpeedModifier scales exploration pacing. 2 rolls events twice as often
	// and makes encounters and merchants twice as likely relative to flavor events.
	SpeedModifier float64

	// CheatsEnabled turns a defeat into a full heal and a retreat.
	CheatsEnabled bool
}

// DefaultConfig returns Normal difficulty at normal speed, no cheats.
func DefaultConfig() Config {
	return Config{
		Difficulty:    DifficultyNormal,
		SpeedModifier: 1.0,
	}
}

// Multiplier is the multiplier of the current difficulty.
func (c Config) Multiplier() float64 {
	return c.Difficulty.Multiplier()
}

// Speed returns SpeedModifier, treating non-positive values as 1.
func (c Config) Speed() float64 {
	if c.SpeedModifier <= 0 {
		return 1.0
	}
	return c.SpeedModifier
}
