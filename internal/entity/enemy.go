package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/textquest/internal/combat"
	"github.com/samdwyer/textquest/internal/gamedata"
)

// ScorePerThreat is the score a Normal-difficulty kill earns per threat tier.
const ScorePerThreat = 10

// Enemy is the opponent of a single encounter. It is created when a fight
// starts and dropped when the fight ends.
type Enemy struct {
	Def        *gamedata.EnemyDef // Definition the enemy was scaled from
	Name       string
	Health     int
	MaxHealth  int
	Damage     int // Already scaled by difficulty
	CoinsDrop  int // Coins awarded on defeat
	ScoreValue int // Score awarded on defeat
}

// NewEnemyFromDef creates an encounter enemy, scaling every stat of def by
// the difficulty multiplier. Health is at least 1.
func NewEnemyFromDef(def *gamedata.EnemyDef, multiplier float64) *Enemy {
	if multiplier < 0 {
		multiplier = 0
	}
	maxHealth := scale(def.Health, multiplier, 1)
	return &Enemy{
		Def:        def,
		Name:       def.Name,
		Health:     maxHealth,
		MaxHealth:  maxHealth,
		Damage:     scale(def.Damage, multiplier, 0),
		CoinsDrop:  scale(def.Coins, multiplier, 0),
		ScoreValue: scale(def.Threat*ScorePerThreat, multiplier, 0),
	}
}

// Color returns the terminal color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// ID returns the enemy's type identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}

// Clone returns a copy that shares only the immutable definition.
func (e *Enemy) Clone() *Enemy {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// =============================================================================
// combat.Foe implementation
// =============================================================================

func (e *Enemy) GetName() string    { return e.Name }
func (e *Enemy) IsAlive() bool      { return e.Health > 0 }
func (e *Enemy) GetHealth() int     { return e.Health }
func (e *Enemy) GetMaxHealth() int  { return e.MaxHealth }
func (e *Enemy) GetDamage() int     { return e.Damage }
func (e *Enemy) GetCoinsDrop() int  { return e.CoinsDrop }
func (e *Enemy) GetScoreValue() int { return e.ScoreValue }

// TakeDamage reduces health and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := clamp(amount, 0, e.Health)
	e.Health -= actual
	return actual
}

// Heal restores health up to MaxHealth and returns the amount healed.
func (e *Enemy) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := clamp(amount, 0, e.MaxHealth-e.Health)
	e.Health += actual
	return actual
}

var _ combat.Foe = (*Enemy)(nil)
