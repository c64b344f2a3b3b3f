// Package combat provides turn-based combat resolution for textquest.
//
// A round is always the player's action followed, if the fight is still on,
// by the enemy's retaliation. There is no simultaneous resolution, so a fixed
// action sequence against fixed stats always replays identically.
package combat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPotions is returned when the player drinks with no charges left.
	// The round is not consumed and the enemy does not retaliate.
	ErrNoPotions = errors.New("no potions left")
	// ErrCombatOver is returned when a side is already dead.
	ErrCombatOver = errors.New("combat is already over")
	// ErrUnknownAction is returned for an action the resolver doesn't know.
	ErrUnknownAction = errors.New("unknown combat action")
)

// Combatant is anything that can deal and take damage.
type Combatant interface {
	GetName() string
	IsAlive() bool

	GetHealth() int
	GetMaxHealth() int
	GetDamage() int

	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// Hero is the player's side of a fight.
type Hero interface {
	Combatant
	GetPotions() int
	UsePotion() (healed int, ok bool)
	Collect(coins, score int)
}

// Foe is the enemy's side of a fight.
type Foe interface {
	Combatant
	GetCoinsDrop() int
	GetScoreValue() int
}

// Action is the player's choice for a round.
type Action int

const (
	ActionAttack Action = iota
	ActionUsePotion
	ActionFlee
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionUsePotion:
		return "use_potion"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Outcome is how a round left the fight.
type Outcome int

const (
	// OutcomeOngoing - both sides still standing
	OutcomeOngoing Outcome = iota
	// OutcomeVictory - the enemy died on the player's action
	OutcomeVictory
	// OutcomeDefeat - the player died to the retaliation
	OutcomeDefeat
	// OutcomeFled - the player left the fight
	OutcomeFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Ended reports whether the fight is over.
func (o Outcome) Ended() bool {
	return o != OutcomeOngoing
}

// RoundResult records everything one round changed. The front-end formats
// it; the resolver produces no display text.
type RoundResult struct {
	Action      Action
	Outcome     Outcome
	DamageDealt int // Damage the player dealt
	DamageTaken int // Damage the enemy dealt back
	Healed      int // Health restored by a potion
	Retaliated  bool
	CoinsEarned int
	ScoreEarned int
}

// Resolver applies combat rounds. It holds no per-fight state.
type Resolver struct{}

// NewResolver creates a new combat resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve plays one round of action by hero against foe.
func (r *Resolver) Resolve(action Action, hero Hero, foe Foe) (RoundResult, error) {
	result := RoundResult{Action: action}

	if !hero.IsAlive() || !foe.IsAlive() {
		return result, ErrCombatOver
	}

	switch action {
	case ActionAttack:
		result.DamageDealt = foe.TakeDamage(r.damageOf(hero))
		if !foe.IsAlive() {
			result.Outcome = OutcomeVictory
			r.award(&result, hero, foe)
			return result, nil
		}
	case ActionUsePotion:
		healed, ok := hero.UsePotion()
		if !ok {
			return result, ErrNoPotions
		}
		result.Healed = healed
	case ActionFlee:
		result.Outcome = OutcomeFled
		return result, nil
	default:
		return result, fmt.Errorf("%w: %d", ErrUnknownAction, int(action))
	}

	r.retaliate(&result, hero, foe)
	return result, nil
}

// retaliate lets the surviving foe strike back.
func (r *Resolver) retaliate(result *RoundResult, hero Hero, foe Foe) {
	result.Retaliated = true
	result.DamageTaken = hero.TakeDamage(r.damageOf(foe))
	if !hero.IsAlive() {
		result.Outcome = OutcomeDefeat
	}
}

// award hands the foe's bounty to the hero.
func (r *Resolver) award(result *RoundResult, hero Hero, foe Foe) {
	result.CoinsEarned = max(foe.GetCoinsDrop(), 0)
	result.ScoreEarned = max(foe.GetScoreValue(), 0)
	hero.Collect(result.CoinsEarned, result.ScoreEarned)
}

// damageOf returns a combatant's attack, never negative.
func (r *Resolver) damageOf(c Combatant) int {
	return max(c.GetDamage(), 0)
}

// RoundsToDefeat returns how many attacks of the given power kill a target
// with the given health. Used for previews; zero power never kills.
func RoundsToDefeat(health, power int) int {
	if health <= 0 {
		return 0
	}
	if power <= 0 {
		return -1
	}
	return (health + power - 1) / power
}
