// Package world rolls the random events met while exploring.
package world

import (
	"errors"
	"math"

	"github.com/samdwyer/textquest/internal/gamedata"
)

// weightScale turns fractional speed-adjusted weights into integer weights.
const weightScale = 100

// Target is the phase an outcome asks the game to move to.
type Target int

const (
	// TargetNone - flavor event, stay exploring
	TargetNone Target = iota
	// TargetFighting - start an encounter
	TargetFighting
	// TargetShop - open the shop
	TargetShop
)

// String returns a human-readable target name.
func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetFighting:
		return "fighting"
	case TargetShop:
		return "shop"
	default:
		return "unknown"
	}
}

// Outcome is one rolled exploration event.
type Outcome struct {
	Event  *gamedata.EventDef
	Target Target
}

// Description returns the event's text for the player.
func (o Outcome) Description() string {
	if o.Event == nil {
		return ""
	}
	return o.Event.Description
}

// Effect is what an event actually changed, after clamping.
type Effect struct {
	Health    int // signed
	MaxHealth int
	Damage    int // signed
	Coins     int
}

// Traveler is the player's side of a flavor event.
type Traveler interface {
	Heal(amount int) int
	Wound(amount int) int
	AddMaxHealth(amount int)
	AddDamage(amount int)
	AddCoins(amount int)
	GetDamage() int
}

// Dispatcher draws exploration events from a weighted table.
type Dispatcher struct {
	events []gamedata.EventDef
}

// NewDispatcher creates a dispatcher over the given event table.
func NewDispatcher(events []gamedata.EventDef) (*Dispatcher, error) {
	if len(events) == 0 {
		return nil, errors.New("event table is empty")
	}
	total := 0
	for _, e := range events {
		total += e.Weight
	}
	if total <= 0 {
		return nil, errors.New("event table has no weight")
	}
	return &Dispatcher{events: events}, nil
}

// LoadDispatcher builds a dispatcher from the embedded events.json.
func LoadDispatcher() (*Dispatcher, error) {
	events, err := gamedata.LoadEvents()
	if err != nil {
		return nil, err
	}
	return NewDispatcher(events)
}

// Events returns the event table.
func (d *Dispatcher) Events() []gamedata.EventDef {
	return d.events
}

// weights returns the integer roll weight of every event. Events that change
// phase are multiplied by speed, so a faster game meets monsters and
// merchants more often.
func (d *Dispatcher) weights(speed float64) ([]int, int) {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = 1
	}
	weights := make([]int, len(d.events))
	total := 0
	for i, e := range d.events {
		w := float64(e.Weight * weightScale)
		if e.Kind.ChangesPhase() {
			w *= speed
		}
		weights[i] = int(math.Round(w))
		total += weights[i]
	}
	return weights, total
}

// Roll draws one event. With all weights equal and speed 1 every event is
// equally likely. The same rng seed always yields the same sequence.
func (d *Dispatcher) Roll(rng gamedata.Roller, speed float64) Outcome {
	weights, total := d.weights(speed)
	if total <= 0 {
		// Speed scaled every weight to zero; fall back to the raw table.
		weights, total = d.weights(1)
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return outcomeOf(&d.events[i])
		}
	}
	return outcomeOf(&d.events[len(d.events)-1])
}

func outcomeOf(e *gamedata.EventDef) Outcome {
	o := Outcome{Event: e}
	switch e.Kind {
	case gamedata.EventEncounter:
		o.Target = TargetFighting
	case gamedata.EventShop:
		o.Target = TargetShop
	}
	return o
}

// Apply performs the outcome's stat effect on t and returns what actually
// changed. Losses never kill: health stays at least 1.
func Apply(o Outcome, t Traveler) Effect {
	var applied Effect
	if o.Event == nil {
		return applied
	}
	eff := o.Event.Effect

	if eff.MaxHealth > 0 {
		t.AddMaxHealth(eff.MaxHealth)
		applied.MaxHealth = eff.MaxHealth
	}
	switch {
	case eff.Health > 0:
		applied.Health = t.Heal(eff.Health)
	case eff.Health < 0:
		applied.Health = -t.Wound(-eff.Health)
	}
	if eff.Damage != 0 {
		before := t.GetDamage()
		t.AddDamage(eff.Damage)
		applied.Damage = t.GetDamage() - before
	}
	if eff.Coins > 0 {
		t.AddCoins(eff.Coins)
		applied.Coins = eff.Coins
	}
	return applied
}
