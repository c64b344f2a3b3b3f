package gamedata

import "fmt"

// EventKind identifies what an exploration event does.
type EventKind string

const (
	EventEncounter EventKind = "encounter" // starts a fight
	EventPool      EventKind = "pool"
	EventChest     EventKind = "chest"
	EventShop      EventKind = "shop" // opens the shop
	EventAltar     EventKind = "altar"
)

// ChangesPhase reports whether the event sends the player to another phase.
func (k EventKind) ChangesPhase() bool {
	return k == EventEncounter || k == EventShop
}

// EventEffect is the fixed stat delta a flavor event applies.
type EventEffect struct {
	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`
	Damage    int `json:"damage"`
	Coins     int `json:"coins"`
}

// IsZero reports whether the effect changes nothing.
func (e EventEffect) IsZero() bool {
	return e == EventEffect{}
}

// EventDef defines one row of the exploration event table.
type EventDef struct {
	ID          string      `json:"id"`
	Kind        EventKind   `json:"kind"`
	Description string      `json:"description"` // shown to the player when rolled
	Weight      int         `json:"weight"`      // relative roll weight
	Effect      EventEffect `json:"effect"`
}

// Validate checks the event row.
func (e *EventDef) Validate() error {
	switch e.Kind {
	case EventEncounter, EventPool, EventChest, EventShop, EventAltar:
	default:
		return fmt.Errorf("event %s: unknown kind %q", e.ID, e.Kind)
	}
	if e.Weight < 0 {
		return fmt.Errorf("event %s: negative weight %d", e.ID, e.Weight)
	}
	if e.Effect.Coins < 0 || e.Effect.MaxHealth < 0 {
		return fmt.Errorf("event %s: coins and max health can only be granted", e.ID)
	}
	if e.Kind.ChangesPhase() && !e.Effect.IsZero() {
		return fmt.Errorf("event %s: %s events cannot carry stat effects", e.ID, e.Kind)
	}
	return nil
}

// EventsFile represents the structure of events.json.
type EventsFile struct {
	Events []EventDef `json:"events"`
}

// LoadEvents loads the exploration event table from events.json.
func LoadEvents() ([]EventDef, error) {
	file, err := Load[EventsFile]("events.json")
	if err != nil {
		return nil, err
	}
	if err := validateRows("events.json", file.Events); err != nil {
		return nil, err
	}
	return file.Events, nil
}
