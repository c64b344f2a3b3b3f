package game

import (
	"github.com/google/uuid"

	"github.com/samdwyer/textquest/internal/combat"
	"github.com/samdwyer/textquest/internal/entity"
	"github.com/samdwyer/textquest/internal/shop"
	"github.com/samdwyer/textquest/internal/world"
)

// Snapshot is a read-only copy of everything the UI may show. Mutating it
// has no effect on the game.
type Snapshot struct {
	Phase  Phase
	Player entity.Player
	Enemy  *entity.Enemy // nil unless Phase is PhaseFighting
	Config Config

	LastEvent    string       // Description of the last exploration event
	LastEffect   world.Effect // What that event changed
	LastRound    *combat.RoundResult
	LastPurchase *shop.Receipt
	TurnCount    int

	RunID uuid.UUID
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      g.phase,
		Player:     *g.player,
		Config:     g.config,
		LastEvent:  g.lastEvent,
		LastEffect: g.lastEffect,
		RunID:      g.runID,
	}
	if g.combat != nil {
		s.Enemy = g.combat.Enemy.Clone()
		s.TurnCount = g.combat.TurnCount
	}
	if g.lastRound != nil {
		r := *g.lastRound
		s.LastRound = &r
	}
	if g.lastPurchase != nil {
		p := *g.lastPurchase
		s.LastPurchase = &p
	}
	return s
}
