package entity

import (
	"github.com/samdwyer/textquest/internal/combat"
	"github.com/samdwyer/textquest/internal/gamedata"
)

// Starting profile for every run.
const (
	DefaultName       = "Hero"
	DefaultHealth     = 100
	DefaultDamage     = 10
	DefaultPotionSize = 25
	DefaultPotions    = 3
)

// Player is the persistent player profile. It lives for the whole session
// and is only ever reset, never replaced.
type Player struct {
	Name       string // Display name, fixed at creation
	Health     int    // 0 <= Health <= MaxHealth
	MaxHealth  int    // always > 0
	Damage     int    // Attack power
	PotionSize int    // Health restored per potion
	Potions    int    // Potion charges carried
	Coins      int
	Score      int // Only grows until Reset
}

// NewPlayer creates a player with the starting profile.
func NewPlayer() *Player {
	p := &Player{Name: DefaultName}
	p.Reset()
	return p
}

// Reset restores the starting stats in place. The name is kept.
func (p *Player) Reset() {
	p.Health = DefaultHealth
	p.MaxHealth = DefaultHealth
	p.Damage = DefaultDamage
	p.PotionSize = DefaultPotionSize
	p.Potions = DefaultPotions
	p.Coins = 0
	p.Score = 0
}

// Restore refills health to the maximum.
func (p *Player) Restore() {
	p.Health = p.MaxHealth
}

// =============================================================================
// Economy
// =============================================================================

// AddCoins adds coins, ignoring non-positive amounts.
func (p *Player) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	p.Coins = addSat(p.Coins, amount)
}

// SpendCoins removes amount coins. It returns false and changes nothing
// if the player cannot afford it.
func (p *Player) SpendCoins(amount int) bool {
	if amount < 0 || p.Coins < amount {
		return false
	}
	p.Coins -= amount
	return true
}

// AddScore increases the score. Score never decreases.
func (p *Player) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	p.Score = addSat(p.Score, amount)
}

// =============================================================================
// Stat upgrades
// =============================================================================

// AddMaxHealth raises max health and heals by the same amount.
func (p *Player) AddMaxHealth(amount int) {
	if amount <= 0 {
		return
	}
	p.MaxHealth = addSat(p.MaxHealth, amount)
	p.Heal(amount)
}

// AddDamage changes attack power, never below zero.
func (p *Player) AddDamage(amount int) {
	p.Damage = clamp(addSat(p.Damage, amount), 0, maxStat)
}

// AddPotionSize raises the amount each potion heals.
func (p *Player) AddPotionSize(amount int) {
	if amount <= 0 {
		return
	}
	p.PotionSize = clamp(addSat(p.PotionSize, amount), 0, maxStat)
}

// AddPotions adds potion charges.
func (p *Player) AddPotions(amount int) {
	if amount <= 0 {
		return
	}
	p.Potions = addSat(p.Potions, amount)
}

// Wound removes up to amount health but never kills: health stays at
// least 1. Used for exploration events, which cannot end a run.
func (p *Player) Wound(amount int) int {
	if amount <= 0 || p.Health <= 1 {
		return 0
	}
	actual := clamp(amount, 0, p.Health-1)
	p.Health -= actual
	return actual
}

// maxStat caps attack and potion stats so difficulty scaling can't overflow.
const maxStat = 1 << 30

// =============================================================================
// combat.Hero implementation
// =============================================================================

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// IsAlive returns true while the player has health left.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// GetHealth returns current health.
func (p *Player) GetHealth() int { return p.Health }

// GetMaxHealth returns maximum health.
func (p *Player) GetMaxHealth() int { return p.MaxHealth }

// GetDamage returns attack power.
func (p *Player) GetDamage() int { return p.Damage }

// GetPotions returns the potion charges carried.
func (p *Player) GetPotions() int { return p.Potions }

// TakeDamage reduces health and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := clamp(amount, 0, p.Health)
	p.Health -= actual
	return actual
}

// Heal restores health up to MaxHealth and returns the amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := clamp(amount, 0, p.MaxHealth-p.Health)
	p.Health += actual
	return actual
}

// UsePotion spends one charge and heals by PotionSize.
// ok is false when no charges are left; nothing changes then.
func (p *Player) UsePotion() (healed int, ok bool) {
	if p.Potions < 1 {
		return 0, false
	}
	p.Potions--
	return p.Heal(p.PotionSize), true
}

// Collect takes the enemy's bounty.
func (p *Player) Collect(coins, score int) {
	p.AddCoins(coins)
	p.AddScore(score)
}

// ApplyItem grants the stats of a purchased shop item.
func (p *Player) ApplyItem(item *gamedata.ItemDef) {
	p.AddMaxHealth(item.MaxHealth)
	p.AddDamage(item.Damage)
	p.AddPotionSize(item.PotionSize)
	p.AddPotions(item.Potions)
}

// Ensure Player implements combat.Hero
var _ combat.Hero = (*Player)(nil)
