package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/textquest/internal/combat"
	"github.com/samdwyer/textquest/internal/entity"
	"github.com/samdwyer/textquest/internal/game"
	"github.com/samdwyer/textquest/internal/shop"
	"github.com/samdwyer/textquest/internal/world"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMuted  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleKey    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	y      int
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame for the snapshot. offers are only shown in the shop;
// status is an optional message for the bottom line.
func (r *Renderer) Render(s game.Snapshot, offers []shop.Offer, status string) {
	r.screen.Clear()
	r.y = 0

	r.line("TEXTQUEST", styleTitle)
	r.y++

	switch s.Phase {
	case game.PhaseMainMenu:
		r.renderMenu(s)
	case game.PhaseExploring:
		r.renderExploring(s)
	case game.PhaseFighting:
		r.renderFighting(s)
	case game.PhaseShop:
		r.renderShop(s, offers)
	case game.PhaseGameOver:
		r.renderGameOver(s)
	}

	if status != "" {
		_, height := r.screen.Size()
		r.screen.DrawText(0, height-1, status, styleStatus)
	}
	r.screen.Show()
}

func (r *Renderer) renderMenu(s game.Snapshot) {
	r.option("s", "Start game")
	r.option("d", "Difficulty: "+difficultyLabel(s.Config))
	r.option("q", "Exit")
	if s.Config.CheatsEnabled {
		r.y++
		r.line("Cheats enabled", styleMuted)
	}
}

func (r *Renderer) renderExploring(s game.Snapshot) {
	r.stats(s.Player)
	r.y++
	r.line("You wander deeper into the dungeon...", styleMuted)
	if s.LastEvent != "" {
		r.line(s.LastEvent, styleText)
	}
	if text := effectText(s.LastEffect); text != "" {
		r.line(text, styleMuted)
	}
	if s.LastRound != nil && s.LastRound.Outcome.Ended() {
		r.y++
		r.line("Last fight: "+s.LastRound.Outcome.String(), styleMuted)
	}
}

func (r *Renderer) renderFighting(s game.Snapshot) {
	r.stats(s.Player)
	r.y++
	if s.Enemy == nil {
		return
	}

	enemy := s.Enemy
	x := r.screen.DrawText(0, r.y, enemy.Name, tcell.StyleDefault.Foreground(enemy.Color()).Bold(true))
	r.screen.DrawText(x+1, r.y, fmt.Sprintf("%d/%d HP, hits for %d", enemy.Health, enemy.MaxHealth, enemy.Damage), styleText)
	r.y++
	r.line(fmt.Sprintf("Turn %d", s.TurnCount+1), styleMuted)
	if s.LastRound != nil {
		r.line(roundText(*s.LastRound, enemy.Name), styleText)
	}
	r.y++

	attack := "Attack"
	if n := combat.RoundsToDefeat(enemy.Health, s.Player.Damage); n > 0 {
		attack = fmt.Sprintf("Attack (%d to win)", n)
	}
	r.option("a", attack)
	r.option("p", fmt.Sprintf("Drink potion (%d left)", s.Player.Potions))
	r.option("f", "Flee")
}

func (r *Renderer) renderShop(s game.Snapshot, offers []shop.Offer) {
	r.stats(s.Player)
	r.y++
	r.line("A merchant spreads out their wares.", styleText)
	for i, o := range offers {
		style := styleText
		if o.Price > s.Player.Coins {
			style = styleMuted
		}
		x := r.screen.DrawText(0, r.y, fmt.Sprintf("[%d] ", i+1), styleKey)
		r.screen.DrawText(x, r.y, fmt.Sprintf("%s - %d coins - %s", o.Item.Name, o.Price, o.Item.Description), style)
		r.y++
	}
	r.option("l", "Leave")
	if s.LastPurchase != nil {
		r.y++
		r.line(fmt.Sprintf("Bought %s for %d coins.", s.LastPurchase.Name, s.LastPurchase.Price), styleMuted)
	}
}

func (r *Renderer) renderGameOver(s game.Snapshot) {
	r.line("You have been defeated.", styleStatus)
	r.line(fmt.Sprintf("Final score: %d", s.Player.Score), styleText)
	r.y++
	r.option("enter", "Return to the main menu")
}

func (r *Renderer) stats(p entity.Player) {
	r.line(statsLine(p), styleText)
}

func (r *Renderer) line(text string, style tcell.Style) {
	r.screen.DrawText(0, r.y, text, style)
	r.y++
}

func (r *Renderer) option(key, label string) {
	x := r.screen.DrawText(0, r.y, "["+key+"] ", styleKey)
	r.screen.DrawText(x, r.y, label, styleText)
	r.y++
}

func statsLine(p entity.Player) string {
	return fmt.Sprintf("%s  HP %d/%d  DMG %d  Potions %d (+%d)  Coins %d  Score %d",
		p.Name, p.Health, p.MaxHealth, p.Damage, p.Potions, p.PotionSize, p.Coins, p.Score)
}

func difficultyLabel(cfg game.Config) string {
	return fmt.Sprintf("%s (x%.2f)", cfg.Difficulty, cfg.Multiplier())
}

// effectText describes a flavor event's stat changes, or "" if none.
func effectText(e world.Effect) string {
	var parts []string
	add := func(n int, what string) {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%+d %s", n, what))
		}
	}
	add(e.Health, "health")
	add(e.MaxHealth, "max health")
	add(e.Damage, "damage")
	add(e.Coins, "coins")
	return strings.Join(parts, ", ")
}

func roundText(r combat.RoundResult, enemy string) string {
	var b strings.Builder
	switch r.Action {
	case combat.ActionAttack:
		fmt.Fprintf(&b, "You hit the %s for %d.", enemy, r.DamageDealt)
	case combat.ActionUsePotion:
		fmt.Fprintf(&b, "You drink a potion and recover %d.", r.Healed)
	case combat.ActionFlee:
		b.WriteString("You run away.")
	}
	if r.Retaliated {
		fmt.Fprintf(&b, " The %s hits you for %d.", enemy, r.DamageTaken)
	}
	if r.Outcome == combat.OutcomeVictory {
		fmt.Fprintf(&b, " Victory! +%d coins, +%d score.", r.CoinsEarned, r.ScoreEarned)
	}
	return b.String()
}
