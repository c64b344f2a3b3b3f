package combat

import (
	"errors"
	"testing"
)

// mockCombatant is a test implementation of both Hero and Foe.
type mockCombatant struct {
	name          string
	health, maxHP int
	damage        int
	potions       int
	potionSize    int
	coinsDrop     int
	scoreValue    int
	coins, score  int
}

func newMock(name string, health, damage int) *mockCombatant {
	return &mockCombatant{name: name, health: health, maxHP: health, damage: damage}
}

func (m *mockCombatant) GetName() string    { return m.name }
func (m *mockCombatant) IsAlive() bool      { return m.health > 0 }
func (m *mockCombatant) GetHealth() int     { return m.health }
func (m *mockCombatant) GetMaxHealth() int  { return m.maxHP }
func (m *mockCombatant) GetDamage() int     { return m.damage }
func (m *mockCombatant) GetPotions() int    { return m.potions }
func (m *mockCombatant) GetCoinsDrop() int  { return m.coinsDrop }
func (m *mockCombatant) GetScoreValue() int { return m.scoreValue }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.health {
		actual = m.health
	}
	m.health -= actual
	return actual
}

func (m *mockCombatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if m.health+actual > m.maxHP {
		actual = m.maxHP - m.health
	}
	m.health += actual
	return actual
}

func (m *mockCombatant) UsePotion() (int, bool) {
	if m.potions < 1 {
		return 0, false
	}
	m.potions--
	return m.Heal(m.potionSize), true
}

func (m *mockCombatant) Collect(coins, score int) {
	m.coins += coins
	m.score += score
}

func assertBounds(t *testing.T, c Combatant) {
	t.Helper()
	if c.GetHealth() < 0 || c.GetHealth() > c.GetMaxHealth() {
		t.Fatalf("%s health %d outside [0,%d]", c.GetName(), c.GetHealth(), c.GetMaxHealth())
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionAttack, "attack"},
		{ActionUsePotion, "use_potion"},
		{ActionFlee, "flee"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
		ended    bool
	}{
		{OutcomeOngoing, "ongoing", false},
		{OutcomeVictory, "victory", true},
		{OutcomeDefeat, "defeat", true},
		{OutcomeFled, "fled", true},
		{Outcome(99), "unknown", true},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
		if got := tt.outcome.Ended(); got != tt.ended {
			t.Errorf("Outcome(%d).Ended() = %v, want %v", tt.outcome, got, tt.ended)
		}
	}
}

func TestAttackKillsInThreeHitsWithoutFinalRetaliation(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 100, 10)
	foe := newMock("Goblin", 25, 5)
	foe.coinsDrop = 10
	foe.scoreValue = 10

	wantEnemyHealth := []int{15, 5, 0}
	for i, want := range wantEnemyHealth {
		result, err := resolver.Resolve(ActionAttack, hero, foe)
		if err != nil {
			t.Fatalf("round %d: unexpected error %v", i+1, err)
		}
		assertBounds(t, hero)
		assertBounds(t, foe)

		if foe.health != want {
			t.Errorf("round %d: enemy health = %d, want %d", i+1, foe.health, want)
		}

		last := i == len(wantEnemyHealth)-1
		if last {
			if result.Outcome != OutcomeVictory {
				t.Errorf("final round outcome = %v, want victory", result.Outcome)
			}
			if result.Retaliated || result.DamageTaken != 0 {
				t.Error("enemy must not retaliate after the killing blow")
			}
		} else if !result.Retaliated || result.DamageTaken != 5 {
			t.Errorf("round %d: expected 5 retaliation damage, got %d", i+1, result.DamageTaken)
		}
	}

	// Two retaliations of 5
	if hero.health != 90 {
		t.Errorf("hero health = %d, want 90", hero.health)
	}
	if hero.coins != 10 || hero.score != 10 {
		t.Errorf("reward = %d coins %d score, want 10/10", hero.coins, hero.score)
	}
}

func TestAttackOverkillClampsToZero(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 100, 50)
	foe := newMock("Rat", 7, 1)

	result, err := resolver.Resolve(ActionAttack, hero, foe)
	if err != nil {
		t.Fatal(err)
	}
	if result.DamageDealt != 7 {
		t.Errorf("DamageDealt = %d, want 7 (clamped)", result.DamageDealt)
	}
	if foe.health != 0 {
		t.Errorf("enemy health = %d, want 0", foe.health)
	}
}

func TestRetaliationDefeatsHero(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 8, 1)
	foe := newMock("Orc", 50, 20)

	result, err := resolver.Resolve(ActionAttack, hero, foe)
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != OutcomeDefeat {
		t.Errorf("outcome = %v, want defeat", result.Outcome)
	}
	if hero.health != 0 {
		t.Errorf("hero health = %d, want 0", hero.health)
	}
	if result.DamageTaken != 8 {
		t.Errorf("DamageTaken = %d, want 8 (clamped)", result.DamageTaken)
	}
	if hero.coins != 0 || hero.score != 0 {
		t.Error("defeat must not pay a reward")
	}
}

func TestUsePotionHealsThenRetaliates(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		wantHealed int
	}{
		{"partial", 50, 25},
		{"clamped", 90, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver()
			hero := newMock("Hero", 100, 10)
			hero.health = tt.health
			hero.potions = 1
			hero.potionSize = 25
			foe := newMock("Goblin", 25, 5)

			result, err := resolver.Resolve(ActionUsePotion, hero, foe)
			if err != nil {
				t.Fatal(err)
			}
			if result.Healed != tt.wantHealed {
				t.Errorf("Healed = %d, want %d", result.Healed, tt.wantHealed)
			}
			if !result.Retaliated {
				t.Error("enemy should retaliate after a potion")
			}
			if want := tt.health + tt.wantHealed - 5; hero.health != want {
				t.Errorf("hero health = %d, want %d", hero.health, want)
			}
			if hero.potions != 0 {
				t.Errorf("potions = %d, want 0", hero.potions)
			}
		})
	}
}

func TestUsePotionWithoutCharges(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 100, 10)
	hero.health = 40
	foe := newMock("Goblin", 25, 5)

	result, err := resolver.Resolve(ActionUsePotion, hero, foe)
	if !errors.Is(err, ErrNoPotions) {
		t.Fatalf("err = %v, want ErrNoPotions", err)
	}
	if result.Retaliated || hero.health != 40 {
		t.Error("a refused potion must not cost a round")
	}
}

func TestFleeEndsWithoutRewardOrRetaliation(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 100, 10)
	foe := newMock("Goblin", 25, 5)
	foe.coinsDrop = 10

	result, err := resolver.Resolve(ActionFlee, hero, foe)
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != OutcomeFled {
		t.Errorf("outcome = %v, want fled", result.Outcome)
	}
	if result.Retaliated || hero.health != 100 || hero.coins != 0 || hero.score != 0 {
		t.Error("flee must leave stats untouched")
	}
}

func TestResolveAfterCombatOver(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 100, 10)
	foe := newMock("Goblin", 25, 5)
	foe.health = 0

	if _, err := resolver.Resolve(ActionAttack, hero, foe); !errors.Is(err, ErrCombatOver) {
		t.Errorf("err = %v, want ErrCombatOver", err)
	}
}

func TestResolveUnknownAction(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 100, 10)
	foe := newMock("Goblin", 25, 5)

	_, err := resolver.Resolve(Action(42), hero, foe)
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("err = %v, want ErrUnknownAction", err)
	}
	if foe.health != 25 || hero.health != 100 {
		t.Error("unknown action must not change state")
	}
}

func TestNegativeDamageIsIgnored(t *testing.T) {
	resolver := NewResolver()
	hero := newMock("Hero", 100, -3)
	foe := newMock("Goblin", 25, -3)

	result, err := resolver.Resolve(ActionAttack, hero, foe)
	if err != nil {
		t.Fatal(err)
	}
	if result.DamageDealt != 0 || result.DamageTaken != 0 {
		t.Errorf("negative damage must deal 0, got %d/%d", result.DamageDealt, result.DamageTaken)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	actions := []Action{ActionAttack, ActionUsePotion, ActionAttack, ActionAttack, ActionAttack}

	play := func() (int, int) {
		resolver := NewResolver()
		hero := newMock("Hero", 30, 9)
		hero.potions = 2
		hero.potionSize = 10
		foe := newMock("Orc", 45, 9)
		for _, a := range actions {
			result, err := resolver.Resolve(a, hero, foe)
			if err != nil || result.Outcome.Ended() {
				break
			}
		}
		return hero.health, foe.health
	}

	h1, f1 := play()
	h2, f2 := play()
	if h1 != h2 || f1 != f2 {
		t.Errorf("replay diverged: (%d,%d) vs (%d,%d)", h1, f1, h2, f2)
	}
}

func TestRoundsToDefeat(t *testing.T) {
	tests := []struct {
		health, power, want int
	}{
		{25, 10, 3},
		{30, 10, 3},
		{1, 10, 1},
		{0, 10, 0},
		{10, 0, -1},
	}

	for _, tt := range tests {
		if got := RoundsToDefeat(tt.health, tt.power); got != tt.want {
			t.Errorf("RoundsToDefeat(%d, %d) = %d, want %d", tt.health, tt.power, got, tt.want)
		}
	}
}
