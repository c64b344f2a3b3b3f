package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/samdwyer/textquest/internal/combat"
)

func TestVictoryPaysRewardAndReturnsToExploring(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())
	tg.enterFight(t, spawnGoblin)

	for i := 0; i < 2; i++ {
		require.NoError(t, tg.send(t, SignalAttack))
		require.Equal(t, PhaseFighting, tg.Phase())
	}
	assert.Equal(t, 2, tg.Snapshot().TurnCount)

	require.NoError(t, tg.send(t, SignalAttack))

	s := tg.Snapshot()
	assert.Equal(t, PhaseExploring, s.Phase)
	assert.Nil(t, s.Enemy)
	assert.Equal(t, 90, s.Player.Health, "two retaliations of 5, none after the killing blow")
	assert.Equal(t, 10, s.Player.Coins)
	assert.Equal(t, 10, s.Player.Score)
	require.NotNil(t, s.LastRound)
	assert.Equal(t, combat.OutcomeVictory, s.LastRound.Outcome)
	assert.Equal(t, 1, tg.logs.FilterMessage("encounter ended").Len())
}

func TestFleeKeepsStats(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())
	tg.enterFight(t, spawnGoblin)

	require.NoError(t, tg.send(t, SignalAttack))
	require.NoError(t, tg.send(t, SignalFlee))

	s := tg.Snapshot()
	assert.Equal(t, PhaseExploring, s.Phase)
	assert.Nil(t, s.Enemy)
	assert.Equal(t, 95, s.Player.Health)
	assert.Zero(t, s.Player.Coins)
	assert.Zero(t, s.Player.Score)
}

func TestPotionHealsAndRunsOut(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())
	tg.enterFight(t, spawnGoblin)
	tg.player.Health = 50

	require.NoError(t, tg.send(t, SignalUsePotion))
	s := tg.Snapshot()
	assert.Equal(t, 70, s.Player.Health, "healed 25, then hit for 5")
	assert.Equal(t, 2, s.Player.Potions)
	assert.Equal(t, 25, s.LastRound.Healed)

	require.NoError(t, tg.send(t, SignalUsePotion))
	require.NoError(t, tg.send(t, SignalUsePotion))
	turns := tg.Snapshot().TurnCount
	health := tg.Snapshot().Player.Health

	err := tg.send(t, SignalUsePotion)
	assert.ErrorIs(t, err, combat.ErrNoPotions)
	assert.Equal(t, turns, tg.Snapshot().TurnCount, "a refused potion does not use a round")
	assert.Equal(t, health, tg.Snapshot().Player.Health)
	assert.Equal(t, PhaseFighting, tg.Phase())
}

func TestDefeatEndsRunUntilAcknowledged(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())
	tg.enterFight(t, spawnOrc)
	tg.player.Health = 5
	tg.player.AddCoins(30)
	firstRun := tg.Snapshot().RunID

	require.NoError(t, tg.send(t, SignalAttack))

	s := tg.Snapshot()
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Nil(t, s.Enemy)
	assert.Zero(t, s.Player.Health)
	assert.Equal(t, combat.OutcomeDefeat, s.LastRound.Outcome)

	tg.tick()
	assert.Equal(t, PhaseGameOver, tg.Phase(), "game over waits for the player")

	require.NoError(t, tg.send(t, SignalAcknowledge))

	s = tg.Snapshot()
	assert.Equal(t, PhaseMainMenu, s.Phase)
	assert.Equal(t, 100, s.Player.Health)
	assert.Zero(t, s.Player.Coins)
	assert.Equal(t, 3, s.Player.Potions)
	assert.NotEqual(t, firstRun, s.RunID)
	assert.Nil(t, s.LastRound)
	assert.Empty(t, s.LastEvent)
}

func TestCheatsTurnDefeatIntoRetreat(t *testing.T) {
	tg := newTestGame(t, Config{Difficulty: DifficultyNormal, SpeedModifier: 1, CheatsEnabled: true})
	tg.enterFight(t, spawnOrc)
	tg.player.Health = 5

	require.NoError(t, tg.send(t, SignalAttack))

	s := tg.Snapshot()
	assert.Equal(t, PhaseExploring, s.Phase)
	assert.Equal(t, s.Player.MaxHealth, s.Player.Health)
	assert.Nil(t, s.Enemy)
}

func TestEnemyScaledByDifficulty(t *testing.T) {
	tests := []struct {
		difficulty        Difficulty
		health, damage    int
		coinsDrop, reward int
	}{
		{DifficultyEasy, 34, 7, 15, 23},
		{DifficultyNormal, 45, 9, 20, 30},
		{DifficultyHard, 68, 14, 30, 45},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			tg := newTestGame(t, Config{Difficulty: tt.difficulty, SpeedModifier: 1})
			tg.enterFight(t, spawnOrc)

			enemy := tg.Snapshot().Enemy
			require.NotNil(t, enemy)
			assert.Equal(t, "Orc", enemy.Name)
			assert.Equal(t, tt.health, enemy.Health)
			assert.Equal(t, tt.health, enemy.MaxHealth)
			assert.Equal(t, tt.damage, enemy.Damage)
			assert.Equal(t, tt.coinsDrop, enemy.CoinsDrop)
			assert.Equal(t, tt.reward, enemy.ScoreValue)
		})
	}
}

func TestHealthStaysInBoundsEveryRound(t *testing.T) {
	tg := newTestGame(t, Config{Difficulty: DifficultyHard, SpeedModifier: 1})
	tg.enterFight(t, spawnOrc)

	signals := []SignalKind{SignalAttack, SignalUsePotion}
	for i := 0; i < 100 && tg.Phase() == PhaseFighting; i++ {
		err := tg.send(t, signals[i%len(signals)])
		if err != nil {
			require.ErrorIs(t, err, combat.ErrNoPotions)
		}

		s := tg.Snapshot()
		assert.GreaterOrEqual(t, s.Player.Health, 0)
		assert.LessOrEqual(t, s.Player.Health, s.Player.MaxHealth)
		if s.Enemy != nil {
			assert.GreaterOrEqual(t, s.Enemy.Health, 0)
			assert.LessOrEqual(t, s.Enemy.Health, s.Enemy.MaxHealth)
		}
	}
	assert.NotEqual(t, PhaseFighting, tg.Phase(), "the fight must end")
}

func TestCombatIsTraced(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		_ = provider.Shutdown(context.Background())
	})

	tg := newTestGame(t, DefaultConfig())
	tg.enterFight(t, spawnGoblin)
	require.NoError(t, tg.send(t, SignalFlee))

	seen := map[string]int{}
	for _, span := range recorder.Ended() {
		seen[span.Name()]++
	}
	assert.Equal(t, 3, seen["game.transition"], "start, fight, flee")
	assert.Equal(t, 1, seen["combat.start"])
	assert.Equal(t, 1, seen["combat.round"])
	assert.Equal(t, 1, seen["combat.end"])
	assert.Equal(t, 2, seen["explore.event"])
}
