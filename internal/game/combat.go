package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/textquest/internal/combat"
	"github.com/samdwyer/textquest/internal/entity"
	"github.com/samdwyer/textquest/internal/telemetry"
)

// CombatState holds the state of the encounter in progress.
type CombatState struct {
	Enemy     *entity.Enemy
	TurnCount int            // Rounds played
	Outcome   combat.Outcome // Ongoing until the last round decides it
}

// NewCombatState creates the state for a fight against enemy.
func NewCombatState(enemy *entity.Enemy) *CombatState {
	return &CombatState{Enemy: enemy}
}

// startCombat spawns the encounter enemy, scaled by the current difficulty.
func (g *Game) startCombat(ctx context.Context) {
	def := g.enemies.SpawnRandom(g.rng)
	if def == nil {
		panic(ErrMissingEncounter)
	}
	enemy := entity.NewEnemyFromDef(def, g.config.Multiplier())
	g.combat = NewCombatState(enemy)
	g.lastRound = nil

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("run_id", g.runID.String()),
		attribute.String("enemy", enemy.ID()),
		attribute.Int("enemy_health", enemy.MaxHealth),
		attribute.Int("enemy_damage", enemy.Damage),
		attribute.String("difficulty", g.config.Difficulty.String()),
	)
	span.End()

	g.logger.Info("encounter started",
		zap.String("run_id", g.runID.String()),
		zap.String("enemy", enemy.ID()),
		zap.Int("enemy_health", enemy.MaxHealth),
		zap.Int("enemy_damage", enemy.Damage),
	)
}

// fight plays one combat round and leaves the fight if it ended.
func (g *Game) fight(ctx context.Context, action combat.Action) error {
	if g.combat == nil || g.combat.Enemy == nil {
		panic(ErrMissingEncounter)
	}
	cs := g.combat

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.round")
	defer span.End()

	result, err := g.resolver.Resolve(action, g.player, cs.Enemy)
	span.SetAttributes(
		attribute.String("action", action.String()),
		attribute.Int("turn", cs.TurnCount),
	)
	if err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return err
	}

	cs.TurnCount++
	cs.Outcome = result.Outcome
	g.lastRound = &result

	span.SetAttributes(
		attribute.Int("damage_dealt", result.DamageDealt),
		attribute.Int("damage_taken", result.DamageTaken),
		attribute.Int("healed", result.Healed),
		attribute.String("outcome", result.Outcome.String()),
	)

	if !result.Outcome.Ended() {
		return nil
	}
	return g.transition(ctx, g.afterCombat(result.Outcome))
}

// afterCombat picks the phase a finished fight leads to. With cheats on, a
// defeat revives the player and sends them back to exploring.
func (g *Game) afterCombat(outcome combat.Outcome) Phase {
	if outcome != combat.OutcomeDefeat {
		return PhaseExploring
	}
	if g.config.CheatsEnabled {
		g.player.Restore()
		g.logger.Info("defeat ignored, cheats enabled", zap.String("run_id", g.runID.String()))
		return PhaseExploring
	}
	return PhaseGameOver
}

// endCombat records the result and discards the enemy.
func (g *Game) endCombat(ctx context.Context) {
	cs := g.combat
	if cs == nil {
		return
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("run_id", g.runID.String()),
		attribute.String("outcome", cs.Outcome.String()),
		attribute.Int("turns_taken", cs.TurnCount),
		attribute.Int("player_health_remaining", g.player.Health),
	)
	span.End()

	g.logger.Info("encounter ended",
		zap.String("run_id", g.runID.String()),
		zap.String("enemy", cs.Enemy.ID()),
		zap.String("outcome", cs.Outcome.String()),
		zap.Int("turns", cs.TurnCount),
		zap.Int("coins", g.player.Coins),
		zap.Int("score", g.player.Score),
	)

	g.combat = nil
}
