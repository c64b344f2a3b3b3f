package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/textquest/internal/telemetry"
	"github.com/samdwyer/textquest/internal/world"
)

// explore rolls one exploration event, applies its effect and queues the
// phase it leads to, if any.
func (g *Game) explore(ctx context.Context) {
	tracer := telemetry.Tracer("explore")
	_, span := tracer.Start(ctx, "explore.event")
	defer span.End()

	g.sinceEvent = 0
	outcome := g.dispatcher.Roll(g.rng, g.config.Speed())
	effect := world.Apply(outcome, g.player)

	g.lastEvent = outcome.Description()
	g.lastEffect = effect

	span.SetAttributes(
		attribute.String("run_id", g.runID.String()),
		attribute.String("event", outcome.Event.ID),
		attribute.String("target", outcome.Target.String()),
		attribute.Int("health_delta", effect.Health),
		attribute.Int("coins_delta", effect.Coins),
		attribute.Int("damage_delta", effect.Damage),
	)
	g.logger.Info("exploration event",
		zap.String("run_id", g.runID.String()),
		zap.String("event", outcome.Event.ID),
		zap.String("target", outcome.Target.String()),
		zap.Int("health_delta", effect.Health),
		zap.Int("max_health_delta", effect.MaxHealth),
		zap.Int("damage_delta", effect.Damage),
		zap.Int("coins_delta", effect.Coins),
	)

	var target Phase
	switch outcome.Target {
	case world.TargetFighting:
		target = PhaseFighting
	case world.TargetShop:
		target = PhaseShop
	default:
		return
	}
	if err := g.Request(target); err != nil {
		g.logger.Warn("exploration event not followed",
			zap.String("run_id", g.runID.String()),
			zap.String("event", outcome.Event.ID),
			zap.Error(err),
		)
	}
}
