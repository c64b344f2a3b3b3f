package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/textquest/internal/gamedata"
	"github.com/samdwyer/textquest/internal/shop"
	"github.com/samdwyer/textquest/internal/telemetry"
)

// purchase buys item for the player at the current difficulty's price.
func (g *Game) purchase(ctx context.Context, item gamedata.ItemID) error {
	tracer := telemetry.Tracer("shop")
	_, span := tracer.Start(ctx, "shop.purchase")
	defer span.End()
	span.SetAttributes(
		attribute.String("run_id", g.runID.String()),
		attribute.String("item", string(item)),
		attribute.Int("coins_before", g.player.Coins),
	)

	receipt, err := g.ledger.Purchase(g.player, item, g.config.Multiplier())
	if err != nil {
		span.SetAttributes(
			attribute.Bool("failed", true),
			attribute.Bool("insufficient_funds", errors.Is(err, shop.ErrInsufficientFunds)),
		)
		return err
	}

	g.lastPurchase = &receipt
	span.SetAttributes(attribute.Int("price", receipt.Price))
	g.logger.Info("item purchased",
		zap.String("run_id", g.runID.String()),
		zap.String("item", string(receipt.Item)),
		zap.Int("price", receipt.Price),
		zap.Int("coins_left", g.player.Coins),
	)
	return nil
}

// Offers lists the shop items at current prices.
func (g *Game) Offers() []shop.Offer {
	return g.ledger.Offers(g.config.Multiplier())
}
