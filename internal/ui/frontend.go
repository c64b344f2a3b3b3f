package ui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/textquest/internal/combat"
	"github.com/samdwyer/textquest/internal/game"
	"github.com/samdwyer/textquest/internal/shop"
	"github.com/samdwyer/textquest/internal/telemetry"
)

// Frontend drives a game from the terminal.
type Frontend struct {
	screen   *Screen
	renderer *Renderer
	game     *game.Game
	tick     time.Duration
	logger   *zap.Logger

	status  string
	running bool
}

// NewFrontend creates a frontend for g. tick is the interval between game
// ticks.
func NewFrontend(screen *Screen, g *game.Game, tick time.Duration, logger *zap.Logger) *Frontend {
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Frontend{
		screen:   screen,
		renderer: NewRenderer(screen),
		game:     g,
		tick:     tick,
		logger:   logger,
	}
}

// tickEvent marks interrupts posted by the ticker.
type tickEvent struct{}

// Run executes the main loop until the player exits, Ctrl+C is pressed or
// ctx is cancelled. Key presses and ticks are handled on this goroutine only.
func (f *Frontend) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")
	ctx, span := tracer.Start(ctx, "ui.session")
	defer span.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go f.postTicks(ctx)

	f.running = true
	last := time.Now()
	for f.running && !f.game.Exited() {
		f.draw()

		ev := f.screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			f.handleKey(ctx, ev)
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(tickEvent); ok {
				now := time.Now()
				f.game.Tick(ctx, now.Sub(last))
				last = now
			}
		case *tcell.EventResize:
			f.screen.Sync()
		}

		if ctx.Err() != nil {
			break
		}
	}

	span.SetAttributes(
		attribute.Bool("exited", f.game.Exited()),
		attribute.String("final_phase", f.game.Phase().String()),
	)
	f.logger.Info("frontend stopped",
		zap.Bool("exited", f.game.Exited()),
		zap.Stringer("phase", f.game.Phase()),
	)
	return nil
}

func (f *Frontend) postTicks(ctx context.Context) {
	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// Wake the loop so it notices.
			_ = f.screen.PostEvent(tcell.NewEventInterrupt(nil))
			return
		case <-ticker.C:
			// A full queue just drops this tick; the next one carries the time.
			_ = f.screen.PostEvent(tcell.NewEventInterrupt(tickEvent{}))
		}
	}
}

func (f *Frontend) handleKey(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		f.logger.Debug("interrupted from keyboard")
		f.running = false
		return
	}

	sig, ok := KeyToSignal(f.game.Phase(), ev.Key(), ev.Rune(), f.game.Offers())
	if !ok {
		return
	}
	f.status = statusFor(f.game.HandleSignal(ctx, sig))
}

func (f *Frontend) draw() {
	var offers []shop.Offer
	if f.game.Phase() == game.PhaseShop {
		offers = f.game.Offers()
	}
	f.renderer.Render(f.game.Snapshot(), offers, f.status)
}

// statusFor turns a signal error into a message for the player.
func statusFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, shop.ErrInsufficientFunds):
		return "Not enough coins."
	case errors.Is(err, combat.ErrNoPotions):
		return "You have no potions left."
	case errors.Is(err, game.ErrInvalidSignal):
		return "You can't do that now."
	default:
		return err.Error()
	}
}
