package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/textquest/internal/combat"
	"github.com/samdwyer/textquest/internal/entity"
	"github.com/samdwyer/textquest/internal/gamedata"
	"github.com/samdwyer/textquest/internal/shop"
	"github.com/samdwyer/textquest/internal/telemetry"
	"github.com/samdwyer/textquest/internal/world"
)

// BaseEventInterval is how long the player idles in Exploring before the
// next event is rolled, at speed 1.
const BaseEventInterval = 2 * time.Second

// Options are the collaborators a Game needs.
type Options struct {
	Enemies    *gamedata.EnemyRegistry
	Dispatcher *world.Dispatcher
	Ledger     *shop.Ledger
	Rand       gamedata.Roller
	Config     Config

	// EventInterval overrides BaseEventInterval when positive.
	EventInterval time.Duration

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// OnExit is called when the player picks Exit Game.
	OnExit func()
}

// Game is the state machine. It owns the player, the config and the current
// encounter; collaborators only see them for the duration of one call.
//
// Game is not safe for concurrent use: the host delivers signals and ticks
// from a single goroutine.
type Game struct {
	phase      Phase
	pending    Phase
	hasPending bool

	config Config
	player *entity.Player
	combat *CombatState

	enemies    *gamedata.EnemyRegistry
	dispatcher *world.Dispatcher
	ledger     *shop.Ledger
	resolver   *combat.Resolver
	rng        gamedata.Roller

	eventInterval time.Duration
	sinceEvent    time.Duration
	lastEvent     string
	lastEffect    world.Effect
	lastRound     *combat.RoundResult
	lastPurchase  *shop.Receipt

	runID  uuid.UUID
	exited bool
	onExit func()
	logger *zap.Logger
}

// New creates a game in the main menu.
func New(opts Options) (*Game, error) {
	if !opts.Enemies.CanSpawn() {
		return nil, errors.New("enemy registry cannot spawn an encounter")
	}
	if opts.Dispatcher == nil {
		return nil, errors.New("event dispatcher is required")
	}
	if opts.Ledger == nil {
		return nil, errors.New("shop ledger is required")
	}
	if opts.Rand == nil {
		return nil, errors.New("random source is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := opts.EventInterval
	if interval <= 0 {
		interval = BaseEventInterval
	}
	cfg := opts.Config
	cfg.Difficulty = cfg.Difficulty.Normalized()

	g := &Game{
		phase:         PhaseMainMenu,
		config:        cfg,
		player:        entity.NewPlayer(),
		enemies:       opts.Enemies,
		dispatcher:    opts.Dispatcher,
		ledger:        opts.Ledger,
		resolver:      combat.NewResolver(),
		rng:           opts.Rand,
		eventInterval: interval,
		onExit:        opts.OnExit,
		logger:        logger,
	}
	g.newRun()
	return g, nil
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Exited reports whether the player chose Exit Game.
func (g *Game) Exited() bool {
	return g.exited
}

// HandleSignal applies one player input. Signals the current phase does not
// accept return ErrInvalidSignal and change nothing.
func (g *Game) HandleSignal(ctx context.Context, sig Signal) error {
	log := g.logger.With(zap.String("phase", g.phase.String()), zap.Stringer("signal", sig))

	var err error
	switch {
	case g.phase == PhaseMainMenu && sig.Kind == SignalStartGame:
		err = g.transition(ctx, PhaseExploring)
	case g.phase == PhaseMainMenu && sig.Kind == SignalChangeDifficulty:
		g.changeDifficulty()
	case g.phase == PhaseMainMenu && sig.Kind == SignalExitGame:
		g.exit()
	case g.phase == PhaseFighting && sig.Kind == SignalAttack:
		err = g.fight(ctx, combat.ActionAttack)
	case g.phase == PhaseFighting && sig.Kind == SignalUsePotion:
		err = g.fight(ctx, combat.ActionUsePotion)
	case g.phase == PhaseFighting && sig.Kind == SignalFlee:
		err = g.fight(ctx, combat.ActionFlee)
	case g.phase == PhaseShop && sig.Kind == SignalPurchase:
		err = g.purchase(ctx, sig.Item)
	case g.phase == PhaseShop && sig.Kind == SignalLeaveShop:
		err = g.transition(ctx, PhaseExploring)
	case g.phase == PhaseGameOver && sig.Kind == SignalAcknowledge:
		err = g.transition(ctx, PhaseMainMenu)
	default:
		log.Debug("signal ignored")
		return fmt.Errorf("%w: %s in %s", ErrInvalidSignal, sig, g.phase)
	}

	if err != nil {
		log.Info("signal rejected", zap.Error(err))
	}
	return err
}

// Tick advances time. It applies a queued transition if there is one;
// otherwise, while exploring, it rolls a new event once the paced interval
// has passed. A tick never performs more than one transition.
func (g *Game) Tick(ctx context.Context, dt time.Duration) {
	if g.hasPending {
		target := g.pending
		g.hasPending = false
		if err := g.transition(ctx, target); err != nil {
			g.logger.Warn("queued transition dropped", zap.Error(err))
		}
		return
	}

	if g.phase != PhaseExploring {
		return
	}
	g.sinceEvent += dt
	if g.sinceEvent >= g.pacedInterval() {
		g.explore(ctx)
	}
}

// Request queues a transition to be applied on the next tick. Requests are
// advisory: only Exploring may be sent to Fighting or Shop this way. Any other
// target, or a second request before the first is applied, is refused with
// ErrInvalidTransition.
func (g *Game) Request(target Phase) error {
	if !CanRequest(g.phase, target) {
		err := fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, g.phase, target)
		g.logger.Warn("transition request refused", zap.Error(err))
		return err
	}
	if g.hasPending {
		err := fmt.Errorf("%w: %s already queued", ErrInvalidTransition, g.pending)
		g.logger.Warn("transition request refused", zap.Error(err))
		return err
	}
	g.pending = target
	g.hasPending = true
	return nil
}

// Pending returns the queued transition, if any.
func (g *Game) Pending() (Phase, bool) {
	return g.pending, g.hasPending
}

// transition performs exit, switch and enter for one phase change.
func (g *Game) transition(ctx context.Context, to Phase) error {
	from := g.phase
	if !CanTransition(from, to) {
		err := fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		g.logger.Warn("transition refused", zap.Error(err))
		return err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.transition")
	span.SetAttributes(
		attribute.String("run_id", g.runID.String()),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)
	defer span.End()

	g.exitPhase(ctx, from)
	g.phase = to
	g.hasPending = false
	g.logger.Info("phase changed",
		zap.String("run_id", g.runID.String()),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)
	g.enterPhase(ctx, from, to)
	return nil
}

func (g *Game) exitPhase(ctx context.Context, from Phase) {
	switch from {
	case PhaseFighting:
		g.endCombat(ctx)
	case PhaseShop:
		g.lastPurchase = nil
	}
}

func (g *Game) enterPhase(ctx context.Context, from, to Phase) {
	switch to {
	case PhaseExploring:
		g.explore(ctx)
	case PhaseFighting:
		g.startCombat(ctx)
	case PhaseMainMenu:
		if from == PhaseGameOver {
			g.player.Reset()
			g.newRun()
		}
	}
}

// changeDifficulty cycles Easy -> Normal -> Hard -> Easy. It is only reachable
// from the main menu, so no encounter can be affected.
func (g *Game) changeDifficulty() {
	g.config.Difficulty = g.config.Difficulty.Next()
	g.logger.Info("difficulty changed",
		zap.Stringer("difficulty", g.config.Difficulty),
		zap.Float64("multiplier", g.config.Multiplier()),
	)
}

func (g *Game) exit() {
	g.exited = true
	g.logger.Info("exit requested", zap.String("run_id", g.runID.String()))
	if g.onExit != nil {
		g.onExit()
	}
}

// newRun starts a fresh run: new ID, no history.
func (g *Game) newRun() {
	g.runID = uuid.New()
	g.lastEvent = ""
	g.lastEffect = world.Effect{}
	g.lastRound = nil
	g.lastPurchase = nil
	g.sinceEvent = 0
}

// pacedInterval is the idle time between exploration rolls, saturating at
// the largest Duration.
func (g *Game) pacedInterval() time.Duration {
	d := float64(g.eventInterval) / g.config.Speed()
	if d >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(d)
}
