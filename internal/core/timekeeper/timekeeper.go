package timekeeper

import (
	"context"
	"sync"
	"time"

	"reelfocus/internal/core/model"

	"github.com/rs/zerolog"
)

// Store loads and saves the plan of the current day.
type Store interface {
	LoadPlan(ctx context.Context, now time.Time) (model.Plan, error)
	SavePlan(ctx context.Context, now time.Time, plan model.Plan) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	// TickInterval is one second in the app; tests shorten it.
	TickInterval time.Duration
	Clock        Clock
	Defaults     model.Settings
	Logger       zerolog.Logger
}

// TimeKeeper owns the day's State and drives its countdown and cooldown timers.
type TimeKeeper struct {
	mu        sync.Mutex
	options   Config
	clock     Clock
	store     Store
	logger    zerolog.Logger
	state     State
	saved     model.Plan
	loaded    bool
	stopped   bool
	countdown context.CancelFunc
	cooldown  context.CancelFunc
	events    []chan Event
}

// New creates a TimeKeeper with the provided store and options.
func New(store Store, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = RealClock{}
	}
	if options.Defaults == (model.Settings{}) {
		options.Defaults = model.DefaultSettings()
	}

	return &TimeKeeper{
		options: options,
		clock:   options.Clock,
		store:   store,
		logger:  options.Logger.With().Str("component", "timekeeper").Logger(),
		state:   NewState(model.NewPlan(options.Defaults)),
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Load hydrates today's plan from the store. A read failure is logged and
// the defaults are kept, so the keeper is usable either way.
func (keeper *TimeKeeper) Load(ctx context.Context) State {
	now := keeper.clock.Now()
	plan, err := keeper.store.LoadPlan(ctx, now)

	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if err != nil {
		keeper.logger.Warn().Err(err).Msg("Failed to load saved plan")
		plan = model.NewPlan(keeper.options.Defaults)
		keeper.emitLocked(Event{Type: EventStorageError, Snapshot: keeper.state, Message: err.Error(), At: now})
	} else {
		keeper.saved = plan
	}

	keeper.state = NewState(plan).RefreshCooldown(now)
	keeper.loaded = true
	keeper.commitLocked(ctx, now)
	keeper.emitLocked(Event{Type: EventStateChange, Snapshot: keeper.state, At: now})
	return keeper.state
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// StartBurst begins a burst when one is allowed.
func (keeper *TimeKeeper) StartBurst() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	next, ok := keeper.state.Start()
	if !ok {
		keeper.logger.Debug().
			Bool("running", keeper.state.Timer.Running).
			Int("cooldown_remaining", keeper.state.CooldownRemaining).
			Int("completed", len(keeper.state.Completed)).
			Msg("Burst start rejected")
		return false
	}
	now := keeper.clock.Now()
	keeper.state = next
	keeper.commitLocked(context.Background(), now)
	keeper.logger.Info().Int("length_seconds", next.Settings.SessionLength).Msg("Burst started")
	keeper.emitLocked(Event{Type: EventStateChange, Snapshot: keeper.state, At: now})
	return true
}

// CancelBurst abandons the running burst without logging it.
func (keeper *TimeKeeper) CancelBurst() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if !keeper.state.Timer.Running {
		return
	}
	now := keeper.clock.Now()
	keeper.state = keeper.state.Cancel()
	keeper.commitLocked(context.Background(), now)
	keeper.logger.Info().Msg("Burst cancelled")
	keeper.emitLocked(Event{Type: EventStateChange, Snapshot: keeper.state, At: now})
}

// UpdateSetting changes one settings field.
func (keeper *TimeKeeper) UpdateSetting(key model.FieldKey, value int) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	next, ok := keeper.state.ChangeSetting(key, value)
	if !ok {
		keeper.logger.Warn().Str("field", string(key)).Msg("Unknown setting")
		return
	}
	if next.Settings == keeper.state.Settings && next.Timer == keeper.state.Timer {
		return
	}
	now := keeper.clock.Now()
	keeper.state = next
	keeper.commitLocked(context.Background(), now)
	keeper.emitLocked(Event{Type: EventStateChange, Snapshot: keeper.state, At: now})
}

// Stop cancels the timers and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.stopped = true
	keeper.stopTask(&keeper.countdown)
	keeper.stopTask(&keeper.cooldown)
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) countdownTick(ctx context.Context, now time.Time) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if ctx.Err() != nil || !keeper.state.Timer.Running {
		return false
	}
	keeper.state = keeper.state.Tick()
	if !keeper.state.Finished() {
		keeper.emitLocked(Event{Type: EventProgress, Snapshot: keeper.state, At: now})
		return true
	}

	keeper.state = keeper.state.Complete(now)
	keeper.commitLocked(ctx, now)
	keeper.logger.Info().
		Int("completed", len(keeper.state.Completed)).
		Int("total", keeper.state.Settings.TotalSessions).
		Int("cooldown_seconds", keeper.state.CooldownRemaining).
		Msg("Burst completed")
	keeper.emitLocked(Event{Type: EventCompleted, Snapshot: keeper.state, At: now})
	return false
}

func (keeper *TimeKeeper) cooldownTick(ctx context.Context, now time.Time) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if ctx.Err() != nil || keeper.state.NextAvailableAt == nil {
		return false
	}
	keeper.state = keeper.state.RefreshCooldown(now)
	if keeper.state.NextAvailableAt != nil {
		keeper.emitLocked(Event{Type: EventProgress, Snapshot: keeper.state, At: now})
		return true
	}

	keeper.commitLocked(ctx, now)
	keeper.logger.Info().Msg("Cooldown finished")
	keeper.emitLocked(Event{Type: EventUnlocked, Snapshot: keeper.state, At: now})
	return false
}

// commitLocked persists a changed plan and aligns the timer tasks with the state.
func (keeper *TimeKeeper) commitLocked(ctx context.Context, now time.Time) {
	keeper.persistLocked(ctx, now)
	keeper.syncTasksLocked()
}

func (keeper *TimeKeeper) persistLocked(ctx context.Context, now time.Time) {
	if !keeper.loaded {
		return
	}
	plan := keeper.state.Plan()
	if plan.Equal(keeper.saved) {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	if err := keeper.store.SavePlan(ctx, now, plan); err != nil {
		keeper.logger.Warn().Err(err).Msg("Failed to persist plan")
		keeper.emitLocked(Event{Type: EventStorageError, Snapshot: keeper.state, Message: err.Error(), At: now})
		return
	}
	keeper.saved = plan
}

func (keeper *TimeKeeper) syncTasksLocked() {
	if keeper.stopped {
		return
	}
	switch {
	case keeper.state.Timer.Running && keeper.countdown == nil:
		keeper.countdown = keeper.startTask(keeper.countdownTick)
	case !keeper.state.Timer.Running && keeper.countdown != nil:
		keeper.stopTask(&keeper.countdown)
	}
	switch {
	case keeper.state.NextAvailableAt != nil && keeper.cooldown == nil:
		keeper.cooldown = keeper.startTask(keeper.cooldownTick)
	case keeper.state.NextAvailableAt == nil && keeper.cooldown != nil:
		keeper.stopTask(&keeper.cooldown)
	}
}

// startTask runs tick once per interval until it returns false or the task is cancelled.
func (keeper *TimeKeeper) startTask(tick func(context.Context, time.Time) bool) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(keeper.options.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !tick(ctx, keeper.clock.Now()) {
					return
				}
			}
		}
	}()
	return cancel
}

func (keeper *TimeKeeper) stopTask(cancel *context.CancelFunc) {
	if *cancel != nil {
		(*cancel)()
		*cancel = nil
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	events := append([]chan Event(nil), keeper.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
