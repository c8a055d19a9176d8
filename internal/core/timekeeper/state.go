package timekeeper

import (
	"time"

	"reelfocus/internal/core/model"
)

// State is an immutable snapshot of the day's bursts and timers.
// Transition methods return a new State and never modify the receiver.
type State struct {
	Settings          model.Settings
	Completed         []time.Time
	NextAvailableAt   *time.Time
	Timer             model.Timer
	CooldownRemaining int
}

// NewState builds an idle State from a persisted plan.
func NewState(plan model.Plan) State {
	plan = plan.Normalized()
	return State{
		Settings:        plan.Settings,
		Completed:       plan.Completed,
		NextAvailableAt: plan.NextAvailableAt,
		Timer:           model.IdleTimer(plan.Settings.SessionLength),
	}
}

// Plan returns the persisted slice of the state.
func (state State) Plan() model.Plan {
	return model.Plan{
		Settings:        state.Settings,
		Completed:       state.Completed,
		NextAvailableAt: state.NextAvailableAt,
	}
}

// CooldownPending reports whether the next burst is still locked.
func (state State) CooldownPending() bool {
	return state.NextAvailableAt != nil || state.CooldownRemaining > 0
}

// CanStart reports whether a new burst may begin.
func (state State) CanStart() bool {
	return !state.Timer.Running &&
		!state.CooldownPending() &&
		len(state.Completed) < state.Settings.TotalSessions
}

// Start begins a burst at the full session length.
// The state is returned unchanged with false when starting is not allowed.
func (state State) Start() (State, bool) {
	if !state.CanStart() {
		return state, false
	}
	state.Timer = model.Timer{Running: true, SecondsRemaining: state.Settings.SessionLength}
	return state, true
}

// Tick advances the running countdown by one second.
func (state State) Tick() State {
	if !state.Timer.Running {
		return state
	}
	if state.Timer.SecondsRemaining <= 1 {
		state.Timer = model.Timer{Running: false, SecondsRemaining: 0}
		return state
	}
	state.Timer.SecondsRemaining--
	return state
}

// Finished reports whether the countdown has just run out.
func (state State) Finished() bool {
	return !state.Timer.Running && state.Timer.SecondsRemaining == 0
}

// Complete logs a finished burst at now and arms the cooldown when more
// bursts remain. The timer returns to idle either way.
func (state State) Complete(now time.Time) State {
	total := state.Settings.TotalSessions
	if len(state.Completed) >= total {
		state.NextAvailableAt = nil
		state.CooldownRemaining = 0
		state.Timer = model.IdleTimer(state.Settings.SessionLength)
		return state
	}

	completed := make([]time.Time, len(state.Completed), len(state.Completed)+1)
	copy(completed, state.Completed)
	state.Completed = append(completed, now)

	if state.Settings.CooldownMinutes > 0 && len(state.Completed) < total {
		next := now.Add(time.Duration(state.Settings.CooldownMinutes) * time.Minute)
		state.NextAvailableAt = &next
		state.CooldownRemaining = state.Settings.CooldownMinutes * 60
	} else {
		state.NextAvailableAt = nil
		state.CooldownRemaining = 0
	}
	state.Timer = model.IdleTimer(state.Settings.SessionLength)
	return state
}

// Cancel abandons the running burst without logging it.
func (state State) Cancel() State {
	state.Timer = model.IdleTimer(state.Settings.SessionLength)
	return state
}

// RefreshCooldown recomputes the seconds left until the next unlock and
// clears the cooldown once it has expired.
func (state State) RefreshCooldown(now time.Time) State {
	if state.NextAvailableAt == nil {
		state.CooldownRemaining = 0
		return state
	}
	left := state.NextAvailableAt.Sub(now)
	if left <= 0 {
		state.NextAvailableAt = nil
		state.CooldownRemaining = 0
		return state
	}
	state.CooldownRemaining = int((left + time.Second - 1) / time.Second)
	return state
}

// ChangeSetting updates one settings field, clamped to the panel bounds.
// While idle, a new session length also resets the countdown display.
func (state State) ChangeSetting(key model.FieldKey, value int) (State, bool) {
	field, ok := model.LookupField(key)
	if !ok {
		return state, false
	}
	value = field.Clamp(value)
	if key == model.FieldTotalSessions && value < len(state.Completed) {
		value = len(state.Completed)
	}

	state.Settings = state.Settings.With(key, value)
	if !state.Timer.Running && key == model.FieldSessionLength {
		state.Timer = model.IdleTimer(value)
	}
	return state, true
}

// SessionsRemaining counts bursts still available today, excluding one in progress.
func (state State) SessionsRemaining() int {
	remaining := state.Settings.TotalSessions - len(state.Completed)
	if state.Timer.Running {
		remaining--
	}
	return max(remaining, 0)
}
