package timekeeper

import (
	"testing"
	"time"

	"reelfocus/internal/core/model"

	"github.com/stretchr/testify/require"
)

var morning = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func idleState(settings model.Settings, completed int) State {
	plan := model.NewPlan(settings)
	for i := 0; i < completed; i++ {
		plan.Completed = append(plan.Completed, morning.Add(time.Duration(i)*time.Hour))
	}
	return NewState(plan)
}

func TestStartSetsFullLength(t *testing.T) {
	state := idleState(model.DefaultSettings(), 0)

	next, ok := state.Start()

	require.True(t, ok)
	require.Equal(t, model.Timer{Running: true, SecondsRemaining: 60}, next.Timer)
	require.False(t, state.Timer.Running, "receiver must not change")
}

func TestStartRejected(t *testing.T) {
	cooldownUntil := morning.Add(5 * time.Minute)

	tests := []struct {
		name  string
		state State
	}{
		{name: "no sessions remaining", state: idleState(model.Settings{TotalSessions: 2, SessionLength: 30, CooldownMinutes: 3}, 2)},
		{name: "cooldown remaining", state: func() State {
			state := idleState(model.DefaultSettings(), 1)
			state.NextAvailableAt = &cooldownUntil
			return state.RefreshCooldown(morning)
		}()},
		{name: "already running", state: func() State {
			state, _ := idleState(model.DefaultSettings(), 0).Start()
			return state.Tick()
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.state.Start()

			require.False(t, ok)
			require.Equal(t, tt.state.Timer, next.Timer)
		})
	}
}

func TestTickCountsDownAndStops(t *testing.T) {
	state, _ := idleState(model.Settings{TotalSessions: 3, SessionLength: 3, CooldownMinutes: 0}, 0).Start()

	state = state.Tick()
	require.Equal(t, model.Timer{Running: true, SecondsRemaining: 2}, state.Timer)
	require.False(t, state.Finished())

	state = state.Tick()
	require.Equal(t, model.Timer{Running: true, SecondsRemaining: 1}, state.Timer)

	state = state.Tick()
	require.Equal(t, model.Timer{Running: false, SecondsRemaining: 0}, state.Timer)
	require.True(t, state.Finished())

	require.Equal(t, state, state.Tick(), "idle tick is a no-op")
}

func TestCompleteArmsCooldown(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 3, SessionLength: 45, CooldownMinutes: 10}, 0)

	next := state.Complete(morning)

	require.Len(t, next.Completed, 1)
	require.True(t, next.Completed[0].Equal(morning))
	require.NotNil(t, next.NextAvailableAt)
	require.True(t, next.NextAvailableAt.Equal(morning.Add(10*time.Minute)))
	require.Equal(t, 600, next.CooldownRemaining)
	require.Equal(t, model.IdleTimer(45), next.Timer)
	require.Empty(t, state.Completed, "receiver must not change")
}

func TestCompleteFinalSessionClearsCooldown(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 3, SessionLength: 45, CooldownMinutes: 60}, 2)

	next := state.Complete(morning)

	require.Len(t, next.Completed, 3)
	require.Nil(t, next.NextAvailableAt)
	require.Zero(t, next.CooldownRemaining)
}

func TestCompleteWithoutCooldown(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 3, SessionLength: 45, CooldownMinutes: 0}, 0)

	next := state.Complete(morning)

	require.Len(t, next.Completed, 1)
	require.Nil(t, next.NextAvailableAt)
	require.True(t, next.CanStart())
}

func TestCompleteAtLimitDoesNotAppend(t *testing.T) {
	until := morning.Add(time.Minute)
	state := idleState(model.Settings{TotalSessions: 2, SessionLength: 45, CooldownMinutes: 5}, 2)
	state.NextAvailableAt = &until

	next := state.Complete(morning)

	require.Len(t, next.Completed, 2)
	require.Nil(t, next.NextAvailableAt)
}

func TestCompleteDoesNotAliasHistory(t *testing.T) {
	base := idleState(model.DefaultSettings(), 0)
	base.Completed = make([]time.Time, 1, 10)
	base.Completed[0] = morning

	first := base.Complete(morning.Add(time.Minute))
	second := base.Complete(morning.Add(2 * time.Minute))

	require.True(t, first.Completed[1].Equal(morning.Add(time.Minute)))
	require.True(t, second.Completed[1].Equal(morning.Add(2*time.Minute)))
}

func TestCancelDoesNotLog(t *testing.T) {
	state, _ := idleState(model.DefaultSettings(), 1).Start()
	state = state.Tick().Tick()

	next := state.Cancel()

	require.Equal(t, model.IdleTimer(60), next.Timer)
	require.Len(t, next.Completed, 1)
	require.Nil(t, next.NextAvailableAt)
}

func TestRefreshCooldown(t *testing.T) {
	until := morning.Add(90 * time.Second)
	state := idleState(model.DefaultSettings(), 1)
	state.NextAvailableAt = &until

	state = state.RefreshCooldown(morning.Add(500 * time.Millisecond))
	require.Equal(t, 90, state.CooldownRemaining, "partial seconds round up")

	state = state.RefreshCooldown(morning.Add(89 * time.Second))
	require.Equal(t, 1, state.CooldownRemaining)

	state = state.RefreshCooldown(until)
	require.Nil(t, state.NextAvailableAt)
	require.Zero(t, state.CooldownRemaining)
	require.True(t, state.CanStart())
}

func TestChangeSessionLengthWhileIdle(t *testing.T) {
	state := idleState(model.DefaultSettings(), 0)

	next, ok := state.ChangeSetting(model.FieldSessionLength, 90)

	require.True(t, ok)
	require.Equal(t, 90, next.Settings.SessionLength)
	require.Equal(t, model.IdleTimer(90), next.Timer)
	require.Equal(t, "01:30", next.TimerView().Clock)
}

func TestChangeSessionLengthWhileRunning(t *testing.T) {
	state, _ := idleState(model.DefaultSettings(), 0).Start()
	state = state.Tick()

	next, ok := state.ChangeSetting(model.FieldSessionLength, 120)

	require.True(t, ok)
	require.Equal(t, 120, next.Settings.SessionLength)
	require.Equal(t, model.Timer{Running: true, SecondsRemaining: 59}, next.Timer)
	require.Equal(t, "00:59", next.TimerView().Clock)
}

func TestChangeSettingClamps(t *testing.T) {
	state := idleState(model.DefaultSettings(), 4)

	next, ok := state.ChangeSetting(model.FieldCooldownMinutes, 1)
	require.True(t, ok)
	require.Equal(t, 3, next.Settings.CooldownMinutes)

	next, ok = next.ChangeSetting(model.FieldTotalSessions, 2)
	require.True(t, ok)
	require.Equal(t, 4, next.Settings.TotalSessions, "cannot drop below logged bursts")

	_, ok = next.ChangeSetting("volume", 3)
	require.False(t, ok)
}

func TestSessionsRemaining(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 3, SessionLength: 30, CooldownMinutes: 3}, 1)
	require.Equal(t, 2, state.SessionsRemaining())

	running, _ := state.Start()
	require.Equal(t, 1, running.SessionsRemaining())

	state.Settings.TotalSessions = 0
	require.Zero(t, state.SessionsRemaining())
}

func TestNewStateCoversCompletedBursts(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 2, SessionLength: 60, CooldownMinutes: 10}, 5)

	require.Equal(t, 5, state.Settings.TotalSessions)
	require.Len(t, state.Slots(), 5)
	require.Equal(t, 100, state.Progress())
	require.Equal(t, "100%", state.SummaryView().Completion)
	require.Zero(t, state.SessionsRemaining())
}
