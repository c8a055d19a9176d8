package timekeeper

import (
	"testing"
	"time"

	"reelfocus/internal/core/model"

	"github.com/stretchr/testify/require"
)

func statuses(slots []Slot) []SlotStatus {
	out := make([]SlotStatus, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.Status)
	}
	return out
}

func TestSlotsIdle(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 4, SessionLength: 60, CooldownMinutes: 0}, 1)

	slots := state.Slots()

	require.Equal(t, []SlotStatus{SlotCompleted, SlotReady, SlotLocked, SlotLocked}, statuses(slots))
	require.Equal(t, "Burst logged", slots[0].Title)
	require.Equal(t, "logged 9:30 AM", slots[0].Pill())
	require.Equal(t, "Next burst ready", slots[1].Title)
	require.Equal(t, "ready • 01:00", slots[1].Pill())
	require.Equal(t, "Upcoming burst", slots[2].Title)
	require.Equal(t, "locked", slots[2].Pill())
}

func TestSlotsActive(t *testing.T) {
	state, _ := idleState(model.Settings{TotalSessions: 2, SessionLength: 60, CooldownMinutes: 0}, 0).Start()

	slots := state.Slots()

	require.Equal(t, []SlotStatus{SlotActive, SlotLocked}, statuses(slots))
	require.Equal(t, "burst in progress", slots[0].Pill())
}

func TestSlotsCooldown(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 3, SessionLength: 60, CooldownMinutes: 10}, 0).Complete(morning)

	slots := state.Slots()

	require.Equal(t, []SlotStatus{SlotCompleted, SlotLocked, SlotLocked}, statuses(slots))
	require.Equal(t, "Locked for cooldown", slots[1].Title)
	require.Equal(t, "Upcoming burst", slots[2].Title)
}

func TestSlotsAllComplete(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 2, SessionLength: 60, CooldownMinutes: 0}, 2)

	require.Equal(t, []SlotStatus{SlotCompleted, SlotCompleted}, statuses(state.Slots()))
	require.Equal(t, 100, state.Progress())
}

func TestTimerViewIdle(t *testing.T) {
	state := idleState(model.DefaultSettings(), 0)

	view := state.TimerView()

	require.Equal(t, TimerView{
		Clock:      "01:00",
		StartLabel: "Start 60-second burst",
		Footnote:   "12 bursts left today.",
	}, view)
}

func TestTimerViewCooldown(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 2, SessionLength: 30, CooldownMinutes: 10}, 0).Complete(morning)
	state = state.RefreshCooldown(morning.Add(time.Second))

	view := state.TimerView()

	require.True(t, view.Locked)
	require.Equal(t, "1 burst left today.", view.Footnote)
	require.Equal(t, "Next burst unlocks in 9m 59s.", view.CooldownLabel)
}

func TestTimerViewAllComplete(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 1, SessionLength: 30, CooldownMinutes: 10}, 1)

	view := state.TimerView()

	require.True(t, view.Locked)
	require.Equal(t, "All bursts for today are complete.", view.Footnote)
	require.Empty(t, view.CooldownLabel)
}

func TestSummaryView(t *testing.T) {
	state := idleState(model.Settings{TotalSessions: 10, SessionLength: 75, CooldownMinutes: 0}, 4)

	view := state.SummaryView()
	require.Equal(t, "5 minutes", view.Consumed)
	require.Equal(t, "7 minutes", view.Remaining)
	require.Equal(t, "40%", view.Completion)
	require.Equal(t, "Ready now", view.NextUnlock)

	until := time.Date(2026, 10, 19, 15, 4, 0, 0, time.UTC)
	state.NextAvailableAt = &until
	require.Equal(t, "@ 3:04 PM", state.SummaryView().NextUnlock)
}
