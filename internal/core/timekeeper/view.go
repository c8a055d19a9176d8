package timekeeper

import (
	"fmt"
	"time"

	"reelfocus/internal/core/usage"
)

// SlotStatus is the display status of one burst in the daily reel.
type SlotStatus string

const (
	SlotCompleted SlotStatus = "completed"
	SlotActive    SlotStatus = "active"
	SlotReady     SlotStatus = "ready"
	SlotLocked    SlotStatus = "locked"
)

// Slot is one card of the session feed.
type Slot struct {
	Index         int
	Status        SlotStatus
	Title         string
	Description   string
	CompletedAt   time.Time
	LengthSeconds int
}

// Pill returns the short status badge shown beside the card.
func (slot Slot) Pill() string {
	switch slot.Status {
	case SlotCompleted:
		if slot.CompletedAt.IsZero() {
			return "logged"
		}
		return "logged " + FormatTimeOfDay(slot.CompletedAt)
	case SlotActive:
		return "burst in progress"
	case SlotReady:
		return "ready • " + usage.FormatClock(slot.LengthSeconds)
	default:
		return "locked"
	}
}

// Slots derives one card per allowed burst.
func (state State) Slots() []Slot {
	total := state.Settings.TotalSessions
	done := len(state.Completed)
	slots := make([]Slot, 0, max(total, 0))

	for index := 0; index < total; index++ {
		slot := Slot{Index: index, LengthSeconds: state.Settings.SessionLength}
		switch {
		case index < done:
			slot.Status = SlotCompleted
			slot.Title = "Burst logged"
			slot.Description = "You stayed inside the limit, nice work."
			slot.CompletedAt = state.Completed[index]
		case index == done && state.Timer.Running:
			slot.Status = SlotActive
			slot.Title = "Burst in progress"
			slot.Description = "Stay focused. The reel wraps the moment the timer hits zero."
		case index == done && state.CooldownRemaining > 0:
			slot.Status = SlotLocked
			slot.Title = "Locked for cooldown"
			slot.Description = "Take a breather before the next scroll allowance."
		case index == done:
			slot.Status = SlotReady
			slot.Title = "Next burst ready"
			slot.Description = "When you feel the urge, tap start and stay mindful."
		default:
			slot.Status = SlotLocked
			slot.Title = "Upcoming burst"
			slot.Description = "Unlocks once the earlier bursts are logged."
		}
		slots = append(slots, slot)
	}
	return slots
}

// Progress is the share of today's bursts already logged, in percent.
func (state State) Progress() int {
	return usage.Percent(len(state.Completed), state.Settings.TotalSessions)
}

// TimerView is the render model of the current-burst card.
type TimerView struct {
	Clock         string
	Running       bool
	Locked        bool
	StartLabel    string
	Footnote      string
	CooldownLabel string
}

// TimerView derives the current-burst card.
func (state State) TimerView() TimerView {
	countdown := state.Settings.SessionLength
	if state.Timer.Running {
		countdown = state.Timer.SecondsRemaining
	}
	remaining := state.SessionsRemaining()

	view := TimerView{
		Clock:      usage.FormatClock(countdown),
		Running:    state.Timer.Running,
		Locked:     state.CooldownRemaining > 0 || remaining <= 0,
		StartLabel: fmt.Sprintf("Start %d-second burst", state.Settings.SessionLength),
	}

	switch {
	case remaining == 1:
		view.Footnote = "1 burst left today."
	case remaining > 1:
		view.Footnote = fmt.Sprintf("%d bursts left today.", remaining)
	default:
		view.Footnote = "All bursts for today are complete."
	}

	if state.CooldownRemaining > 0 {
		view.CooldownLabel = fmt.Sprintf("Next burst unlocks in %s.", usage.FormatCooldown(state.CooldownRemaining))
	}
	return view
}

// SummaryView is the render model of the usage summary card.
type SummaryView struct {
	Stats      usage.Stats
	Consumed   string
	Remaining  string
	Completion string
	NextUnlock string
}

// SummaryView derives the usage summary card.
func (state State) SummaryView() SummaryView {
	stats := usage.CalculateStats(state.Settings.SessionLength, len(state.Completed), state.Settings.TotalSessions)
	view := SummaryView{
		Stats:      stats,
		Consumed:   usage.FormatDuration(stats.ConsumedSeconds),
		Remaining:  usage.FormatDuration(stats.RemainingSeconds),
		Completion: fmt.Sprintf("%d%%", stats.PercentComplete),
		NextUnlock: "Ready now",
	}
	if state.NextAvailableAt != nil {
		view.NextUnlock = "@ " + FormatTimeOfDay(*state.NextAvailableAt)
	}
	return view
}

// FormatTimeOfDay renders a timestamp as "3:04 PM" in its own location.
func FormatTimeOfDay(at time.Time) string {
	return at.Format("3:04 PM")
}
