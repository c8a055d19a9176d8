package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"reelfocus/internal/config"
	"reelfocus/internal/core/model"
	"reelfocus/internal/core/timekeeper"
	"reelfocus/internal/storage"
)

func init() {
	color.NoColor = true
}

func threeBursts() timekeeper.State {
	return timekeeper.NewState(model.NewPlan(model.Settings{TotalSessions: 3, SessionLength: 60, CooldownMinutes: 10}))
}

func TestPrintStatusIdle(t *testing.T) {
	var out bytes.Buffer
	printStatus(&out, threeBursts())

	text := out.String()
	require.Contains(t, text, "REEL FOCUS  0% of daily bursts logged")
	require.Contains(t, text, "Timer:       01:00")
	require.Contains(t, text, "3 bursts left today.")
	require.Contains(t, text, "#1")
	require.Contains(t, text, "ready • 01:00")
	require.Contains(t, text, "Next unlock: Ready now")
	require.NotContains(t, text, "unlocks in")
}

func TestPrintStatusCooldown(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.Local)
	running, ok := threeBursts().Start()
	require.True(t, ok)
	state := running.Complete(now).RefreshCooldown(now.Add(5 * time.Minute))

	var out bytes.Buffer
	printStatus(&out, state)

	text := out.String()
	require.Contains(t, text, "33% of daily bursts logged")
	require.Contains(t, text, "Next burst unlocks in 5m 0s.")
	require.Contains(t, text, "logged 9:30 AM")
	require.Contains(t, text, "Consumed:    1 minute")
	require.Contains(t, text, "Remaining:   2 minutes")
	require.Contains(t, text, "Next unlock: @ 9:40 AM")
}

func TestPrintHistory(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, nil)
	require.Equal(t, "No days recorded yet.\n", out.String())

	day := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	out.Reset()
	printHistory(&out, []storage.Day{
		{Date: "2026-05-02", Plan: model.NewPlan(model.DefaultSettings())},
		{Date: "2026-05-01", Plan: model.Plan{
			Settings:  model.Settings{TotalSessions: 4, SessionLength: 90, CooldownMinutes: 5},
			Completed: []time.Time{day, day.Add(time.Hour)},
		}},
	})

	text := out.String()
	require.Contains(t, text, "DATE")
	require.Regexp(t, `2026-05-02\s+0/12\s+0 seconds\s+0%`, text)
	require.Regexp(t, `2026-05-01\s+2/4\s+3 minutes\s+50%`, text)
	require.Contains(t, text, "2 day(s)")
}

func TestNotificationFor(t *testing.T) {
	running, _ := threeBursts().Start()
	completed := running.Complete(time.Now())

	notification, ok := notificationFor(timekeeper.Event{Type: timekeeper.EventCompleted, Snapshot: completed})
	require.True(t, ok)
	require.Equal(t, "Burst complete", notification.Title)
	require.Equal(t, "Burst logged. 2 bursts left today. Next one unlocks in 10 minutes.", notification.Content)

	notification, ok = notificationFor(timekeeper.Event{Type: timekeeper.EventUnlocked})
	require.True(t, ok)
	require.Equal(t, "Next burst unlocked", notification.Title)

	_, ok = notificationFor(timekeeper.Event{Type: timekeeper.EventProgress})
	require.False(t, ok)
}

func TestNotificationForLastBurst(t *testing.T) {
	state := timekeeper.NewState(model.NewPlan(model.Settings{TotalSessions: 1, SessionLength: 30, CooldownMinutes: 5}))
	running, _ := state.Start()

	notification, ok := notificationFor(timekeeper.Event{Type: timekeeper.EventCompleted, Snapshot: running.Complete(time.Now())})
	require.True(t, ok)
	require.Equal(t, "All bursts for today are complete.", notification.Content)
}

func TestOpenStorage(t *testing.T) {
	for _, kind := range []string{"file", "bolt"} {
		t.Run(kind, func(t *testing.T) {
			kv, err := openStorage(config.StorageConfig{Type: kind, Path: t.TempDir()})
			require.NoError(t, err)
			require.NoError(t, kv.Put(context.Background(), storage.DayKey(time.Now()), []byte(`{}`)))
			require.NoError(t, kv.Close())
		})
	}

	_, err := openStorage(config.StorageConfig{Type: "redis", Path: t.TempDir()})
	require.Error(t, err)
}
