package dashboard

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"

	"reelfocus/internal/core/model"
	"reelfocus/internal/core/timekeeper"
	"reelfocus/internal/ui/animation"
)

func testState() timekeeper.State {
	return timekeeper.NewState(model.NewPlan(model.Settings{TotalSessions: 4, SessionLength: 60, CooldownMinutes: 10}))
}

func TestRenderIdle(t *testing.T) {
	test.NewTempApp(t)
	dashboard := New(nil, "Reel Focus", widget.NewLabel("settings"), nil, nil)

	dashboard.Render(testState())

	require.Equal(t, "0%", dashboard.percent.Text)
	require.Equal(t, "01:00", dashboard.Timer.clock.Text)
	require.Equal(t, "Start 60-second burst", dashboard.Timer.start.Text)
	require.True(t, dashboard.Timer.start.Visible())
	require.False(t, dashboard.Timer.start.Disabled())
	require.False(t, dashboard.Timer.cancel.Visible())
	require.False(t, dashboard.Timer.cooldown.Visible())
	require.Equal(t, "4 bursts left today.", dashboard.Timer.footnote.Text)

	require.Len(t, dashboard.Feed.cards, 4)
	require.Equal(t, "#1", dashboard.Feed.cards[0].index.Text)
	require.Equal(t, "ready • 01:00", dashboard.Feed.cards[0].pill.Text)
	require.Equal(t, "locked", dashboard.Feed.cards[3].pill.Text)

	require.Equal(t, "0 seconds", dashboard.Summary.consumed.Text)
	require.Equal(t, "4 minutes", dashboard.Summary.remaining.Text)
	require.Equal(t, "Ready now", dashboard.Summary.nextUnlock.Text)
}

func TestRenderRunningAndCooldown(t *testing.T) {
	test.NewTempApp(t)
	dashboard := New(nil, "Reel Focus", widget.NewLabel("settings"), nil, nil)

	running, ok := testState().Start()
	require.True(t, ok)
	dashboard.Render(running.Tick())

	require.Equal(t, "00:59", dashboard.Timer.clock.Text)
	require.False(t, dashboard.Timer.start.Visible())
	require.True(t, dashboard.Timer.cancel.Visible())
	require.Equal(t, "burst in progress", dashboard.Feed.cards[0].pill.Text)
	require.Equal(t, "3 bursts left today.", dashboard.Timer.footnote.Text)

	now := time.Date(2026, 3, 9, 15, 4, 0, 0, time.Local)
	cooling := running.Complete(now).RefreshCooldown(now)
	dashboard.Render(cooling)

	require.Equal(t, "25%", dashboard.percent.Text)
	require.True(t, dashboard.Timer.start.Disabled())
	require.True(t, dashboard.Timer.cooldown.Visible())
	require.Equal(t, "Next burst unlocks in 10m 0s.", dashboard.Timer.cooldown.Text)
	require.Equal(t, "logged 3:04 PM", dashboard.Feed.cards[0].pill.Text)
	require.Equal(t, "locked", dashboard.Feed.cards[1].pill.Text)
	require.Equal(t, "@ 3:14 PM", dashboard.Summary.nextUnlock.Text)
	require.Equal(t, "1 minute", dashboard.Summary.consumed.Text)
}

func TestFeedShrinks(t *testing.T) {
	test.NewTempApp(t)
	feed := NewFeed()

	state := testState()
	feed.Render(state.Slots())
	require.Len(t, feed.list.Objects, 4)

	state, _ = state.ChangeSetting(model.FieldTotalSessions, 2)
	feed.Render(state.Slots())
	require.Len(t, feed.cards, 2)
	require.Len(t, feed.list.Objects, 2)
}

func TestClockColorResetsAfterPulse(t *testing.T) {
	test.NewTempApp(t)
	card := NewTimerCard(nil, nil)
	foreground := theme.Color(theme.ColorNameForeground)
	running := animation.DefaultConfig().Colors[0]

	card.SetClockColor(running)
	require.Equal(t, running, card.clock.Color)

	card.ResetClockColor()
	require.Equal(t, foreground, card.clock.Color)
	require.NotEqual(t, running, card.clock.Color)
}
