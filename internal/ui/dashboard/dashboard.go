// Package dashboard composes the main window: hero, timer card, plan
// controls, session feed and usage summary.
package dashboard

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"reelfocus/internal/core/timekeeper"
)

// Dashboard is the main Reel Focus window.
type Dashboard struct {
	window   fyne.Window
	percent  *canvas.Text
	progress *widget.ProgressBar
	Timer    *TimerCard
	Feed     *Feed
	Summary  *Summary
}

// New builds the dashboard. settings is placed beside the timer card.
func New(app fyne.App, title string, settings fyne.CanvasObject, onStart, onCancel func()) *Dashboard {
	dashboard := &Dashboard{
		percent:  canvas.NewText("0%", theme.Color(theme.ColorNamePrimary)),
		progress: widget.NewProgressBar(),
		Timer:    NewTimerCard(onStart, onCancel),
		Feed:     NewFeed(),
		Summary:  NewSummary(),
	}
	dashboard.percent.TextSize = 40
	dashboard.percent.TextStyle = fyne.TextStyle{Bold: true}
	dashboard.progress.TextFormatter = func() string { return "" }

	hero := container.NewVBox(
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(dashboard.percent, container.NewCenter(widget.NewLabel("of daily bursts logged")), layout.NewSpacer()),
		dashboard.progress,
	)

	top := container.NewGridWithColumns(2, dashboard.Timer.Content(), settings)
	bottom := container.NewBorder(nil, dashboard.Summary.Content(), nil, nil, dashboard.Feed.Content())
	content := container.NewBorder(container.NewVBox(hero, top), nil, nil, nil, bottom)

	if app != nil {
		dashboard.window = app.NewWindow(title)
		dashboard.window.SetContent(container.NewPadded(content))
		dashboard.window.Resize(fyne.NewSize(880, 760))
		dashboard.window.SetCloseIntercept(func() {
			dashboard.window.Hide()
		})
	}
	return dashboard
}

// Show displays and focuses the window.
func (dashboard *Dashboard) Show() {
	if dashboard.window == nil {
		return
	}
	dashboard.window.Show()
	dashboard.window.RequestFocus()
}

// Window returns the underlying window.
func (dashboard *Dashboard) Window() fyne.Window {
	return dashboard.window
}

// Render applies state to every card. Must run on the UI goroutine.
func (dashboard *Dashboard) Render(state timekeeper.State) {
	progress := state.Progress()
	dashboard.percent.Text = fmt.Sprintf("%d%%", progress)
	dashboard.percent.Refresh()
	dashboard.progress.SetValue(float64(progress) / 100)

	dashboard.Timer.Render(state.TimerView())
	dashboard.Feed.Render(state.Slots())
	dashboard.Summary.Render(state.SummaryView())
}
