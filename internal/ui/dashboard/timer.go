package dashboard

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"reelfocus/internal/core/timekeeper"
)

// TimerCard shows the current burst countdown and its controls.
type TimerCard struct {
	clock    *canvas.Text
	start    *widget.Button
	cancel   *widget.Button
	footnote *widget.Label
	cooldown *widget.Label
	content  fyne.CanvasObject
}

// NewTimerCard creates the timer card; onStart and onCancel may be nil.
func NewTimerCard(onStart, onCancel func()) *TimerCard {
	card := &TimerCard{
		clock:    canvas.NewText("00:00", theme.Color(theme.ColorNameForeground)),
		start:    widget.NewButtonWithIcon("Start burst", theme.MediaPlayIcon(), onStart),
		cancel:   widget.NewButtonWithIcon("Cancel burst", theme.CancelIcon(), onCancel),
		footnote: widget.NewLabel(""),
		cooldown: widget.NewLabel(""),
	}
	card.clock.TextSize = 56
	card.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	card.clock.Alignment = fyne.TextAlignCenter
	card.start.Importance = widget.HighImportance
	card.footnote.Alignment = fyne.TextAlignCenter
	card.cooldown.Alignment = fyne.TextAlignCenter
	card.cooldown.Importance = widget.WarningImportance

	card.content = widget.NewCard("Current burst", "", container.NewVBox(
		card.clock,
		container.NewCenter(container.NewStack(card.start, card.cancel)),
		card.footnote,
		card.cooldown,
	))
	return card
}

// Content returns the card's canvas object.
func (card *TimerCard) Content() fyne.CanvasObject {
	return card.content
}

// Render applies view. Must run on the UI goroutine.
func (card *TimerCard) Render(view timekeeper.TimerView) {
	card.clock.Text = view.Clock
	card.clock.Refresh()

	card.start.SetText(view.StartLabel)
	if view.Running {
		card.start.Hide()
		card.cancel.Show()
	} else {
		card.cancel.Hide()
		card.start.Show()
	}
	if view.Locked {
		card.start.Disable()
	} else {
		card.start.Enable()
	}

	card.footnote.SetText(view.Footnote)
	card.cooldown.SetText(view.CooldownLabel)
	if view.CooldownLabel == "" {
		card.cooldown.Hide()
	} else {
		card.cooldown.Show()
	}
}

// ResetClockColor restores the theme foreground on the countdown digits.
func (card *TimerCard) ResetClockColor() {
	card.SetClockColor(theme.Color(theme.ColorNameForeground))
}

// SetClockColor tints the countdown digits.
func (card *TimerCard) SetClockColor(c color.Color) {
	card.clock.Color = c
	card.clock.Refresh()
}
