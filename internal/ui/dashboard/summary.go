package dashboard

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"reelfocus/internal/core/timekeeper"
)

// Summary shows the day's usage totals.
type Summary struct {
	consumed   *widget.Label
	remaining  *widget.Label
	completion *widget.Label
	nextUnlock *widget.Label
	content    fyne.CanvasObject
}

// NewSummary creates the usage summary card.
func NewSummary() *Summary {
	summary := &Summary{
		consumed:   widget.NewLabel(""),
		remaining:  widget.NewLabel(""),
		completion: widget.NewLabel(""),
		nextUnlock: widget.NewLabel(""),
	}
	summary.content = widget.NewCard("Usage summary", "", container.New(
		layout.NewFormLayout(),
		widget.NewLabel("Consumed"), summary.consumed,
		widget.NewLabel("Remaining"), summary.remaining,
		widget.NewLabel("Completion"), summary.completion,
		widget.NewLabel("Next unlock"), summary.nextUnlock,
	))
	return summary
}

// Content returns the summary's canvas object.
func (summary *Summary) Content() fyne.CanvasObject {
	return summary.content
}

// Render applies view.
func (summary *Summary) Render(view timekeeper.SummaryView) {
	summary.consumed.SetText(view.Consumed)
	summary.remaining.SetText(view.Remaining)
	summary.completion.SetText(view.Completion)
	summary.nextUnlock.SetText(view.NextUnlock)
}
