package dashboard

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"reelfocus/internal/core/timekeeper"
)

type slotCard struct {
	index       *widget.Label
	title       *widget.Label
	description *widget.Label
	pill        *widget.Label
	row         fyne.CanvasObject
}

// Feed lists one card per burst of the day.
type Feed struct {
	list    *fyne.Container
	cards   []*slotCard
	content fyne.CanvasObject
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	feed := &Feed{list: container.NewVBox()}
	feed.content = widget.NewCard("Today's reel", "", container.NewVScroll(feed.list))
	return feed
}

// Content returns the feed's canvas object.
func (feed *Feed) Content() fyne.CanvasObject {
	return feed.content
}

// Render applies slots, reusing existing cards.
func (feed *Feed) Render(slots []timekeeper.Slot) {
	for len(feed.cards) < len(slots) {
		card := newSlotCard()
		feed.cards = append(feed.cards, card)
		feed.list.Add(card.row)
	}
	for len(feed.cards) > len(slots) {
		last := feed.cards[len(feed.cards)-1]
		feed.list.Remove(last.row)
		feed.cards = feed.cards[:len(feed.cards)-1]
	}

	for i, slot := range slots {
		feed.cards[i].render(slot)
	}
}

func newSlotCard() *slotCard {
	card := &slotCard{
		index:       widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
		title:       widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		description: widget.NewLabel(""),
		pill:        widget.NewLabel(""),
	}
	card.description.Wrapping = fyne.TextWrapWord
	card.description.Importance = widget.LowImportance
	card.row = container.NewBorder(nil, nil, card.index, card.pill, container.NewVBox(card.title, card.description))
	return card
}

func (card *slotCard) render(slot timekeeper.Slot) {
	card.index.SetText(fmt.Sprintf("#%d", slot.Index+1))
	card.title.SetText(slot.Title)
	card.description.SetText(slot.Description)
	card.pill.SetText(slot.Pill())
	card.pill.Importance = pillImportance(slot.Status)
	card.pill.Refresh()
}

func pillImportance(status timekeeper.SlotStatus) widget.Importance {
	switch status {
	case timekeeper.SlotCompleted:
		return widget.SuccessImportance
	case timekeeper.SlotActive:
		return widget.HighImportance
	case timekeeper.SlotReady:
		return widget.MediumImportance
	default:
		return widget.LowImportance
	}
}
