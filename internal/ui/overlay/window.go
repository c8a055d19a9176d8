// Package overlay shows a small always-visible lock while a cooldown runs.
package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"reelfocus/internal/core/usage"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
	Title   string
	Message string
}

// DefaultConfig returns the lock overlay defaults.
func DefaultConfig() Config {
	return Config{
		Opacity: 230,
		Title:   "Cooldown",
		Message: "Put the phone down. Your next burst is on its way.",
	}
}

// Window manages the lock overlay.
type Window struct {
	window    fyne.Window
	title     *canvas.Text
	message   *canvas.Text
	remaining *canvas.Text
	visible   bool
}

const (
	overlayWidth  = float32(320)
	overlayHeight = float32(150)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the overlay window, hidden.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	background := canvas.NewRectangle(color.NRGBA{R: 30, G: 27, B: 75, A: config.Opacity})
	overlay := &Window{
		window:    window,
		title:     canvas.NewText(config.Title, white),
		message:   canvas.NewText(config.Message, white),
		remaining: canvas.NewText("0m 0s", color.NRGBA{R: 196, G: 181, B: 253, A: 255}),
	}
	overlay.title.TextStyle = fyne.TextStyle{Bold: true}
	overlay.title.TextSize = 20
	overlay.message.TextSize = 12
	overlay.remaining.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	overlay.remaining.TextSize = 32

	body := container.NewVBox(
		overlay.title,
		overlay.message,
		layout.NewSpacer(),
		container.NewCenter(overlay.remaining),
	)
	window.SetContent(container.NewStack(background, container.NewPadded(body)))
	window.Resize(fyne.NewSize(overlayWidth, overlayHeight))
	return overlay
}

// Show displays the overlay with the remaining cooldown seconds.
func (overlay *Window) Show(remainingSeconds int) {
	overlay.SetRemaining(remainingSeconds)
	if overlay.visible {
		return
	}
	overlay.visible = true
	overlay.window.CenterOnScreen()
	overlay.window.Show()
}

// Hide closes the overlay.
func (overlay *Window) Hide() {
	if !overlay.visible {
		return
	}
	overlay.visible = false
	overlay.window.Hide()
}

// Visible reports whether the overlay is showing.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// SetRemaining updates the countdown label.
func (overlay *Window) SetRemaining(remainingSeconds int) {
	overlay.remaining.Text = usage.FormatCooldown(remainingSeconds)
	overlay.remaining.Refresh()
}

// Sync shows the overlay while remainingSeconds is positive and hides it otherwise.
func (overlay *Window) Sync(remainingSeconds int) {
	if remainingSeconds > 0 {
		overlay.Show(remainingSeconds)
		return
	}
	overlay.Hide()
}
