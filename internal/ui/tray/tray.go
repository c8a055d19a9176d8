// Package tray owns the system tray menu.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"

	"reelfocus/internal/core/timekeeper"
	"reelfocus/internal/core/usage"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart     func()
	OnCancel    func()
	OnDashboard func()
	OnQuit      func()
}

// Icons are the tray icons for each keeper phase.
type Icons struct {
	Idle    fyne.Resource
	Running fyne.Resource
	Locked  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	title      string
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	cancelItem *fyne.MenuItem
	menu       *fyne.Menu
	icon       fyne.Resource
	tooltip    string
	setTooltip func(string)
}

// New creates a tray manager. app may be nil when no tray is available.
func New(app desktop.App, title string, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start burst", invoke(&manager.callbacks.OnStart))
	manager.cancelItem = fyne.NewMenuItem("Cancel burst", invoke(&manager.callbacks.OnCancel))
	manager.cancelItem.Disabled = true

	manager.menu = fyne.NewMenu(title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.cancelItem,
		fyne.NewMenuItem("Show dashboard", invoke(&manager.callbacks.OnDashboard)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
	if app != nil {
		app.SetSystemTrayMenu(manager.menu)
		manager.setTooltip = systray.SetTooltip
	}
	return manager
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

// Render updates the menu and icon for state. Must run on the UI goroutine.
func (manager *Manager) Render(state timekeeper.State) {
	status := Status(state)
	manager.statusItem.Label = "Status: " + status
	manager.startItem.Disabled = !state.CanStart()
	manager.cancelItem.Disabled = !state.Timer.Running

	if tooltip := manager.title + ": " + status; tooltip != manager.tooltip {
		manager.tooltip = tooltip
		if manager.setTooltip != nil {
			manager.setTooltip(tooltip)
		}
	}

	icon := manager.iconFor(state)
	if manager.app == nil {
		manager.icon = icon
		return
	}
	manager.menu.Refresh()
	if icon != nil && icon != manager.icon {
		manager.app.SetSystemTrayIcon(icon)
	}
	manager.icon = icon
}

func (manager *Manager) iconFor(state timekeeper.State) fyne.Resource {
	switch {
	case state.Timer.Running:
		return manager.icons.Running
	case state.CooldownPending():
		return manager.icons.Locked
	default:
		return manager.icons.Idle
	}
}

// Status summarises state in one line.
func Status(state timekeeper.State) string {
	switch {
	case state.Timer.Running:
		return fmt.Sprintf("burst running, %s left", usage.FormatClock(state.Timer.SecondsRemaining))
	case state.SessionsRemaining() == 0:
		return "all bursts logged"
	case state.CooldownRemaining > 0:
		return "cooldown, " + usage.FormatCooldown(state.CooldownRemaining)
	default:
		return fmt.Sprintf("ready, %d of %d logged", len(state.Completed), state.Settings.TotalSessions)
	}
}
