package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"reelfocus/internal/config"
	"reelfocus/internal/core/model"
	"reelfocus/internal/core/timekeeper"
	"reelfocus/internal/housekeeping"
	"reelfocus/internal/platform"
	"reelfocus/internal/storage"
	"reelfocus/internal/ui/animation"
	"reelfocus/internal/ui/dashboard"
	"reelfocus/internal/ui/overlay"
	"reelfocus/internal/ui/preferences"
	"reelfocus/internal/ui/tray"
	"reelfocus/resources"
)

const (
	appID        = "com.reelfocus.app"
	appTitle     = "Reel Focus"
	eventsBuffer = 32
)

func runApp(cmd *cobra.Command, args []string) error {
	guard, err := platform.AcquireSingleInstance(config.AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			fmt.Println("Reel Focus is already running.")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	logger := env.logger
	logger.Info().
		Str("version", version).
		Str("storage", env.config.Storage.Type).
		Msg("Starting Reel Focus")

	scheduler, err := housekeeping.NewScheduler(env.days, env.config.Storage.RetentionDays, logger)
	if err != nil {
		return err
	}
	if err := scheduler.Start(); err != nil {
		return err
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			logger.Error().Err(err).Msg("Failed to stop housekeeping")
		}
	}()

	keeper := timekeeper.New(env.days, timekeeper.Config{
		Defaults: env.preferences.Defaults,
		Logger:   logger,
	})
	events := keeper.Subscribe(eventsBuffer)
	keeper.Load(context.Background())

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconIdle))

	ui := newShell(fyneApp, env, keeper)
	go ui.consume(events)

	watcher, err := storage.NewPreferencesWatcher(env.preferencesPath, ui.applyPreferences, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Preferences will not reload on edit")
	} else if err := watcher.Start(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("Preferences will not reload on edit")
	} else {
		defer func() {
			_ = watcher.Stop()
		}()
	}

	ui.dashboard.Show()
	fyneApp.Run()

	keeper.Stop()
	logger.Info().Msg("Reel Focus stopped")
	return nil
}

// shell owns every window and keeps them in step with the keeper.
type shell struct {
	app       fyne.App
	env       *environment
	keeper    *timekeeper.TimeKeeper
	logger    zerolog.Logger
	dashboard *dashboard.Dashboard
	settings  *preferences.Panel
	tray      *tray.Manager
	overlay   *overlay.Window
	pulse     *animation.Pulse
}

func newShell(fyneApp fyne.App, env *environment, keeper *timekeeper.TimeKeeper) *shell {
	ui := &shell{
		app:    fyneApp,
		env:    env,
		keeper: keeper,
		logger: env.logger.With().Str("component", "ui").Logger(),
	}

	state := keeper.Snapshot()
	ui.settings = preferences.New(state.Settings, env.preferences.LaunchAtLogin, preferences.Callbacks{
		OnChange:        keeper.UpdateSetting,
		OnSaveDefault:   ui.saveDefault,
		OnLaunchAtLogin: ui.setLaunchAtLogin,
	})
	ui.dashboard = dashboard.New(fyneApp, appTitle, ui.settings.Content(),
		func() { keeper.StartBurst() },
		keeper.CancelBurst,
	)
	ui.pulse = animation.New(animation.DefaultConfig(), func(c color.Color) {
		fyne.Do(func() { ui.dashboard.Timer.SetClockColor(c) })
	})

	if env.config.Overlay.Enabled {
		ui.overlay = overlay.New(fyneApp, overlay.DefaultConfig())
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		ui.tray = tray.New(desktopApp, appTitle, tray.Icons{
			Idle:    resources.MustIcon(resources.IconIdle),
			Running: resources.MustIcon(resources.IconRunning),
			Locked:  resources.MustIcon(resources.IconLocked),
		}, tray.Callbacks{
			OnStart:     func() { keeper.StartBurst() },
			OnCancel:    keeper.CancelBurst,
			OnDashboard: ui.dashboard.Show,
			OnQuit:      fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconIdle))
	} else {
		ui.logger.Warn().Msg("System tray unsupported on this platform")
		ui.dashboard.Window().SetCloseIntercept(fyneApp.Quit)
	}

	ui.render(state)
	return ui
}

// consume forwards keeper events to the UI until the keeper stops.
func (ui *shell) consume(events <-chan timekeeper.Event) {
	for event := range events {
		if notification, ok := notificationFor(event); ok && ui.env.config.Notifications.Enabled {
			ui.app.SendNotification(notification)
		}
		if event.Type == timekeeper.EventStorageError {
			ui.logger.Debug().Str("message", event.Message).Msg("Storage error reported")
		}

		state := ui.keeper.Snapshot()
		fyne.Do(func() { ui.render(state) })
	}
}

// render must run on the UI goroutine.
func (ui *shell) render(state timekeeper.State) {
	ui.dashboard.Render(state)
	if ui.settings.Settings() != state.Settings {
		ui.settings.Update(state.Settings)
	}
	if ui.tray != nil {
		ui.tray.Render(state)
	}
	if ui.overlay != nil {
		ui.overlay.Sync(state.CooldownRemaining)
	}

	if state.Timer.Running {
		ui.pulse.Start(context.Background())
		return
	}
	if ui.pulse.Running() {
		go func() {
			ui.pulse.Stop()
			fyne.Do(ui.dashboard.Timer.ResetClockColor)
		}()
	}
}

func (ui *shell) saveDefault(settings model.Settings) {
	ui.env.preferences.Defaults = settings
	if err := storage.SavePreferences(ui.env.preferencesPath, ui.env.preferences); err != nil {
		ui.logger.Error().Err(err).Str("path", ui.env.preferencesPath).Msg("Failed to save default plan")
		return
	}
	ui.env.days.SetDefaults(settings)
	ui.logger.Info().
		Int("total_sessions", settings.TotalSessions).
		Int("session_length", settings.SessionLength).
		Int("cooldown_minutes", settings.CooldownMinutes).
		Msg("Default plan saved")
}

func (ui *shell) setLaunchAtLogin(enabled bool) {
	if err := platform.SyncAutostart(ui.env.platform, config.AppName, enabled); err != nil {
		ui.logger.Error().Err(err).Bool("enabled", enabled).Msg("Failed to update launch at login")
		ui.settings.SetLaunchAtLogin(!enabled)
		return
	}
	ui.env.preferences.LaunchAtLogin = enabled
	if err := storage.SavePreferences(ui.env.preferencesPath, ui.env.preferences); err != nil {
		ui.logger.Error().Err(err).Str("path", ui.env.preferencesPath).Msg("Failed to save preferences")
	}
}

// applyPreferences adopts preferences edited outside the app.
func (ui *shell) applyPreferences(preferences storage.Preferences) {
	fyne.Do(func() {
		ui.env.preferences = preferences
		ui.env.days.SetDefaults(preferences.Defaults)
		ui.settings.SetLaunchAtLogin(preferences.LaunchAtLogin)
	})
}

// notificationFor returns the system notification for event, if any.
func notificationFor(event timekeeper.Event) (*fyne.Notification, bool) {
	switch event.Type {
	case timekeeper.EventCompleted:
		state := event.Snapshot
		body := "All bursts for today are complete."
		if remaining := state.SessionsRemaining(); remaining > 0 {
			body = fmt.Sprintf("Burst logged. %s", state.TimerView().Footnote)
			if state.Settings.CooldownMinutes > 0 {
				body += fmt.Sprintf(" Next one unlocks in %d minutes.", state.Settings.CooldownMinutes)
			}
		}
		return fyne.NewNotification("Burst complete", body), true
	case timekeeper.EventUnlocked:
		return fyne.NewNotification("Next burst unlocked", "Your next burst is ready when you are."), true
	default:
		return nil, false
	}
}
