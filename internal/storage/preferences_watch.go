package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// PreferencesWatcher reloads preferences.yaml when it changes on disk.
type PreferencesWatcher struct {
	path     string
	onChange func(Preferences)
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   zerolog.Logger

	mu       sync.Mutex
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewPreferencesWatcher creates a watcher for the preferences file at path.
func NewPreferencesWatcher(path string, onChange func(Preferences), logger zerolog.Logger) (*PreferencesWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve preferences path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	return &PreferencesWatcher{
		path:     absPath,
		onChange: onChange,
		watcher:  watcher,
		debounce: 500 * time.Millisecond,
		logger:   logger.With().Str("component", "preferences_watcher").Logger(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start watches the directory holding the preferences file.
func (pw *PreferencesWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(pw.path)
	if err := EnsureDir(dir); err != nil {
		return err
	}
	if err := pw.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go pw.loop(ctx)
	pw.logger.Debug().Str("path", pw.path).Msg("Watching preferences")
	return nil
}

// Stop ends the watch and waits for the loop to exit.
func (pw *PreferencesWatcher) Stop() error {
	var err error
	pw.stopOnce.Do(func() {
		close(pw.stop)
		err = pw.watcher.Close()
		<-pw.done
	})
	return err
}

func (pw *PreferencesWatcher) loop(ctx context.Context) {
	defer close(pw.done)

	var reload *time.Timer
	defer func() {
		if reload != nil {
			reload.Stop()
		}
	}()

	name := filepath.Base(pw.path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-pw.stop:
			return
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if reload != nil {
				reload.Stop()
			}
			reload = time.AfterFunc(pw.debounce, pw.reload)
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			pw.logger.Warn().Err(err).Msg("Preferences watcher error")
		}
	}
}

func (pw *PreferencesWatcher) reload() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	select {
	case <-pw.stop:
		return
	default:
	}

	preferences, err := LoadPreferences(pw.path)
	if err != nil {
		pw.logger.Warn().Err(err).Msg("Ignoring unreadable preferences change")
		return
	}
	pw.logger.Info().
		Int("total_sessions", preferences.Defaults.TotalSessions).
		Int("session_length", preferences.Defaults.SessionLength).
		Int("cooldown_minutes", preferences.Defaults.CooldownMinutes).
		Msg("Preferences reloaded")
	if pw.onChange != nil {
		pw.onChange(preferences)
	}
}
