package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"reelfocus/internal/core/model"

	"github.com/rs/zerolog"
)

const (
	keyPrefix  = "reel-focus-state"
	keyVersion = 1

	dayLayout       = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// DayKey returns the storage key for the UTC calendar day containing now.
func DayKey(now time.Time) string {
	return fmt.Sprintf("%s-v%d-%s", keyPrefix, keyVersion, now.UTC().Format(dayLayout))
}

func dayKeyPrefix() string {
	return fmt.Sprintf("%s-v%d-", keyPrefix, keyVersion)
}

// record is the persisted JSON shape of one day.
type record struct {
	Settings          *recordSettings `json:"settings,omitempty"`
	CompletedSessions []string        `json:"completedSessions"`
	NextAvailableAt   *string         `json:"nextAvailableAt"`
}

// recordSettings keeps absent fields distinguishable from zero values.
type recordSettings struct {
	TotalSessions   *int `json:"totalSessions,omitempty"`
	SessionLength   *int `json:"sessionLength,omitempty"`
	CooldownMinutes *int `json:"cooldownMinutes,omitempty"`
}

// Day is one stored day of bursts.
type Day struct {
	Date string
	Plan model.Plan
}

// Days reads and writes per-day plans on top of a KV store.
type Days struct {
	kv       KV
	logger   zerolog.Logger
	mu       sync.RWMutex
	defaults model.Settings
}

// NewDays creates a day repository. New days start from defaults.
func NewDays(kv KV, defaults model.Settings, logger zerolog.Logger) *Days {
	return &Days{
		kv:       kv,
		defaults: defaults,
		logger:   logger.With().Str("component", "days").Logger(),
	}
}

// SetDefaults replaces the plan used for days without a record.
func (days *Days) SetDefaults(defaults model.Settings) {
	days.mu.Lock()
	days.defaults = defaults
	days.mu.Unlock()
}

// Defaults returns the plan used for days without a record.
func (days *Days) Defaults() model.Settings {
	days.mu.RLock()
	defer days.mu.RUnlock()
	return days.defaults
}

// LoadPlan returns the plan stored for the day of now, or a fresh plan.
func (days *Days) LoadPlan(ctx context.Context, now time.Time) (model.Plan, error) {
	key := DayKey(now)
	raw, err := days.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.NewPlan(days.Defaults()), nil
		}
		return model.Plan{}, fmt.Errorf("read %s: %w", key, err)
	}
	plan, err := days.decode(key, raw)
	if err != nil {
		return model.Plan{}, err
	}
	return plan, nil
}

// SavePlan writes plan under the day of now.
func (days *Days) SavePlan(ctx context.Context, now time.Time, plan model.Plan) error {
	key := DayKey(now)
	raw, err := json.Marshal(encode(plan))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := days.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// History returns every stored day, newest first. Unreadable days are skipped.
func (days *Days) History(ctx context.Context) ([]Day, error) {
	keys, err := days.kv.Keys(ctx, dayKeyPrefix())
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	history := make([]Day, 0, len(keys))
	for _, key := range keys {
		date := strings.TrimPrefix(key, dayKeyPrefix())
		if _, err := time.Parse(dayLayout, date); err != nil {
			continue
		}
		raw, err := days.kv.Get(ctx, key)
		if err != nil {
			days.logger.Warn().Err(err).Str("key", key).Msg("Failed to read day")
			continue
		}
		plan, err := days.decode(key, raw)
		if err != nil {
			days.logger.Warn().Err(err).Str("key", key).Msg("Skipping unreadable day")
			continue
		}
		history = append(history, Day{Date: date, Plan: plan})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history, nil
}

// Prune deletes days strictly before the UTC day of cutoff.
func (days *Days) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	keys, err := days.kv.Keys(ctx, dayKeyPrefix())
	if err != nil {
		return 0, fmt.Errorf("list days: %w", err)
	}
	limit := cutoff.UTC().Format(dayLayout)

	deleted := 0
	for _, key := range keys {
		date := strings.TrimPrefix(key, dayKeyPrefix())
		if _, err := time.Parse(dayLayout, date); err != nil || date >= limit {
			continue
		}
		if err := days.kv.Delete(ctx, key); err != nil {
			return deleted, fmt.Errorf("delete %s: %w", key, err)
		}
		deleted++
	}
	return deleted, nil
}

func (days *Days) decode(key string, raw []byte) (model.Plan, error) {
	var stored record
	if err := json.Unmarshal(raw, &stored); err != nil {
		return model.Plan{}, fmt.Errorf("parse %s: %w", key, err)
	}

	defaults := days.Defaults()
	plan := model.NewPlan(defaults)
	if stored.Settings != nil {
		plan.Settings = stored.Settings.merge(defaults)
	}

	for _, value := range stored.CompletedSessions {
		at, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			days.logger.Warn().Err(err).Str("key", key).Str("value", value).Msg("Skipping invalid session timestamp")
			continue
		}
		plan.Completed = append(plan.Completed, at.Local())
	}

	if stored.NextAvailableAt != nil && *stored.NextAvailableAt != "" {
		at, err := time.Parse(time.RFC3339Nano, *stored.NextAvailableAt)
		if err != nil {
			days.logger.Warn().Err(err).Str("key", key).Msg("Ignoring invalid cooldown timestamp")
		} else {
			local := at.Local()
			plan.NextAvailableAt = &local
		}
	}

	if len(plan.Completed) > plan.Settings.TotalSessions {
		days.logger.Warn().
			Str("key", key).
			Int("completed", len(plan.Completed)).
			Int("total_sessions", plan.Settings.TotalSessions).
			Msg("Raising bursts per day to cover logged bursts")
	}
	return plan.Normalized(), nil
}

func encode(plan model.Plan) record {
	settings := plan.Settings
	stored := record{
		Settings: &recordSettings{
			TotalSessions:   &settings.TotalSessions,
			SessionLength:   &settings.SessionLength,
			CooldownMinutes: &settings.CooldownMinutes,
		},
		CompletedSessions: make([]string, 0, len(plan.Completed)),
	}
	for _, at := range plan.Completed {
		stored.CompletedSessions = append(stored.CompletedSessions, formatTimestamp(at))
	}
	if plan.NextAvailableAt != nil {
		value := formatTimestamp(*plan.NextAvailableAt)
		stored.NextAvailableAt = &value
	}
	return stored
}

func (stored recordSettings) merge(defaults model.Settings) model.Settings {
	settings := defaults
	if stored.TotalSessions != nil {
		settings.TotalSessions = *stored.TotalSessions
	}
	if stored.SessionLength != nil {
		settings.SessionLength = *stored.SessionLength
	}
	if stored.CooldownMinutes != nil {
		settings.CooldownMinutes = *stored.CooldownMinutes
	}
	return settings.WithDefaults(defaults)
}

func formatTimestamp(at time.Time) string {
	return at.UTC().Format(timestampLayout)
}
