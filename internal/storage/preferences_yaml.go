package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"reelfocus/internal/core/model"

	"gopkg.in/yaml.v3"
)

const preferencesFileName = "preferences.yaml"

// Preferences holds choices that outlive a single day.
type Preferences struct {
	Defaults      model.Settings
	LaunchAtLogin bool
}

// DefaultPreferences returns the preferences used before anything is saved.
func DefaultPreferences() Preferences {
	return Preferences{Defaults: model.DefaultSettings()}
}

type yamlPreferences struct {
	TotalSessions   int  `yaml:"total_sessions"`
	SessionLength   int  `yaml:"session_length_seconds"`
	CooldownMinutes *int `yaml:"cooldown_minutes,omitempty"`
	LaunchAtLogin   bool `yaml:"launch_at_login"`
}

// PreferencesPath returns the preferences file inside configDir.
func PreferencesPath(configDir string) string {
	return filepath.Join(configDir, preferencesFileName)
}

// LoadPreferences reads preferences from YAML.
// If the file does not exist, default preferences are returned.
func LoadPreferences(path string) (Preferences, error) {
	preferences := DefaultPreferences()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return preferences, nil
		}
		return preferences, fmt.Errorf("read preferences file: %w", err)
	}

	var fileData yamlPreferences
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return preferences, fmt.Errorf("parse preferences yaml: %w", err)
	}

	applyYamlPreferences(&preferences, fileData)
	return preferences, nil
}

// SavePreferences writes preferences to YAML.
func SavePreferences(path string, preferences Preferences) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	cooldown := preferences.Defaults.CooldownMinutes
	fileData := yamlPreferences{
		TotalSessions:   preferences.Defaults.TotalSessions,
		SessionLength:   preferences.Defaults.SessionLength,
		CooldownMinutes: &cooldown,
		LaunchAtLogin:   preferences.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal preferences yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}

	return nil
}

func applyYamlPreferences(preferences *Preferences, fileData yamlPreferences) {
	if field, ok := model.LookupField(model.FieldTotalSessions); ok && fileData.TotalSessions > 0 {
		preferences.Defaults.TotalSessions = field.Clamp(fileData.TotalSessions)
	}
	if field, ok := model.LookupField(model.FieldSessionLength); ok && fileData.SessionLength > 0 {
		preferences.Defaults.SessionLength = field.Clamp(fileData.SessionLength)
	}
	if field, ok := model.LookupField(model.FieldCooldownMinutes); ok && fileData.CooldownMinutes != nil {
		preferences.Defaults.CooldownMinutes = field.Clamp(*fileData.CooldownMinutes)
	}

	preferences.LaunchAtLogin = fileData.LaunchAtLogin
}
