package model

// Settings defines the daily burst plan.
type Settings struct {
	TotalSessions   int `json:"totalSessions" yaml:"total_sessions"`
	SessionLength   int `json:"sessionLength" yaml:"session_length_seconds"`
	CooldownMinutes int `json:"cooldownMinutes" yaml:"cooldown_minutes"`
}

// DefaultSettings returns the plan used when nothing has been stored for the day.
func DefaultSettings() Settings {
	return Settings{
		TotalSessions:   12,
		SessionLength:   60,
		CooldownMinutes: 10,
	}
}

// WithDefaults fills zero or negative fields from defaults.
// A zero cooldown is a valid plan and is kept as is.
func (settings Settings) WithDefaults(defaults Settings) Settings {
	if settings.TotalSessions <= 0 {
		settings.TotalSessions = defaults.TotalSessions
	}
	if settings.SessionLength <= 0 {
		settings.SessionLength = defaults.SessionLength
	}
	if settings.CooldownMinutes < 0 {
		settings.CooldownMinutes = defaults.CooldownMinutes
	}
	return settings
}

// Get returns the value stored under key.
func (settings Settings) Get(key FieldKey) int {
	switch key {
	case FieldTotalSessions:
		return settings.TotalSessions
	case FieldSessionLength:
		return settings.SessionLength
	case FieldCooldownMinutes:
		return settings.CooldownMinutes
	default:
		return 0
	}
}

// With returns a copy with key set to value.
func (settings Settings) With(key FieldKey, value int) Settings {
	switch key {
	case FieldTotalSessions:
		settings.TotalSessions = value
	case FieldSessionLength:
		settings.SessionLength = value
	case FieldCooldownMinutes:
		settings.CooldownMinutes = value
	}
	return settings
}

// Timer is the countdown for the burst in progress.
type Timer struct {
	Running          bool
	SecondsRemaining int
}

// IdleTimer returns a stopped timer showing the full burst length.
func IdleTimer(sessionLength int) Timer {
	return Timer{Running: false, SecondsRemaining: sessionLength}
}
