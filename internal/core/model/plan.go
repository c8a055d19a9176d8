package model

import "time"

// Plan is the part of a day's state that is persisted.
type Plan struct {
	Settings        Settings
	Completed       []time.Time
	NextAvailableAt *time.Time
}

// NewPlan returns an empty plan for a fresh day.
func NewPlan(settings Settings) Plan {
	return Plan{Settings: settings}
}

// Normalized raises TotalSessions to cover every completed burst.
func (plan Plan) Normalized() Plan {
	if len(plan.Completed) > plan.Settings.TotalSessions {
		plan.Settings.TotalSessions = len(plan.Completed)
	}
	return plan
}

// Equal reports whether both plans would persist to the same record.
func (plan Plan) Equal(other Plan) bool {
	if plan.Settings != other.Settings {
		return false
	}
	if len(plan.Completed) != len(other.Completed) {
		return false
	}
	for i := range plan.Completed {
		if !plan.Completed[i].Equal(other.Completed[i]) {
			return false
		}
	}
	switch {
	case plan.NextAvailableAt == nil && other.NextAvailableAt == nil:
		return true
	case plan.NextAvailableAt == nil || other.NextAvailableAt == nil:
		return false
	default:
		return plan.NextAvailableAt.Equal(*other.NextAvailableAt)
	}
}
