package preferences

import (
	"fmt"

	"reelfocus/internal/core/model"
)

// ValueText renders a slider value with its unit, e.g. "60 seconds".
func ValueText(field model.Field, value int) string {
	unit := field.Unit
	if value == 1 && len(unit) > 1 && unit[len(unit)-1] == 's' {
		unit = unit[:len(unit)-1]
	}
	return fmt.Sprintf("%d %s", value, unit)
}

// Callbacks defines settings panel handlers.
type Callbacks struct {
	OnChange        func(key model.FieldKey, value int)
	OnSaveDefault   func(settings model.Settings)
	OnLaunchAtLogin func(enabled bool)
}
