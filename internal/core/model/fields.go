package model

// FieldKey names an editable Settings field.
type FieldKey string

const (
	FieldTotalSessions   FieldKey = "totalSessions"
	FieldSessionLength   FieldKey = "sessionLength"
	FieldCooldownMinutes FieldKey = "cooldownMinutes"
)

// Field describes one range control of the settings panel.
type Field struct {
	Key         FieldKey
	Label       string
	Description string
	Min         int
	Max         int
	Step        int
	Unit        string
}

// Fields lists the settings panel controls in display order.
var Fields = []Field{
	{
		Key:         FieldTotalSessions,
		Label:       "Bursts per day",
		Description: "How many short sessions you will allow yourself today.",
		Min:         1,
		Max:         30,
		Step:        1,
		Unit:        "bursts",
	},
	{
		Key:         FieldSessionLength,
		Label:       "Burst length",
		Description: "Maximum length of a single burst in seconds.",
		Min:         30,
		Max:         180,
		Step:        5,
		Unit:        "seconds",
	},
	{
		Key:         FieldCooldownMinutes,
		Label:       "Cooldown",
		Description: "How many minutes must pass before the next burst unlocks.",
		Min:         3,
		Max:         60,
		Step:        1,
		Unit:        "minutes",
	},
}

// LookupField returns the descriptor for key.
func LookupField(key FieldKey) (Field, bool) {
	for _, field := range Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Clamp bounds value to [Min, Max] and snaps it to the nearest step from Min.
func (field Field) Clamp(value int) int {
	if value < field.Min {
		return field.Min
	}
	if value > field.Max {
		return field.Max
	}
	if field.Step <= 1 {
		return value
	}
	offset := value - field.Min
	snapped := field.Min + ((offset+field.Step/2)/field.Step)*field.Step
	if snapped > field.Max {
		snapped -= field.Step
	}
	return snapped
}
