package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"reelfocus/internal/core/model"
)

func TestValueText(t *testing.T) {
	bursts, _ := model.LookupField(model.FieldTotalSessions)
	length, _ := model.LookupField(model.FieldSessionLength)

	require.Equal(t, "1 burst", ValueText(bursts, 1))
	require.Equal(t, "12 bursts", ValueText(bursts, 12))
	require.Equal(t, "60 seconds", ValueText(length, 60))
}

func TestPanelReportsClampedChanges(t *testing.T) {
	test.NewTempApp(t)

	type change struct {
		key   model.FieldKey
		value int
	}
	var changes []change
	panel := New(model.DefaultSettings(), false, Callbacks{
		OnChange: func(key model.FieldKey, value int) {
			changes = append(changes, change{key, value})
		},
	})
	require.Empty(t, changes)

	length := panel.rows[1]
	require.Equal(t, model.FieldSessionLength, length.field.Key)
	length.slider.SetValue(92)

	require.Equal(t, []change{{model.FieldSessionLength, 90}}, changes)
	require.Equal(t, 90, panel.Settings().SessionLength)
	require.Equal(t, "90 seconds", length.value.Text)
}

func TestPanelUpdateIsSilent(t *testing.T) {
	test.NewTempApp(t)

	calls := 0
	launches := 0
	panel := New(model.DefaultSettings(), false, Callbacks{
		OnChange:        func(model.FieldKey, int) { calls++ },
		OnLaunchAtLogin: func(bool) { launches++ },
	})

	panel.Update(model.Settings{TotalSessions: 5, SessionLength: 120, CooldownMinutes: 15})
	panel.SetLaunchAtLogin(true)

	require.Zero(t, calls)
	require.Zero(t, launches)
	require.Equal(t, "5 bursts", panel.rows[0].value.Text)
	require.Equal(t, 120.0, panel.rows[1].slider.Value)
	require.True(t, panel.launch.Checked)
}

func TestPanelSaveAndLaunch(t *testing.T) {
	test.NewTempApp(t)

	var saved model.Settings
	var launch *bool
	panel := New(model.DefaultSettings(), false, Callbacks{
		OnSaveDefault:   func(settings model.Settings) { saved = settings },
		OnLaunchAtLogin: func(enabled bool) { launch = &enabled },
	})

	panel.rows[2].slider.SetValue(20)
	test.Tap(panel.save)
	test.Tap(panel.launch)

	require.Equal(t, 20, saved.CooldownMinutes)
	require.NotNil(t, launch)
	require.True(t, *launch)
}
