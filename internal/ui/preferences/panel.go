// Package preferences renders the burst plan controls.
package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"reelfocus/internal/core/model"
)

type fieldRow struct {
	field  model.Field
	slider *widget.Slider
	value  *widget.Label
}

// Panel is the settings card: one slider per plan field.
type Panel struct {
	callbacks Callbacks
	settings  model.Settings
	rows      []*fieldRow
	launch    *widget.Check
	save      *widget.Button
	content   fyne.CanvasObject
	updating  bool
}

// New creates a settings panel showing settings.
func New(settings model.Settings, launchAtLogin bool, callbacks Callbacks) *Panel {
	panel := &Panel{callbacks: callbacks, settings: settings}

	form := container.NewVBox(widget.NewLabelWithStyle("Burst plan", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, field := range model.Fields {
		row := panel.newRow(field)
		panel.rows = append(panel.rows, row)

		hint := widget.NewLabel(field.Description)
		hint.Wrapping = fyne.TextWrapWord
		hint.Importance = widget.LowImportance

		form.Add(container.NewBorder(nil, nil, widget.NewLabel(field.Label), row.value))
		form.Add(row.slider)
		form.Add(hint)
	}

	panel.launch = widget.NewCheck("Launch at login", func(enabled bool) {
		if panel.updating || panel.callbacks.OnLaunchAtLogin == nil {
			return
		}
		panel.callbacks.OnLaunchAtLogin(enabled)
	})
	panel.SetLaunchAtLogin(launchAtLogin)

	panel.save = widget.NewButton("Save as default", func() {
		if panel.callbacks.OnSaveDefault != nil {
			panel.callbacks.OnSaveDefault(panel.settings)
		}
	})

	footer := container.NewHBox(panel.launch, layout.NewSpacer(), panel.save)
	panel.content = container.NewBorder(nil, footer, nil, nil, form)
	panel.Update(settings)
	return panel
}

func (panel *Panel) newRow(field model.Field) *fieldRow {
	row := &fieldRow{
		field:  field,
		slider: widget.NewSlider(float64(field.Min), float64(field.Max)),
		value:  widget.NewLabel(""),
	}
	row.slider.Step = float64(field.Step)
	row.slider.OnChanged = func(value float64) {
		clamped := field.Clamp(int(value + 0.5))
		row.value.SetText(ValueText(field, clamped))
		if panel.updating {
			return
		}
		panel.settings = panel.settings.With(field.Key, clamped)
		if panel.callbacks.OnChange != nil {
			panel.callbacks.OnChange(field.Key, clamped)
		}
	}
	return row
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Settings returns the values currently shown.
func (panel *Panel) Settings() model.Settings {
	return panel.settings
}

// Update replaces slider values without reporting changes back.
func (panel *Panel) Update(settings model.Settings) {
	panel.updating = true
	defer func() { panel.updating = false }()

	panel.settings = settings
	for _, row := range panel.rows {
		value := settings.Get(row.field.Key)
		row.slider.SetValue(float64(value))
		row.value.SetText(ValueText(row.field, value))
	}
}

// SetLaunchAtLogin updates the checkbox without reporting the change.
func (panel *Panel) SetLaunchAtLogin(enabled bool) {
	panel.updating = true
	defer func() { panel.updating = false }()
	panel.launch.SetChecked(enabled)
}
