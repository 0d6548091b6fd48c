package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// languages offered in the settings window, by config code
var languages = []struct {
	Code string
	Name string
}{
	{"ar", "العربية"},
	{"en", "English"},
}

// SettingsView represents the settings interface
type SettingsView struct {
	app *App

	// UI settings widgets
	languageSelect      *widget.Select
	fontSizeSlider      *widget.Slider
	fontSizeLabel       *widget.Label
	minimizeToTrayCheck *widget.Check
	startAdvancedCheck  *widget.Check

	// Data settings widgets
	persistCheck *widget.Check
	statsLabel   *widget.Label
	vacuumButton *widget.Button
}

// NewSettingsView creates a new settings view
func NewSettingsView(app *App) *SettingsView {
	return &SettingsView{app: app}
}

// Build builds the settings view UI
func (sv *SettingsView) Build() fyne.CanvasObject {
	tr := sv.app.tr
	return container.NewAppTabs(
		container.NewTabItem(tr.T("settings_ui"), sv.buildUISettingsTab()),
		container.NewTabItem(tr.T("settings_data"), sv.buildDataSettingsTab()),
	)
}

// buildUISettingsTab builds the UI settings tab
func (sv *SettingsView) buildUISettingsTab() fyne.CanvasObject {
	tr := sv.app.tr
	config := &sv.app.config.UI

	names := make([]string, 0, len(languages))
	for _, l := range languages {
		names = append(names, l.Name)
	}
	sv.languageSelect = widget.NewSelect(names, nil)
	for _, l := range languages {
		if l.Code == config.Language {
			sv.languageSelect.SetSelected(l.Name)
		}
	}
	sv.languageSelect.OnChanged = func(name string) {
		for _, l := range languages {
			if l.Name == name {
				sv.setLanguage(l.Code)
			}
		}
	}

	// Font size slider (10-24 px)
	sv.fontSizeLabel = widget.NewLabel(sv.fontSizeText(config.FontSize))
	sv.fontSizeSlider = widget.NewSlider(10, 24)
	sv.fontSizeSlider.Step = 1
	sv.fontSizeSlider.Value = float64(config.FontSize)
	sv.fontSizeSlider.OnChanged = func(value float64) {
		sv.setFontSize(int(value))
	}

	sv.minimizeToTrayCheck = widget.NewCheck(tr.T("minimize_to_tray"), nil)
	sv.minimizeToTrayCheck.Checked = config.MinimizeToTray
	sv.minimizeToTrayCheck.OnChanged = sv.setMinimizeToTray

	sv.startAdvancedCheck = widget.NewCheck(tr.T("start_advanced"), nil)
	sv.startAdvancedCheck.Checked = config.StartAdvanced
	sv.startAdvancedCheck.OnChanged = func(checked bool) {
		config.StartAdvanced = checked
		sv.app.saveConfig()
	}

	restartNote := widget.NewLabel(tr.T("restart_note"))
	restartNote.Wrapping = fyne.TextWrapWord
	restartNote.TextStyle = fyne.TextStyle{Italic: true}

	form := widget.NewForm(
		widget.NewFormItem(tr.T("language"), container.NewVBox(sv.languageSelect, restartNote)),
		widget.NewFormItem("", container.NewVBox(sv.fontSizeLabel, sv.fontSizeSlider)),
	)

	return container.NewVScroll(container.NewVBox(
		form,
		widget.NewSeparator(),
		sv.minimizeToTrayCheck,
		sv.startAdvancedCheck,
	))
}

// buildDataSettingsTab builds the history store tab
func (sv *SettingsView) buildDataSettingsTab() fyne.CanvasObject {
	tr := sv.app.tr
	config := &sv.app.config.Data

	sv.persistCheck = widget.NewCheck(tr.T("persist_history"), func(checked bool) {
		config.PersistHistory = checked
		sv.app.saveConfig()
		sv.app.logger.Info("History persistence set to %v (applies after restart)", checked)
	})
	sv.persistCheck.Checked = config.PersistHistory

	// Database path (read-only, requires restart to change)
	dbPathEntry := widget.NewEntry()
	dbPathEntry.SetText(config.DBPath)
	dbPathEntry.Disable()

	restartNote := widget.NewLabel(tr.T("restart_note"))
	restartNote.Wrapping = fyne.TextWrapWord
	restartNote.TextStyle = fyne.TextStyle{Italic: true}

	sv.statsLabel = widget.NewLabel("")
	sv.statsLabel.Wrapping = fyne.TextWrapWord

	refreshButton := widget.NewButton(tr.T("refresh"), sv.updateDBStats)
	sv.vacuumButton = widget.NewButton(tr.T("vacuum"), sv.vacuumDatabase)

	if sv.app.db == nil {
		refreshButton.Disable()
		sv.vacuumButton.Disable()
	}
	sv.updateDBStats()

	form := widget.NewForm(
		widget.NewFormItem("", container.NewVBox(sv.persistCheck, restartNote)),
		widget.NewFormItem(tr.T("db_path"), dbPathEntry),
	)

	return container.NewVScroll(container.NewVBox(
		form,
		widget.NewSeparator(),
		sv.statsLabel,
		container.NewHBox(refreshButton, sv.vacuumButton),
	))
}

func (sv *SettingsView) fontSizeText(size int) string {
	return sv.app.tr.TData("font_size", map[string]interface{}{"Size": size})
}

func (sv *SettingsView) setLanguage(code string) {
	if sv.app.config.UI.Language == code {
		return
	}
	sv.app.config.UI.Language = code
	sv.app.saveConfig()
	sv.app.logger.Info("Language set to %s (applies after restart)", code)
}

func (sv *SettingsView) setFontSize(size int) {
	if size == sv.app.config.UI.FontSize {
		return
	}
	sv.fontSizeLabel.SetText(sv.fontSizeText(size))
	sv.app.config.UI.FontSize = size

	// Apply theme immediately with new font size
	sv.app.applyTheme()
	sv.app.saveConfig()
	sv.app.logger.Info("Font size updated to %d", size)
}

func (sv *SettingsView) setMinimizeToTray(checked bool) {
	sv.app.config.UI.MinimizeToTray = checked

	if checked {
		sv.app.EnableMinimizeToTray()
		sv.app.logger.Info("Minimize to tray enabled")
	} else {
		sv.app.DisableMinimizeToTray()
		sv.app.logger.Info("Minimize to tray disabled")
	}
	sv.app.saveConfig()
}

// updateDBStats updates the database statistics label
func (sv *SettingsView) updateDBStats() {
	if sv.app.db == nil {
		sv.statsLabel.SetText(sv.app.tr.T("store_disabled"))
		return
	}

	stats, err := sv.app.db.GetStats()
	if err != nil {
		sv.app.logger.Error("Failed to get DB stats: %v", err)
		sv.statsLabel.SetText(sv.app.tr.T("error"))
		return
	}

	sv.statsLabel.SetText(sv.app.tr.TData("store_stats", map[string]interface{}{
		"Count": stats.EntryCount,
		"Size":  formatSize(stats.DBSizeBytes),
	}))
}

func (sv *SettingsView) vacuumDatabase() {
	if sv.app.db == nil {
		return
	}
	sv.app.logger.Info("Starting database vacuum...")

	if err := sv.app.db.Vacuum(); err != nil {
		sv.app.logger.Error("Failed to vacuum database: %v", err)
		sv.app.showError(err.Error())
		return
	}

	sv.app.logger.Info("Database vacuum completed")
	sv.updateDBStats()
	sv.app.showInfo(sv.app.tr.T("vacuum_done"))
}

// formatSize renders a byte count in KB or MB
func formatSize(bytes int64) string {
	sizeKB := float64(bytes) / 1024.0
	if sizeMB := sizeKB / 1024.0; sizeMB >= 1.0 {
		return fmt.Sprintf("%.2f MB", sizeMB)
	}
	return fmt.Sprintf("%.2f KB", sizeKB)
}

// showSettings opens the settings window, reusing it if already open
func (a *App) showSettings() {
	if a.settingsWindow != nil {
		a.settingsWindow.RequestFocus()
		return
	}

	sv := NewSettingsView(a)
	window := a.fyneApp.NewWindow(a.tr.T("settings"))
	window.SetContent(sv.Build())
	window.Resize(fyne.NewSize(420, 360))
	window.SetOnClosed(func() {
		a.settingsWindow = nil
		a.settings = nil
	})

	a.settingsWindow = window
	a.settings = sv
	window.Show()
}
