package ui

import (
	"light-calculator/calc"
	"light-calculator/db"
	"light-calculator/utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App represents the main application
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *utils.Config
	configPath string
	db         *db.DB // nil unless history persistence is enabled
	logger     *utils.Logger
	tr         *Translator

	// one engine shared by both modes
	engine *calc.Engine

	// UI components
	basicDisplay     *Display
	advancedDisplay  *Display
	basicKeypad      *Keypad
	advancedKeypad   *Keypad
	scientificKeypad *Keypad
	historyPanel     *HistoryPanel
	themeButton      *widget.Button
	darkButton       *widget.Button
	basicView        fyne.CanvasObject
	advancedView     fyne.CanvasObject
	settingsWindow   fyne.Window
	settings         *SettingsView

	showAdvanced bool
	isDark       bool
	followSystem bool
}

// NewApp creates a new application instance
func NewApp(config *utils.Config, configPath string, database *db.DB, logger *utils.Logger) *App {
	return newApp(app.NewWithID("light-calculator"), config, configPath, database, logger)
}

func newApp(fyneApp fyne.App, config *utils.Config, configPath string, database *db.DB, logger *utils.Logger) *App {
	tr, err := NewTranslator(config.UI.Language)
	if err != nil {
		logger.Error("Failed to load translations: %v", err)
		tr = &Translator{}
	}

	window := fyneApp.NewWindow(tr.T("app_title"))
	window.Resize(fyne.NewSize(
		float32(config.UI.WindowWidth),
		float32(config.UI.WindowHeight),
	))

	application := &App{
		fyneApp:      fyneApp,
		window:       window,
		config:       config,
		configPath:   configPath,
		db:           database,
		logger:       logger,
		tr:           tr,
		engine:       calc.NewEngine(calc.DefaultEnv()),
		showAdvanced: config.UI.StartAdvanced,
	}

	// Save window size when closing
	window.SetOnClosed(func() {
		size := window.Canvas().Size()
		application.config.UI.WindowWidth = int(size.Width)
		application.config.UI.WindowHeight = int(size.Height)
		application.saveConfig()
	})

	application.initDarkMode()
	application.applyTheme()

	application.buildUI()

	application.engine.OnChange(application.onStateChanged)
	application.engine.OnEffect(application.handleEffect)
	application.restoreHistory()

	application.setupKeyboardShortcuts()
	application.SetupSystemTray()

	if application.config.UI.MinimizeToTray {
		application.EnableMinimizeToTray()
		application.logger.Info("Minimize to tray enabled")
	}

	return application
}

// initDarkMode picks the starting light/dark mode from config or the system
func (a *App) initDarkMode() {
	switch a.config.UI.Theme {
	case utils.ThemeDark:
		a.isDark = true
	case utils.ThemeLight:
		a.isDark = false
	default:
		a.followSystem = true
		a.isDark = a.fyneApp.Settings().ThemeVariant() == theme.VariantDark
	}

	// Track the system preference until the user picks a mode
	a.fyneApp.Settings().AddListener(func(s fyne.Settings) {
		if !a.followSystem {
			return
		}
		dark := s.ThemeVariant() == theme.VariantDark
		if dark != a.isDark {
			a.isDark = dark
			a.applyTheme()
		}
	})
}

// buildUI builds both views and shows the one selected by config
func (a *App) buildUI() {
	a.basicDisplay = NewDisplay(a.copyResult)
	a.advancedDisplay = NewDisplay(a.copyResult)

	a.basicKeypad = NewKeypad(calc.BasicKeys, a.press)
	a.advancedKeypad = NewKeypad(calc.BasicKeys, a.press)
	a.scientificKeypad = NewKeypad(calc.ScientificKeys, a.press)

	a.historyPanel = NewHistoryPanel(a.tr)
	a.historyPanel.OnUse = a.useHistoryEntry
	a.historyPanel.OnClear = a.engine.ClearHistory
	a.historyPanel.OnExport = a.showExportMenu
	a.historyPanel.Hide()

	a.basicView = a.createBasicView()
	a.advancedView = a.createAdvancedView()

	a.showView()
}

func (a *App) createBasicView() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(a.tr.T("app_title"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	advancedButton := widget.NewButton("ƒx", func() {
		a.setAdvanced(true)
	})
	advancedButton.Importance = widget.LowImportance

	historyButton := widget.NewButtonWithIcon("", theme.HistoryIcon(), a.toggleHistory)
	historyButton.Importance = widget.LowImportance

	a.themeButton = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), a.showThemeMenu)
	a.themeButton.Importance = widget.LowImportance

	a.darkButton = widget.NewButton(a.darkButtonLabel(), a.toggleDarkMode)
	a.darkButton.Importance = widget.LowImportance

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), a.showSettings)
	settingsButton.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, title,
		container.NewHBox(advancedButton, historyButton, a.themeButton, a.darkButton, settingsButton))

	return container.NewPadded(container.NewVBox(
		header,
		widget.NewSeparator(),
		a.basicDisplay,
		a.historyPanel,
		a.basicKeypad.Content(),
	))
}

func (a *App) createAdvancedView() fyne.CanvasObject {
	backButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		a.setAdvanced(false)
	})
	backButton.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(a.tr.T("advanced_title"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, backButton, nil, title)

	sectionLabel := widget.NewLabel(a.tr.T("scientific_functions"))
	sectionLabel.Importance = widget.LowImportance
	sectionLabel.SizeName = theme.SizeNameCaptionText

	return container.NewPadded(container.NewVBox(
		header,
		widget.NewSeparator(),
		a.advancedDisplay,
		sectionLabel,
		a.scientificKeypad.Content(),
		widget.NewSeparator(),
		a.advancedKeypad.Content(),
	))
}

func (a *App) showView() {
	if a.showAdvanced {
		a.window.SetContent(a.advancedView)
	} else {
		a.window.SetContent(a.basicView)
	}
}

// setAdvanced switches between the basic and the scientific keypad
func (a *App) setAdvanced(advanced bool) {
	if a.showAdvanced == advanced {
		return
	}
	a.showAdvanced = advanced
	a.showView()
	a.logger.Info("Switched to advanced mode: %v", advanced)
}

// press dispatches a keypad label to the engine
func (a *App) press(label string) {
	defer utils.RecoverFromPanic(a.logger, "keypad "+label)

	if !a.engine.Press(label) {
		a.logger.Warn("Unbound key: %s", label)
	}
}

func (a *App) copyResult() {
	a.engine.CopyDisplay()
}

// onStateChanged renders engine state into both views
func (a *App) onStateChanged(s calc.State) {
	a.basicDisplay.SetValue(s.Display)
	a.advancedDisplay.SetValue(s.Display)
	a.historyPanel.SetEntries(s.History)
}

func (a *App) toggleHistory() {
	if a.historyPanel.Visible() {
		a.historyPanel.Hide()
	} else {
		a.historyPanel.Show()
	}
}

func (a *App) useHistoryEntry(entry calc.HistoryEntry) {
	a.engine.UseHistoryEntry(entry.ID)
	a.historyPanel.Hide()
}

// showThemeMenu pops up the color theme list under the palette button
func (a *App) showThemeMenu() {
	items := make([]*fyne.MenuItem, 0, len(Palettes))
	for _, p := range Palettes {
		palette := p
		item := fyne.NewMenuItem(a.tr.T(palette.NameKey), func() {
			a.setColorTheme(palette.ID)
		})
		item.Checked = palette.ID == a.config.UI.ColorTheme
		items = append(items, item)
	}

	menu := fyne.NewMenu(a.tr.T("theme"), items...)
	pos := a.fyneApp.Driver().AbsolutePositionForObject(a.themeButton)
	pos = pos.Add(fyne.NewPos(0, a.themeButton.Size().Height))
	a.showPopUpMenu(menu, pos)
}

func (a *App) showPopUpMenu(menu *fyne.Menu, pos fyne.Position) {
	widget.ShowPopUpMenuAtPosition(menu, a.window.Canvas(), pos)
}

func (a *App) setColorTheme(id string) {
	a.config.UI.ColorTheme = paletteByID(id).ID
	a.applyTheme()
	a.saveConfig()
}

func (a *App) toggleDarkMode() {
	a.isDark = !a.isDark
	a.followSystem = false
	if a.isDark {
		a.config.UI.Theme = utils.ThemeDark
	} else {
		a.config.UI.Theme = utils.ThemeLight
	}
	a.applyTheme()
	a.saveConfig()
}

func (a *App) darkButtonLabel() string {
	if a.isDark {
		return "☀️"
	}
	return "🌙"
}

// applyTheme installs the palette and light/dark mode from app state
func (a *App) applyTheme() {
	fontSize := a.config.UI.FontSize
	if fontSize < 10 {
		fontSize = 14 // Default font size
	}

	palette := paletteByID(a.config.UI.ColorTheme)
	a.fyneApp.Settings().SetTheme(newCalcTheme(palette, a.isDark, fontSize))

	if a.darkButton != nil {
		a.darkButton.SetText(a.darkButtonLabel())
	}

	a.logger.Info("Applied %s palette (dark: %v, font size %d)", palette.ID, a.isDark, fontSize)
}

func (a *App) saveConfig() {
	if a.configPath == "" {
		return
	}
	if err := utils.SaveConfig(a.configPath, a.config); err != nil {
		a.logger.Error("Failed to save config: %v", err)
	}
}

// Run shows the window and runs the event loop
func (a *App) Run() {
	a.window.ShowAndRun()
}

func (a *App) showError(message string) {
	var popup *widget.PopUp
	popup = widget.NewModalPopUp(
		container.NewVBox(
			widget.NewLabel("❌ "+a.tr.T("error")),
			widget.NewLabel(message),
			widget.NewButton("OK", func() {
				popup.Hide()
			}),
		),
		a.window.Canvas(),
	)
	popup.Show()
}

func (a *App) showInfo(message string) {
	var popup *widget.PopUp
	popup = widget.NewModalPopUp(
		container.NewVBox(
			widget.NewLabel(message),
			widget.NewButton("OK", func() {
				popup.Hide()
			}),
		),
		a.window.Canvas(),
	)
	popup.Show()
}

// Cleanup releases the history store and the log file
func (a *App) Cleanup() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
	if a.logger != nil {
		a.logger.Close()
	}
}
