package ui

import (
	"io"
	"path/filepath"
	"testing"

	"light-calculator/db"
	"light-calculator/utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, database *db.DB) *App {
	t.Helper()
	config := utils.DefaultConfig()
	config.UI.Language = "en"
	config.UI.Theme = utils.ThemeLight
	return newApp(test.NewTempApp(t), config, "", database, utils.NewWriterLogger(io.Discard))
}

func tap(t *testing.T, k *Keypad, labels ...string) {
	t.Helper()
	for _, label := range labels {
		btn := k.Button(label)
		require.NotNil(t, btn, "no button %q", label)
		test.Tap(btn)
	}
}

func TestBasicKeypadAddition(t *testing.T) {
	a := newTestApp(t, nil)
	tap(t, a.basicKeypad, "7", "+", "3", "=")

	assert.Equal(t, "10", a.basicDisplay.Value())
	assert.Equal(t, 1, a.historyPanel.Len())
	assert.Equal(t, "7 + 3", a.engine.History()[0].Expression)
}

func TestModesShareOneEngine(t *testing.T) {
	a := newTestApp(t, nil)
	tap(t, a.basicKeypad, "8", "1")

	a.setAdvanced(true)
	assert.Equal(t, a.advancedView, a.window.Content())
	assert.Equal(t, "81", a.advancedDisplay.Value())

	tap(t, a.scientificKeypad, "√")
	tap(t, a.advancedKeypad, "+", "1", "=")
	assert.Equal(t, "10", a.advancedDisplay.Value())

	a.setAdvanced(false)
	assert.Equal(t, a.basicView, a.window.Content())
	assert.Equal(t, "10", a.basicDisplay.Value())
	assert.Equal(t, 2, a.historyPanel.Len())
}

func TestPowerKeyInAdvancedMode(t *testing.T) {
	a := newTestApp(t, nil)
	a.setAdvanced(true)
	tap(t, a.advancedKeypad, "2")
	tap(t, a.scientificKeypad, "xʸ")
	tap(t, a.advancedKeypad, "8", "=")
	assert.Equal(t, "256", a.advancedDisplay.Value())
}

func TestCopyWritesClipboard(t *testing.T) {
	a := newTestApp(t, nil)
	tap(t, a.basicKeypad, "4", "2")

	test.Tap(a.basicDisplay.copyButton)
	assert.Equal(t, "42", a.fyneApp.Clipboard().Content())
	assert.True(t, a.basicDisplay.Copied())

	a.basicDisplay.resetCopied()
	assert.False(t, a.basicDisplay.Copied())
}

func TestHistoryPanelUseAndClear(t *testing.T) {
	a := newTestApp(t, nil)
	tap(t, a.basicKeypad, "5", "×", "5", "=", "C")
	assert.Equal(t, "0", a.basicDisplay.Value())

	a.toggleHistory()
	require.True(t, a.historyPanel.Visible())
	assert.True(t, a.historyPanel.clearButton.Visible())

	a.historyPanel.Select(0)
	assert.Equal(t, "25", a.basicDisplay.Value())
	assert.False(t, a.historyPanel.Visible())

	a.toggleHistory()
	test.Tap(a.historyPanel.clearButton)
	assert.Equal(t, 0, a.historyPanel.Len())
	assert.False(t, a.historyPanel.clearButton.Visible())
	assert.True(t, a.historyPanel.emptyLabel.Visible())
	assert.Equal(t, "No previous calculations", a.historyPanel.emptyLabel.Text)
}

func TestTypingOnCanvas(t *testing.T) {
	a := newTestApp(t, nil)
	test.TypeOnCanvas(a.window.Canvas(), "12*3=")
	assert.Equal(t, "36", a.basicDisplay.Value())

	a.window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, "0", a.basicDisplay.Value())
}

func TestDarkModeToggle(t *testing.T) {
	a := newTestApp(t, nil)
	require.False(t, a.isDark)
	assert.Equal(t, "🌙", a.darkButton.Text)

	test.Tap(a.darkButton)
	assert.True(t, a.isDark)
	assert.False(t, a.followSystem)
	assert.Equal(t, utils.ThemeDark, a.config.UI.Theme)
	assert.Equal(t, "☀️", a.darkButton.Text)

	test.Tap(a.darkButton)
	assert.Equal(t, utils.ThemeLight, a.config.UI.Theme)
}

func TestColorThemeSelection(t *testing.T) {
	a := newTestApp(t, nil)
	a.setColorTheme("theme-pink")
	assert.Equal(t, "theme-pink", a.config.UI.ColorTheme)

	current := a.fyneApp.Settings().Theme()
	_, ok := current.(*calcTheme)
	assert.True(t, ok, "calculator theme should be installed")

	a.setColorTheme("theme-missing")
	assert.Equal(t, "theme-blue", a.config.UI.ColorTheme)
}

func TestSettingsAreSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	a := newTestApp(t, nil)
	a.configPath = path

	a.setColorTheme("theme-orange")
	a.toggleDarkMode()

	loaded, err := utils.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "theme-orange", loaded.UI.ColorTheme)
	assert.Equal(t, utils.ThemeDark, loaded.UI.Theme)
}

func TestEnvOverrideIsNotSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, utils.SaveConfig(path, utils.DefaultConfig()))

	t.Setenv("CALC_COLOR_THEME", "theme-orange")
	config, err := utils.LoadConfig(path)
	require.NoError(t, err)
	config.UI.Theme = utils.ThemeLight

	a := newApp(test.NewTempApp(t), config, path, nil, utils.NewWriterLogger(io.Discard))
	assert.Equal(t, "theme-orange", a.config.UI.ColorTheme)
	a.toggleDarkMode()

	t.Setenv("CALC_COLOR_THEME", "")
	saved, err := utils.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "theme-blue", saved.UI.ColorTheme)
	assert.Equal(t, utils.ThemeDark, saved.UI.Theme)
}

func TestHistoryIsPersistedWhenEnabled(t *testing.T) {
	database, err := db.New(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer database.Close()

	first := newTestApp(t, database)
	tap(t, first.basicKeypad, "7", "+", "3", "=")
	tap(t, first.basicKeypad, "9", "÷", "3", "=")

	second := newTestApp(t, database)
	history := second.engine.History()
	require.Len(t, history, 2)
	assert.Equal(t, "9 ÷ 3", history[0].Expression)
	assert.Equal(t, "7 + 3", history[1].Expression)
	assert.Equal(t, 2, second.historyPanel.Len())

	second.engine.ClearHistory()
	count, err := database.CountEntries()
	require.NoError(t, err)
	assert.Zero(t, count)
}
