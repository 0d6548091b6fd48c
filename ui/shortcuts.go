package ui

import (
	"light-calculator/calc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// keyForRune maps a typed character to a keypad label
func keyForRune(r rune) (string, bool) {
	switch {
	case r >= '0' && r <= '9':
		return string(r), true
	case r == '.' || r == ',':
		return calc.KeyDecimal, true
	case r == '+':
		return "+", true
	case r == '-':
		return "-", true
	case r == '*' || r == 'x' || r == '×':
		return "×", true
	case r == '/' || r == '÷':
		return "÷", true
	case r == '^':
		return calc.KeyPower, true
	case r == '=':
		return calc.KeyEquals, true
	case r == '(' || r == ')':
		return string(r), true
	}
	return "", false
}

// keyForKeyName maps a non-character key to a keypad label
func keyForKeyName(name fyne.KeyName) (string, bool) {
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return calc.KeyEquals, true
	case fyne.KeyEscape:
		return calc.KeyClear, true
	case fyne.KeyBackspace, fyne.KeyDelete:
		return calc.KeyClearEntry, true
	}
	return "", false
}

// setupKeyboardShortcuts routes typing and shortcuts to the engine
func (a *App) setupKeyboardShortcuts() {
	canvas := a.window.Canvas()

	canvas.SetOnTypedRune(func(r rune) {
		if label, ok := keyForRune(r); ok {
			a.press(label)
		}
	})
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if label, ok := keyForKeyName(ev.Name); ok {
			a.press(label)
		}
	})

	// Ctrl+C: Copy result
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyC,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(shortcut fyne.Shortcut) {
		a.logger.Info("Keyboard shortcut: copy result")
		a.copyResult()
	})

	// Ctrl+H: Toggle history
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyH,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(shortcut fyne.Shortcut) {
		a.logger.Info("Keyboard shortcut: toggle history")
		if !a.showAdvanced {
			a.toggleHistory()
		}
	})

	// Ctrl+M: Toggle advanced mode
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyM,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(shortcut fyne.Shortcut) {
		a.logger.Info("Keyboard shortcut: toggle advanced mode")
		a.setAdvanced(!a.showAdvanced)
	})

	a.logger.Info("Keyboard shortcuts registered")
}
