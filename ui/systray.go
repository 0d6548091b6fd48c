package ui

import (
	"light-calculator/utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// SetupSystemTray adds a tray menu on desktop drivers. Other drivers,
// including the test driver, have no tray and are skipped.
func (a *App) SetupSystemTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		return
	}

	mShow := fyne.NewMenuItem(a.tr.T("tray_show"), utils.Guard(a.logger, "tray show", func() {
		a.window.Show()
		a.window.RequestFocus()
		a.logger.Info("Window shown from system tray")
	}))
	mCopy := fyne.NewMenuItem(a.tr.T("tray_copy"), utils.Guard(a.logger, "tray copy", func() {
		a.copyResult()
		a.logger.Info("Result copied from system tray")
	}))

	// fyne appends its own Quit item
	desk.SetSystemTrayMenu(fyne.NewMenu(a.tr.T("app_title"), mShow, mCopy))
	a.logger.Info("System tray initialized")
}

// EnableMinimizeToTray hides the window on close instead of quitting
func (a *App) EnableMinimizeToTray() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Window close intercepted - minimizing to tray")
		a.window.Hide()
	})
}

// DisableMinimizeToTray restores normal close behavior
func (a *App) DisableMinimizeToTray() {
	a.window.SetCloseIntercept(nil)
}
