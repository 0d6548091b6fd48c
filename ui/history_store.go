package ui

import (
	"path/filepath"

	"light-calculator/calc"
	"light-calculator/utils"

	"fyne.io/fyne/v2"
)

// restoreHistory seeds the engine with stored entries when persistence is on
func (a *App) restoreHistory() {
	if a.db == nil {
		return
	}

	stored, err := a.db.ListEntries(calc.MaxHistory)
	if err != nil {
		a.logger.Error("Failed to load history: %v", err)
		return
	}

	entries := make([]calc.HistoryEntry, 0, len(stored))
	for _, e := range stored {
		entries = append(entries, calc.HistoryEntry{
			ID:         e.ID,
			Expression: e.Expression,
			Result:     e.Result,
			Timestamp:  e.CreatedAt,
		})
	}

	a.engine.RestoreHistory(entries)
	a.logger.Info("Restored %d history entries", len(entries))
}

// handleEffect carries out side effects requested by the engine
func (a *App) handleEffect(eff calc.Effect) {
	switch eff.Kind {
	case calc.EffectCopyToClipboard:
		// fire and forget, the engine never learns the outcome
		a.fyneApp.Clipboard().SetContent(eff.Text)
		a.logger.Debug("Copied %q to clipboard", eff.Text)

	case calc.EffectHistoryRecorded:
		a.logger.Debug("History: %s = %s", eff.Entry.Expression, eff.Entry.Result)
		if a.db == nil {
			return
		}
		if err := a.db.SaveEntry(eff.Entry.ID, eff.Entry.Expression, eff.Entry.Result, eff.Entry.Timestamp); err != nil {
			a.logger.Error("Failed to persist history entry: %v", err)
			return
		}
		if _, err := a.db.TrimEntries(calc.MaxHistory); err != nil {
			a.logger.Error("Failed to trim stored history: %v", err)
		}

	case calc.EffectHistoryCleared:
		a.logger.Info("History cleared")
		if a.db == nil {
			return
		}
		if err := a.db.ClearEntries(); err != nil {
			a.logger.Error("Failed to clear stored history: %v", err)
		}
	}
}

// showExportMenu offers the export formats under the history panel
func (a *App) showExportMenu() {
	menu := fyne.NewMenu(a.tr.T("export_history"),
		fyne.NewMenuItem("JSON", func() { a.exportHistory(utils.FormatJSON) }),
		fyne.NewMenuItem("Markdown", func() { a.exportHistory(utils.FormatMarkdown) }),
	)
	pos := a.fyneApp.Driver().AbsolutePositionForObject(a.historyPanel)
	a.showPopUpMenu(menu, pos)
}

// exportHistory writes a snapshot of the history off the UI goroutine
func (a *App) exportHistory(format utils.ExportFormat) {
	entries := a.engine.History()

	utils.SafeGo(a.logger, "export history", func() {
		path, err := writeExport(entries, format)
		fyne.Do(func() {
			if err != nil {
				a.logger.Error("Failed to export history: %v", err)
				a.showError(a.tr.TData("export_failed", map[string]interface{}{"Error": err.Error()}))
				return
			}
			a.logger.Info("Exported history to %s", path)
			a.showInfo(a.tr.TData("export_done", map[string]interface{}{"Path": path}))
		})
	})
}

func writeExport(entries []calc.HistoryEntry, format utils.ExportFormat) (string, error) {
	exportDir, err := utils.GetDefaultExportPath()
	if err != nil {
		return "", err
	}

	path := filepath.Join(exportDir, utils.GenerateExportFilename(format))
	if err := utils.ExportHistory(entries, format, path); err != nil {
		return "", err
	}
	return path, nil
}
