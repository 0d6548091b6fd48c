package ui

import (
	"image/color"

	"light-calculator/calc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const historyPanelHeight = 220

// HistoryPanel lists previous calculations, newest first
type HistoryPanel struct {
	widget.BaseWidget

	tr      *Translator
	entries []calc.HistoryEntry

	list         *widget.List
	emptyLabel   *widget.Label
	clearButton  *widget.Button
	exportButton *widget.Button
	background   *canvas.Rectangle

	// OnUse is called when an entry is tapped
	OnUse func(entry calc.HistoryEntry)
	// OnClear is called when the trash button is tapped
	OnClear func()
	// OnExport is called when the export button is tapped
	OnExport func()
}

// NewHistoryPanel creates an empty history panel
func NewHistoryPanel(tr *Translator) *HistoryPanel {
	p := &HistoryPanel{tr: tr}

	p.list = widget.NewList(
		func() int { return len(p.entries) },
		p.createRow,
		p.updateRow,
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(p.entries) && p.OnUse != nil {
			p.OnUse(p.entries[id])
		}
		p.list.UnselectAll()
	}

	p.emptyLabel = widget.NewLabel(tr.T("history_empty"))
	p.emptyLabel.Alignment = fyne.TextAlignCenter

	p.clearButton = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if p.OnClear != nil {
			p.OnClear()
		}
	})
	p.clearButton.Importance = widget.DangerImportance

	p.exportButton = widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), func() {
		if p.OnExport != nil {
			p.OnExport()
		}
	})
	p.exportButton.Importance = widget.LowImportance

	p.ExtendBaseWidget(p)
	p.refreshState()
	return p
}

// SetEntries replaces the shown entries
func (p *HistoryPanel) SetEntries(entries []calc.HistoryEntry) {
	p.entries = entries
	p.refreshState()
	p.list.Refresh()
}

// Len returns the number of shown entries
func (p *HistoryPanel) Len() int {
	return len(p.entries)
}

// Select uses the entry at index i as if it had been tapped
func (p *HistoryPanel) Select(i int) {
	p.list.Select(i)
}

func (p *HistoryPanel) refreshState() {
	// trash and export only make sense with something to act on
	if len(p.entries) == 0 {
		p.clearButton.Hide()
		p.exportButton.Hide()
		p.list.Hide()
		p.emptyLabel.Show()
		return
	}
	p.clearButton.Show()
	p.exportButton.Show()
	p.emptyLabel.Hide()
	p.list.Show()
}

func (p *HistoryPanel) createRow() fyne.CanvasObject {
	expression := widget.NewLabel("")
	expression.TextStyle = fyne.TextStyle{Monospace: true}
	expression.Importance = widget.LowImportance

	result := widget.NewLabel("")
	result.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}

	timestamp := widget.NewLabel("")
	timestamp.SizeName = theme.SizeNameCaptionText

	return container.NewBorder(nil, nil, nil, timestamp, container.NewVBox(expression, result))
}

func (p *HistoryPanel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(p.entries) {
		return
	}
	entry := p.entries[id]

	row := obj.(*fyne.Container)
	texts := row.Objects[0].(*fyne.Container)
	texts.Objects[0].(*widget.Label).SetText(entry.Expression)
	texts.Objects[1].(*widget.Label).SetText("= " + entry.Result)
	row.Objects[1].(*widget.Label).SetText(entry.Timestamp.Format("15:04"))
}

// CreateRenderer creates the renderer for the history panel
func (p *HistoryPanel) CreateRenderer() fyne.WidgetRenderer {
	title := container.NewHBox(
		widget.NewIcon(theme.HistoryIcon()),
		widget.NewLabelWithStyle(p.tr.T("history"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	header := container.NewBorder(nil, nil, title, container.NewHBox(p.exportButton, p.clearButton))

	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(0, historyPanelHeight))
	body := container.NewStack(sizer, p.list, container.NewCenter(p.emptyLabel))

	p.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	p.background.CornerRadius = theme.InputRadiusSize()

	return widget.NewSimpleRenderer(container.NewStack(
		p.background,
		container.NewPadded(container.NewBorder(header, nil, nil, nil, body)),
	))
}

// Refresh picks up theme changes for the panel background
func (p *HistoryPanel) Refresh() {
	if p.background != nil {
		p.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	}
	p.BaseWidget.Refresh()
}
