package ui

import (
	"light-calculator/calc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Keypad is a grid of calculator buttons
type Keypad struct {
	buttons map[string]*widget.Button
	content *fyne.Container
}

// NewKeypad lays out rows of key labels four columns wide. A row with only
// three keys gives its first key two columns, like the "0" key.
func NewKeypad(rows [][]string, onPress func(label string)) *Keypad {
	k := &Keypad{buttons: make(map[string]*widget.Button)}

	var rowObjects []fyne.CanvasObject
	for _, row := range rows {
		cells := make([]fyne.CanvasObject, 0, len(row))
		for _, label := range row {
			cells = append(cells, k.newButton(label, onPress))
		}

		if len(cells) == 3 {
			rest := container.NewGridWithColumns(2, cells[1], cells[2])
			rowObjects = append(rowObjects, container.NewGridWithColumns(2, cells[0], rest))
			continue
		}
		rowObjects = append(rowObjects, container.NewGridWithColumns(4, cells...))
	}

	k.content = container.NewVBox(rowObjects...)
	return k
}

func (k *Keypad) newButton(label string, onPress func(string)) *widget.Button {
	btn := widget.NewButton(label, func() {
		onPress(label)
	})
	btn.Importance = importanceFor(calc.ButtonVariant(label))
	k.buttons[label] = btn
	return btn
}

// Button returns the button for a key label, or nil
func (k *Keypad) Button(label string) *widget.Button {
	return k.buttons[label]
}

// Content returns the keypad's canvas object
func (k *Keypad) Content() fyne.CanvasObject {
	return k.content
}

// importanceFor maps a key variant to a button style
func importanceFor(v calc.Variant) widget.Importance {
	switch v {
	case calc.VariantOperator:
		return widget.HighImportance
	case calc.VariantEquals:
		return widget.SuccessImportance
	case calc.VariantClear:
		return widget.WarningImportance
	}
	return widget.MediumImportance
}
