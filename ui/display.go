package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// copiedResetDelay is how long the copy button shows its check mark
const copiedResetDelay = 2 * time.Second

// Display shows the calculator value with a copy button next to it
type Display struct {
	widget.BaseWidget

	value      *widget.RichText
	segment    *widget.TextSegment
	copyButton *widget.Button
	onCopy     func()
	copied     bool
}

// NewDisplay creates a display. onCopy is called when the copy button is tapped.
func NewDisplay(onCopy func()) *Display {
	d := &Display{onCopy: onCopy}

	d.segment = &widget.TextSegment{
		Text: "0",
		Style: widget.RichTextStyle{
			Alignment: fyne.TextAlignTrailing,
			SizeName:  theme.SizeNameHeadingText,
			TextStyle: fyne.TextStyle{Monospace: true},
		},
	}
	d.value = widget.NewRichText(d.segment)
	d.value.Wrapping = fyne.TextWrapBreak

	d.copyButton = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), d.copy)
	d.copyButton.Importance = widget.LowImportance

	d.ExtendBaseWidget(d)
	return d
}

// SetValue updates the shown value
func (d *Display) SetValue(value string) {
	if d.segment.Text == value {
		return
	}
	d.segment.Text = value
	d.value.Refresh()
}

// Value returns the shown value
func (d *Display) Value() string {
	return d.segment.Text
}

// Copied reports whether the check mark is currently shown
func (d *Display) Copied() bool {
	return d.copied
}

func (d *Display) copy() {
	if d.onCopy != nil {
		d.onCopy()
	}

	d.copied = true
	d.copyButton.SetIcon(theme.ConfirmIcon())

	time.AfterFunc(copiedResetDelay, func() {
		fyne.Do(d.resetCopied)
	})
}

func (d *Display) resetCopied() {
	d.copied = false
	d.copyButton.SetIcon(theme.ContentCopyIcon())
}

// CreateRenderer creates the renderer for the display
func (d *Display) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, nil, d.copyButton, d.value)
	return widget.NewSimpleRenderer(container.NewPadded(content))
}
