package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette is one of the selectable color themes
type Palette struct {
	ID         string
	NameKey    string // translation id
	Hue        float64
	Saturation float64 // percent
	Lightness  float64 // percent
}

// Palettes lists the color themes in menu order
var Palettes = []Palette{
	{ID: "theme-blue", NameKey: "theme_blue", Hue: 220, Saturation: 60, Lightness: 55},
	{ID: "theme-purple", NameKey: "theme_purple", Hue: 260, Saturation: 60, Lightness: 55},
	{ID: "theme-green", NameKey: "theme_green", Hue: 140, Saturation: 60, Lightness: 50},
	{ID: "theme-orange", NameKey: "theme_orange", Hue: 25, Saturation: 85, Lightness: 55},
	{ID: "theme-pink", NameKey: "theme_pink", Hue: 330, Saturation: 60, Lightness: 55},
}

// paletteByID returns the palette with the given id, or the first one
func paletteByID(id string) Palette {
	for _, p := range Palettes {
		if p.ID == id {
			return p
		}
	}
	return Palettes[0]
}

// Color returns the palette's primary color with the given alpha
func (p Palette) Color(alpha uint8) color.NRGBA {
	return hslToNRGBA(p.Hue, p.Saturation/100, p.Lightness/100, alpha)
}

// hslToNRGBA converts h in degrees and s, l in [0,1]
func hslToNRGBA(h, s, l float64, alpha uint8) color.NRGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	to8 := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: alpha}
}

// calcTheme tints the default theme with a palette and pins the variant
// so the dark-mode toggle wins over the system setting
type calcTheme struct {
	palette      Palette
	variant      fyne.ThemeVariant
	baseFontSize float32
	baseTheme    fyne.Theme
}

// newCalcTheme creates a theme for the palette and light/dark mode
func newCalcTheme(palette Palette, isDark bool, baseFontSize int) fyne.Theme {
	variant := theme.VariantLight
	if isDark {
		variant = theme.VariantDark
	}
	return &calcTheme{
		palette:      palette,
		variant:      variant,
		baseFontSize: float32(baseFontSize),
		baseTheme:    theme.DefaultTheme(),
	}
}

func (t *calcTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.palette.Color(0xff)
	case theme.ColorNameFocus:
		return t.palette.Color(0x7f)
	case theme.ColorNameSelection:
		return t.palette.Color(0x3f)
	case theme.ColorNameHyperlink:
		return t.palette.Color(0xff)
	}
	return t.baseTheme.Color(name, t.variant)
}

func (t *calcTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.baseTheme.Font(style)
}

func (t *calcTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.baseTheme.Icon(name)
}

func (t *calcTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.baseFontSize
	case theme.SizeNameHeadingText:
		return t.baseFontSize * 2
	case theme.SizeNameSubHeadingText:
		return t.baseFontSize * 1.2
	case theme.SizeNameCaptionText:
		return t.baseFontSize * 0.85
	default:
		return t.baseTheme.Size(name)
	}
}
