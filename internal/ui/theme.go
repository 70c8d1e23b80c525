package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SizeNameMessageText is the text size of the message line under each panel
const SizeNameMessageText fyne.ThemeSizeName = "converterMessageText"

// ConverterTheme is the default theme with readable results and a tinted
// message line
type ConverterTheme struct{}

// NewConverterTheme creates the converter theme
func NewConverterTheme() fyne.Theme {
	return &ConverterTheme{}
}

// Color returns theme colors
func (t *ConverterTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNameSuccess:
		if dark {
			return color.NRGBA{R: 102, G: 187, B: 106, A: 255}
		}
		return color.NRGBA{R: 27, G: 122, B: 47, A: 255}
	case theme.ColorNameError:
		if dark {
			return color.NRGBA{R: 239, G: 83, B: 80, A: 255}
		}
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameDisabled:
		// The result field is a disabled entry; its text must stay legible
		fg := theme.DefaultTheme().Color(theme.ColorNameForeground, variant)
		r, g, b, _ := fg.RGBA()
		return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 200}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ConverterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ConverterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ConverterTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNameMessageText:
		return theme.DefaultTheme().Size(theme.SizeNameText) - 1
	case theme.SizeNameInnerPadding:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
