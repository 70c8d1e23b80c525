package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/multi-converter/internal/model"
)

func TestConverterThemeMessageColors(t *testing.T) {
	th := NewConverterTheme()

	light := th.Color(theme.ColorNameSuccess, theme.VariantLight)
	dark := th.Color(theme.ColorNameSuccess, theme.VariantDark)
	if light == dark {
		t.Error("Expected success color to differ between variants")
	}
	if got := th.Color(theme.ColorNameError, theme.VariantLight); got != (color.NRGBA{R: 183, G: 28, B: 28, A: 255}) {
		t.Errorf("Unexpected error color %v", got)
	}

	want := theme.DefaultTheme().Color(theme.ColorNamePrimary, theme.VariantLight)
	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != want {
		t.Errorf("Unlisted colors should come from the default theme: got %v want %v", got, want)
	}
}

func TestConverterThemeResultStaysLegible(t *testing.T) {
	th := NewConverterTheme()
	for _, variant := range []fyne.ThemeVariant{theme.VariantLight, theme.VariantDark} {
		got, ok := th.Color(theme.ColorNameDisabled, variant).(color.NRGBA)
		if !ok {
			t.Fatalf("Expected an NRGBA disabled color, got %T", th.Color(theme.ColorNameDisabled, variant))
		}
		fr, fg, fb, _ := theme.DefaultTheme().Color(theme.ColorNameForeground, variant).RGBA()
		if got.R != uint8(fr>>8) || got.G != uint8(fg>>8) || got.B != uint8(fb>>8) || got.A != 200 {
			t.Errorf("Variant %d: expected translucent foreground, got %v", variant, got)
		}
	}
}

func TestConverterThemeSizes(t *testing.T) {
	th := NewConverterTheme()

	text := theme.DefaultTheme().Size(theme.SizeNameText)
	if got := th.Size(SizeNameMessageText); got != text-1 {
		t.Errorf("Expected message text %v, got %v", text-1, got)
	}
	if got := th.Size(theme.SizeNameInnerPadding); got != 6 {
		t.Errorf("Expected inner padding 6, got %v", got)
	}

	want := theme.DefaultTheme().Size(theme.SizeNameScrollBar)
	if got := th.Size(theme.SizeNameScrollBar); got != want {
		t.Errorf("Unlisted sizes should come from the default theme: got %v want %v", got, want)
	}
}

func TestMessageLabelUsesMessageTextSize(t *testing.T) {
	p := newTestPanel(t, model.CategoryLength, nil)

	if p.messageLabel.SizeName != SizeNameMessageText {
		t.Errorf("Expected message label size %q, got %q", SizeNameMessageText, p.messageLabel.SizeName)
	}
}
