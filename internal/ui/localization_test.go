package ui

import (
	"testing"

	"github.com/ytget/multi-converter/internal/controller"
	"github.com/ytget/multi-converter/internal/model"
)

func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()

	for key := range l.texts["en"] {
		for lang := range l.GetAvailableLanguages() {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Error("Unknown language should be ignored")
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Missing key should return itself, got %q", got)
	}
}

func TestEnglishEmptyInputMatchesController(t *testing.T) {
	l := NewLocalization()

	for _, c := range model.Categories() {
		if got, want := l.EmptyInputText(c), controller.NewHandler(c).EmptyMessage; got != want {
			t.Errorf("%s: EmptyInputText() = %q, want %q", c, got, want)
		}
	}
}

func TestCategoryTitles(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.CategoryTitle(model.CategoryCurrency); got != "Валюта" {
		t.Errorf("Unexpected title %q", got)
	}
	if got := l.CategoryTitle(model.Category("area")); got != "area" {
		t.Errorf("Unknown category should fall back to its name, got %q", got)
	}
}
