package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test fallback when nothing is saved
	if url := settings.GetServerURL(DefaultServerURL); url != DefaultServerURL {
		t.Errorf("Expected fallback %s, got %s", DefaultServerURL, url)
	}
	if settings.HasServerURL() {
		t.Error("No server URL should be saved yet")
	}

	// Test setting custom value
	settings.SetServerURL("https://convert.example.com")
	if url := settings.GetServerURL(DefaultServerURL); url != "https://convert.example.com" {
		t.Errorf("Expected saved URL, got %s", url)
	}
	if !settings.HasServerURL() {
		t.Error("Server URL should be saved")
	}

	// Test clearing
	settings.SetServerURL("")
	if url := settings.GetServerURL(DefaultServerURL); url != DefaultServerURL {
		t.Errorf("Expected fallback after clearing, got %s", url)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if d := settings.GetRequestTimeout(DefaultRequestTimeout); d != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultRequestTimeout, d)
	}

	// Test setting custom value
	settings.SetRequestTimeout(10 * time.Second)
	if d := settings.GetRequestTimeout(DefaultRequestTimeout); d != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %v", d)
	}

	// Test boundary values
	settings.SetRequestTimeout(0) // Should be clamped to 1s
	if settings.GetRequestTimeout(DefaultRequestTimeout) != time.Second {
		t.Error("Timeout should be clamped to minimum 1s")
	}

	settings.SetRequestTimeout(10 * time.Minute) // Should be clamped to 120s
	if settings.GetRequestTimeout(DefaultRequestTimeout) != 120*time.Second {
		t.Error("Timeout should be clamped to maximum 120s")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.HasLanguage() {
		t.Error("Expected no saved language on a fresh app")
	}

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestLastTab(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if tab := settings.GetLastTab(); tab != "" {
		t.Errorf("Expected no last tab, got %s", tab)
	}

	settings.SetLastTab("currency")
	if tab := settings.GetLastTab(); tab != "currency" {
		t.Errorf("Expected last tab 'currency', got %s", tab)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
