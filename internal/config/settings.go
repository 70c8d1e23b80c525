package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL      = "server_url"
	KeyLanguage       = "app_language"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLastTab        = "last_tab"
)

// Request timeout bounds, in seconds
const (
	MinRequestTimeoutSeconds = 1
	MaxRequestTimeoutSeconds = 120
)

// Settings manages the user choices persisted between runs
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the saved server URL, or fallback when none was saved
func (s *Settings) GetServerURL(fallback string) string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		return fallback
	}
	return url
}

// HasServerURL reports whether the user saved a server URL
func (s *Settings) HasServerURL() bool {
	return s.app.Preferences().String(KeyServerURL) != ""
}

// SetServerURL saves the server URL; an empty value clears it
func (s *Settings) SetServerURL(url string) {
	if url == "" {
		s.app.Preferences().RemoveValue(KeyServerURL)
		return
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// HasLanguage reports whether a language was saved
func (s *Settings) HasLanguage() bool {
	return s.app.Preferences().String(KeyLanguage) != ""
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRequestTimeout returns the saved request timeout, or fallback when none was saved
func (s *Settings) GetRequestTimeout(fallback time.Duration) time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeout saves the request timeout, clamped to whole seconds in range
func (s *Settings) SetRequestTimeout(d time.Duration) {
	seconds := int(d / time.Second)
	if seconds < MinRequestTimeoutSeconds {
		seconds = MinRequestTimeoutSeconds
	}
	if seconds > MaxRequestTimeoutSeconds {
		seconds = MaxRequestTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetLastTab returns the tab that was active when the window last changed tabs
func (s *Settings) GetLastTab() string {
	return s.app.Preferences().String(KeyLastTab)
}

// SetLastTab remembers the active tab
func (s *Settings) SetLastTab(tab string) {
	s.app.Preferences().SetString(KeyLastTab, tab)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
