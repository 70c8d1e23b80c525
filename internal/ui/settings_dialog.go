package ui

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/multi-converter/internal/config"
)

// Settings validation errors
var (
	ErrInvalidServerURL = errors.New("invalid server URL")
	ErrInvalidTimeout   = errors.New("invalid request timeout")
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// defaults shown when nothing was saved
	defaultServerURL string
	defaultTimeout   time.Duration

	// UI components
	serverEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after valid
// values were written to settings.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, defaults config.Options, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:         settings,
		localization:     localization,
		window:           window,
		onSaved:          onSaved,
		defaultServerURL: defaults.ServerURL,
		defaultTimeout:   defaults.RequestTimeout,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder(sd.defaultServerURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeoutSeconds) + "-" + strconv.Itoa(config.MaxRequestTimeoutSeconds))

	languages := slices.Sorted(maps.Keys(sd.settings.GetLanguageOptions()))
	sd.languageSelect = widget.NewSelect(languages, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyServerURL)+":"),
		sd.serverEntry,

		widget.NewLabel(l.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverEntry.SetText(sd.settings.GetServerURL(""))
	timeout := sd.settings.GetRequestTimeout(sd.defaultTimeout)
	sd.timeoutEntry.SetText(strconv.Itoa(int(timeout / time.Second)))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.Apply(sd.serverEntry.Text, sd.timeoutEntry.Text, sd.languageSelect.Selected); err != nil {
		dialog.ShowError(sd.localizedError(err), sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// Apply validates the form values and saves them. An empty server URL clears
// the saved one; an empty timeout or language leaves the saved value alone.
func (sd *SettingsDialog) Apply(serverURL, timeoutSeconds, language string) error {
	serverURL = strings.TrimSpace(serverURL)
	if serverURL != "" {
		if err := config.ValidateServerURL(serverURL); err != nil {
			return errors.Join(ErrInvalidServerURL, err)
		}
	}

	var timeout time.Duration
	if text := strings.TrimSpace(timeoutSeconds); text != "" {
		seconds, err := strconv.Atoi(text)
		if err != nil || seconds < config.MinRequestTimeoutSeconds || seconds > config.MaxRequestTimeoutSeconds {
			return ErrInvalidTimeout
		}
		timeout = time.Duration(seconds) * time.Second
	}

	sd.settings.SetServerURL(strings.TrimSuffix(serverURL, "/"))
	if timeout > 0 {
		sd.settings.SetRequestTimeout(timeout)
	}
	if language != "" {
		sd.settings.SetLanguage(language)
	}
	return nil
}

// localizedError turns a validation error into the message shown to the user
func (sd *SettingsDialog) localizedError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidServerURL):
		return errors.New(sd.localization.GetText(KeyInvalidURL))
	case errors.Is(err, ErrInvalidTimeout):
		return errors.New(sd.localization.GetText(KeyInvalidTimeout))
	}
	return err
}
