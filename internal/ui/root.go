package ui

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/multi-converter/internal/api"
	"github.com/ytget/multi-converter/internal/config"
	"github.com/ytget/multi-converter/internal/controller"
	"github.com/ytget/multi-converter/internal/logging"
	"github.com/ytget/multi-converter/internal/model"
)

// BackendFactory builds the backend for a server URL and request timeout
type BackendFactory func(serverURL string, timeout time.Duration) api.Backend

// Options configures the main window
type Options struct {
	// Config holds the resolved defaults/file/flag values
	Config config.Options

	// ServerPinned is set when the server URL came from the command line;
	// a URL saved in preferences is then ignored
	ServerPinned bool

	Logger     *slog.Logger
	NewBackend BackendFactory
	Clock      controller.Clock
}

// session is the backend and controller serving the current settings
type session struct {
	backend api.Backend
	ctrl    *controller.Controller
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	layout       *MobileUI
	logger       *slog.Logger
	opts         Options
	ctx          context.Context

	port   *WidgetPort
	tabs   *controller.TabSet
	tabBar *TabBar
	panels []*ConversionPanel

	settingsBtn *widget.Button
	aboutBtn    *widget.Button

	current atomic.Pointer[session]

	// unitLoads tracks the background unit-list fetches
	unitLoads sync.WaitGroup
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.NewBackend == nil {
		logger := opts.Logger
		opts.NewBackend = func(serverURL string, timeout time.Duration) api.Backend {
			return api.NewClient(serverURL, api.WithTimeout(timeout), api.WithLogger(logger))
		}
	}
	if opts.Clock == nil {
		opts.Clock = controller.SystemClock{}
	}

	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	language := opts.Config.Language
	if settings.HasLanguage() || language == "" {
		language = settings.GetLanguage()
	}
	localization := NewLocalization()
	localization.SetLanguage(language)

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		layout:       NewMobileUI(),
		logger:       opts.Logger,
		opts:         opts,
		ctx:          context.Background(),
		port:         NewWidgetPort(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.connect()
	ui.setupUI()
	ui.restoreTab()
	return ui
}

// Start runs the startup health check and loads the unit lists in the background
func (ui *RootUI) Start(ctx context.Context) {
	ui.ctx = ctx
	s := ui.session()

	if ui.opts.Config.HealthCheck {
		go func() {
			_, _ = controller.CheckHealth(ctx, s.backend, ui.logger)
		}()
	}
	ui.loadUnitsAsync(ctx, s.backend)
}

// ServerURL returns the URL the window talks to
func (ui *RootUI) ServerURL() string {
	if ui.serverURLSource() == sourcePreferences {
		return ui.settings.GetServerURL(ui.opts.Config.ServerURL)
	}
	return ui.opts.Config.ServerURL
}

// Where the server URL was taken from
const (
	sourceFlag        = "flag"
	sourcePreferences = "preferences"
	sourceConfig      = "config"
)

func (ui *RootUI) serverURLSource() string {
	switch {
	case ui.opts.ServerPinned:
		return sourceFlag
	case ui.settings.HasServerURL():
		return sourcePreferences
	default:
		return sourceConfig
	}
}

// Controller returns the controller serving the current settings
func (ui *RootUI) Controller() *controller.Controller {
	return ui.session().ctrl
}

// Tabs returns the tab set
func (ui *RootUI) Tabs() *controller.TabSet {
	return ui.tabs
}

// Panel returns the panel of a category
func (ui *RootUI) Panel(c model.Category) *ConversionPanel {
	for _, p := range ui.panels {
		if p.Category() == c {
			return p
		}
	}
	return nil
}

func (ui *RootUI) session() *session {
	return ui.current.Load()
}

// connect builds the backend and controller from the current settings
func (ui *RootUI) connect() {
	serverURL := ui.ServerURL()
	timeout := ui.settings.GetRequestTimeout(ui.opts.Config.RequestTimeout)
	backend := ui.opts.NewBackend(serverURL, timeout)

	ctrl := controller.New(backend, ui.port,
		controller.WithClock(ui.opts.Clock),
		controller.WithLogger(ui.logger),
		controller.WithResetDelay(ui.opts.Config.MessageReset),
		controller.WithHandlers(ui.localizedHandlers()...),
	)
	ui.current.Store(&session{backend: backend, ctrl: ctrl})

	ui.logger.Info("backend configured",
		slog.String("server_url", serverURL),
		slog.String("source", ui.serverURLSource()),
		slog.Duration("timeout", timeout))
}

// localizedHandlers returns the default handlers with empty-input messages in the current language
func (ui *RootUI) localizedHandlers() []controller.Handler {
	handlers := controller.DefaultHandlers()
	for i := range handlers {
		handlers[i].EmptyMessage = ui.localization.EmptyInputText(handlers[i].Category)
	}
	return handlers
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	catalog := model.DefaultUnitCatalog()
	buttons := make([]controller.TabButton, 0, len(model.Categories()))
	panelIDs := make([]string, 0, len(model.Categories()))
	objects := make(map[string]fyne.CanvasObject, len(model.Categories()))

	for _, h := range controller.DefaultHandlers() {
		category := h.Category // Capture for closure
		panel := NewConversionPanel(h, catalog.Units(category), ui.localization, ui.layout, func() {
			ui.onConvert(category)
		})
		panel.Register(ui.port)
		ui.panels = append(ui.panels, panel)

		buttons = append(buttons, controller.TabButton{
			Label:  ui.localization.CategoryTitle(category),
			Target: category.String(),
		})
		panelIDs = append(panelIDs, category.String())
		objects[category.String()] = panel.Container()
	}

	ui.tabs = controller.NewTabSet(buttons, panelIDs)
	ui.tabBar = NewTabBar(ui.tabs, objects, ui.layout)
	ui.tabs.OnChange(ui.onTabChanged)

	// Create settings and about buttons
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	ui.aboutBtn = widget.NewButton(IconInfo, ui.onShowAbout)
	ui.aboutBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil, container.NewHBox(ui.settingsBtn, ui.aboutBtn), ui.tabBar.Strip())

	var center fyne.CanvasObject = container.NewVScroll(container.NewPadded(ui.tabBar.Content()))
	if ui.layout.IsMobileDevice() {
		center = NewSwipeArea(center, ui.onGesture)
	}

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, center))
}

// restoreTab activates the tab used last time, or the first one
func (ui *RootUI) restoreTab() {
	if last := ui.settings.GetLastTab(); last != "" && ui.tabs.Select(last) {
		return
	}
	ui.tabs.Click(0)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(languages)) {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	aboutItem := fyne.NewMenuItem(ui.localization.GetText(KeyAbout), ui.onShowAbout)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
		fyne.NewMenu(ui.localization.GetText(KeyHelp), aboutItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onConvert runs the category's conversion off the UI goroutine
func (ui *RootUI) onConvert(category model.Category) {
	ctrl := ui.session().ctrl
	ctx := ui.ctx
	go func() {
		if _, err := ctrl.Submit(ctx, category); err != nil {
			logging.LogError(ui.logger, "conversion not submitted", err, slog.String("category", category.String()))
		}
	}()
}

// onTabChanged remembers the active tab
func (ui *RootUI) onTabChanged() {
	if target, ok := ui.tabs.ActiveTarget(); ok {
		ui.settings.SetLastTab(target)
	}
}

// onGesture moves between tabs on horizontal swipes
func (ui *RootUI) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		ui.tabs.Next()
	case GestureSwipeRight:
		ui.tabs.Prev()
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	labels := make([]string, 0, len(ui.panels))
	for _, p := range ui.panels {
		p.RefreshTexts()
		labels = append(labels, ui.localization.CategoryTitle(p.Category()))
	}
	ui.tabBar.SetLabels(labels)

	ctrl := ui.session().ctrl
	for _, h := range ui.localizedHandlers() {
		if err := ctrl.SetHandler(h); err != nil {
			logging.LogError(ui.logger, "handler not updated", err, slog.String("category", h.Category.String()))
		}
	}
}

// onSettingsSaved applies saved settings to the running window
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.connect()
	ui.refreshUITexts()
	ui.createMenu()
	ui.loadUnitsAsync(ui.ctx, ui.session().backend)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.opts.Config, ui.onSettingsSaved).Show()
}

// onShowAbout fetches the service description and shows it
func (ui *RootUI) onShowAbout() {
	backend := ui.session().backend
	ctx := ui.ctx
	go func() {
		info, err := backend.Info(ctx)
		fyne.Do(func() {
			title := ui.localization.GetText(KeyAbout)
			if err != nil {
				logging.LogError(ui.logger, "service info unavailable", err)
				dialog.ShowInformation(title, ui.localization.GetText(KeyServiceUnavailable), ui.window)
				return
			}
			dialog.ShowInformation(title, AboutText(info, ui.localization), ui.window)
		})
	}()
}

func (ui *RootUI) loadUnitsAsync(ctx context.Context, backend api.Backend) {
	ui.unitLoads.Add(1)
	go func() {
		defer ui.unitLoads.Done()
		ui.loadUnits(ctx, backend)
	}()
}

// loadUnits replaces the selector options with the server's lists; failures keep the defaults
func (ui *RootUI) loadUnits(ctx context.Context, backend api.Backend) {
	fetched, err := backend.Units(ctx)
	if err != nil {
		logging.LogError(ui.logger, "unit lists unavailable, using defaults", err)
		return
	}

	catalog := model.DefaultUnitCatalog().Merge(fetched)
	fyne.Do(func() {
		for _, p := range ui.panels {
			p.SetUnits(catalog.Units(p.Category()))
		}
	})
	ui.logger.Debug("unit lists loaded", slog.Int("categories", len(fetched)))
}

// AboutText renders the service description for the About dialog
func AboutText(info *model.AppInfo, l *Localization) string {
	var b strings.Builder
	b.WriteString(info.Name)
	if info.Version != "" {
		b.WriteString("\n" + l.GetText(KeyVersion) + ": " + info.Version)
	}
	if info.Description != "" {
		b.WriteString("\n\n" + info.Description)
	}
	if len(info.Features) > 0 {
		b.WriteString("\n\n" + l.GetText(KeyFeatures) + ":")
		for _, f := range info.Features {
			b.WriteString("\n" + ListBullet + f)
		}
	}
	return b.String()
}
