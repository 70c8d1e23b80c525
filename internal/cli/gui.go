package cli

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/multi-converter/internal/config"
	"github.com/ytget/multi-converter/internal/ui"
)

// runGUI opens the converter window and blocks until it is closed
func runGUI(cmd *cobra.Command, ac *appContext, version string) error {
	ac.logger.Info("starting", slog.String("app", AppName), slog.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewConverterTheme())

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		ac.logger.Debug("app icon not loaded", slog.String("error", err.Error()))
	}

	// An explicit --lang becomes the saved choice
	if ac.languageSet {
		config.NewSettings(myApp).SetLanguage(ac.opts.Language)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, ui.Options{
		Config:       ac.opts,
		ServerPinned: ac.serverPinned,
		Logger:       ac.logger,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	root.Start(ctx)

	myWindow.ShowAndRun()
	return nil
}
