package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/multi-converter/internal/api"
	"github.com/ytget/multi-converter/internal/config"
	"github.com/ytget/multi-converter/internal/logging"
)

// Application identity
const (
	AppID   = "com.ytget.multi-converter"
	AppName = "Multi-Converter"
)

// appContext is shared by every command once flags are resolved
type appContext struct {
	opts         config.Options
	serverPinned bool
	languageSet  bool
	logger       *slog.Logger
	backend      api.Backend
}

// flagValues holds raw flag input before it is layered over the config file
type flagValues struct {
	configPath    string
	serverURL     string
	language      string
	timeout       time.Duration
	logLevel      string
	noHealthCheck bool
}

// Execute runs the command line with os.Args
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	flags := &flagValues{}
	ac := &appContext{}

	root := &cobra.Command{
		Use:          "multi-converter",
		Short:        "Unit, currency and number-base converter",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ac.resolve(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, ac, version)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&flags.serverURL, "server", config.DefaultServerURL, "conversion service base URL")
	pf.StringVar(&flags.language, "lang", config.DefaultLanguage, "interface language (system, en, ru, pt)")
	pf.DurationVar(&flags.timeout, "timeout", config.DefaultRequestTimeout, "per-request timeout")
	pf.StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&flags.noHealthCheck, "no-health-check", false, "skip the startup health check")

	root.AddCommand(convertCmd(ac), healthCmd(ac), unitsCmd(ac), infoCmd(ac))
	return root
}

// resolve layers defaults, the config file and explicit flags, then builds the logger and client
func (ac *appContext) resolve(cmd *cobra.Command, flags *flagValues) error {
	if err := ac.configure(flags, cmd.Flags().Changed); err != nil {
		return err
	}

	level, err := logging.ParseLevel(ac.opts.LogLevel)
	if err != nil {
		return err
	}

	ac.logger = logging.NewStructuredLogger(cmd.ErrOrStderr(), level)
	ac.backend = api.NewClient(ac.opts.ServerURL,
		api.WithTimeout(ac.opts.RequestTimeout),
		api.WithLogger(ac.logger))
	return nil
}

// configure resolves ac.opts. changed reports whether a flag was given on the command line.
func (ac *appContext) configure(flags *flagValues, changed func(name string) bool) error {
	opts := config.Defaults()

	if flags.configPath != "" {
		file, err := config.LoadFile(flags.configPath)
		if err != nil {
			return err
		}
		opts.Apply(file)
	}

	if changed("server") {
		opts.ServerURL = flags.serverURL
		ac.serverPinned = true
	}
	if changed("lang") {
		opts.Language = flags.language
		ac.languageSet = true
	}
	if changed("timeout") {
		opts.RequestTimeout = flags.timeout
	}
	if changed("log-level") {
		opts.LogLevel = flags.logLevel
	}
	if flags.noHealthCheck {
		opts.HealthCheck = false
	}

	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ac.opts = opts
	return nil
}
