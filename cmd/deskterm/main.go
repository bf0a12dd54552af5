// Package main runs the deskterm desktop in the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Cyclone1070/deskterm/internal/config"
	"github.com/Cyclone1070/deskterm/internal/desktop"
	"github.com/Cyclone1070/deskterm/internal/logging"
	"github.com/Cyclone1070/deskterm/internal/metrics"
	"github.com/Cyclone1070/deskterm/internal/prefs"
	"github.com/Cyclone1070/deskterm/internal/ui"
	"github.com/Cyclone1070/deskterm/internal/ui/services"
)

// runner is the part of the UI main blocks on.
type runner interface {
	Start() error
}

// options are the command-line overrides.
type options struct {
	configPath  string
	logFile     string
	metricsAddr string
	noMouse     bool
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Session *desktop.Session
	UI      func(*desktop.Session) runner
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "deskterm",
		Short:         "A simulated desktop with a toy terminal, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies(opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}
			if err := run(cmd.Context(), deps); err != nil {
				fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/deskterm/config.json)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write structured logs to this file")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. 127.0.0.1:9464)")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse input")
	return cmd
}

// loadConfig reads the config file and applies flag overrides. A broken
// config file falls back to defaults with a warning.
func loadConfig(loader *config.Loader, opts options) *config.Config {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = loader.LoadFile(opts.configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	if opts.logFile != "" {
		cfg.Logging.Path = opts.logFile
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
	return cfg
}

func buildDependencies(opts options) (Dependencies, error) {
	cfg := loadConfig(config.NewLoader(), opts)

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return Dependencies{}, fmt.Errorf("failed to create logger: %w", err)
	}

	store := openPrefs(cfg, logger)
	session := desktop.New(desktop.Options{
		Config:    cfg,
		Logger:    logger,
		Prefs:     store,
		SessionID: uuid.NewString(),
	})

	return Dependencies{
		Config:  cfg,
		Logger:  logger,
		Session: session,
		UI: func(s *desktop.Session) runner {
			return ui.NewUI(s, services.NewGlamourRenderer("notty"))
		},
	}, nil
}

// openPrefs loads the persisted preference snapshot. An unreadable snapshot
// is logged and the session starts from defaults.
func openPrefs(cfg *config.Config, logger *zap.Logger) *prefs.Store {
	if !cfg.Prefs.Persist || cfg.Prefs.Path == "" {
		return prefs.NewMemoryStore()
	}
	store := prefs.NewStore(prefs.OSFileSystem{}, cfg.Prefs.Path)
	if err := store.Load(); err != nil {
		logger.Warn("preferences not loaded", zap.String("path", cfg.Prefs.Path), zap.Error(err))
	}
	return store
}

// run serves metrics if configured and blocks on the UI until it exits.
func run(ctx context.Context, deps Dependencies) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer deps.Session.Shutdown()

	metricsDone := make(chan struct{})
	if addr := deps.Config.Metrics.Addr; addr != "" {
		go func() {
			defer close(metricsDone)
			if err := metrics.Serve(ctx, addr, deps.Config.Metrics.Path); err != nil {
				deps.Logger.Warn("metrics listener stopped", zap.String("addr", addr), zap.Error(err))
			}
		}()
	} else {
		close(metricsDone)
	}

	deps.Logger.Info("session started", zap.Bool("mouse", deps.Config.UI.Mouse))
	err := deps.UI(deps.Session).Start()

	cancel()
	<-metricsDone
	return err
}
