// Package cli implements the sumo command line: running the shell and its
// diagnostic subcommands.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0xMasayoshi/sumo/internal/config"
	"github.com/0xMasayoshi/sumo/internal/daemon"
	"github.com/0xMasayoshi/sumo/internal/logging"
	"github.com/0xMasayoshi/sumo/internal/menu"
	"github.com/0xMasayoshi/sumo/internal/models"
	"github.com/0xMasayoshi/sumo/internal/shell"
	"github.com/0xMasayoshi/sumo/internal/tray"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sumo",
	Short: "Sumo desktop shell",
	Long: `Sumo starts the sumo-daemon background service and installs the
native application menu. It exits with a non-zero status if either fails.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runShell,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json (default: console on a terminal, json otherwise)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if logLevel != "" {
		settings.Logging.Level = logLevel
	}

	logger, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lockPath, err := config.GlobalLockFile()
	if err != nil {
		return fmt.Errorf("failed to resolve lock file: %w", err)
	}
	instance, err := shell.AcquireInstance(lockPath)
	if err != nil {
		logger.Error("startup failed", zap.String("lock", lockPath), zap.Error(err))
		return err
	}
	defer func() {
		if err := instance.Release(); err != nil {
			logger.Warn("failed to release instance lock", zap.Error(err))
		}
	}()

	spec, err := config.DaemonLaunchSpec(settings)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return fmt.Errorf("failed to resolve daemon path: %w", err)
	}

	host := tray.NewHost(logger)
	supervisor := daemon.NewSupervisor(spec, logger)
	router := menu.NewRouter(menu.Handlers{}, logger)

	// onReady runs on its own goroutine; the error crosses back through errCh.
	errCh := make(chan error, 1)

	onReady := func() {
		if err := shell.Bootstrap(host, supervisor, router, logger); err != nil {
			logger.Error("startup failed",
				zap.String("daemon", spec.Path),
				zap.Strings("args", spec.Args),
				zap.Error(err),
			)
			errCh <- err
			tray.Quit()
			return
		}

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
			tray.Quit()
		}()
	}

	onExit := func() {
		host.Close()
		logger.Info("shell stopped")
	}

	// This blocks the main goroutine until the tray exits.
	tray.Run(onReady, onExit)

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func newLogger(settings *models.Settings) (*zap.Logger, error) {
	opts := logging.Options{Level: settings.Logging.Level, Format: logFormat}
	if settings.Logging.File {
		if err := config.EnsureGlobalLogsDir(); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		path, err := config.GlobalLogFile()
		if err != nil {
			return nil, err
		}
		opts.File = path
	}
	return logging.New(opts)
}
