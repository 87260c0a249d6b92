package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"seat-booking-cli/config"
	"seat-booking-cli/logger"
	"seat-booking-cli/service"
	"seat-booking-cli/store"
	"seat-booking-cli/tui"
)

const appName = "seatbook"

// BuildInfo is stamped by the linker in main.
type BuildInfo struct {
	Version string
	Commit  string
}

type app struct {
	build BuildInfo

	configPath string
	dataDir    string
	outputsDir string
	logLevel   string

	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

// setup loads configuration, creates the data and outputs directories and
// opens the log file.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.outputsDir != "" {
		cfg.OutputsDir = a.outputsDir
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := store.EnsureDirs(cfg.DataDir, cfg.OutputsDir); err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.closer = closer
	a.log.Info("starting", "version", a.build.Version, "data_dir", cfg.DataDir, "outputs_dir", cfg.OutputsDir)
	return nil
}

func (a *app) teardown() {
	if a.closer != nil {
		_ = a.closer.Close()
		a.closer = nil
	}
}

func (a *app) newSystem() *service.BookingSystem {
	return service.NewBookingSystem(service.WithLogger(a.log))
}

func newRootCmd(build BuildInfo) *cobra.Command {
	a := &app{build: build}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Airline seat booking desk",
		Long:          `Book seats in a 30-seat cabin, review what is left and export the booking ledger.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			defer a.teardown()

			model := tui.New(a.newSystem(), a.cfg.ExportPath(), a.log)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("run menu: %w", err)
			}
			if msg := tui.ExitMessage(final); msg != "" {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.dataDir, "data-dir", "", "directory for the ledger export and log")
	flags.StringVar(&a.outputsDir, "outputs-dir", "", "directory for generated charts")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd(build), newChartCmd(a), newClassicCmd(a))
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(build BuildInfo) int {
	root := newRootCmd(build)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
