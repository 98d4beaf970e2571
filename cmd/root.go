package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/surge-downloader/winres/internal/config"
	"github.com/surge-downloader/winres/internal/report"
	"github.com/surge-downloader/winres/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// app carries what PersistentPreRunE loaded for the subcommands.
type app struct {
	envFile  string
	noColor  bool
	settings *config.Settings
}

// NewRootCmd builds the command tree. The root command resolves a window,
// the same as "winres resolve".
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "winres",
		Short: "Resolve a constrained viewing window on a timeline",
		Long: `winres derives a clamped center, an effective length and window boundaries
from a requested center and length, user limits and a total extent.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		RunE: a.runResolve,
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load environment overrides from this .env file (default: ./.env if present)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	addResolveFlags(root)
	root.SetVersionTemplate("winres version {{.Version}}\n")

	root.AddCommand(a.resolveCmd())
	root.AddCommand(a.checkCmd())
	root.AddCommand(a.configCmd())
	root.AddCommand(versionCmd())

	return root
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initialize sets up logging and loads the effective settings.
func (a *app) initialize() error {
	initializeLogging()

	settings, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	a.settings = settings

	if a.noColor {
		report.DisableColor()
	}
	report.ApplyTheme(settings.General.Theme)
	utils.CleanupLogs(settings.General.LogRetentionCount)

	utils.Debug("winres %s started, settings from %s", Version, config.GetSettingsPath())
	return nil
}

// initializeLogging points the debug log at the logs directory.
func initializeLogging() {
	if err := config.EnsureDirs(); err != nil {
		// Debug logging stays disabled.
		return
	}
	utils.ConfigureDebug(config.GetLogsDir())
}
