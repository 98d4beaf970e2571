package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/surge-downloader/winres/internal/config"
	"github.com/surge-downloader/winres/internal/report"
	"github.com/surge-downloader/winres/internal/utils"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetSettingsPath())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings, including environment overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, a.settings)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a single setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.settings.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing settings file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting in the settings file",
		Long: `Change a setting in the settings file. Keys are dotted, for example
policy.parity or defaults.extent. The key "policy" accepts a preset (a or b).`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	return cmd
}

func showSettings(cmd *cobra.Command, s *config.Settings) error {
	out := cmd.OutOrStdout()
	meta := config.GetSettingsMetadata()
	for i, category := range config.CategoryOrder() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, report.SectionStyle.Render(category))
		for _, m := range meta[category] {
			v, err := s.Get(m.Key)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-28s %s\n", m.Key, report.ValueStyle.Render(v))
		}
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.GetSettingsPath()
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSettings(config.DefaultSettings()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	utils.Debug("wrote default settings to %s", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
	return nil
}

// runConfigSet edits the stored file, not the effective settings, so
// environment overrides are never persisted.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := s.Set(key, value); err != nil {
		return err
	}
	if err := config.SaveSettings(s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	utils.Debug("config set %s=%s", key, value)
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}
