package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/surge-downloader/winres/internal/version"
)

var newChecker = version.NewChecker

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version information. With --check, query a GitHub "latest release"
endpoint and report whether a newer release exists. Point --releases-url at
the repository this build was installed from.`,
		Args: cobra.NoArgs,
		// A broken settings file should not hide the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "winres version %s\n", Version)
			fmt.Fprintf(out, "  built: %s\n", BuildTime)

			check, _ := cmd.Flags().GetBool("check")
			if !check {
				return nil
			}
			url, _ := cmd.Flags().GetString("releases-url")
			rel, err := newChecker(url).Latest(cmd.Context(), Version)
			if err != nil {
				return err
			}
			if rel.Newer {
				fmt.Fprintf(out, "Update available: %s (%s)\n", rel.Latest, rel.URL)
			} else {
				fmt.Fprintf(out, "Latest release: %s\n", rel.Latest)
			}
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "Check for a newer release")
	cmd.Flags().String("releases-url", version.ReleasesURL, "GitHub \"latest release\" API endpoint queried by --check")
	return cmd
}
