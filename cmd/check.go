package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/surge-downloader/winres/internal/report"
	"github.com/surge-downloader/winres/internal/scenario"
	"github.com/surge-downloader/winres/internal/utils"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.yaml>...",
		Short: "Run scenario files and compare the expected values",
		Long: `Run every scenario of the given YAML files. Each scenario resolves its
parameters and compares the fields listed under expect; the command fails
when any scenario differs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	fallback, err := a.settings.ToPolicy()
	if err != nil {
		return err
	}

	var results []scenario.Result
	for _, path := range args {
		f, err := scenario.Load(path)
		if err != nil {
			return err
		}
		res, err := scenario.Run(cmd.Context(), f, fallback)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		utils.Debug("check %s: %d scenarios", path, len(res))
		results = append(results, res...)
	}

	if err := report.WriteResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if _, failed := scenario.Summary(results); failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}
