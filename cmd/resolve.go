package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/surge-downloader/winres/internal/clipboard"
	"github.com/surge-downloader/winres/internal/config"
	"github.com/surge-downloader/winres/internal/report"
	"github.com/surge-downloader/winres/internal/utils"
	"github.com/surge-downloader/winres/internal/window"
)

func (a *app) resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a window from limits, center and length",
		Long: `Resolve a window and print the constrained center, effective length,
boundaries and status. Unset flags fall back to the settings defaults.`,
		Example: `  winres resolve --extent 321 --lower 99 --upper 148 --center 123 --length 20
  winres resolve --center 145 --policy b --json
  winres resolve --center 123 --edge 140
  winres resolve --from-clipboard --copy`,
		Args: cobra.NoArgs,
		RunE: a.runResolve,
	}
	addResolveFlags(cmd)
	return cmd
}

func addResolveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("extent", 0, "Total extent of the timeline")
	f.Int("lower", 0, "Lower user limit")
	f.Int("upper", 0, "Upper user limit")
	f.Int("center", 0, "Requested viewport center")
	f.Int("length", 0, "Requested window length")
	f.Int("edge", 0, "Set the length by dragging a window edge to this value")
	f.String("policy", "", "Policy preset (a|b)")
	f.String("repair", "", "Inverted limit repair (swap|collapse)")
	f.String("center-policy", "", "Center constraint (margin|clamp)")
	f.String("parity", "", "Length parity (any|even)")
	f.Bool("json", false, "Print the result as JSON")
	f.Bool("copy", false, "Copy the JSON result to the clipboard")
	f.Bool("from-clipboard", false, "Read key=value parameters from the clipboard")
}

func (a *app) runResolve(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	pol, err := policyFromFlags(f, a.settings)
	if err != nil {
		return err
	}
	params, err := paramsFromFlags(f, a.settings)
	if err != nil {
		return err
	}

	resolver := window.New(pol)
	r := resolver.Resolve(params)
	if f.Changed("edge") {
		params = window.LengthFromBoundary(params, r, getInt(f, "edge"))
		r = resolver.Resolve(params)
	}
	utils.Debug("resolve %+v policy=%s -> center=%d length=%d [%d,%d] %s",
		params, pol, r.ConstrainedCenter, r.EffectiveLength, r.LowerBoundary, r.UpperBoundary, r.Status)

	asJSON := getBool(f, "json") || a.settings.General.Output == config.OutputJSON
	out := cmd.OutOrStdout()
	if asJSON {
		err = report.WriteJSON(out, pol, r)
	} else {
		err = report.WriteText(out, pol, r)
	}
	if err != nil {
		return err
	}

	if getBool(f, "copy") {
		text, err := report.MarshalJSON(pol, r)
		if err != nil {
			return err
		}
		if err := clipboard.Write(text); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Result copied to clipboard")
	}
	return nil
}

// policyFromFlags starts from the settings policy, applies --policy and then
// the individual policy flags.
func policyFromFlags(f *pflag.FlagSet, s *config.Settings) (window.Policy, error) {
	pol, err := s.ToPolicy()
	if err != nil {
		return pol, err
	}

	if f.Changed("policy") {
		if pol, err = window.ParsePreset(getString(f, "policy")); err != nil {
			return pol, err
		}
	}
	if f.Changed("repair") {
		if pol.LimitRepair, err = window.ParseLimitRepair(getString(f, "repair")); err != nil {
			return pol, err
		}
	}
	if f.Changed("center-policy") {
		if pol.CenterPolicy, err = window.ParseCenterPolicy(getString(f, "center-policy")); err != nil {
			return pol, err
		}
	}
	if f.Changed("parity") {
		if pol.Parity, err = window.ParseParity(getString(f, "parity")); err != nil {
			return pol, err
		}
	}
	return pol, nil
}

// paramsFromFlags layers the settings defaults, the clipboard (when asked)
// and explicit flags, in that order. A single explicit limit is applied as an
// edit of that limit so collapse repair keeps the edited side.
func paramsFromFlags(f *pflag.FlagSet, s *config.Settings) (window.Params, error) {
	p := s.ToParams()

	if getBool(f, "from-clipboard") {
		var err error
		if p, err = clipboard.ReadParams(p); err != nil {
			return p, err
		}
	}

	if f.Changed("extent") {
		p.TotalExtent = getInt(f, "extent")
	}
	if f.Changed("center") {
		p.ViewportCenter = getInt(f, "center")
	}
	if f.Changed("length") {
		p.RequestedLength = getInt(f, "length")
	}

	lowerSet, upperSet := f.Changed("lower"), f.Changed("upper")
	switch {
	case lowerSet && upperSet:
		p.LowerLimit = getInt(f, "lower")
		p.UpperLimit = getInt(f, "upper")
		p.Edited = window.BoundNone
	case lowerSet:
		p.LowerLimit = getInt(f, "lower")
		p.Edited = window.BoundLower
	case upperSet:
		p.UpperLimit = getInt(f, "upper")
		p.Edited = window.BoundUpper
	}
	return p, nil
}
