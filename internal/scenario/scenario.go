// Package scenario loads YAML files of window parameters with expected
// results and checks them against the resolver.
package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/google/go-cmp/cmp"
	"github.com/surge-downloader/winres/internal/window"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrNoScenarios is returned for a file without any scenario.
var ErrNoScenarios = errors.New("no scenarios")

// File is one scenario file.
type File struct {
	Path      string     `yaml:"-"`
	Policy    string     `yaml:"policy,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is a single parameter set and the values it should resolve to.
type Scenario struct {
	Name   string `yaml:"name"`
	Policy string `yaml:"policy,omitempty"` // Overrides the file policy
	Params Input  `yaml:"params"`
	Expect Expect `yaml:"expect,omitempty"`
}

// Input mirrors window.Params with short YAML keys.
type Input struct {
	Extent int `yaml:"extent"`
	Lower  int `yaml:"lower"`
	Upper  int `yaml:"upper"`
	Center int `yaml:"center"`
	Length int `yaml:"length"`
}

// Params converts the input to window parameters.
func (in Input) Params() window.Params {
	return window.Params{
		TotalExtent:     in.Extent,
		LowerLimit:      in.Lower,
		UpperLimit:      in.Upper,
		ViewportCenter:  in.Center,
		RequestedLength: in.Length,
	}
}

// Expect lists the expected outputs. Only fields present in the file are
// compared.
type Expect struct {
	Center     *int    `yaml:"center,omitempty"`
	Length     *int    `yaml:"length,omitempty"`
	Lower      *int    `yaml:"lower,omitempty"`
	Upper      *int    `yaml:"upper,omitempty"`
	Status     *string `yaml:"status,omitempty"`
	LowerLimit *int    `yaml:"lower_limit,omitempty"`
	UpperLimit *int    `yaml:"upper_limit,omitempty"`
	Issues     *int    `yaml:"issues,omitempty"` // Expected number of issues
}

// Result is the outcome of one scenario.
type Result struct {
	File     string
	Name     string
	Policy   window.Policy
	Resolved window.Resolved
	// Diff is empty when every expected field matched.
	Diff string
}

// Passed reports whether the scenario matched its expectations.
func (r Result) Passed() bool {
	return r.Diff == ""
}

// Load reads and parses a scenario file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	file.Path = path
	return file, nil
}

// Parse decodes a scenario file. Unknown keys are rejected so that typos in
// expectations do not silently pass.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	for i, s := range file.Scenarios {
		if s.Name == "" {
			file.Scenarios[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
	return &file, nil
}

// PolicyFor returns the policy a scenario runs under: its own preset, else
// the file preset, else fallback.
func (f *File) PolicyFor(s Scenario, fallback window.Policy) (window.Policy, error) {
	name := s.Policy
	if name == "" {
		name = f.Policy
	}
	if name == "" {
		return fallback, nil
	}
	return window.ParsePreset(name)
}

// Run resolves every scenario of f. Scenarios are independent, so they are
// resolved in parallel; results keep file order.
func Run(ctx context.Context, f *File, fallback window.Policy) ([]Result, error) {
	results := make([]Result, len(f.Scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, s := range f.Scenarios {
		i, s := i, s
		pol, err := f.PolicyFor(s, fallback)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := window.New(pol).Resolve(s.Params.Params())
			results[i] = Result{
				File:     f.Path,
				Name:     s.Name,
				Policy:   pol,
				Resolved: res,
				Diff:     Compare(s.Expect, res),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Compare returns a human readable diff between the expected fields and the
// resolved window, or "" when they match.
func Compare(want Expect, got window.Resolved) string {
	observed := Observe(want, got)
	return cmp.Diff(want, observed)
}

// Observe fills the fields of want that are set with the values of got.
func Observe(want Expect, got window.Resolved) Expect {
	var out Expect
	pick := func(w *int, v int) *int {
		if w == nil {
			return nil
		}
		return &v
	}
	out.Center = pick(want.Center, got.ConstrainedCenter)
	out.Length = pick(want.Length, got.EffectiveLength)
	out.Lower = pick(want.Lower, got.LowerBoundary)
	out.Upper = pick(want.Upper, got.UpperBoundary)
	out.LowerLimit = pick(want.LowerLimit, got.Params.LowerLimit)
	out.UpperLimit = pick(want.UpperLimit, got.Params.UpperLimit)
	out.Issues = pick(want.Issues, len(got.Issues))
	if want.Status != nil {
		s := got.Status.String()
		out.Status = &s
	}
	return out
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
