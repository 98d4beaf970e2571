// Package report renders resolved windows for the terminal, as a styled text
// block or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/surge-downloader/winres/internal/config"
	"github.com/surge-downloader/winres/internal/scenario"
	"github.com/surge-downloader/winres/internal/window"
)

// ApplyTheme forces light or dark colors; ThemeAdaptive keeps lipgloss'
// background detection.
func ApplyTheme(theme int) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}

// DisableColor strips all styling, e.g. when output is not a terminal.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// JSON is the machine readable form of a resolution.
type JSON struct {
	Policy string `json:"policy"`
	window.Resolved
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, pol window.Policy, r window.Resolved) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(JSON{Policy: pol.String(), Resolved: r})
}

// MarshalJSON returns the JSON form of r as a string.
func MarshalJSON(pol window.Policy, r window.Resolved) (string, error) {
	var sb strings.Builder
	if err := WriteJSON(&sb, pol, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func row(label, value string, style lipgloss.Style) string {
	return LabelStyle.Render(label) + style.Render(value)
}

func statusStyle(s window.Status) lipgloss.Style {
	if s.Behavior == window.BehaviorCentered && !s.LengthReduced {
		return StatusOKStyle
	}
	return StatusShiftedStyle
}

// Text renders r as a bordered block. Values moved by a constraint are
// highlighted.
func Text(pol window.Policy, r window.Resolved) string {
	p := r.Params

	centerStyle := ValueStyle
	if r.CenterMoved() {
		centerStyle = AdjustedStyle
	}
	lengthStyle := ValueStyle
	if r.LengthReduced() {
		lengthStyle = AdjustedStyle
	}

	lines := []string{
		TitleStyle.Render("Window"),
		row("Policy", pol.String(), ValueStyle),
		"",
		SectionStyle.Render("Parameters"),
		row("Total extent", strconv.Itoa(p.TotalExtent), ValueStyle),
		row("Limits", fmt.Sprintf("%d .. %d", p.LowerLimit, p.UpperLimit), ValueStyle),
		row("Viewport center", strconv.Itoa(p.ViewportCenter), ValueStyle),
		row("Requested length", strconv.Itoa(p.RequestedLength), ValueStyle),
		"",
		SectionStyle.Render("Resolved"),
		row("Center", strconv.Itoa(r.ConstrainedCenter), centerStyle),
		row("Effective length", strconv.Itoa(r.EffectiveLength), lengthStyle),
		row("Boundaries", fmt.Sprintf("%d .. %d", r.LowerBoundary, r.UpperBoundary), ValueStyle),
		LabelStyle.Render("Timeline") + Track(r, TrackWidth),
		row("Status", r.Status.String(), statusStyle(r.Status)),
	}

	if len(r.Issues) > 0 {
		lines = append(lines, "", SectionStyle.Render("Issues"))
		for _, issue := range r.Issues {
			lines = append(lines, IssueStyle.Render("! "+issue.Message))
		}
	}

	return PaneStyle.Render(strings.Join(lines, "\n"))
}

// WriteText writes the text form of r followed by a newline.
func WriteText(w io.Writer, pol window.Policy, r window.Resolved) error {
	_, err := fmt.Fprintln(w, Text(pol, r))
	return err
}

// WriteResults writes one line per scenario result, with the diff under
// every failure, and a closing summary line.
func WriteResults(w io.Writer, results []scenario.Result) error {
	var sb strings.Builder
	for _, r := range results {
		name := r.Name
		if r.File != "" {
			name = r.File + ": " + name
		}
		if r.Passed() {
			sb.WriteString(PassStyle.Render("PASS") + " " + name + "\n")
			continue
		}
		sb.WriteString(FailStyle.Render("FAIL") + " " + name + " (" + r.Policy.String() + ")\n")
		for _, line := range strings.Split(strings.TrimRight(r.Diff, "\n"), "\n") {
			sb.WriteString("    " + line + "\n")
		}
	}

	passed, failed := scenario.Summary(results)
	summary := fmt.Sprintf("%d passed, %d failed", passed, failed)
	if failed > 0 {
		sb.WriteString(FailStyle.Render(summary) + "\n")
	} else {
		sb.WriteString(PassStyle.Render(summary) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
