package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/surge-downloader/winres/internal/window"
)

// TrackWidth is the number of cells of the timeline bar.
const TrackWidth = 40

type cell int

const (
	cellOutside cell = iota // Outside the user limits
	cellLimits              // Inside the limits, outside the window
	cellWindow
	cellCenter
)

var (
	trackOutsideStyle = lipgloss.NewStyle().Foreground(Gray)
	trackLimitsStyle  = lipgloss.NewStyle().Foreground(LightGray)
	trackWindowStyle  = lipgloss.NewStyle().Foreground(StateOK)
	trackCenterStyle  = lipgloss.NewStyle().Foreground(NeonPurple).Bold(true)
)

// trackCells samples the timeline [0, TotalExtent] at the middle of every
// cell and marks the cell holding the constrained center.
func trackCells(r window.Resolved, width int) []cell {
	p := r.Params
	cells := make([]cell, width)
	w := float64(width)

	for i := range cells {
		v := window.FromPixel(float64(i)+0.5, w, p.TotalExtent)
		switch {
		case r.EffectiveLength > 0 && v >= r.LowerBoundary && v <= r.UpperBoundary:
			cells[i] = cellWindow
		case v >= p.LowerLimit && v <= p.UpperLimit:
			cells[i] = cellLimits
		default:
			cells[i] = cellOutside
		}
	}

	c := int(window.ToPixel(r.ConstrainedCenter, p.TotalExtent, w))
	cells[min(max(c, 0), width-1)] = cellCenter
	return cells
}

// Track renders r as a one line timeline bar.
func Track(r window.Resolved, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range trackCells(r, width) {
		switch c {
		case cellCenter:
			sb.WriteString(trackCenterStyle.Render("│"))
		case cellWindow:
			sb.WriteString(trackWindowStyle.Render("■"))
		case cellLimits:
			sb.WriteString(trackLimitsStyle.Render("─"))
		default:
			sb.WriteString(trackOutsideStyle.Render("·"))
		}
	}
	return sb.String()
}
