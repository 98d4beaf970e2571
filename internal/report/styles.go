package report

import "github.com/charmbracelet/lipgloss"

var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(NeonPurple).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(NeonCyan).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Width(18)

	ValueStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	AdjustedStyle = lipgloss.NewStyle().
			Foreground(StateAdjusted).
			Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(StateOK).
			Bold(true)

	StatusShiftedStyle = lipgloss.NewStyle().
				Foreground(StateAdjusted).
				Bold(true)

	IssueStyle = lipgloss.NewStyle().
			Foreground(StateError)

	PassStyle = lipgloss.NewStyle().
			Foreground(StateOK)

	FailStyle = lipgloss.NewStyle().
			Foreground(StateError).
			Bold(true)
)
