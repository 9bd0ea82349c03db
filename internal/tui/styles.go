package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/salesflow-dev/salesflow/internal/catalog"
)

// Color constants.
const (
	primaryColor   = "#7C3AED" // Purple
	secondaryColor = "#10B981" // Green
	warningColor   = "#F59E0B" // Amber
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// SelectedStyle highlights selected items in primary color.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning messages in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// StatusBarStyle provides styling for the status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1)

	// ProgressFullStyle renders filled progress indicators.
	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(secondaryColor))

	// ProgressEmptyStyle renders empty progress indicators.
	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(dimColor))
)

// Checkpoint state icons (pre-rendered strings).
var (
	// CheckDone indicates a completed checkpoint.
	CheckDone = SuccessStyle.Render("✓")

	// CheckPending indicates an unchecked checkpoint.
	CheckPending = DimStyle.Render("○")
)

// phaseColors assigns each call phase a stable accent color.
var phaseColors = map[catalog.Phase]string{
	catalog.PhaseOpening:  "#3B82F6", // Blue
	catalog.PhaseHearing:  "#10B981", // Green
	catalog.PhaseProposal: "#F59E0B", // Amber
	catalog.PhaseClosing:  "#EF4444", // Red
	catalog.PhaseFollowup: "#8B5CF6", // Violet
}

// PhaseStyle returns a bold style in the phase's accent color.
func PhaseStyle(p catalog.Phase) lipgloss.Style {
	color, ok := phaseColors[p]
	if !ok {
		color = dimColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// ProgressBar renders a completed/total bar of the given width, like
// "████░░░░ 3/5".
func ProgressBar(completed, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}
	filled := completed * width / total
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += ProgressFullStyle.Render("█")
		} else {
			bar += ProgressEmptyStyle.Render("░")
		}
	}
	return bar
}
