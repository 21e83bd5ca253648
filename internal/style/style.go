// Package style provides the terminal styles used by CLI output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#e65050", Dark: "#f07178"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#565b66"}
)

var (
	// Bold emphasises headings.
	Bold = lipgloss.NewStyle().Bold(true)

	// Dim renders secondary labels.
	Dim = lipgloss.NewStyle().Foreground(colorMuted)

	// Header renders section titles.
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	// Pass renders successful checks.
	Pass = lipgloss.NewStyle().Foreground(colorPass)

	// Fail renders failed checks.
	Fail = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorFail)

	// Panel frames a report block.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)
)

// Check renders a pass/fail marker.
func Check(ok bool) string {
	if ok {
		return Pass.Render("✓")
	}
	return Fail.Render("✗")
}
