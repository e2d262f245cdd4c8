// Package styles provides shared lipgloss styles for autonode's terminal
// output.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI
var (
	// Success is used for checkmarks and successful installs (green)
	Success = lipgloss.Color("82")

	// Error is used for failed installs and error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for secondary text such as rejected input lines (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Outcome symbols
const (
	// OK marks a successful install
	OK = "✓"
	// Fail marks a failed install
	Fail = "✗"
)
