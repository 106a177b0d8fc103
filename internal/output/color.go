// Package output provides styled terminal rendering helpers for lettergrade.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/lettergrade/internal/lexicon"
	"github.com/blackwell-systems/lettergrade/internal/score"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for strong scores and resolved flags.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorInfo is used for good but improvable scores.
	ColorInfo = lipgloss.Color("#4dd0e1")

	// ColorError is used for weak scores and high severity flags.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for caution indicators.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for positive values.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleInfo is used for middling values.
	StyleInfo = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// StyleError is used for negative values.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for cautionary values.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for dimension labels.
	StyleLabel = lipgloss.NewStyle().
			Width(18)

	// StyleValue is used for dimension values.
	StyleValue = lipgloss.NewStyle().
			Bold(true).
			Width(10)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleInfo = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(18)
		StyleValue = plain.Width(10)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// DetectColor reports whether f is an interactive terminal that should
// receive styled output. NO_COLOR in the environment always wins.
func DetectColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ToneStyle returns the style for a classification tone.
func ToneStyle(t score.Tone) lipgloss.Style {
	switch t {
	case score.ToneSuccess:
		return StyleSuccess
	case score.ToneInfo:
		return StyleInfo
	case score.ToneWarning:
		return StyleWarning
	default:
		return StyleError
	}
}

// SeverityStyle returns the style for a red flag severity.
func SeverityStyle(s lexicon.Severity) lipgloss.Style {
	switch s {
	case lexicon.SeverityHigh:
		return StyleError
	case lexicon.SeverityMedium:
		return StyleWarning
	default:
		return StyleMuted
	}
}
