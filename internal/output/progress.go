package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/lettergrade/internal/score"
)

// ScoreBar renders a visual progress bar for a 0-100 percentage, colored by
// its classification tone.
// Example: "████████░░ 80/100"
func ScoreBar(percentage int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := percentage * width / 100
	filled = max(0, min(filled, width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := ToneStyle(score.Classify(percentage).Tone)

	return fmt.Sprintf("%s %s", style.Render(bar), StyleMuted.Render(fmt.Sprintf("%d/100", percentage)))
}

// TrendArrow returns a styled indicator for a change in percentage points.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
func TrendArrow(delta int) string {
	switch {
	case delta > 0:
		return StyleSuccess.Render(fmt.Sprintf("▲ +%d", delta))
	case delta < 0:
		return StyleError.Render(fmt.Sprintf("▼ %d", delta))
	default:
		return StyleMuted.Render("─")
	}
}

// Section returns a styled section header with a horizontal rule of the
// given width.
func Section(title string, width int) string {
	if width <= 0 {
		width = 66
	}
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", width))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
