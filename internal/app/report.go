package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/lettergrade/internal/analyzer"
	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/output"
	"github.com/blackwell-systems/lettergrade/internal/score"
)

// maxMissingShown caps the missing keywords listed in the report.
const maxMissingShown = 5

// renderReport writes the human-readable report for one analysis.
func renderReport(w io.Writer, name string, a engine.CoverLetterAnalysis, weights score.Weights, width int) {
	label := output.ToneStyle(a.Classification.Tone).Render(a.Classification.Label)

	fmt.Fprintln(w, output.Section("Cover Letter: "+name, width))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %s  %s\n",
		output.StyleLabel.Render("Overall:"),
		output.ScoreBar(a.OverallPercentage, 30),
		label)
	fmt.Fprintln(w)

	renderDimensions(w, a, weights)
	renderStats(w, a.Stats, width)
	renderKeywords(w, a.Keywords, width)
	renderRedFlags(w, a.RedFlags, width)
	renderRecommendations(w, a, width)
	fmt.Fprintln(w)
}

func renderDimensions(w io.Writer, a engine.CoverLetterAnalysis, weights score.Weights) {
	rows := []struct {
		name   string
		score  int
		weight float64
		note   string
	}{
		{"Structure", a.Structure.Score, weights.Structure, firstOf(a.Structure.Feedback)},
		{"Keywords", a.Keywords.Score, weights.Keywords, fmt.Sprintf("%d found, %d missing", len(a.Keywords.Found), len(a.Keywords.Missing))},
		{"Personalisation", a.Personalisation.Score, weights.Personalisation, firstOf(a.Personalisation.Feedback)},
		{"Action verbs", a.ActionVerbs.Score, weights.ActionVerbs, fmt.Sprintf("%d verbs across %d categories", len(a.ActionVerbs.Found), len(a.ActionVerbs.Buckets))},
		{"Readability", a.Readability.Score, weights.Readability, a.Readability.LengthFeedback},
	}

	tbl := output.NewTable("Dimension", "Weight", "Score", "Notes")
	for _, r := range rows {
		tbl.AddRow(r.name, fmt.Sprintf("%.0f%%", r.weight*100), output.ScoreBar(r.score, 10), r.note)
	}
	_ = tbl.Fprint(w)
}

func renderStats(w io.Writer, s analyzer.Stats, width int) {
	fmt.Fprintln(w, output.Section("Stats", width))
	fmt.Fprintln(w)
	pairs := []struct {
		label string
		value int
	}{
		{"Words:", s.WordCount},
		{"Paragraphs:", s.ParagraphCount},
		{"Sentences:", s.SentenceCount},
		{"Characters:", s.CharacterCount},
	}
	for _, p := range pairs {
		fmt.Fprintf(w, " %s %s\n",
			output.StyleLabel.Render(p.label),
			output.StyleValue.Render(fmt.Sprintf("%d", p.value)))
	}
}

func renderKeywords(w io.Writer, k analyzer.KeywordAnalysis, width int) {
	fmt.Fprintln(w, output.Section("Keywords", width))
	fmt.Fprintln(w)

	if len(k.Found) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" No keywords found."))
	} else {
		found := make([]string, len(k.Found))
		for i, m := range k.Found {
			found[i] = fmt.Sprintf("%s (%d)", m.Keyword, m.Count)
		}
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Found:"), strings.Join(found, ", "))
	}

	if len(k.Missing) > 0 {
		missing := make([]string, 0, maxMissingShown)
		for _, m := range k.Missing[:min(len(k.Missing), maxMissingShown)] {
			missing = append(missing, m.Keyword)
		}
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Consider adding:"), output.StyleWarning.Render(strings.Join(missing, ", ")))
	}
}

func renderRedFlags(w io.Writer, flags []analyzer.RedFlag, width int) {
	fmt.Fprintln(w, output.Section("Red Flags", width))
	fmt.Fprintln(w)

	if len(flags) == 0 {
		fmt.Fprintln(w, output.StyleSuccess.Render(" None detected."))
		return
	}
	for _, f := range flags {
		sev := output.SeverityStyle(f.Severity).Render(fmt.Sprintf("%-6s", f.Severity))
		fmt.Fprintf(w, " %s %s\n", sev, f.Message)
	}
}

func renderRecommendations(w io.Writer, a engine.CoverLetterAnalysis, width int) {
	fmt.Fprintln(w, output.Section("Recommendations", width))
	fmt.Fprintln(w)

	if len(a.Recommendations) == 0 {
		fmt.Fprintln(w, output.StyleSuccess.Render(" Nothing to change. Send it."))
		return
	}
	for i, s := range a.Recommendations {
		fmt.Fprintf(w, " %s %s %s\n",
			output.StyleBold.Render(fmt.Sprintf("%d.", i+1)),
			output.StyleMuted.Render("["+s.Category+"]"),
			s.Message)
	}
}

// firstOf returns the first feedback line, or "" for none.
func firstOf(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
