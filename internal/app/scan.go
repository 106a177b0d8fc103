package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/lettergrade/internal/output"
	"github.com/blackwell-systems/lettergrade/internal/scanner"
)

var (
	scanFlagRole     string
	scanFlagCompany  string
	scanFlagMinScore int
	scanFlagSort     string
)

var scanCmd = &cobra.Command{
	Use:   "scan PATH...",
	Short: "Score every letter under one or more directories",
	Long: `Scan discovers letter files (by default .txt and .md, see scan.extensions
in the config) under each PATH, scores them concurrently, and prints a
table plus a summary of the batch.

Files named directly are always scored regardless of extension. Add .html,
.htm or .pdf to scan.extensions to include those drafts; their text is
extracted before scoring.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFlagRole, "role", "", "Target role applied to every letter")
	scanCmd.Flags().StringVar(&scanFlagCompany, "company", "", "Company applied to every letter")
	scanCmd.Flags().IntVar(&scanFlagMinScore, "min-score", 0, "Only show letters scoring at least this percentage")
	scanCmd.Flags().StringVar(&scanFlagSort, "sort", "score", "Sort by: score, name, words")

	rootCmd.AddCommand(scanCmd)
}

// scanReport is the JSON shape of a scan.
type scanReport struct {
	Results []scanner.Result `json:"results"`
	Summary scanner.Summary  `json:"summary"`
}

func runScan(cmd *cobra.Command, args []string) error {
	req := scoreRequest{Role: scanFlagRole, Company: scanFlagCompany, MinScore: scanFlagMinScore}
	role, err := req.resolve()
	if err != nil {
		return err
	}
	switch scanFlagSort {
	case "score", "name", "words":
	default:
		return fmt.Errorf("invalid --sort %q: want score, name or words", scanFlagSort)
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}

	letters, err := scanner.DiscoverLetters(args, env.cfg.Scan.Extensions)
	if err != nil {
		return fmt.Errorf("discovering letters: %w", err)
	}
	env.log.Debug("discovered letters", zap.Int("count", len(letters)))

	results, err := scanner.ScoreLetters(cmd.Context(), env.engine, letters, scanner.Options{
		Role:          role,
		Company:       req.Company,
		MaxInputChars: env.cfg.MaxInputChars,
		Concurrency:   env.cfg.Scan.Concurrency,
		Logger:        env.log,
	})
	if err != nil {
		return fmt.Errorf("scoring letters: %w", err)
	}

	summary := scanner.Summarize(results)
	results = filterResults(results, req.MinScore)
	sortResults(results, scanFlagSort)

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, scanReport{Results: results, Summary: summary})
	}
	renderScanTable(out, results, env.ruleWidth())
	renderScanSummary(out, summary, env.ruleWidth())
	return nil
}

// filterResults drops letters below minScore. Failed letters are kept only
// when no minimum is set.
func filterResults(results []scanner.Result, minScore int) []scanner.Result {
	if minScore <= 0 {
		return results
	}
	kept := make([]scanner.Result, 0, len(results))
	for _, r := range results {
		if r.Percentage() >= minScore {
			kept = append(kept, r)
		}
	}
	return kept
}

func sortResults(results []scanner.Result, sortBy string) {
	sort.SliceStable(results, func(i, j int) bool {
		switch sortBy {
		case "name":
			return strings.ToLower(results[i].Name) < strings.ToLower(results[j].Name)
		case "words":
			return results[i].Words() > results[j].Words()
		default: // "score"
			return results[i].Percentage() > results[j].Percentage()
		}
	})
}

func renderScanTable(w io.Writer, results []scanner.Result, width int) {
	fmt.Fprintln(w, output.Section("Cover Letter Scan", width))
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" No letters found."))
		return
	}

	tbl := output.NewTable("Score", "Class", "Words", "Flags", "Letter")
	for _, r := range results {
		if r.Analysis == nil {
			tbl.AddRow(output.StyleError.Render("  ---"), output.StyleMuted.Render("error"), "", "", r.Name+" "+output.StyleMuted.Render("("+r.Err+")"))
			continue
		}
		a := r.Analysis
		class := output.ToneStyle(a.Classification.Tone).Render(a.Classification.Label)

		flags := output.StyleMuted.Render("0")
		if n := len(a.RedFlags); n > 0 {
			flags = output.StyleWarning.Render(fmt.Sprintf("%d", n))
		}

		tbl.AddRow(fmt.Sprintf("%4d%%", a.OverallPercentage), class, fmt.Sprintf("%d", a.Stats.WordCount), flags, r.Name)
	}
	_ = tbl.Fprint(w)
}

// classOrder lists classification labels best first.
var classOrder = []string{"Excellent", "Good", "Fair", "Needs Improvement"}

func renderScanSummary(w io.Writer, s scanner.Summary, width int) {
	if s.Scored == 0 && s.Failed == 0 {
		return
	}

	fmt.Fprintln(w, output.Section("Summary", width))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Mean score:"),
		output.StyleValue.Render(fmt.Sprintf("%.0f%%", s.MeanPercentage)))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Letters scored:"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.Scored)))
	if s.Failed > 0 {
		fmt.Fprintf(w, " %s %s\n",
			output.StyleLabel.Render("Failed:"),
			output.StyleError.Render(fmt.Sprintf("%d", s.Failed)))
	}
	for _, label := range classOrder {
		if n := s.Classes[label]; n > 0 {
			fmt.Fprintf(w, " %s %s\n",
				output.StyleLabel.Render(label+":"),
				output.StyleValue.Render(fmt.Sprintf("%d", n)))
		}
	}
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Red flags:"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.RedFlags)))
	fmt.Fprintln(w)
}
