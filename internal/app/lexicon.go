package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lettergrade/internal/config"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
	"github.com/blackwell-systems/lettergrade/internal/output"
)

var lexiconFlagFile string

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Validate and summarise a lexicon file",
	Long: `Lexicon compiles a lexicon (the built-in default, the lexicon_file from the
config, or --file) and prints a summary of its tables. Every validation
problem is listed and the command exits non-zero when there are any.

A lexicon file is YAML, JSON or TOML. Sections it omits keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: runLexicon,
}

func init() {
	lexiconCmd.Flags().StringVar(&lexiconFlagFile, "file", "", "Lexicon file to validate (default: lexicon_file from config, else built-in)")
	rootCmd.AddCommand(lexiconCmd)
}

// lexiconSummary is the JSON shape of a compiled lexicon.
type lexiconSummary struct {
	Source          string            `json:"source"`
	Valid           bool              `json:"valid"`
	Problems        []lexicon.Problem `json:"problems,omitempty"`
	Categories      map[string]int    `json:"categories,omitempty"`
	RoleKeywords    map[string]int    `json:"role_keywords,omitempty"`
	Verbs           map[string]int    `json:"action_verbs,omitempty"`
	GenericPhrases  int               `json:"generic_phrases"`
	RedFlags        []string          `json:"red_flags,omitempty"`
	StrongOpenings  int               `json:"strong_openings"`
	GenericOpenings int               `json:"generic_openings"`
	StrongClosings  int               `json:"strong_closings"`
}

func runLexicon(cmd *cobra.Command, args []string) error {
	path := lexiconFlagFile
	if path == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		path = cfg.LexiconFile
	}
	if flagNoColor {
		output.SetNoColor(true)
	}

	source := path
	if source == "" {
		source = "built-in"
	}

	lex, err := lexicon.Load(path)
	summary := lexiconSummary{Source: source, Valid: err == nil}

	var verr *lexicon.ValidationError
	switch {
	case err == nil:
		summarise(&summary, lex)
	case errors.As(err, &verr):
		summary.Problems = verr.Problems
	default:
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		if werr := writeJSON(out, summary); werr != nil {
			return werr
		}
	} else {
		renderLexicon(out, summary)
	}

	if verr != nil {
		return fmt.Errorf("lexicon %s has %d problem(s)", source, len(verr.Problems))
	}
	return nil
}

func summarise(s *lexiconSummary, lex *lexicon.Lexicon) {
	s.Categories = make(map[string]int, len(lex.Categories))
	for _, c := range lex.Categories {
		s.Categories[c.Name] = len(c.Keywords)
	}
	s.RoleKeywords = make(map[string]int, len(lex.RoleKeywords))
	for r, kws := range lex.RoleKeywords {
		s.RoleKeywords[r.String()] = len(kws)
	}
	s.Verbs = make(map[string]int, lexicon.NumBuckets)
	for _, b := range lexicon.Buckets() {
		s.Verbs[b.String()] = len(lex.Verbs[b])
	}
	s.GenericPhrases = len(lex.GenericPhrases)
	for _, rule := range lex.RedFlags {
		s.RedFlags = append(s.RedFlags, rule.Type)
	}
	s.StrongOpenings = len(lex.StrongOpenings)
	s.GenericOpenings = len(lex.GenericOpenings)
	s.StrongClosings = len(lex.StrongClosings)
}

func renderLexicon(w io.Writer, s lexiconSummary) {
	fmt.Fprintln(w, output.Section("Lexicon: "+s.Source, 0))
	fmt.Fprintln(w)

	if !s.Valid {
		tbl := output.NewTable("Field", "Problem")
		for _, p := range s.Problems {
			tbl.AddRow(p.Field, output.StyleError.Render(p.Message))
		}
		_ = tbl.Fprint(w)
		return
	}

	keywords := 0
	for _, n := range s.Categories {
		keywords += n
	}
	roleKeywords := 0
	for _, n := range s.RoleKeywords {
		roleKeywords += n
	}
	verbs := 0
	for _, n := range s.Verbs {
		verbs += n
	}

	rows := []struct {
		label string
		value string
	}{
		{"Categories:", fmt.Sprintf("%d (%d keywords)", len(s.Categories), keywords)},
		{"Roles:", fmt.Sprintf("%d (%d keywords)", len(s.RoleKeywords), roleKeywords)},
		{"Action verbs:", fmt.Sprintf("%d in %d buckets", verbs, len(s.Verbs))},
		{"Generic phrases:", fmt.Sprintf("%d", s.GenericPhrases)},
		{"Openings:", fmt.Sprintf("%d strong, %d generic", s.StrongOpenings, s.GenericOpenings)},
		{"Closings:", fmt.Sprintf("%d", s.StrongClosings)},
		{"Red flag rules:", fmt.Sprintf("%d", len(s.RedFlags))},
	}
	for _, r := range rows {
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render(r.label), r.value)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSuccess.Render(" Lexicon is valid."))
}
