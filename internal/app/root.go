// Package app contains the Cobra command tree for lettergrade.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/lettergrade/internal/config"
	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
	"github.com/blackwell-systems/lettergrade/internal/logger"
	"github.com/blackwell-systems/lettergrade/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagLogJSON bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "lettergrade",
	Short: "Deterministic scoring for cover letters",
	Long: `lettergrade scores a cover letter on structure, keyword coverage,
personalisation, action verbs, and readability, flags common mistakes, and
suggests the few changes most likely to improve it.

All scoring is rule based: the same letter always gets the same score.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "lettergrade", appVersion)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use a subcommand:")
		fmt.Fprintln(out, "  analyse   Score a single letter (file or stdin)")
		fmt.Fprintln(out, "  scan      Score every letter under one or more directories")
		fmt.Fprintln(out, "  watch     Re-score a draft whenever it is saved")
		fmt.Fprintln(out, "  roles     List the roles with role-specific keywords")
		fmt.Fprintln(out, "  lexicon   Validate and summarise a lexicon file")
		fmt.Fprintln(out, "  mcp       Serve the scorer to editors and agents over MCP")
		fmt.Fprintln(out, "  serve     Serve the scorer as a JSON HTTP API")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lettergrade version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "lettergrade", appVersion)
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/lettergrade/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(versionCmd)
}

// runtimeEnv is what every scoring command needs: the loaded config, a
// logger, and an engine built from both.
type runtimeEnv struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *engine.Engine
}

// loadEnv loads configuration, builds the logger and engine, and applies
// the color preference.
func loadEnv() (*runtimeEnv, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(flagLogJSON, flagVerbose)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	lex, err := lexicon.Load(cfg.LexiconFile)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}

	eng, err := engine.New(lex,
		engine.WithLogger(log),
		engine.WithWeights(cfg.Weights),
		engine.WithParallel(cfg.Parallel),
	)
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}

	output.SetNoColor(flagNoColor || !cfg.Output.Color || !output.DetectColor(os.Stdout))

	log.Debug("loaded configuration",
		zap.String("lexicon_file", cfg.LexiconFile),
		zap.Bool("parallel", cfg.Parallel),
		zap.Int("max_input_chars", cfg.MaxInputChars),
	)
	return &runtimeEnv{cfg: cfg, log: log, engine: eng}, nil
}

// ruleWidth is the section rule width for the configured output width.
func (e *runtimeEnv) ruleWidth() int {
	return e.cfg.Output.Width - 2
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
