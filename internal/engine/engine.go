// Package engine runs the full cover letter analysis pipeline: stats, the
// five scored dimensions, red flags, aggregation, and recommendations.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/blackwell-systems/lettergrade/internal/analyzer"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
	"github.com/blackwell-systems/lettergrade/internal/score"
	"github.com/blackwell-systems/lettergrade/internal/suggest"
)

// DefaultMaxInputChars is the input cap hosts should enforce before calling
// Analyse.
const DefaultMaxInputChars = 10000

// ErrInputTooLarge is returned by CheckInput for text over the cap.
var ErrInputTooLarge = errors.New("input too large")

// CoverLetterAnalysis is the complete, self-contained result of one analysis.
type CoverLetterAnalysis struct {
	OverallScore      float64              `json:"overall_score"`
	OverallPercentage int                  `json:"overall_percentage"`
	Classification    score.Classification `json:"classification"`

	Structure       analyzer.StructureAnalysis       `json:"structure"`
	Keywords        analyzer.KeywordAnalysis         `json:"keywords"`
	Personalisation analyzer.PersonalisationAnalysis `json:"personalisation"`
	ActionVerbs     analyzer.ActionVerbAnalysis      `json:"action_verbs"`
	Readability     analyzer.ReadabilityAnalysis     `json:"readability"`

	RedFlags        []analyzer.RedFlag   `json:"red_flags"`
	Recommendations []suggest.Suggestion `json:"recommendations"`
	Stats           analyzer.Stats       `json:"stats"`
}

// Engine scores cover letters against a compiled lexicon. An Engine is
// immutable after New and safe for concurrent use.
type Engine struct {
	lex      *lexicon.Lexicon
	weights  score.Weights
	suggest  *suggest.Engine
	log      *zap.Logger
	parallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-analysis debug entries.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithWeights overrides the dimension weights.
func WithWeights(w score.Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithParallel runs the independent analyzer stages concurrently.
func WithParallel(on bool) Option {
	return func(e *Engine) { e.parallel = on }
}

// New returns an Engine for lex. It fails fast when the lexicon is missing
// or the weights do not sum to 1.0.
func New(lex *lexicon.Lexicon, opts ...Option) (*Engine, error) {
	if lex == nil {
		return nil, errors.New("engine: lexicon is required")
	}
	e := &Engine{
		lex:     lex,
		weights: score.DefaultWeights,
		suggest: suggest.NewEngine(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(lex *lexicon.Lexicon, opts ...Option) *Engine {
	e, err := New(lex, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// NewDefault returns an Engine over the built-in lexicon.
func NewDefault(opts ...Option) (*Engine, error) {
	lex, err := lexicon.Compile(lexicon.Default())
	if err != nil {
		return nil, err
	}
	return New(lex, opts...)
}

// Lexicon returns the engine's compiled lexicon.
func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lex }

// Weights returns the engine's dimension weights.
func (e *Engine) Weights() score.Weights { return e.weights }

// CheckInput returns ErrInputTooLarge when text exceeds max runes. A
// non-positive max disables the check.
func CheckInput(text string, max int) error {
	if max <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(text); n > max {
		return fmt.Errorf("%w: %d characters (max %d)", ErrInputTooLarge, n, max)
	}
	return nil
}

// AnalyseNamed parses roleName at the boundary and then calls Analyse.
// An unknown role is rejected with lexicon.ErrUnknownRole.
func (e *Engine) AnalyseNamed(text, roleName, company string) (CoverLetterAnalysis, error) {
	role, err := lexicon.ParseRole(roleName)
	if err != nil {
		return CoverLetterAnalysis{}, err
	}
	return e.Analyse(text, role, company), nil
}

// Analyse scores text. role may be RoleNone and company may be empty.
// Analyse never fails: empty or malformed letters simply score low.
func (e *Engine) Analyse(text string, role lexicon.Role, company string) CoverLetterAnalysis {
	start := time.Now()

	if !role.Valid() {
		e.log.Warn("ignoring invalid role", zap.Int("role", int(role)))
		role = lexicon.RoleNone
	}
	text = strings.TrimSpace(text)
	company = strings.TrimSpace(company)

	var res CoverLetterAnalysis
	res.Stats = analyzer.ComputeStats(text)

	stages := []func(){
		func() { res.Structure = analyzer.AnalyzeStructure(e.lex, text) },
		func() { res.Keywords = analyzer.AnalyzeKeywords(e.lex, text, role) },
		func() { res.Personalisation = analyzer.AnalyzePersonalisation(e.lex, text, company, role) },
		func() { res.ActionVerbs = analyzer.AnalyzeActionVerbs(e.lex, text) },
		func() { res.Readability = analyzer.AnalyzeReadability(res.Stats) },
		func() { res.RedFlags = analyzer.DetectRedFlags(e.lex, text, res.Stats) },
	}
	if e.parallel {
		// Each stage writes a distinct field of res and cannot fail.
		var wg sync.WaitGroup
		wg.Add(len(stages))
		for _, stage := range stages {
			go func() {
				defer wg.Done()
				stage()
			}()
		}
		wg.Wait()
	} else {
		for _, stage := range stages {
			stage()
		}
	}

	res.OverallScore, res.OverallPercentage = score.Aggregate(e.weights, score.Dimensions{
		Structure:       score.Dimension{Score: res.Structure.Score, MaxScore: res.Structure.MaxScore},
		Keywords:        score.Dimension{Score: res.Keywords.Score, MaxScore: res.Keywords.MaxScore},
		Personalisation: score.Dimension{Score: res.Personalisation.Score, MaxScore: res.Personalisation.MaxScore},
		ActionVerbs:     score.Dimension{Score: res.ActionVerbs.Score, MaxScore: res.ActionVerbs.MaxScore},
		Readability:     score.Dimension{Score: res.Readability.Score, MaxScore: res.Readability.MaxScore},
	})
	res.Classification = score.Classify(res.OverallPercentage)

	res.Recommendations = e.suggest.Run(&suggest.AnalysisContext{
		Company:         company,
		Structure:       res.Structure,
		Keywords:        res.Keywords,
		Personalisation: res.Personalisation,
		ActionVerbs:     res.ActionVerbs,
		Readability:     res.Readability,
		RedFlags:        res.RedFlags,
	})

	e.log.Debug("analysed letter",
		zap.Int("words", res.Stats.WordCount),
		zap.String("role", role.String()),
		zap.Bool("company", company != ""),
		zap.Int("percentage", res.OverallPercentage),
		zap.Int("red_flags", len(res.RedFlags)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res
}
