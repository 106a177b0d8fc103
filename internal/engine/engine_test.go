package engine

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blackwell-systems/lettergrade/internal/analyzer"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
	"github.com/blackwell-systems/lettergrade/internal/score"
	"github.com/blackwell-systems/lettergrade/internal/suggest"
)

const strongLetter = `As a machine learning engineer with 5 years of experience building production ML systems, I was excited to see the Machine Learning Engineer opening at Acme. Your team's work on real-time recommendation models is exactly the kind of problem I want to solve next, and I believe my background maps closely to what you need.

At my current company I designed and deployed a model serving platform on Kubernetes that handles 40 million predictions per day. I reduced inference latency by 35% through inference optimization with ONNX and TensorRT, and I automated model monitoring so that drift alerts reach the on-call engineer within minutes. I built feature pipelines in Python and SQL, and I trained deep learning models in PyTorch with distributed training across 16 GPUs. Along the way I wrote the runbooks and dashboards that let other teams adopt the platform without hand-holding.

Beyond the technical work, I led a team of four engineers and mentored two junior colleagues through their first production launches. I partnered with product managers and data scientists to align model metrics with business goals, which boosted conversion by 12% over two quarters. I enjoy cross-functional collaboration and clear communication with stakeholders, and I have found that the best models come from teams that share context early and often.

Acme's focus on responsible AI and your commitment to shipping reliable systems resonate with how I like to work. I would welcome the opportunity to discuss this role further. I am available for an interview at your convenience.`

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewDefault(opts...)
	require.NoError(t, err)
	return e
}

func flagTypes(flags []analyzer.RedFlag) []string {
	var out []string
	for _, f := range flags {
		out = append(out, f.Type)
	}
	return out
}

func TestAnalyse_Empty(t *testing.T) {
	res := newTestEngine(t).Analyse("", lexicon.RoleNone, "")

	assert.Equal(t, analyzer.Stats{}, res.Stats)
	// Only readability scores: (5 + 10 + 5) * 0.20.
	assert.Equal(t, 4, res.OverallPercentage)
	assert.Equal(t, "Needs Improvement", res.Classification.Label)
	assert.Equal(t, []string{analyzer.FlagTooShort, analyzer.FlagNoParagraphs}, flagTypes(res.RedFlags))
	assert.Len(t, res.Recommendations, suggest.MaxSuggestions)
}

func TestAnalyse_StrongLetter(t *testing.T) {
	res := newTestEngine(t).Analyse(strongLetter, lexicon.RoleMachineLearningEngineer, "Acme")

	assert.True(t, res.Structure.HasStrongOpening)
	assert.True(t, res.Structure.HasClosingCTA)
	assert.Equal(t, 100, res.Structure.Score)
	assert.Equal(t, 32, res.Keywords.Score)
	assert.Equal(t, 90, res.Personalisation.Score)
	assert.Equal(t, 100, res.ActionVerbs.Score)
	assert.Equal(t, 100, res.Readability.Score)
	assert.InDelta(t, 0.81, res.OverallScore, 1e-9)
	assert.Equal(t, 81, res.OverallPercentage)
	assert.Equal(t, "Excellent", res.Classification.Label)
	assert.Empty(t, res.RedFlags)

	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, suggest.CategoryKeywords, res.Recommendations[0].Category)
	assert.Contains(t, res.Recommendations[0].Message, "feature store")
}

func TestAnalyse_GenericOpening(t *testing.T) {
	text := "I am writing to apply\n\n" + strongLetter
	res := newTestEngine(t).Analyse(text, lexicon.RoleNone, "")

	assert.Equal(t, 0, res.Structure.OpeningScore)
	assert.False(t, res.Structure.HasStrongOpening)

	var found bool
	for _, f := range res.RedFlags {
		if f.Type == "generic_opening" {
			found = true
			assert.Equal(t, lexicon.SeverityMedium, f.Severity)
		}
	}
	assert.True(t, found, "expected generic_opening red flag, got %v", flagTypes(res.RedFlags))
	assert.Contains(t, res.Personalisation.GenericPhrases, "i am writing to apply")
}

func TestAnalyse_TrimsInput(t *testing.T) {
	e := newTestEngine(t)
	a := e.Analyse(strongLetter, lexicon.RoleNone, "Acme")
	b := e.Analyse("\n\n  "+strongLetter+"\n\t ", lexicon.RoleNone, "  Acme ")
	assert.Equal(t, a, b)
}

func TestAnalyse_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	first, err := json.Marshal(e.Analyse(strongLetter, lexicon.RoleDataScientist, "Acme"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(e.Analyse(strongLetter, lexicon.RoleDataScientist, "Acme"))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestAnalyse_ParallelMatchesSequential(t *testing.T) {
	seq := newTestEngine(t)
	par := newTestEngine(t, WithParallel(true))

	inputs := []string{"", "I improved things.", strongLetter, strings.Repeat(strongLetter+"\n\n", 3)}
	for _, text := range inputs {
		for _, role := range append(lexicon.Roles(), lexicon.RoleNone) {
			assert.Equal(t, seq.Analyse(text, role, "Acme"), par.Analyse(text, role, "Acme"))
		}
	}
}

func TestAnalyse_Bounds(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{
		"",
		".",
		"!!!???...",
		"\n\n\n\n",
		"To whom it may concern, I am a team player, hard worker, self-starter, fast learner, go-getter, detail-oriented and results-driven.",
		strings.Repeat("word ", 2000),
		strings.Repeat("I improved and built and led and managed. ", 200),
		strongLetter,
		"[Company Name] [Role] salary rockstar unfortunately maybe",
	}
	for _, text := range inputs {
		for _, company := range []string{"", "Acme", "C++ Corp"} {
			res := e.Analyse(text, lexicon.RoleNLPEngineer, company)
			for name, d := range map[string][2]int{
				"structure":       {res.Structure.Score, res.Structure.MaxScore},
				"keywords":        {res.Keywords.Score, res.Keywords.MaxScore},
				"personalisation": {res.Personalisation.Score, res.Personalisation.MaxScore},
				"action_verbs":    {res.ActionVerbs.Score, res.ActionVerbs.MaxScore},
				"readability":     {res.Readability.Score, res.Readability.MaxScore},
			} {
				assert.GreaterOrEqual(t, d[0], 0, name)
				assert.LessOrEqual(t, d[0], d[1], name)
				assert.Equal(t, analyzer.MaxScore, d[1], name)
			}
			assert.GreaterOrEqual(t, res.OverallPercentage, 0)
			assert.LessOrEqual(t, res.OverallPercentage, 100)
			assert.LessOrEqual(t, len(res.Recommendations), suggest.MaxSuggestions)
		}
	}
}

func TestAnalyse_InvalidRoleIgnored(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t,
		e.Analyse(strongLetter, lexicon.RoleNone, ""),
		e.Analyse(strongLetter, lexicon.Role(99), ""),
	)
}

func TestAnalyseNamed(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.AnalyseNamed(strongLetter, "machine learning engineer", "Acme")
	require.NoError(t, err)
	assert.Equal(t, e.Analyse(strongLetter, lexicon.RoleMachineLearningEngineer, "Acme"), res)

	_, err = e.AnalyseNamed(strongLetter, "Prompt Whisperer", "")
	assert.True(t, errors.Is(err, lexicon.ErrUnknownRole))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	lex := lexicon.MustCompile(lexicon.Default())
	_, err = New(lex, WithWeights(score.Weights{Structure: 0.5}))
	assert.ErrorContains(t, err, "sum to 1.0")

	assert.Panics(t, func() { MustNew(nil) })
	assert.NotPanics(t, func() { MustNew(lex) })
}

func TestNew_CustomWeights(t *testing.T) {
	lex := lexicon.MustCompile(lexicon.Default())
	e := MustNew(lex, WithWeights(score.Weights{Readability: 1}))

	res := e.Analyse("", lexicon.RoleNone, "")
	assert.Equal(t, 20, res.OverallPercentage)
}

func TestAnalyse_LogsDebugEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newTestEngine(t, WithLogger(zap.New(core)))

	e.Analyse(strongLetter, lexicon.RoleMachineLearningEngineer, "Acme")

	entries := logs.FilterMessage("analysed letter").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(252), fields["words"])
	assert.Equal(t, int64(81), fields["percentage"])
	assert.Equal(t, "Machine Learning Engineer", fields["role"])
}

func TestCheckInput(t *testing.T) {
	assert.NoError(t, CheckInput("short", 10))
	assert.NoError(t, CheckInput(strings.Repeat("x", 50), 0))

	err := CheckInput(strings.Repeat("é", 11), 10)
	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.NoError(t, CheckInput(strings.Repeat("é", 10), 10))
}
