package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Default(t *testing.T) {
	lex, err := Compile(Default())
	require.NoError(t, err)

	assert.Len(t, lex.Categories, 7)
	for _, r := range Roles() {
		assert.NotEmpty(t, lex.RoleKeywords[r], "role %s should have keywords", r)
	}
	for _, b := range Buckets() {
		assert.NotEmpty(t, lex.Verbs[b], "bucket %s should have verbs", b)
	}

	var sawWeak bool
	for _, rule := range lex.RedFlags {
		assert.True(t, rule.Severity.Valid(), "rule %s", rule.Type)
		if rule.Type == weakLanguageType {
			sawWeak = true
			assert.Equal(t, SeverityLow, rule.Severity)
		}
	}
	assert.True(t, sawWeak, "weak language rule should be synthesised")
}

func TestCompile_CollectsAllProblems(t *testing.T) {
	raw := Default()
	raw.Categories = append(raw.Categories,
		RawCategory{Name: "", Weight: 0, Keywords: []string{"Go", "go"}},
	)
	raw.ActionVerbs = map[string][]string{
		"achievement":   {"improve"},
		"technical":     {"build", "improve"},
		"leadership":    {"lead"},
		"collaboration": {"partner"},
	}
	raw.RedFlags = append(raw.RedFlags, RawRedFlag{
		Type:     "broken",
		Pattern:  `(unclosed`,
		Message:  "never shown",
		Severity: "urgent",
	})

	lex, err := Compile(raw)
	require.Error(t, err)
	assert.Nil(t, lex)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make(map[string]string)
	for _, p := range verr.Problems {
		fields[p.Field] = p.Message
	}
	assert.Contains(t, fields, "categories[7].name")
	assert.Contains(t, fields, "categories[7].weight")
	assert.Contains(t, fields, "categories[7].keywords[1]")
	assert.Contains(t, fields, "action_verbs.technical[1]")
	assert.Contains(t, fields["action_verbs.technical[1]"], "achievement")
	assert.Contains(t, fields, "red_flags[6].severity")
	assert.Contains(t, fields, "red_flags[6].pattern")
}

func TestCompile_RejectsUnknownRole(t *testing.T) {
	raw := Default()
	raw.RoleKeywords = map[string][]string{"Prompt Whisperer": {"vibes"}}

	_, err := Compile(raw)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 1)
	assert.Equal(t, "role_keywords[Prompt Whisperer]", verr.Problems[0].Field)
}

func TestCompile_RejectsNonWordKeywordEdges(t *testing.T) {
	raw := Default()
	raw.Categories = []RawCategory{{Name: "Lang", Weight: 1, Keywords: []string{"C++", ".NET", "Go"}}}

	_, err := Compile(raw)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)
}

func TestCompile_MissingBucket(t *testing.T) {
	raw := Default()
	delete(raw.ActionVerbs, "leadership")

	_, err := Compile(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action_verbs.leadership")
}

func TestKeywordPattern(t *testing.T) {
	tests := []struct {
		term string
		text string
		want int
	}{
		{"machine learning", "Machine Learning and machine\nlearning", 2},
		{"ML", "HTML is not ML", 1},
		{"scikit-learn", "I used scikit-learn daily", 1},
		{"CI/CD", "built CI/CD pipelines", 1},
		{"A/B testing", "ran a/b testing", 1},
		{"Java", "JavaScript only", 0},
		{"Rust", "rust, Rust; RUST.", 3},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			re, err := KeywordPattern(tt.term)
			require.NoError(t, err)
			kw := Keyword{Term: tt.term, Pattern: re}
			assert.Equal(t, tt.want, kw.Count(tt.text))
		})
	}
}

func TestVerbPattern(t *testing.T) {
	tests := []struct {
		verb  string
		match []string
		miss  []string
	}{
		{"improve", []string{"improve", "improves", "Improve"}, []string{"improved", "improving", "improvement", "improv"}},
		{"manage", []string{"manage", "manages"}, []string{"managed", "managing", "manager"}},
		{"build", []string{"build", "builds", "building", "BUILDED"}, []string{"builder", "rebuild"}},
		{"lead", []string{"lead", "leads", "leading"}, []string{"leadership", "mislead"}},
	}
	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			re, err := VerbPattern(tt.verb)
			require.NoError(t, err)
			for _, s := range tt.match {
				assert.True(t, re.MatchString(s), "%q should match %q", tt.verb, s)
			}
			for _, s := range tt.miss {
				assert.False(t, re.MatchString(s), "%q should not match %q", tt.verb, s)
			}
		})
	}
}

func TestCategoriesFor(t *testing.T) {
	lex := MustCompile(Default())

	general := lex.CategoriesFor(RoleNone)
	assert.Len(t, general, len(lex.Categories))

	withRole := lex.CategoriesFor(RoleDataScientist)
	require.Len(t, withRole, len(lex.Categories)+1)
	last := withRole[len(withRole)-1]
	assert.Equal(t, "Data Scientist Specific", last.Name)
	assert.Equal(t, RoleCategoryWeight, last.Weight)

	// The general list must not be mutated by appending the role category.
	assert.Len(t, lex.Categories, len(general))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("  machine learning engineer ")
	require.NoError(t, err)
	assert.Equal(t, RoleMachineLearningEngineer, r)

	r, err = ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleNone, r)

	_, err = ParseRole("Astronaut")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []string{"low", "Medium", " HIGH "} {
		sev, err := ParseSeverity(s)
		require.NoError(t, err, s)
		assert.True(t, sev.Valid())
	}
	_, err := ParseSeverity("critical")
	assert.Error(t, err)

	var zero Severity
	assert.False(t, zero.Valid())
}

func TestLoadFile_MergesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `
generic_phrases:
  - "synergy"
role_keywords:
  Data Scientist:
    - "Bayesian"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	raw, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"synergy"}, raw.GenericPhrases)
	assert.Equal(t, Default().Categories, raw.Categories)

	lex, err := Compile(raw)
	require.NoError(t, err)
	require.Len(t, lex.RoleKeywords[RoleDataScientist], 1)
	assert.Equal(t, "Bayesian", lex.RoleKeywords[RoleDataScientist][0].Term)
	assert.Empty(t, lex.RoleKeywords[RoleNLPEngineer])
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
