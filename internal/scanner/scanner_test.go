package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/lettergrade/internal/analyzer"
	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const shortLetter = "Dear Hiring Manager,\n\nI am writing to apply. I built and deployed models.\n\nI look forward to discussing the role.\n\nBest regards,\nSam"

// ---------------------------------------------------------------------------
// DiscoverLetters
// ---------------------------------------------------------------------------

func TestDiscoverLetters_FiltersByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "acme.txt"), "a")
	writeFile(t, filepath.Join(root, "globex.MD"), "b")
	writeFile(t, filepath.Join(root, "notes.pdf"), "c")
	writeFile(t, filepath.Join(root, "README"), "d")

	letters, err := DiscoverLetters([]string{root}, []string{".txt", ".md"})
	require.NoError(t, err)
	require.Len(t, letters, 2)
	assert.Equal(t, "acme.txt", letters[0].Name)
	assert.Equal(t, "globex.MD", letters[1].Name)
	assert.True(t, filepath.IsAbs(letters[0].Path))
	assert.Equal(t, int64(1), letters[0].Size)
}

func TestDiscoverLetters_RecursesAndSkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2026", "acme.txt"), "a")
	writeFile(t, filepath.Join(root, ".drafts", "old.txt"), "b")
	writeFile(t, filepath.Join(root, ".hidden.txt"), "c")

	letters, err := DiscoverLetters([]string{root}, []string{".txt"})
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "2026/acme.txt", letters[0].Name)
}

func TestDiscoverLetters_DirectFileAlwaysIncluded(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "letter.rtf")
	writeFile(t, path, "x")

	letters, err := DiscoverLetters([]string{path}, []string{".txt"})
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "letter.rtf", letters[0].Name)
}

func TestDiscoverLetters_Deduplicates(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "acme.txt")
	writeFile(t, path, "x")

	letters, err := DiscoverLetters([]string{root, path, root}, []string{".txt"})
	require.NoError(t, err)
	assert.Len(t, letters, 1)
}

func TestDiscoverLetters_MissingPathSkipped(t *testing.T) {
	letters, err := DiscoverLetters([]string{filepath.Join(t.TempDir(), "nope")}, []string{".txt"})
	require.NoError(t, err)
	assert.Empty(t, letters)
}

func TestDiscoverLetters_SortedCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"charlie.txt", "Bravo.txt", "alpha.txt"} {
		writeFile(t, filepath.Join(root, name), "x")
	}

	letters, err := DiscoverLetters([]string{root}, []string{".txt"})
	require.NoError(t, err)
	var names []string
	for _, l := range letters {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"alpha.txt", "Bravo.txt", "charlie.txt"}, names)
}

// ---------------------------------------------------------------------------
// ScoreLetters
// ---------------------------------------------------------------------------

func TestScoreLetters_MatchesDirectAnalysis(t *testing.T) {
	eng, err := engine.NewDefault()
	require.NoError(t, err)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), shortLetter)
	writeFile(t, filepath.Join(root, "b.txt"), "")
	writeFile(t, filepath.Join(root, "c.txt"), shortLetter+"\n\nP.S. Acme rocks.")

	letters, err := DiscoverLetters([]string{root}, []string{".txt"})
	require.NoError(t, err)

	opts := Options{Role: lexicon.RoleMachineLearningEngineer, Company: "Acme", Concurrency: 2}
	results, err := ScoreLetters(context.Background(), eng, letters, opts)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, letters[i], r.Letter, "results keep input order")
		require.NotNil(t, r.Analysis)
		data, err := os.ReadFile(r.Path)
		require.NoError(t, err)
		want := eng.Analyse(string(data), opts.Role, opts.Company)
		assert.Equal(t, want, *r.Analysis)
	}
	assert.Equal(t, 4, results[1].Percentage())
}

func TestScoreLetters_ExtractsHTML(t *testing.T) {
	eng, err := engine.NewDefault()
	require.NoError(t, err)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "plain.txt"), "Dear Acme,\n\nI built things.")
	writeFile(t, filepath.Join(root, "styled.html"), "<p>Dear Acme,</p><p>I <em>built</em> things.</p>")

	letters, err := DiscoverLetters([]string{root}, []string{".txt", ".html"})
	require.NoError(t, err)
	require.Len(t, letters, 2)

	results, err := ScoreLetters(context.Background(), eng, letters, Options{Concurrency: 2})
	require.NoError(t, err)
	require.NotNil(t, results[0].Analysis)
	require.NotNil(t, results[1].Analysis)
	assert.Equal(t, *results[0].Analysis, *results[1].Analysis, "markup does not change the score")
}

func TestScoreLetters_RecordsPerFileErrors(t *testing.T) {
	eng, err := engine.NewDefault()
	require.NoError(t, err)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "big.txt"), strings.Repeat("word ", 50))
	writeFile(t, filepath.Join(root, "ok.txt"), "fine")

	letters, err := DiscoverLetters([]string{root}, []string{".txt"})
	require.NoError(t, err)
	letters = append(letters, Letter{Path: filepath.Join(root, "gone.txt"), Name: "gone.txt"})

	results, err := ScoreLetters(context.Background(), eng, letters, Options{MaxInputChars: 100})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Nil(t, results[0].Analysis)
	assert.Contains(t, results[0].Err, "input too large")
	assert.Equal(t, -1, results[0].Percentage())
	assert.Equal(t, 0, results[0].Words())

	assert.NotNil(t, results[1].Analysis)
	assert.Empty(t, results[1].Err)
	assert.Equal(t, 1, results[1].Words())

	assert.Contains(t, results[2].Err, "reading letter")
}

func TestScoreLetters_Cancelled(t *testing.T) {
	eng, err := engine.NewDefault()
	require.NoError(t, err)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), shortLetter)
	letters, err := DiscoverLetters([]string{root}, []string{".txt"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ScoreLetters(ctx, eng, letters, Options{Concurrency: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreLetters_Empty(t *testing.T) {
	eng, err := engine.NewDefault()
	require.NoError(t, err)

	results, err := ScoreLetters(context.Background(), eng, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

// ---------------------------------------------------------------------------
// Summarize
// ---------------------------------------------------------------------------

func TestSummarize(t *testing.T) {
	mk := func(pct int, label string, flags int) Result {
		a := &engine.CoverLetterAnalysis{OverallPercentage: pct}
		a.Classification.Label = label
		a.RedFlags = make([]analyzer.RedFlag, flags)
		return Result{Analysis: a}
	}

	results := []Result{
		mk(81, "Excellent", 0),
		mk(45, "Fair", 2),
		mk(40, "Fair", 1),
		{Err: "reading letter: boom"},
	}

	s := Summarize(results)
	assert.Equal(t, 3, s.Scored)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 55.333, s.MeanPercentage, 0.001)
	assert.Equal(t, map[string]int{"Excellent": 1, "Fair": 2}, s.Classes)
	assert.Equal(t, 3, s.RedFlags)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Scored)
	assert.Zero(t, s.MeanPercentage)
	assert.Empty(t, s.Classes)
}
