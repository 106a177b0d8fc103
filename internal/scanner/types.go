// Package scanner discovers cover letter drafts on disk and scores them in
// batch.
package scanner

import "github.com/blackwell-systems/lettergrade/internal/engine"

// Letter is a discovered letter file.
type Letter struct {
	// Path is the absolute filesystem path to the file.
	Path string `json:"path"`

	// Name is the path relative to the scan root it was found under, or the
	// base name for files passed directly.
	Name string `json:"name"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// Result is the outcome of scoring one letter. Exactly one of Analysis and
// Err is set.
type Result struct {
	Letter
	Analysis *engine.CoverLetterAnalysis `json:"analysis,omitempty"`
	Err      string                      `json:"error,omitempty"`
}

// Percentage returns the overall percentage, or -1 for a failed letter.
func (r Result) Percentage() int {
	if r.Analysis == nil {
		return -1
	}
	return r.Analysis.OverallPercentage
}

// Words returns the letter's word count, or 0 for a failed letter.
func (r Result) Words() int {
	if r.Analysis == nil {
		return 0
	}
	return r.Analysis.Stats.WordCount
}

// Summary aggregates a batch of results.
type Summary struct {
	Scored         int            `json:"scored"`
	Failed         int            `json:"failed"`
	MeanPercentage float64        `json:"mean_percentage"`
	Classes        map[string]int `json:"classifications"`
	RedFlags       int            `json:"red_flags"`
}
