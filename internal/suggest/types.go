// Package suggest provides the recommendation engine and rule types.
package suggest

import "github.com/blackwell-systems/lettergrade/internal/analyzer"

// Priority levels for suggestions.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Categories name the dimension a suggestion addresses.
const (
	CategoryStructure       = "structure"
	CategoryKeywords        = "keywords"
	CategoryPersonalisation = "personalisation"
	CategoryActionVerbs     = "action_verbs"
	CategoryReadability     = "readability"
	CategoryRedFlag         = "red_flag"
)

// Suggestion represents an actionable improvement recommendation.
type Suggestion struct {
	Category string `json:"category"`
	Priority int    `json:"priority"`
	Message  string `json:"message"`
}

// AnalysisContext provides the analyzer outputs that rules inspect. It is
// populated by the engine after every analyzer has run.
type AnalysisContext struct {
	// Company is the trimmed company name supplied by the caller, if any.
	Company string

	Structure       analyzer.StructureAnalysis
	Keywords        analyzer.KeywordAnalysis
	Personalisation analyzer.PersonalisationAnalysis
	ActionVerbs     analyzer.ActionVerbAnalysis
	Readability     analyzer.ReadabilityAnalysis
	RedFlags        []analyzer.RedFlag
}

// Rule is a function that examines the analysis context and produces
// zero or more suggestions.
type Rule func(ctx *AnalysisContext) []Suggestion
