package suggest

// MaxSuggestions caps the number of suggestions returned by Run.
const MaxSuggestions = 5

// Engine runs all registered rules against an AnalysisContext and collects
// the resulting suggestions.
type Engine struct {
	rules []Rule
	limit int
}

// NewEngine creates a new suggest engine with all built-in rules
// registered in dimension priority order.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			WeakOpening,
			MissingCallToAction,
			MissingKeywords,
			UnnamedCompany,
			GenericPhrases,
			FewActionVerbs,
			OffTargetLength,
			HighSeverityFlags,
		},
		limit: MaxSuggestions,
	}
}

// Run executes the rules in order and returns the first MaxSuggestions
// results. Suggestions are never re-sorted; rule order is the ranking.
func (e *Engine) Run(ctx *AnalysisContext) []Suggestion {
	var all []Suggestion
	for _, rule := range e.rules {
		if len(all) >= e.limit {
			break
		}
		all = append(all, rule(ctx)...)
	}
	if len(all) > e.limit {
		all = all[:e.limit]
	}
	return all
}
