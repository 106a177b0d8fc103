package suggest

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

const (
	keywordScoreThreshold = 50
	maxNamedKeywords      = 3
	minActionVerbs        = 4
	maxNamedVerbs         = 3
	maxRedFlagSuggestions = 2
)

// WeakOpening suggests a stronger hook when the opening paragraph does not
// match a strong opening pattern.
func WeakOpening(ctx *AnalysisContext) []Suggestion {
	if ctx.Structure.HasStrongOpening {
		return nil
	}
	return []Suggestion{{
		Category: CategoryStructure,
		Priority: PriorityHigh,
		Message: "Start with a stronger hook: open with a concrete achievement or " +
			"what drew you to this role instead of a formula.",
	}}
}

// MissingCallToAction suggests closing with a call-to-action.
func MissingCallToAction(ctx *AnalysisContext) []Suggestion {
	if ctx.Structure.HasClosingCTA {
		return nil
	}
	return []Suggestion{{
		Category: CategoryStructure,
		Priority: PriorityHigh,
		Message: "End with a clear call-to-action, for example that you would welcome " +
			"the opportunity to discuss the role and when you are available.",
	}}
}

// MissingKeywords names up to three missing keywords when keyword
// coverage is below 50.
func MissingKeywords(ctx *AnalysisContext) []Suggestion {
	if ctx.Keywords.Score >= keywordScoreThreshold || len(ctx.Keywords.Missing) == 0 {
		return nil
	}
	var names []string
	for _, m := range ctx.Keywords.Missing {
		if len(names) == maxNamedKeywords {
			break
		}
		names = append(names, m.Keyword)
	}
	return []Suggestion{{
		Category: CategoryKeywords,
		Priority: PriorityHigh,
		Message: fmt.Sprintf(
			"Include more relevant keywords where they honestly apply, such as %s.",
			joinQuoted(names),
		),
	}}
}

// UnnamedCompany suggests naming the company when no company name was
// supplied and none was mentioned.
func UnnamedCompany(ctx *AnalysisContext) []Suggestion {
	if ctx.Company != "" || ctx.Personalisation.CompanyMentions > 0 {
		return nil
	}
	return []Suggestion{{
		Category: CategoryPersonalisation,
		Priority: PriorityMedium,
		Message:  "Name the company you are applying to and explain what draws you to it specifically.",
	}}
}

// GenericPhrases suggests replacing blacklisted phrases.
func GenericPhrases(ctx *AnalysisContext) []Suggestion {
	found := ctx.Personalisation.GenericPhrases
	if len(found) == 0 {
		return nil
	}
	return []Suggestion{{
		Category: CategoryPersonalisation,
		Priority: PriorityMedium,
		Message: fmt.Sprintf(
			"Replace generic phrases (%s) with specific examples of what you did.",
			joinQuoted(found),
		),
	}}
}

// FewActionVerbs names up to three verbs when fewer than four distinct
// action verbs were found. Verbs from unrepresented buckets come first;
// otherwise any unused verbs are offered.
func FewActionVerbs(ctx *AnalysisContext) []Suggestion {
	av := ctx.ActionVerbs
	if len(av.Found) >= minActionVerbs {
		return nil
	}
	verbs := av.Suggestions
	if len(verbs) == 0 {
		verbs = av.Unused
	}
	if len(verbs) > maxNamedVerbs {
		verbs = verbs[:maxNamedVerbs]
	}
	msg := "Use more varied action verbs to describe your impact."
	if len(verbs) > 0 {
		msg = fmt.Sprintf("Use more varied action verbs to describe your impact, such as %s.", joinQuoted(verbs))
	}
	return []Suggestion{{
		Category: CategoryActionVerbs,
		Priority: PriorityMedium,
		Message:  msg,
	}}
}

// OffTargetLength repeats the readability length feedback verbatim when
// the letter is outside the optimal range.
func OffTargetLength(ctx *AnalysisContext) []Suggestion {
	if ctx.Readability.IsOptimalLength || ctx.Readability.LengthFeedback == "" {
		return nil
	}
	return []Suggestion{{
		Category: CategoryReadability,
		Priority: PriorityLow,
		Message:  ctx.Readability.LengthFeedback,
	}}
}

// HighSeverityFlags surfaces up to two high-severity red flag messages.
func HighSeverityFlags(ctx *AnalysisContext) []Suggestion {
	var suggestions []Suggestion
	for _, f := range ctx.RedFlags {
		if f.Severity != lexicon.SeverityHigh {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Category: CategoryRedFlag,
			Priority: PriorityCritical,
			Message:  f.Message,
		})
		if len(suggestions) == maxRedFlagSuggestions {
			break
		}
	}
	return suggestions
}

func joinQuoted(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
