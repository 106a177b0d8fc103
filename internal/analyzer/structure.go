package analyzer

import (
	"regexp"

	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

// AnalyzeStructure scores the letter's shape using its first and last
// paragraphs.
//
// Scoring breakdown:
//   - Opening:  40 strong hook, 25 decent (>50 chars, not generic), else 0
//   - Body:     30 when there are 2+ paragraphs and one exceeds 100 chars
//   - Closing:  30 call-to-action, 15 plain closing (>30 chars), else 0
func AnalyzeStructure(lex *lexicon.Lexicon, text string) StructureAnalysis {
	res := StructureAnalysis{MaxScore: MaxScore}
	paras := Paragraphs(text)

	var first, last string
	if len(paras) > 0 {
		first = paras[0]
		last = paras[len(paras)-1]
	}

	// Opening: 0-40.
	generic := matchAny(lex.GenericOpenings, first)
	switch {
	case !generic && matchAny(lex.StrongOpenings, first):
		res.OpeningScore = 40
		res.HasStrongOpening = true
	case !generic && runeLen(first) > 50:
		res.OpeningScore = 25
		res.Feedback = append(res.Feedback, "Your opening is decent but could be more compelling. Lead with a specific achievement or what drew you to the role.")
	default:
		res.Feedback = append(res.Feedback, "Open with a stronger hook: a concrete achievement, a shared mission, or how you discovered the role.")
	}

	// Body: 0-30. A single paragraph never counts as body content.
	if len(paras) >= 2 {
		for _, p := range paras {
			if runeLen(p) > 100 {
				res.HasBodyContent = true
				break
			}
		}
	}
	if res.HasBodyContent {
		res.BodyScore = 30
	} else {
		res.Feedback = append(res.Feedback, "Add at least one substantial body paragraph that connects your experience to the role.")
	}

	// Closing: 0-30.
	switch {
	case matchAny(lex.StrongClosings, last):
		res.ClosingScore = 30
		res.HasClosingCTA = true
	case runeLen(last) > 30:
		res.ClosingScore = 15
		res.Feedback = append(res.Feedback, "Add a clear call-to-action to your closing, such as stating your availability for an interview.")
	default:
		res.Feedback = append(res.Feedback, "Add a closing paragraph that thanks the reader and invites a next step.")
	}

	res.Score = res.OpeningScore + res.BodyScore + res.ClosingScore
	return res
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
