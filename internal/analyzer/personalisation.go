package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

var (
	youPattern = regexp.MustCompile(`(?i)\byour?\b`)

	specificsPattern = regexp.MustCompile(`(?i)\d+%|\b\d+\+?\s*(?:years?|months?|projects?|models?|teams?|clients?)\b`)
)

// genericPhrasePenalty is subtracted for every blacklisted phrase found.
const genericPhrasePenalty = 10

// AnalyzePersonalisation scores company and role references, reader-directed
// language, and concrete specifics, then subtracts a penalty for each
// generic phrase. The result is clamped to [0, 100].
//
// Scoring breakdown:
//   - Company:   40 for 2+ mentions, 25 for one; without a company name,
//     20 for a generic reader reference such as "your team"
//   - Role:      20 when the role name appears
//   - You/your:  20 for 5+, 10 for 2+
//   - Specifics: 20 for a percentage or a counted unit ("5 years")
//   - Penalty:   -10 per generic phrase
func AnalyzePersonalisation(lex *lexicon.Lexicon, text, company string, role lexicon.Role) PersonalisationAnalysis {
	res := PersonalisationAnalysis{MaxScore: MaxScore}
	score := 0

	company = strings.TrimSpace(company)
	if company != "" {
		res.CompanyMentions = countPhrase(company, text)
		switch {
		case res.CompanyMentions >= 2:
			score += 40
		case res.CompanyMentions == 1:
			score += 25
			res.Feedback = append(res.Feedback, "Mention "+company+" more than once and tie it to something specific about the company.")
		default:
			res.Feedback = append(res.Feedback, "You never mention "+company+" by name. Show why you want to work there specifically.")
		}
	} else {
		res.ReaderReference = matchAny(lex.ReaderReferences, text)
		if res.ReaderReference {
			score += 20
		}
	}

	if role != lexicon.RoleNone {
		res.RoleMentions = countPhrase(role.String(), text)
		if res.RoleMentions > 0 {
			score += 20
		} else {
			res.Feedback = append(res.Feedback, "Name the "+role.String()+" role you are applying for.")
		}
	}

	res.YouCount = len(youPattern.FindAllStringIndex(text, -1))
	switch {
	case res.YouCount >= 5:
		score += 20
	case res.YouCount >= 2:
		score += 10
	default:
		res.Feedback = append(res.Feedback, "Address the reader directly. Talk about their team and goals, not only about yourself.")
	}

	res.HasSpecifics = specificsPattern.MatchString(text)
	if res.HasSpecifics {
		score += 20
	} else {
		res.Feedback = append(res.Feedback, "Add concrete numbers such as percentages, years of experience, or project counts.")
	}

	lower := strings.ToLower(text)
	for _, phrase := range lex.GenericPhrases {
		if strings.Contains(lower, phrase) {
			res.GenericPhrases = append(res.GenericPhrases, phrase)
			score -= genericPhrasePenalty
		}
	}

	res.Score = clamp(score, 0, MaxScore)
	return res
}

// countPhrase counts case-insensitive whole-word occurrences of a free-text
// phrase. Word boundaries are only required at edges that are word
// characters, so names like "Acme Inc." still match.
func countPhrase(phrase, text string) int {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return 0
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	expr := strings.Join(words, `\s+`)

	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)
	if isWordRune(first) {
		expr = `\b` + expr
	}
	if isWordRune(last) {
		expr += `\b`
	}

	re, err := regexp.Compile(`(?i)` + expr)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}

// isWordRune mirrors the ASCII \w class used by regexp's \b.
func isWordRune(r rune) bool {
	return r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
