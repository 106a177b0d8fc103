package analyzer

import "fmt"

// Target ranges for letter length, in words.
const (
	OptimalMinWords = 250
	OptimalMaxWords = 400
)

// AnalyzeReadability scores length, paragraph count, and sentence count
// against target ranges. The three sub-scores are additive.
//
// Scoring breakdown:
//   - Length (words):  250-400 -> 50, 200-450 -> 35, 150-500 -> 20, <150 -> 5, >500 -> 10
//   - Paragraphs:      3-5 -> 30, 2-6 -> 20, 1 -> 5, otherwise 10
//   - Sentences:       8-20 -> 20, 5-25 -> 10, otherwise 5
func AnalyzeReadability(stats Stats) ReadabilityAnalysis {
	res := ReadabilityAnalysis{MaxScore: MaxScore}
	wc := stats.WordCount

	switch {
	case wc >= OptimalMinWords && wc <= OptimalMaxWords:
		res.LengthScore = 50
		res.IsOptimalLength = true
		res.LengthFeedback = fmt.Sprintf("Length is in the optimal %d-%d word range.", OptimalMinWords, OptimalMaxWords)
	case wc >= 200 && wc <= 450:
		res.LengthScore = 35
		res.LengthFeedback = lengthAdvice("Slightly", wc)
	case wc >= 150 && wc <= 500:
		res.LengthScore = 20
		res.LengthFeedback = lengthAdvice("Noticeably", wc)
	case wc < 150:
		res.LengthScore = 5
		res.LengthFeedback = lengthAdvice("Much", wc)
	default:
		res.LengthScore = 10
		res.LengthFeedback = lengthAdvice("Much", wc)
	}
	res.Feedback = append(res.Feedback, res.LengthFeedback)

	pc := stats.ParagraphCount
	switch {
	case pc >= 3 && pc <= 5:
		res.ParagraphScore = 30
	case pc >= 2 && pc <= 6:
		res.ParagraphScore = 20
		res.Feedback = append(res.Feedback, fmt.Sprintf("Aim for 3-5 paragraphs (currently %d).", pc))
	case pc == 1:
		res.ParagraphScore = 5
		res.Feedback = append(res.Feedback, "Break the letter into 3-5 paragraphs.")
	default:
		res.ParagraphScore = 10
		res.Feedback = append(res.Feedback, fmt.Sprintf("Aim for 3-5 paragraphs (currently %d).", pc))
	}

	sc := stats.SentenceCount
	switch {
	case sc >= 8 && sc <= 20:
		res.SentenceScore = 20
	case sc >= 5 && sc <= 25:
		res.SentenceScore = 10
		res.Feedback = append(res.Feedback, fmt.Sprintf("Aim for 8-20 sentences (currently %d).", sc))
	default:
		res.SentenceScore = 5
		res.Feedback = append(res.Feedback, fmt.Sprintf("Aim for 8-20 sentences (currently %d).", sc))
	}

	res.Score = res.LengthScore + res.ParagraphScore + res.SentenceScore
	return res
}

func lengthAdvice(degree string, words int) string {
	if words < OptimalMinWords {
		return fmt.Sprintf("%s too short: expand to %d-%d words (currently %d).", degree, OptimalMinWords, OptimalMaxWords, words)
	}
	return fmt.Sprintf("%s too long: trim to %d-%d words (currently %d).", degree, OptimalMinWords, OptimalMaxWords, words)
}
