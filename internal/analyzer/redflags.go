package analyzer

import "github.com/blackwell-systems/lettergrade/internal/lexicon"

// Word count thresholds for the length red flags.
const (
	MinWords = 150
	MaxWords = 500
)

// Red flag types raised from stats rather than lexicon patterns.
const (
	FlagTooShort     = "too_short"
	FlagTooLong      = "too_long"
	FlagNoParagraphs = "no_paragraphs"
)

// DetectRedFlags runs every lexicon red-flag rule against the whole text,
// emitting one flag per matching rule, then appends the length and
// paragraph flags. Red flags have no effect on the score.
func DetectRedFlags(lex *lexicon.Lexicon, text string, stats Stats) []RedFlag {
	var flags []RedFlag
	for _, rule := range lex.RedFlags {
		if rule.Pattern.MatchString(text) {
			flags = append(flags, RedFlag{
				Type:     rule.Type,
				Message:  rule.Message,
				Severity: rule.Severity,
			})
		}
	}

	if stats.WordCount < MinWords {
		flags = append(flags, RedFlag{
			Type:     FlagTooShort,
			Message:  "Your letter is under 150 words. Expand on the experience that makes you a fit for this role.",
			Severity: lexicon.SeverityHigh,
		})
	}
	if stats.WordCount > MaxWords {
		flags = append(flags, RedFlag{
			Type:     FlagTooLong,
			Message:  "Your letter is over 500 words. Keep it to a single page that a hiring manager can skim.",
			Severity: lexicon.SeverityMedium,
		})
	}
	if stats.ParagraphCount <= 1 {
		flags = append(flags, RedFlag{
			Type:     FlagNoParagraphs,
			Message:  "The letter is one block of text. Split it into an opening, body paragraphs and a closing.",
			Severity: lexicon.SeverityHigh,
		})
	}
	return flags
}
