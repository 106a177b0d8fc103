// Package analyzer provides the per-dimension cover letter analyzers:
// stats, structure, keywords, personalisation, action verbs, readability,
// and red flags. Every analyzer is a pure function of its inputs and the
// read-only lexicon.
package analyzer

import "github.com/blackwell-systems/lettergrade/internal/lexicon"

// MaxScore is the maximum score of every returned dimension.
const MaxScore = 100

// Stats holds the basic counts derived from the trimmed letter text.
type Stats struct {
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
	ParagraphCount int `json:"paragraph_count"`
	SentenceCount  int `json:"sentence_count"`
}

// StructureAnalysis scores the opening, body, and closing shape of a letter.
type StructureAnalysis struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`

	OpeningScore int `json:"opening_score"` // 0-40
	BodyScore    int `json:"body_score"`    // 0-30
	ClosingScore int `json:"closing_score"` // 0-30

	HasStrongOpening bool `json:"has_strong_opening"`
	HasBodyContent   bool `json:"has_body_content"`
	HasClosingCTA    bool `json:"has_closing_cta"`

	Feedback []string `json:"feedback"`
}

// KeywordMatch is a keyword found in the letter.
type KeywordMatch struct {
	Keyword  string `json:"keyword"`
	Count    int    `json:"count"`
	Category string `json:"category"`
}

// MissingKeyword is a keyword absent from the letter, carrying its
// category weight so callers can see why it was prioritised.
type MissingKeyword struct {
	Keyword  string  `json:"keyword"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
}

// CategoryScore is the weighted coverage of a single keyword category.
type CategoryScore struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
	Found    int     `json:"found"`
	Total    int     `json:"total"`
}

// KeywordAnalysis scores technical and role vocabulary coverage. Score is
// normalised to 0-100 from the summed category maxima.
type KeywordAnalysis struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`

	Found      []KeywordMatch   `json:"found"`
	Missing    []MissingKeyword `json:"missing"`
	Categories []CategoryScore  `json:"categories"`
}

// PersonalisationAnalysis scores how tailored a letter is to the reader.
type PersonalisationAnalysis struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`

	CompanyMentions int      `json:"company_mentions"`
	ReaderReference bool     `json:"reader_reference"`
	RoleMentions    int      `json:"role_mentions"`
	YouCount        int      `json:"you_count"`
	HasSpecifics    bool     `json:"has_specifics"`
	GenericPhrases  []string `json:"generic_phrases"`
	Feedback        []string `json:"feedback"`
}

// ActionVerbAnalysis scores the variety of achievement-oriented verbs.
type ActionVerbAnalysis struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`

	// Found lists distinct base verbs in bucket order.
	Found []string `json:"found"`

	// Buckets lists the verb buckets represented among Found.
	Buckets []lexicon.VerbBucket `json:"buckets"`

	// Suggestions are example verbs from unrepresented buckets.
	Suggestions []string `json:"suggestions"`

	// Unused holds the first few lexicon verbs not found in the letter,
	// in bucket order.
	Unused []string `json:"unused"`
}

// ReadabilityAnalysis scores length and paragraph/sentence counts.
type ReadabilityAnalysis struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`

	LengthScore    int `json:"length_score"`    // 0-50
	ParagraphScore int `json:"paragraph_score"` // 0-30
	SentenceScore  int `json:"sentence_score"`  // 0-20

	IsOptimalLength bool     `json:"is_optimal_length"`
	LengthFeedback  string   `json:"length_feedback"`
	Feedback        []string `json:"feedback"`
}

// RedFlag is a diagnostic issue detected independently of the score.
type RedFlag struct {
	Type     string           `json:"type"`
	Message  string           `json:"message"`
	Severity lexicon.Severity `json:"severity"`
}
