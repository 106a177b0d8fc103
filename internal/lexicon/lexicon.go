package lexicon

import "regexp"

// RoleCategoryWeight is the weight given to the synthetic role-specific
// keyword category.
const RoleCategoryWeight = 2.0

// Keyword is a single term with its precompiled case-insensitive
// whole-word matcher.
type Keyword struct {
	Term    string
	Pattern *regexp.Regexp
}

// Count returns the number of non-overlapping occurrences of the keyword in text.
func (k Keyword) Count(text string) int {
	return len(k.Pattern.FindAllStringIndex(text, -1))
}

// KeywordCategory is a weighted group of keywords.
type KeywordCategory struct {
	Name     string
	Weight   float64
	Keywords []Keyword
}

// Verb is an action verb in base form with its inflection-aware matcher.
type Verb struct {
	Base    string
	Bucket  VerbBucket
	Pattern *regexp.Regexp
}

// PatternRule is a compiled red-flag rule.
type PatternRule struct {
	Type     string
	Message  string
	Severity Severity
	Pattern  *regexp.Regexp
}

// Lexicon is the compiled, validated set of tables used by every analyzer.
// A Lexicon is read-only once returned by Compile and is safe for
// concurrent use.
type Lexicon struct {
	// Categories are the general keyword categories in declaration order.
	Categories []KeywordCategory

	// RoleKeywords holds the role-specific keyword lists.
	RoleKeywords map[Role][]Keyword

	// Verbs holds the action verbs per bucket, in declaration order.
	Verbs [NumBuckets][]Verb

	// GenericPhrases are lowercase phrases penalised on substring match.
	GenericPhrases []string

	StrongOpenings  []*regexp.Regexp
	GenericOpenings []*regexp.Regexp
	StrongClosings  []*regexp.Regexp

	// ReaderReferences detect generic reader-directed phrases such as
	// "your team" when no company name is supplied.
	ReaderReferences []*regexp.Regexp

	// RedFlags are evaluated against the whole letter.
	RedFlags []PatternRule
}

// CategoriesFor returns the active category list for a role: the general
// categories plus, when the role has a registered keyword list, one
// synthetic "<Role> Specific" category weighted RoleCategoryWeight.
// The returned slice is freshly allocated; the categories themselves are shared.
func (l *Lexicon) CategoriesFor(role Role) []KeywordCategory {
	active := make([]KeywordCategory, 0, len(l.Categories)+1)
	active = append(active, l.Categories...)

	if role == RoleNone {
		return active
	}
	keywords, ok := l.RoleKeywords[role]
	if !ok || len(keywords) == 0 {
		return active
	}
	return append(active, KeywordCategory{
		Name:     role.String() + " Specific",
		Weight:   RoleCategoryWeight,
		Keywords: keywords,
	})
}

// AllVerbs returns every verb across buckets in bucket order.
func (l *Lexicon) AllVerbs() []Verb {
	var all []Verb
	for _, b := range Buckets() {
		all = append(all, l.Verbs[b]...)
	}
	return all
}
