package analyzer

import "github.com/blackwell-systems/lettergrade/internal/lexicon"

const (
	suggestionsPerGroup = 2
	maxVerbSuggestions  = 6
	maxUnusedVerbs      = 3
	verbBonusBuckets    = 3
	verbBonus           = 10
)

// suggestionGroups are the bucket groups checked for representation when
// suggesting verbs. Leadership and collaboration count as one group.
var suggestionGroups = [][]lexicon.VerbBucket{
	{lexicon.BucketAchievement},
	{lexicon.BucketTechnical},
	{lexicon.BucketLeadership, lexicon.BucketCollaboration},
}

// AnalyzeActionVerbs scores the number of distinct action verbs used,
// with a bonus when they span at least three buckets.
func AnalyzeActionVerbs(lex *lexicon.Lexicon, text string) ActionVerbAnalysis {
	res := ActionVerbAnalysis{MaxScore: MaxScore}

	var used [lexicon.NumBuckets]bool
	for _, v := range lex.AllVerbs() {
		if v.Pattern.MatchString(text) {
			res.Found = append(res.Found, v.Base)
			used[v.Bucket] = true
		} else if len(res.Unused) < maxUnusedVerbs {
			res.Unused = append(res.Unused, v.Base)
		}
	}
	for _, b := range lexicon.Buckets() {
		if used[b] {
			res.Buckets = append(res.Buckets, b)
		}
	}

	switch n := len(res.Found); {
	case n >= 8:
		res.Score = 100
	case n >= 6:
		res.Score = 80
	case n >= 4:
		res.Score = 60
	case n >= 2:
		res.Score = 40
	case n >= 1:
		res.Score = 20
	}
	if len(res.Buckets) >= verbBonusBuckets {
		res.Score = min(res.Score+verbBonus, MaxScore)
	}

	for _, group := range suggestionGroups {
		represented := false
		var pool []string
		for _, b := range group {
			represented = represented || used[b]
			for _, v := range lex.Verbs[b] {
				pool = append(pool, v.Base)
			}
		}
		if represented {
			continue
		}
		if len(pool) > suggestionsPerGroup {
			pool = pool[:suggestionsPerGroup]
		}
		res.Suggestions = append(res.Suggestions, pool...)
	}
	if len(res.Suggestions) > maxVerbSuggestions {
		res.Suggestions = res.Suggestions[:maxVerbSuggestions]
	}

	return res
}
