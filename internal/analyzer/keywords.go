package analyzer

import (
	"math"
	"sort"
	"strings"

	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

const (
	// missingPerCategory caps how many missing keywords each category
	// contributes before the combined list is ranked.
	missingPerCategory = 5

	// maxMissing caps the ranked missing-keyword list.
	maxMissing = 8
)

// AnalyzeKeywords scores vocabulary coverage across the general keyword
// categories plus the role-specific category when role is set.
//
// A found keyword contributes its category weight once regardless of how
// often it occurs. The score is 100 * sum(found weights) / sum(all weights),
// rounded, or 0 when there are no keywords at all.
func AnalyzeKeywords(lex *lexicon.Lexicon, text string, role lexicon.Role) KeywordAnalysis {
	res := KeywordAnalysis{MaxScore: MaxScore}

	var (
		total, totalMax float64
		candidates      []MissingKeyword
		seen            = make(map[string]bool)
	)

	for _, cat := range lex.CategoriesFor(role) {
		cs := CategoryScore{
			Name:     cat.Name,
			Weight:   cat.Weight,
			MaxScore: float64(len(cat.Keywords)) * cat.Weight,
			Total:    len(cat.Keywords),
		}
		missing := 0
		for _, kw := range cat.Keywords {
			count := kw.Count(text)
			if count == 0 {
				if missing < missingPerCategory {
					candidates = append(candidates, MissingKeyword{
						Keyword:  kw.Term,
						Category: cat.Name,
						Weight:   cat.Weight,
					})
				}
				missing++
				continue
			}

			cs.Score += cat.Weight
			cs.Found++

			key := strings.ToLower(kw.Term)
			if seen[key] {
				continue
			}
			seen[key] = true
			res.Found = append(res.Found, KeywordMatch{
				Keyword:  kw.Term,
				Count:    count,
				Category: cat.Name,
			})
		}
		total += cs.Score
		totalMax += cs.MaxScore
		res.Categories = append(res.Categories, cs)
	}

	if totalMax > 0 {
		res.Score = int(math.Round(100 * total / totalMax))
	}

	// Heavier categories first; within equal weight, declaration order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight > candidates[j].Weight
	})
	if len(candidates) > maxMissing {
		candidates = candidates[:maxMissing]
	}
	res.Missing = candidates

	return res
}
