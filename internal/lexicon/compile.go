package lexicon

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// wordBounded matches terms that start and end with a word character, so
// that \b anchoring around them behaves as a whole-word match.
var wordBounded = regexp.MustCompile(`^\w(?:.*\w)?$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Compile validates raw and builds the read-only Lexicon. All problems are
// collected and returned together as a *ValidationError.
func Compile(raw Raw) (*Lexicon, error) {
	verr := &ValidationError{}
	lex := &Lexicon{
		RoleKeywords: make(map[Role][]Keyword),
	}

	if len(raw.Categories) == 0 {
		verr.add("categories", "at least one keyword category is required")
	}
	for i, rc := range raw.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		name := strings.TrimSpace(rc.Name)
		if name == "" {
			verr.add(field+".name", "must not be empty")
		}
		if !(rc.Weight > 0) {
			verr.add(field+".weight", "must be > 0, got %v", rc.Weight)
		}
		lex.Categories = append(lex.Categories, KeywordCategory{
			Name:     name,
			Weight:   rc.Weight,
			Keywords: compileKeywords(verr, field+".keywords", rc.Keywords),
		})
	}

	// Sort role names so problems are reported in a stable order.
	roleNames := make([]string, 0, len(raw.RoleKeywords))
	for name := range raw.RoleKeywords {
		roleNames = append(roleNames, name)
	}
	sort.Strings(roleNames)
	for _, name := range roleNames {
		field := fmt.Sprintf("role_keywords[%s]", name)
		role, err := ParseRole(name)
		if err != nil || role == RoleNone {
			verr.add(field, "not a known role")
			continue
		}
		if _, dup := lex.RoleKeywords[role]; dup {
			verr.add(field, "role listed more than once")
			continue
		}
		lex.RoleKeywords[role] = compileKeywords(verr, field, raw.RoleKeywords[name])
	}

	compileVerbs(verr, lex, raw.ActionVerbs)

	for i, phrase := range raw.GenericPhrases {
		p := strings.ToLower(strings.TrimSpace(phrase))
		if p == "" {
			verr.add(fmt.Sprintf("generic_phrases[%d]", i), "must not be empty")
			continue
		}
		lex.GenericPhrases = append(lex.GenericPhrases, p)
	}

	lex.StrongOpenings = compilePatterns(verr, "strong_openings", raw.StrongOpenings)
	lex.GenericOpenings = compilePatterns(verr, "generic_openings", raw.GenericOpenings)
	lex.StrongClosings = compilePatterns(verr, "strong_closings", raw.StrongClosings)
	lex.ReaderReferences = compilePatterns(verr, "reader_references", raw.ReaderReferences)

	seenFlags := make(map[string]bool)
	for i, rf := range raw.RedFlags {
		field := fmt.Sprintf("red_flags[%d]", i)
		typ := strings.TrimSpace(rf.Type)
		if typ == "" {
			verr.add(field+".type", "must not be empty")
		} else if seenFlags[typ] {
			verr.add(field+".type", "duplicate red flag type %q", typ)
		}
		seenFlags[typ] = true
		if strings.TrimSpace(rf.Message) == "" {
			verr.add(field+".message", "must not be empty")
		}
		sev, err := ParseSeverity(rf.Severity)
		if err != nil {
			verr.add(field+".severity", "%v", err)
		}
		if strings.TrimSpace(rf.Pattern) == "" {
			verr.add(field+".pattern", "must not be empty")
			continue
		}
		re, err := regexp.Compile(rf.Pattern)
		if err != nil {
			verr.add(field+".pattern", "%v", err)
			continue
		}
		lex.RedFlags = append(lex.RedFlags, PatternRule{
			Type:     typ,
			Message:  strings.TrimSpace(rf.Message),
			Severity: sev,
			Pattern:  re,
		})
	}

	if rule, ok := weakLanguageRule(verr, raw.WeakLanguage); ok {
		if seenFlags[rule.Type] {
			verr.add("weak_language", "conflicts with an explicit %q red flag", rule.Type)
		} else {
			lex.RedFlags = append(lex.RedFlags, rule)
		}
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return lex, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// built-in tables that are known to be valid.
func MustCompile(raw Raw) *Lexicon {
	lex, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return lex
}

// KeywordPattern builds the case-insensitive whole-word matcher for a term.
// Interior whitespace matches any run of whitespace.
func KeywordPattern(term string) (*regexp.Regexp, error) {
	words := whitespaceRun.Split(strings.TrimSpace(term), -1)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.Compile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`)
}

// VerbPattern builds the matcher for a base verb form: the base followed by
// an optional "ed", "ing" or "s", appended as is. Verbs ending in "e" only
// match their base and "-s" forms ("improved" is not "improve" + "ed").
func VerbPattern(base string) (*regexp.Regexp, error) {
	base = strings.ToLower(strings.TrimSpace(base))
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(base) + `(?:ed|ing|s)?\b`)
}

func compileKeywords(verr *ValidationError, field string, terms []string) []Keyword {
	if len(terms) == 0 {
		verr.add(field, "at least one keyword is required")
		return nil
	}
	seen := make(map[string]bool, len(terms))
	out := make([]Keyword, 0, len(terms))
	for i, term := range terms {
		t := strings.TrimSpace(term)
		f := fmt.Sprintf("%s[%d]", field, i)
		if !wordBounded.MatchString(t) {
			verr.add(f, "keyword %q must start and end with a letter or digit", term)
			continue
		}
		key := strings.ToLower(whitespaceRun.ReplaceAllString(t, " "))
		if seen[key] {
			verr.add(f, "duplicate keyword %q", term)
			continue
		}
		seen[key] = true
		re, err := KeywordPattern(t)
		if err != nil {
			verr.add(f, "%v", err)
			continue
		}
		out = append(out, Keyword{Term: t, Pattern: re})
	}
	return out
}

func compileVerbs(verr *ValidationError, lex *Lexicon, raw map[string][]string) {
	owner := make(map[string]VerbBucket)
	present := make(map[VerbBucket]bool)

	// Resolve bucket names first so iteration follows bucket order, not map order.
	byBucket := make(map[VerbBucket][]string)
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := ParseBucket(name)
		if err != nil {
			verr.add("action_verbs", "%v", err)
			continue
		}
		if present[b] {
			verr.add("action_verbs."+name, "bucket listed more than once")
			continue
		}
		present[b] = true
		byBucket[b] = raw[name]
	}

	for _, b := range Buckets() {
		field := "action_verbs." + b.String()
		verbs, ok := byBucket[b]
		if !ok || len(verbs) == 0 {
			verr.add(field, "at least one verb is required")
			continue
		}
		for i, v := range verbs {
			base := strings.ToLower(strings.TrimSpace(v))
			f := fmt.Sprintf("%s[%d]", field, i)
			if !wordBounded.MatchString(base) || strings.ContainsAny(base, " \t\n") {
				verr.add(f, "verb %q must be a single word", v)
				continue
			}
			if prev, dup := owner[base]; dup {
				if prev == b {
					verr.add(f, "duplicate verb %q", base)
				} else {
					verr.add(f, "verb %q already appears in the %s bucket", base, prev)
				}
				continue
			}
			owner[base] = b
			re, err := VerbPattern(base)
			if err != nil {
				verr.add(f, "%v", err)
				continue
			}
			lex.Verbs[b] = append(lex.Verbs[b], Verb{Base: base, Bucket: b, Pattern: re})
		}
	}
}

func compilePatterns(verr *ValidationError, field string, patterns []string) []*regexp.Regexp {
	if len(patterns) == 0 {
		verr.add(field, "at least one pattern is required")
		return nil
	}
	out := make([]*regexp.Regexp, 0, len(patterns))
	for i, p := range patterns {
		f := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(p) == "" {
			verr.add(f, "must not be empty")
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			verr.add(f, "%v", err)
			continue
		}
		out = append(out, re)
	}
	return out
}

func weakLanguageRule(verr *ValidationError, markers []string) (PatternRule, bool) {
	if len(markers) == 0 {
		return PatternRule{}, false
	}
	alts := make([]string, 0, len(markers))
	for i, m := range markers {
		t := strings.TrimSpace(m)
		if !wordBounded.MatchString(t) {
			verr.add(fmt.Sprintf("weak_language[%d]", i), "marker %q must start and end with a letter or digit", m)
			continue
		}
		words := whitespaceRun.Split(t, -1)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		alts = append(alts, strings.Join(words, `\s+`))
	}
	if len(alts) == 0 {
		return PatternRule{}, false
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
	if err != nil {
		verr.add("weak_language", "%v", err)
		return PatternRule{}, false
	}
	return PatternRule{
		Type:     weakLanguageType,
		Message:  weakLanguageMessage,
		Severity: SeverityLow,
		Pattern:  re,
	}, true
}
