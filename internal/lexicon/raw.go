package lexicon

// Raw is the uncompiled, serialisable form of a lexicon. It is what
// configuration files decode into and what Compile validates.
type Raw struct {
	Categories       []RawCategory       `mapstructure:"categories" json:"categories"`
	RoleKeywords     map[string][]string `mapstructure:"role_keywords" json:"role_keywords"`
	ActionVerbs      map[string][]string `mapstructure:"action_verbs" json:"action_verbs"`
	GenericPhrases   []string            `mapstructure:"generic_phrases" json:"generic_phrases"`
	WeakLanguage     []string            `mapstructure:"weak_language" json:"weak_language"`
	StrongOpenings   []string            `mapstructure:"strong_openings" json:"strong_openings"`
	GenericOpenings  []string            `mapstructure:"generic_openings" json:"generic_openings"`
	StrongClosings   []string            `mapstructure:"strong_closings" json:"strong_closings"`
	ReaderReferences []string            `mapstructure:"reader_references" json:"reader_references"`
	RedFlags         []RawRedFlag        `mapstructure:"red_flags" json:"red_flags"`
}

// RawCategory is an uncompiled keyword category.
type RawCategory struct {
	Name     string   `mapstructure:"name" json:"name"`
	Weight   float64  `mapstructure:"weight" json:"weight"`
	Keywords []string `mapstructure:"keywords" json:"keywords"`
}

// RawRedFlag is an uncompiled red-flag rule.
type RawRedFlag struct {
	Type     string `mapstructure:"type" json:"type"`
	Pattern  string `mapstructure:"pattern" json:"pattern"`
	Message  string `mapstructure:"message" json:"message"`
	Severity string `mapstructure:"severity" json:"severity"`
}

// weakLanguageFlag is the red-flag rule synthesised from Raw.WeakLanguage.
const (
	weakLanguageType    = "weak_language"
	weakLanguageMessage = "Hedging language such as \"I think\" or \"maybe\" weakens your claims. State what you did and what you can do."
)

// Merge returns a copy of base with every non-empty section of override
// replacing the corresponding section.
func Merge(base, override Raw) Raw {
	out := base
	if len(override.Categories) > 0 {
		out.Categories = override.Categories
	}
	if len(override.RoleKeywords) > 0 {
		out.RoleKeywords = override.RoleKeywords
	}
	if len(override.ActionVerbs) > 0 {
		out.ActionVerbs = override.ActionVerbs
	}
	if len(override.GenericPhrases) > 0 {
		out.GenericPhrases = override.GenericPhrases
	}
	if len(override.WeakLanguage) > 0 {
		out.WeakLanguage = override.WeakLanguage
	}
	if len(override.StrongOpenings) > 0 {
		out.StrongOpenings = override.StrongOpenings
	}
	if len(override.GenericOpenings) > 0 {
		out.GenericOpenings = override.GenericOpenings
	}
	if len(override.StrongClosings) > 0 {
		out.StrongClosings = override.StrongClosings
	}
	if len(override.ReaderReferences) > 0 {
		out.ReaderReferences = override.ReaderReferences
	}
	if len(override.RedFlags) > 0 {
		out.RedFlags = override.RedFlags
	}
	return out
}
