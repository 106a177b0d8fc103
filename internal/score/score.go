// Package score combines per-dimension results into the composite score.
package score

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float rounding in configured weights.
const weightSumTolerance = 1e-9

// Weights are the dimension weights of the composite score. They must
// sum to 1.0.
type Weights struct {
	Structure       float64 `mapstructure:"structure" json:"structure" validate:"gte=0,lte=1"`
	Keywords        float64 `mapstructure:"keywords" json:"keywords" validate:"gte=0,lte=1"`
	Personalisation float64 `mapstructure:"personalisation" json:"personalisation" validate:"gte=0,lte=1"`
	ActionVerbs     float64 `mapstructure:"action_verbs" json:"action_verbs" validate:"gte=0,lte=1"`
	Readability     float64 `mapstructure:"readability" json:"readability" validate:"gte=0,lte=1"`
}

// DefaultWeights are the standard dimension weights.
var DefaultWeights = Weights{
	Structure:       0.20,
	Keywords:        0.25,
	Personalisation: 0.20,
	ActionVerbs:     0.15,
	Readability:     0.20,
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Structure + w.Keywords + w.Personalisation + w.ActionVerbs + w.Readability
}

// Validate reports an error when any weight is negative or the weights do
// not sum to 1.0.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"structure", w.Structure},
		{"keywords", w.Keywords},
		{"personalisation", w.Personalisation},
		{"action_verbs", w.ActionVerbs},
		{"readability", w.Readability},
	} {
		if f.v < 0 || math.IsNaN(f.v) {
			return fmt.Errorf("weight %s must be >= 0, got %v", f.name, f.v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// Dimension is a single score out of its maximum.
type Dimension struct {
	Score    int
	MaxScore int
}

// Normalized returns Score/MaxScore clamped to [0, 1], or 0 when MaxScore
// is not positive.
func (d Dimension) Normalized() float64 {
	if d.MaxScore <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, float64(d.Score)/float64(d.MaxScore)))
}

// Dimensions holds the five scored dimensions.
type Dimensions struct {
	Structure       Dimension
	Keywords        Dimension
	Personalisation Dimension
	ActionVerbs     Dimension
	Readability     Dimension
}

// Aggregate returns the weighted composite score in [0, 1] and its
// rounded percentage.
func Aggregate(w Weights, d Dimensions) (overall float64, percentage int) {
	overall = w.Structure*d.Structure.Normalized() +
		w.Keywords*d.Keywords.Normalized() +
		w.Personalisation*d.Personalisation.Normalized() +
		w.ActionVerbs*d.ActionVerbs.Normalized() +
		w.Readability*d.Readability.Normalized()
	overall = math.Min(1, math.Max(0, overall))
	return overall, int(math.Round(overall * 100))
}

// Tone is the presentation tone of a classification.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// Classification is a label for a composite percentage.
type Classification struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// Classify maps a percentage to its label.
//
//	>= 80  Excellent
//	>= 60  Good
//	>= 40  Fair
//	else   Needs Improvement
func Classify(percentage int) Classification {
	switch {
	case percentage >= 80:
		return Classification{Label: "Excellent", Tone: ToneSuccess}
	case percentage >= 60:
		return Classification{Label: "Good", Tone: ToneInfo}
	case percentage >= 40:
		return Classification{Label: "Fair", Tone: ToneWarning}
	default:
		return Classification{Label: "Needs Improvement", Tone: ToneDanger}
	}
}
