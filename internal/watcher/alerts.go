package watcher

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/lettergrade/internal/analyzer"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

// Compare detects notable changes between two watch states and returns alerts
// ordered critical, warning, info. States with the same content hash produce
// no alerts.
func Compare(prev, curr *WatchState) []Alert {
	if prev.Hash == curr.Hash {
		return nil
	}

	var alerts []Alert

	alerts = append(alerts, compareCritical(prev, curr)...)
	alerts = append(alerts, compareWarning(prev, curr)...)
	alerts = append(alerts, compareInfo(prev, curr)...)

	return alerts
}

// compareCritical reports newly raised high-severity red flags.
func compareCritical(prev, curr *WatchState) []Alert {
	var alerts []Alert
	for _, f := range newFlags(prev, curr) {
		if f.Severity == lexicon.SeverityHigh {
			alerts = append(alerts, flagRaised(f, curr.Timestamp))
		}
	}
	return alerts
}

// compareWarning reports score drops and newly raised lower-severity flags.
func compareWarning(prev, curr *WatchState) []Alert {
	var alerts []Alert
	p, c := prev.Analysis, curr.Analysis

	if c.OverallPercentage < p.OverallPercentage {
		alerts = append(alerts, Alert{
			Level:   LevelWarning,
			Title:   "Score dropped",
			Message: scoreMessage(p.OverallPercentage, c.OverallPercentage, p.Classification.Label, c.Classification.Label) + weakestMovement(prev, curr),
			Delta:   c.OverallPercentage - p.OverallPercentage,
			Time:    curr.Timestamp,
		})
	}

	for _, f := range newFlags(prev, curr) {
		if f.Severity != lexicon.SeverityHigh {
			alerts = append(alerts, flagRaised(f, curr.Timestamp))
		}
	}

	return alerts
}

// compareInfo reports score gains, resolved flags, and edits that moved
// nothing.
func compareInfo(prev, curr *WatchState) []Alert {
	var alerts []Alert
	p, c := prev.Analysis, curr.Analysis

	if c.OverallPercentage > p.OverallPercentage {
		alerts = append(alerts, Alert{
			Level:   LevelInfo,
			Title:   "Score improved",
			Message: scoreMessage(p.OverallPercentage, c.OverallPercentage, p.Classification.Label, c.Classification.Label),
			Delta:   c.OverallPercentage - p.OverallPercentage,
			Time:    curr.Timestamp,
		})
	}

	resolved := newFlags(curr, prev)
	for _, f := range resolved {
		alerts = append(alerts, Alert{
			Level:   LevelInfo,
			Title:   fmt.Sprintf("Red flag resolved: %s", f.Type),
			Message: f.Message,
			Time:    curr.Timestamp,
		})
	}

	if c.OverallPercentage == p.OverallPercentage && len(resolved) == 0 && len(newFlags(prev, curr)) == 0 {
		alerts = append(alerts, Alert{
			Level:   LevelInfo,
			Title:   "Draft updated",
			Message: fmt.Sprintf("Score unchanged at %d%%, %d words", c.OverallPercentage, c.Stats.WordCount),
			Time:    curr.Timestamp,
		})
	}

	return alerts
}

// newFlags returns the red flags present in curr but not in prev, identified
// by type, in curr's order.
func newFlags(prev, curr *WatchState) []analyzer.RedFlag {
	seen := make(map[string]bool, len(prev.Analysis.RedFlags))
	for _, f := range prev.Analysis.RedFlags {
		seen[f.Type] = true
	}
	var out []analyzer.RedFlag
	for _, f := range curr.Analysis.RedFlags {
		if !seen[f.Type] {
			out = append(out, f)
		}
	}
	return out
}

func flagRaised(f analyzer.RedFlag, at time.Time) Alert {
	level := LevelWarning
	if f.Severity == lexicon.SeverityHigh {
		level = LevelCritical
	}
	return Alert{
		Level:   level,
		Title:   fmt.Sprintf("Red flag: %s", f.Type),
		Message: f.Message,
		Time:    at,
	}
}

func scoreMessage(from, to int, fromLabel, toLabel string) string {
	msg := fmt.Sprintf("%d%% -> %d%%", from, to)
	if fromLabel != toLabel {
		msg += fmt.Sprintf(" (%s -> %s)", fromLabel, toLabel)
	}
	return msg
}

// weakestMovement names the dimensions that lost points, largest loss first.
func weakestMovement(prev, curr *WatchState) string {
	type delta struct {
		name string
		diff int
	}
	p, c := prev.Analysis, curr.Analysis
	deltas := []delta{
		{"structure", c.Structure.Score - p.Structure.Score},
		{"keywords", c.Keywords.Score - p.Keywords.Score},
		{"personalisation", c.Personalisation.Score - p.Personalisation.Score},
		{"action verbs", c.ActionVerbs.Score - p.ActionVerbs.Score},
		{"readability", c.Readability.Score - p.Readability.Score},
	}
	sort.SliceStable(deltas, func(i, j int) bool { return deltas[i].diff < deltas[j].diff })

	var lost []string
	for _, d := range deltas {
		if d.diff < 0 {
			lost = append(lost, fmt.Sprintf("%s %d", d.name, d.diff))
		}
	}
	if len(lost) == 0 {
		return ""
	}
	return "; " + strings.Join(lost, ", ")
}
