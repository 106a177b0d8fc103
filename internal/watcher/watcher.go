// Package watcher polls a cover letter draft, re-scoring it whenever its
// content changes and emitting alerts for notable movements.
package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/blackwell-systems/lettergrade/internal/document"
	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
	"github.com/blackwell-systems/lettergrade/internal/logger"
)

// logExcerptRunes bounds the draft text included in debug log entries.
const logExcerptRunes = 60

// Alert levels.
const (
	LevelInfo     = "info"
	LevelWarning  = "warning"
	LevelCritical = "critical"
)

// WatchState captures the draft and its analysis at one point in time.
type WatchState struct {
	Timestamp time.Time
	ModTime   time.Time
	Size      int64
	Hash      string // sha256 of the content, hex encoded

	Analysis engine.CoverLetterAnalysis
}

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Message string
	Delta   int // percentage point change for score alerts
	Time    time.Time
}

// Watcher polls a single letter file at a regular interval and emits alerts
// when a change moves its score or red flags.
type Watcher struct {
	path          string
	engine        *engine.Engine
	interval      time.Duration
	previous      *WatchState
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts

	Role          lexicon.Role
	Company       string
	MaxInputChars int // 0 disables the cap
	Logger        *zap.Logger
}

// New creates a Watcher for the letter at path.
func New(path string, eng *engine.Engine, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		path:          path,
		engine:        eng,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
		Logger:        zap.NewNop(),
	}
}

// Run scores the draft once, reports the baseline, then checks at every
// interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot()
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial
	w.emit(baselineAlert(filepath.Base(w.path), initial))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, a := range w.Check() {
				w.emit(a)
			}
		}
	}
}

func (w *Watcher) emit(a Alert) {
	if w.alertFn != nil {
		w.alertFn(a)
	}
}

// Check performs a single check cycle: takes a new snapshot, compares against
// the previous state, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check() []Alert {
	curr, err := w.Snapshot()
	var raw []Alert
	if err != nil {
		raw = []Alert{{
			Level:   LevelWarning,
			Title:   "Snapshot failed",
			Message: fmt.Sprintf("Could not score %s: %v", filepath.Base(w.path), err),
			Time:    time.Now(),
		}}
	} else {
		if w.previous != nil {
			raw = Compare(w.previous, curr)
		}
		w.previous = curr
	}

	// Deduplicate: suppress alerts with the same title+message as last cycle.
	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	return alerts
}

// Snapshot reads and scores the draft. When the file's size and modification
// time match the previous snapshot, or its content hash does, the previous
// analysis is reused instead of re-scoring.
func (w *Watcher) Snapshot() (*WatchState, error) {
	info, err := os.Stat(w.path)
	if err != nil {
		return nil, err
	}

	state := &WatchState{
		Timestamp: time.Now(),
		ModTime:   info.ModTime(),
		Size:      info.Size(),
	}

	prev := w.previous
	if prev != nil && prev.Size == state.Size && prev.ModTime.Equal(state.ModTime) {
		state.Hash = prev.Hash
		state.Analysis = prev.Analysis
		return state, nil
	}

	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	state.Hash = hex.EncodeToString(sum[:])

	if prev != nil && prev.Hash == state.Hash {
		state.Analysis = prev.Analysis
		return state, nil
	}

	text, err := document.Extract(document.FormatOf(w.path), data)
	if err != nil {
		return nil, err
	}
	if err := engine.CheckInput(text, w.MaxInputChars); err != nil {
		return nil, err
	}

	start := time.Now()
	state.Analysis = w.engine.Analyse(text, w.Role, w.Company)
	w.Logger.Debug("rescored draft",
		zap.String("path", w.path),
		zap.Int("percentage", state.Analysis.OverallPercentage),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("excerpt", logger.TruncateForLog(text, logExcerptRunes)),
	)
	return state, nil
}

// baselineAlert describes the first score of a watch session.
func baselineAlert(name string, s *WatchState) Alert {
	a := s.Analysis
	return Alert{
		Level:   LevelInfo,
		Title:   fmt.Sprintf("Watching %s", name),
		Message: fmt.Sprintf("%d%% (%s), %d words, %d red flag(s)", a.OverallPercentage, a.Classification.Label, a.Stats.WordCount, len(a.RedFlags)),
		Time:    s.Timestamp,
	}
}
