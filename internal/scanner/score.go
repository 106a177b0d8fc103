package scanner

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/lettergrade/internal/document"
	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

// Options controls a batch run.
type Options struct {
	Role          lexicon.Role
	Company       string
	MaxInputChars int // 0 disables the cap
	Concurrency   int // values below 1 mean 1
	Logger        *zap.Logger
}

// ScoreLetters reads and analyses every letter with at most
// opts.Concurrency files in flight. Per-file problems (unreadable, too large)
// are recorded on the Result and do not stop the batch; only cancellation of
// ctx returns an error. Results are in the same order as letters.
func ScoreLetters(ctx context.Context, eng *engine.Engine, letters []Letter, opts Options) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	results := make([]Result, len(letters))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Concurrency))

	for i, l := range letters {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scoreOne(eng, l, opts)
			if results[i].Err != "" {
				log.Warn("skipped letter", zap.String("path", l.Path), zap.String("error", results[i].Err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// scoreOne reads and analyses a single letter.
func scoreOne(eng *engine.Engine, l Letter, opts Options) Result {
	res := Result{Letter: l}

	text, err := document.ReadText(l.Path)
	if err != nil {
		res.Err = fmt.Sprintf("reading letter: %v", err)
		return res
	}

	if err := engine.CheckInput(text, opts.MaxInputChars); err != nil {
		res.Err = err.Error()
		return res
	}

	analysis := eng.Analyse(text, opts.Role, opts.Company)
	res.Analysis = &analysis
	return res
}

// Summarize aggregates scored results. Failed letters count towards Failed
// only.
func Summarize(results []Result) Summary {
	s := Summary{Classes: make(map[string]int)}
	total := 0
	for _, r := range results {
		if r.Analysis == nil {
			s.Failed++
			continue
		}
		s.Scored++
		total += r.Analysis.OverallPercentage
		s.Classes[r.Analysis.Classification.Label]++
		s.RedFlags += len(r.Analysis.RedFlags)
	}
	if s.Scored > 0 {
		s.MeanPercentage = float64(total) / float64(s.Scored)
	}
	return s
}
