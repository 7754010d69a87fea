// Package app wires generation, checking and persistence into the
// operations the TUI and the headless CLI both run.
package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/abelbrown/vanity/internal/check"
	"github.com/abelbrown/vanity/internal/config"
	"github.com/abelbrown/vanity/internal/gen"
	"github.com/abelbrown/vanity/internal/listfile"
	"github.com/abelbrown/vanity/internal/logging"
	"github.com/abelbrown/vanity/internal/results"
	"github.com/abelbrown/vanity/internal/store"
)

// SourceRange and SourceFile label where a candidate set came from.
const (
	SourceRange = "range"
	SourceFile  = "file"
)

// RunOutcome summarizes one completed check-and-save cycle.
type RunOutcome struct {
	Confirmed   []string
	Stats       check.Stats
	Interrupted bool
	OutputPath  string
	RunID       int64
}

// Runner executes the generate / check / save operations against one
// configuration. The run history store is optional.
type Runner struct {
	cfg    *config.Config
	source *gen.Source
	store  *store.Store
}

// NewRunner creates a Runner over the default alphabet.
func NewRunner(cfg *config.Config, st *store.Store) *Runner {
	return &Runner{
		cfg:    cfg,
		source: gen.New(nil),
		store:  st,
	}
}

// GenerateRange enumerates the configured length range through the codec and
// pattern filter, materializing the accepted candidates.
func (r *Runner) GenerateRange(echo gen.Observer) ([]string, error) {
	seq, err := r.source.Range(r.cfg.MinLen, r.cfg.MaxLen, r.cfg.Pattern, echo)
	if err != nil {
		return nil, err
	}
	candidates := slices.Collect(seq)
	logging.Info("Generated candidates",
		"min", r.cfg.MinLen, "max", r.cfg.MaxLen,
		"pattern", r.cfg.Pattern, "count", len(candidates))
	return candidates, nil
}

// GenerateFile loads the configured candidate list file.
func (r *Runner) GenerateFile() ([]string, error) {
	return r.source.FromFile(r.cfg.InputPath())
}

// Check verifies the candidates, writes the confirmed set to the configured
// output file, and records the run in the history store.
//
// Cancelling ctx interrupts the run; whatever was confirmed up to that point
// is still written out and recorded.
func (r *Runner) Check(ctx context.Context, candidates []string, sourceKind string, echo check.Observer) (*RunOutcome, error) {
	checker, err := check.New(check.Config{
		BaseURL: r.cfg.Checker.BaseURL,
		Timeout: time.Duration(r.cfg.Checker.TimeoutSec) * time.Second,
		Workers: r.cfg.Checker.Workers,
		RPS:     r.cfg.Checker.RequestsPerSec,
		Echo:    echo,
	})
	if err != nil {
		return nil, err
	}

	started := time.Now()
	var set *results.Set
	var stats check.Stats
	if len(candidates) > 0 {
		set, stats = checker.Check(ctx, slices.Values(candidates), r.cfg.Endpoint)
	} else {
		set = results.NewSet()
	}
	finished := time.Now()

	outcome := &RunOutcome{
		Confirmed:   set.Finalize(),
		Stats:       stats,
		Interrupted: ctx.Err() != nil,
		OutputPath:  r.cfg.OutputPath(),
	}

	if err := listfile.Write(outcome.OutputPath, outcome.Confirmed); err != nil {
		return outcome, fmt.Errorf("app: %w", err)
	}

	if r.store != nil {
		run := &store.Run{
			Endpoint:    r.cfg.Endpoint,
			Pattern:     r.cfg.Pattern,
			MinLen:      r.cfg.MinLen,
			MaxLen:      r.cfg.MaxLen,
			Source:      sourceKind,
			Generated:   int64(len(candidates)),
			Dispatched:  stats.Dispatched,
			Confirmed:   stats.Confirmed,
			Failed:      stats.Failed,
			Interrupted: outcome.Interrupted,
			StartedAt:   started,
			FinishedAt:  finished,
		}
		if err := r.store.SaveRun(run, outcome.Confirmed); err != nil {
			// The output file is already written; history is best-effort.
			logging.Error("Failed to record run", "error", err)
		} else {
			outcome.RunID = run.ID
		}
	}

	return outcome, nil
}
