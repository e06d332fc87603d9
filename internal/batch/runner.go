// Package batch generates whole rosters concurrently over a bounded
// worker fan-out.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/scoutgen/internal/app"
	"github.com/okian/scoutgen/internal/domain/dedupe"
	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/pkg/logger"
	"github.com/okian/scoutgen/pkg/metrics"
)

// Default batch configuration constants.
const (
	defaultCount       = 25
	defaultWorkers     = 4
	defaultNameRetries = 5
)

// Stats summarizes one batch run.
type Stats struct {
	Requested      int
	Generated      int
	DuplicateNames int
	Elapsed        time.Duration
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithCount sets the number of players to generate.
func WithCount(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.count = n
		}
	}
}

// WithWorkers sets the number of concurrent generation workers.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithNameRetries sets how many fresh draws a worker attempts before
// accepting a duplicate name.
func WithNameRetries(n int) Option {
	return func(r *Runner) {
		if n >= 0 {
			r.nameRetries = n
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runner fans generation requests out over workers, keeping roster names
// unique via the dedupe tracker.
type Runner struct {
	svc     *app.Service
	tracker dedupe.Tracker

	count       int
	workers     int
	nameRetries int

	logger logger.Logger
}

// NewRunner builds a Runner around a generation service.
func NewRunner(svc *app.Service, opts ...Option) *Runner {
	r := &Runner{
		svc:         svc,
		tracker:     dedupe.NewInMemoryTracker(),
		count:       defaultCount,
		workers:     defaultWorkers,
		nameRetries: defaultNameRetries,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get().Named("batch")
	}
	if r.workers > r.count {
		r.workers = r.count
	}
	return r
}

// Run generates the configured roster for one region and scout profile.
// Each worker generates unstored, resolves name collisions, then persists
// best-effort through the service.
func (r *Runner) Run(ctx context.Context, regionID string, skills model.SkillProfile) ([]app.Result, Stats, error) {
	start := time.Now()
	stats := Stats{Requested: r.count}

	metrics.UpdateWorkerCount(r.workers)

	results := make(chan outcome, r.count)
	jobs := make(chan struct{}, r.count)
	for i := 0; i < r.count; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	for w := 0; w < r.workers; w++ {
		go func() {
			for range jobs {
				select {
				case <-ctx.Done():
					results <- outcome{err: ctx.Err()}
					continue
				default:
				}
				results <- r.generateUnique(ctx, regionID, skills)
			}
		}()
	}

	roster := make([]app.Result, 0, r.count)
	for i := 0; i < r.count; i++ {
		out := <-results
		if out.err != nil {
			return nil, stats, fmt.Errorf("batch generation: %w", out.err)
		}
		stats.DuplicateNames += out.duplicates
		roster = append(roster, out.result)
	}

	stats.Generated = len(roster)
	stats.Elapsed = time.Since(start)
	metrics.UpdateRosterSize(stats.Generated)

	r.logger.Info(ctx, "batch run complete",
		logger.Int("generated", stats.Generated),
		logger.Int("duplicateNames", stats.DuplicateNames),
		logger.String("elapsed", stats.Elapsed.String()),
	)
	return roster, stats, nil
}

// outcome carries one worker result back to the collector.
type outcome struct {
	result     app.Result
	duplicates int
	err        error
}

// generateUnique draws players until the name is new to this run, within
// the retry budget. The pure phase runs per attempt; persistence happens
// once, for the accepted player only.
func (r *Runner) generateUnique(ctx context.Context, regionID string, skills model.SkillProfile) (out outcome) {
	for attempt := 0; ; attempt++ {
		player, rep, err := r.svc.GenerateUnstored(regionID, skills)
		if err != nil {
			out.err = err
			return out
		}

		if !r.tracker.SeenAndRecord(ctx, player.Name) || attempt >= r.nameRetries {
			out.result = app.Result{
				Player:   player,
				Report:   rep,
				StoredID: r.svc.Persist(ctx, player, rep),
			}
			return out
		}
		out.duplicates++
		metrics.RecordDuplicateName()
	}
}
