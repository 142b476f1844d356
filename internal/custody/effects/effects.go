// Package effects runs the ordered, post-commit side effects of a custody
// change. Each effect is toggled on its own and a failure in one never stops
// the next or reaches the caller.
package effects

import (
	"context"
	"fmt"
	"log/slog"

	"casework/internal/custody/metrics"
	"casework/pkg/requestcontext"
)

// Effect is one named side effect.
type Effect struct {
	Name    string
	Enabled bool
	Run     func(ctx context.Context) error
}

// New builds an enabled effect.
func New(name string, run func(ctx context.Context) error) Effect {
	return Effect{Name: name, Enabled: true, Run: run}
}

// When returns the effect enabled only if cond holds.
func (e Effect) When(cond bool) Effect {
	e.Enabled = e.Enabled && cond
	return e
}

// Runner executes effect lists.
type Runner struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewRunner(logger *slog.Logger, m *metrics.Metrics) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger, metrics: m}
}

// Run executes every enabled effect in order and returns the names of those
// that failed.
func (r *Runner) Run(ctx context.Context, list []Effect) []string {
	var failed []string
	for _, e := range list {
		if !e.Enabled || e.Run == nil {
			continue
		}
		if err := r.runOne(ctx, e); err != nil {
			failed = append(failed, e.Name)
			r.metrics.IncrementEffectFailure(e.Name)
			r.logger.WarnContext(ctx, "custody side effect failed",
				"effect", e.Name,
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
	}
	return failed
}

func (r *Runner) runOne(ctx context.Context, e Effect) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("effect panicked: %v", rec)
		}
	}()
	return e.Run(ctx)
}
