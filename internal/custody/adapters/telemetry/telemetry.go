// Package telemetry records business events as structured log lines and
// Prometheus counters.
package telemetry

import (
	"context"
	"log/slog"
	"sort"

	"casework/internal/custody/metrics"
	"casework/pkg/requestcontext"
)

// Sink implements ports.Telemetry.
type Sink struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(logger *slog.Logger, m *metrics.Metrics) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{logger: logger, metrics: m}
}

// TrackEvent never blocks beyond the log write and never fails.
func (s *Sink) TrackEvent(ctx context.Context, name string, props map[string]string) {
	s.metrics.IncrementTelemetryEvent(name)

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]any, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, slog.String(k, props[k]))
	}
	s.logger.InfoContext(ctx, "telemetry event",
		"request_id", requestcontext.RequestID(ctx),
		"event", name,
		slog.Group("props", fields...),
	)
}
