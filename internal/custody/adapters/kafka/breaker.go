package kafka

import (
	"context"
	"errors"
	"log/slog"

	"casework/pkg/platform/circuit"
	"casework/pkg/requestcontext"
)

// ErrFeedUnavailable is returned while the breaker is open.
var ErrFeedUnavailable = errors.New("notification feed unavailable")

// GuardedPublisher stops calling the broker after repeated failures so an
// outage does not add produce timeouts to every custody change.
type GuardedPublisher struct {
	next    Publisher
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuardedPublisher(next Publisher, breaker *circuit.Breaker, logger *slog.Logger) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker, logger: logger}
}

func (p *GuardedPublisher) Publish(ctx context.Context, topic string, key, value []byte, headers map[string]string) error {
	if !p.breaker.Allow() {
		return ErrFeedUnavailable
	}
	err := p.next.Publish(ctx, topic, key, value, headers)
	if err != nil {
		if _, change := p.breaker.RecordFailure(); change.Opened {
			p.logger.WarnContext(ctx, "notification feed circuit opened",
				"request_id", requestcontext.RequestID(ctx),
				"breaker", p.breaker.Name(),
				"error", err,
			)
		}
		return err
	}
	if _, change := p.breaker.RecordSuccess(); change.Closed {
		p.logger.InfoContext(ctx, "notification feed circuit closed",
			"breaker", p.breaker.Name(),
		)
	}
	return nil
}
