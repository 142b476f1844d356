package testutil

import (
	"context"
	"time"

	"casework/pkg/requestcontext"
)

// ActorContext builds a context carrying the acting user and a pinned clock,
// as the auth and request middleware would.
func ActorContext(actor string, now time.Time) context.Context {
	return requestcontext.WithTime(requestcontext.WithActor(context.Background(), actor), now)
}
