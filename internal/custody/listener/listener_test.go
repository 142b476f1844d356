package listener

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casework/internal/platform/kafka/consumer"
	id "casework/pkg/domain"
	"casework/pkg/requestcontext"
)

type call struct {
	noms   id.NOMSNumber
	prison string
	actor  string
	now    time.Time
}

type recordingSyncer struct {
	calls []call
	err   error
}

func (r *recordingSyncer) SyncPrisonLocation(ctx context.Context, noms id.NOMSNumber, code string) error {
	r.calls = append(r.calls, call{noms: noms, prison: code, actor: requestcontext.Actor(ctx), now: requestcontext.Now(ctx)})
	return r.err
}

func newHandler(s *recordingSyncer) *MovementHandler {
	return NewMovementHandler(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandle(t *testing.T) {
	ts := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

	t.Run("syncs the location as the listener actor", func(t *testing.T) {
		s := &recordingSyncer{}
		err := newHandler(s).Handle(context.Background(), &consumer.Message{
			Value:     []byte(`{"nomsNumber":"g1234ab","prisonId":"MDI"}`),
			Timestamp: ts,
		})
		require.NoError(t, err)
		require.Len(t, s.calls, 1)
		assert.Equal(t, id.NOMSNumber("G1234AB"), s.calls[0].noms)
		assert.Equal(t, "MDI", s.calls[0].prison)
		assert.Equal(t, Actor, s.calls[0].actor)
		assert.True(t, ts.Equal(s.calls[0].now))
	})

	malformed := map[string]string{
		"not json":       `{"nomsNumber":`,
		"bad noms":       `{"nomsNumber":"123","prisonId":"MDI"}`,
		"missing prison": `{"nomsNumber":"G1234AB"}`,
	}
	for name, body := range malformed {
		t.Run("skips "+name, func(t *testing.T) {
			s := &recordingSyncer{}
			err := newHandler(s).Handle(context.Background(), &consumer.Message{Value: []byte(body)})
			require.NoError(t, err)
			assert.Empty(t, s.calls)
		})
	}

	t.Run("infrastructure errors are returned", func(t *testing.T) {
		s := &recordingSyncer{err: errors.New("db down")}
		err := newHandler(s).Handle(context.Background(), &consumer.Message{
			Value: []byte(`{"nomsNumber":"G1234AB","prisonId":"MDI"}`),
		})
		assert.Error(t, err)
	})
}
