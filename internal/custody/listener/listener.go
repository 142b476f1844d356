// Package listener applies prison movement messages to custody records.
package listener

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"casework/internal/platform/kafka/consumer"
	id "casework/pkg/domain"
	"casework/pkg/requestcontext"
)

// Actor stamped on changes made from the movement feed.
const Actor = "prison-movement-listener"

// LocationSyncer is the custody operation driven by the feed.
type LocationSyncer interface {
	SyncPrisonLocation(ctx context.Context, noms id.NOMSNumber, institutionCode string) error
}

type movement struct {
	NOMSNumber string `json:"nomsNumber"`
	PrisonID   string `json:"prisonId"`
}

// MovementHandler implements consumer.Handler.
type MovementHandler struct {
	syncer LocationSyncer
	logger *slog.Logger
}

func NewMovementHandler(syncer LocationSyncer, logger *slog.Logger) *MovementHandler {
	return &MovementHandler{syncer: syncer, logger: logger}
}

// Handle skips malformed messages. Only infrastructure failures are returned.
func (h *MovementHandler) Handle(ctx context.Context, msg *consumer.Message) error {
	var m movement
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		h.logger.WarnContext(ctx, "skipping malformed prison movement",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}
	noms, err := id.ParseNOMSNumber(m.NOMSNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "skipping prison movement with invalid NOMS number",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"noms_number", m.NOMSNumber,
		)
		return nil
	}
	prison := strings.TrimSpace(m.PrisonID)
	if prison == "" {
		h.logger.WarnContext(ctx, "skipping prison movement without prison id",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"noms_number", noms,
		)
		return nil
	}

	ctx = requestcontext.WithActor(ctx, Actor)
	if rid := msg.Headers["requestId"]; rid != "" {
		ctx = requestcontext.WithRequestID(ctx, rid)
	}
	if !msg.Timestamp.IsZero() {
		ctx = requestcontext.WithTime(ctx, msg.Timestamp.UTC())
	}
	return h.syncer.SyncPrisonLocation(ctx, noms, prison)
}
