package ports

//go:generate mockgen -destination=mocks/mocks.go -package=mocks casework/internal/custody/ports Notifier,IAPSNotifier,ManagerAllocator,ContactRecorder,PrisonerRefresher,Telemetry,FeatureSwitches,ReferenceData,Tx

import (
	"context"

	"casework/internal/custody/models"
)

// Notifier publishes custody changes to the downstream case feed.
type Notifier interface {
	NotifyNewKeyDate(ctx context.Context, c *models.Case, e *models.SentenceEvent, typeCode string) error
	NotifyUpdateOfKeyDate(ctx context.Context, c *models.Case, e *models.SentenceEvent, typeCode string) error
	NotifyCustodyUpdate(ctx context.Context, c *models.Case, e *models.SentenceEvent) error
	NotifyCustodyLocationChange(ctx context.Context, c *models.Case, e *models.SentenceEvent) error
}

// IAPSNotifier tells the secondary feed that an event's computed sentence
// expiry may have changed.
type IAPSNotifier interface {
	NotifyEventUpdated(ctx context.Context, e *models.SentenceEvent) error
}
