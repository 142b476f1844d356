package ports

import (
	"context"

	"casework/internal/custody/models"
)

// ManagerAllocator owns prison offender manager allocation.
type ManagerAllocator interface {
	IsManagerAtInstitution(ctx context.Context, c *models.Case, inst *models.Institution) (bool, error)
	AutoAllocateManagerAtInstitution(ctx context.Context, c *models.Case, inst *models.Institution) error
}

// ContactRecorder writes case contact records documenting custody changes.
type ContactRecorder interface {
	AddContactForPrisonLocationChange(ctx context.Context, c *models.Case, e *models.SentenceEvent) error
	AddContactForBookingNumberUpdate(ctx context.Context, c *models.Case, e *models.SentenceEvent) error
}

// PrisonerRefresher rebuilds the case's prisoner-number cross reference.
type PrisonerRefresher interface {
	RefreshPrisonerNumbers(ctx context.Context, c *models.Case) error
}

// Telemetry records named business events. Implementations must not block
// and never fail the caller.
type Telemetry interface {
	TrackEvent(ctx context.Context, name string, props map[string]string)
}

// FeatureSwitches exposes the runtime toggles consulted by the engine.
type FeatureSwitches interface {
	CustodyUpdateEnabled(ctx context.Context) bool
	BookingNumberUpdateEnabled(ctx context.Context) bool
	MultiEventKeyDateUpdateEnabled(ctx context.Context) bool
	MultiEventLocationUpdateEnabled(ctx context.Context) bool
}

// ReferenceData resolves reference codes.
type ReferenceData interface {
	// KeyDateType returns sentinel.ErrNotFound for unknown codes.
	KeyDateType(ctx context.Context, code string) (models.KeyDateType, error)
	CustodyEventType(ctx context.Context, code string) (models.CustodyEventType, error)
}

// Tx runs fn in a single unit of work. Stores called with txCtx join it.
type Tx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}
