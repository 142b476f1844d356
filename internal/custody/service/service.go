// Package service orchestrates prison transfer and booking number updates:
// resolve the case, filter eligible custodies, detect no-ops, mutate inside one
// transaction, then run post-commit notifications.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EventStore,InstitutionStore,HistoryStore,CaseResolver

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"casework/internal/custody/effects"
	"casework/internal/custody/metrics"
	"casework/internal/custody/models"
	"casework/internal/custody/ports"
	id "casework/pkg/domain"
	"casework/pkg/requestcontext"
)

// EventStore is the sentence event persistence used by the orchestrator.
type EventStore interface {
	FindEventByID(ctx context.Context, eventID id.EventID) (*models.SentenceEvent, error)
	FindActiveCustodialByCaseID(ctx context.Context, caseID id.CaseID) ([]*models.SentenceEvent, error)
	Save(ctx context.Context, e *models.SentenceEvent) error
}

// InstitutionStore looks up establishments by their prison-system code.
type InstitutionStore interface {
	FindInstitutionByCode(ctx context.Context, code string) (*models.Institution, error)
}

// HistoryStore appends custody history rows.
type HistoryStore interface {
	AppendHistory(ctx context.Context, h models.CustodyHistory) error
}

// CaseResolver resolves external identifiers to a case.
type CaseResolver interface {
	ByCRN(ctx context.Context, crn id.CRN) (*models.Case, error)
	MostLikelyByNOMSNumber(ctx context.Context, noms id.NOMSNumber) (*models.Case, error)
	SingleByNOMSNumber(ctx context.Context, noms id.NOMSNumber) (*models.Case, error)
}

// Deps groups the collaborators the orchestrator cannot run without.
type Deps struct {
	Cases        CaseResolver
	Events       EventStore
	Institutions InstitutionStore
	History      HistoryStore
	Reference    ports.ReferenceData
	Tx           ports.Tx
	Notifier     ports.Notifier
	Managers     ports.ManagerAllocator
	Contacts     ports.ContactRecorder
	Prisoners    ports.PrisonerRefresher
	Telemetry    ports.Telemetry
	Switches     ports.FeatureSwitches
}

func (d Deps) validate() error {
	switch {
	case d.Cases == nil:
		return errors.New("case resolver is required")
	case d.Events == nil:
		return errors.New("event store is required")
	case d.Institutions == nil:
		return errors.New("institution store is required")
	case d.History == nil:
		return errors.New("history store is required")
	case d.Reference == nil:
		return errors.New("reference data is required")
	case d.Tx == nil:
		return errors.New("transaction runner is required")
	case d.Notifier == nil:
		return errors.New("notifier is required")
	case d.Managers == nil:
		return errors.New("manager allocator is required")
	case d.Contacts == nil:
		return errors.New("contact recorder is required")
	case d.Prisoners == nil:
		return errors.New("prisoner refresher is required")
	case d.Telemetry == nil:
		return errors.New("telemetry is required")
	case d.Switches == nil:
		return errors.New("feature switches are required")
	}
	return nil
}

// Service is the custody transfer orchestrator.
type Service struct {
	Deps
	logger  *slog.Logger
	metrics *metrics.Metrics
	runner  *effects.Runner
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(deps Deps, opts ...Option) (*Service, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	s := &Service{
		Deps:   deps,
		logger: slog.Default(),
		tracer: otel.Tracer("casework/custody/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner = effects.NewRunner(s.logger, s.metrics)
	return s, nil
}

func (s *Service) track(ctx context.Context, name string, props map[string]string) {
	s.Telemetry.TrackEvent(ctx, name, props)
}

// finish records the outcome of an operation on its span and metrics.
func (s *Service) finish(ctx context.Context, span trace.Span, op, outcome string, err error) {
	if err == nil {
		s.metrics.IncrementOutcome(op, outcome)
		span.SetAttributes(attribute.String("outcome", outcome))
		return
	}
	span.RecordError(err)
	if reason, ok := models.ReasonOf(err); ok {
		s.metrics.IncrementOutcome(op, string(reason))
		span.SetAttributes(attribute.String("failure.reason", string(reason)))
		return
	}
	s.metrics.IncrementOutcome(op, "error")
	span.SetStatus(codes.Error, err.Error())
	s.logger.ErrorContext(ctx, "custody operation failed",
		"operation", op,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}

func with(props map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(props)+1)
	for k, v := range props {
		out[k] = v
	}
	out[key] = value
	return out
}
