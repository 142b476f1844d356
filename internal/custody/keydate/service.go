// Package keydate adds or replaces typed key dates on custodial sentences.
package keydate

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EventStore,CaseResolver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"casework/internal/custody/effects"
	"casework/internal/custody/metrics"
	"casework/internal/custody/models"
	"casework/internal/custody/ports"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/sentinel"
	"casework/pkg/requestcontext"
)

const (
	EventKeyDateAdded   = "KeyDateAdded"
	EventKeyDateUpdated = "KeyDateUpdated"

	operation = "key_date"
)

// EventStore is the sentence event persistence used by the reconciler.
type EventStore interface {
	FindEventByID(ctx context.Context, eventID id.EventID) (*models.SentenceEvent, error)
	FindActiveCustodialByCaseID(ctx context.Context, caseID id.CaseID) ([]*models.SentenceEvent, error)
	Save(ctx context.Context, e *models.SentenceEvent) error
	SaveAndFlush(ctx context.Context, e *models.SentenceEvent) error
}

// CaseResolver resolves the case a selector refers to.
type CaseResolver interface {
	ByID(ctx context.Context, caseID id.CaseID) (*models.Case, error)
	ByCRN(ctx context.Context, crn id.CRN) (*models.Case, error)
	MostLikelyByNOMSNumber(ctx context.Context, noms id.NOMSNumber) (*models.Case, error)
}

// Service reconciles key dates.
type Service struct {
	events    EventStore
	cases     CaseResolver
	reference ports.ReferenceData
	tx        ports.Tx
	notifier  ports.Notifier
	iaps      ports.IAPSNotifier
	telemetry ports.Telemetry
	switches  ports.FeatureSwitches
	logger    *slog.Logger
	metrics   *metrics.Metrics
	runner    *effects.Runner
	tracer    trace.Tracer
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

// Deps groups the collaborators the reconciler cannot run without.
type Deps struct {
	Events    EventStore
	Cases     CaseResolver
	Reference ports.ReferenceData
	Tx        ports.Tx
	Notifier  ports.Notifier
	IAPS      ports.IAPSNotifier
	Telemetry ports.Telemetry
	Switches  ports.FeatureSwitches
}

func New(deps Deps, opts ...Option) (*Service, error) {
	switch {
	case deps.Events == nil:
		return nil, errors.New("event store is required")
	case deps.Cases == nil:
		return nil, errors.New("case resolver is required")
	case deps.Reference == nil:
		return nil, errors.New("reference data is required")
	case deps.Tx == nil:
		return nil, errors.New("transaction runner is required")
	case deps.Notifier == nil:
		return nil, errors.New("notifier is required")
	case deps.IAPS == nil:
		return nil, errors.New("IAPS notifier is required")
	case deps.Telemetry == nil:
		return nil, errors.New("telemetry is required")
	case deps.Switches == nil:
		return nil, errors.New("feature switches are required")
	}
	s := &Service{
		events:    deps.Events,
		cases:     deps.Cases,
		reference: deps.Reference,
		tx:        deps.Tx,
		notifier:  deps.Notifier,
		iaps:      deps.IAPS,
		telemetry: deps.Telemetry,
		switches:  deps.Switches,
		logger:    slog.Default(),
		tracer:    otel.Tracer("casework/custody/keydate"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner = effects.NewRunner(s.logger, s.metrics)
	return s, nil
}

type target struct {
	kase     *models.Case
	event    *models.SentenceEvent
	keyDate  models.KeyDate
	inserted bool
}

// AddOrReplace sets the key date typeCode to date on every custody selected.
// The result describes the key date stored on the first target.
func (s *Service) AddOrReplace(ctx context.Context, sel Selector, typeCode string, date time.Time) (*models.KeyDateResult, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "keydate.add_or_replace",
		trace.WithAttributes(
			attribute.String("selector", sel.String()),
			attribute.String("key_date.type", typeCode),
		),
	)
	defer span.End()
	defer func() { s.metrics.ObserveOperationLatency(operation, time.Since(start)) }()

	kdType, err := s.reference.KeyDateType(ctx, typeCode)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, s.fail(ctx, span, models.Failf(models.ReasonInvalidTypeCode, "key date type %s not found", typeCode))
		}
		return nil, s.fail(ctx, span, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up key date type"))
	}

	actor := requestcontext.Actor(ctx)
	now := requestcontext.Now(ctx)
	var targets []target
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		kase, events, err := s.selectTargets(txCtx, sel)
		if err != nil {
			return err
		}
		targets = make([]target, 0, len(events))
		for _, e := range events {
			kd, inserted := e.Custody.AddOrReplaceKeyDate(kdType, date, actor, now)
			if inserted {
				err = s.events.SaveAndFlush(txCtx, e)
			} else {
				err = s.events.Save(txCtx, e)
			}
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save sentence event")
			}
			targets = append(targets, target{kase: kase, event: e, keyDate: kd, inserted: inserted})
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}

	for _, t := range targets {
		s.afterCommit(ctx, t, kdType)
	}
	span.SetAttributes(attribute.Int("targets", len(targets)))
	s.metrics.IncrementOutcome(operation, "Applied")

	first := targets[0]
	return &models.KeyDateResult{KeyDate: first.keyDate, Inserted: first.inserted}, nil
}

func (s *Service) selectTargets(ctx context.Context, sel Selector) (*models.Case, []*models.SentenceEvent, error) {
	if sel.kind == selectByEvent || sel.kind == selectByConviction {
		return s.selectEvent(ctx, sel)
	}

	var (
		kase *models.Case
		err  error
	)
	switch sel.kind {
	case selectByCase:
		kase, err = s.cases.ByID(ctx, sel.caseID)
	case selectByCRN:
		kase, err = s.cases.ByCRN(ctx, sel.crn)
	case selectByNOMSNumber:
		kase, err = s.cases.MostLikelyByNOMSNumber(ctx, sel.noms)
	default:
		return nil, nil, dErrors.New(dErrors.CodeBadRequest, "no key date selector given")
	}
	if err != nil {
		return nil, nil, err
	}

	events, err := s.events.FindActiveCustodialByCaseID(ctx, kase.ID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load sentence events")
	}
	if len(events) == 0 {
		return nil, nil, models.Failf(models.ReasonNoActiveCustodialSentence,
			"no active custodial sentence found for offender %s", kase.CRN)
	}
	if len(events) > 1 && !s.switches.MultiEventKeyDateUpdateEnabled(ctx) {
		return nil, nil, models.Failf(models.ReasonNoActiveCustodialSentence,
			"expected a single active custodial sentence for offender %s but found %d", kase.CRN, len(events))
	}
	return kase, events, nil
}

func (s *Service) selectEvent(ctx context.Context, sel Selector) (*models.Case, []*models.SentenceEvent, error) {
	var owner *models.Case
	if sel.kind == selectByConviction {
		c, err := s.cases.ByCRN(ctx, sel.crn)
		if err != nil {
			return nil, nil, err
		}
		owner = c
	}

	e, err := s.events.FindEventByID(ctx, sel.eventID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, models.Failf(models.ReasonConvictionNotFound, "conviction with id %s not found", sel.eventID)
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load sentence event")
	}
	if owner != nil && e.CaseID != owner.ID {
		return nil, nil, models.Failf(models.ReasonConvictionNotFound, "conviction with id %s not found for offender %s", sel.eventID, owner.CRN)
	}
	if e.Custody == nil {
		return nil, nil, models.Failf(models.ReasonNoActiveCustodialSentence, "conviction with id %s is not a custodial sentence", sel.eventID)
	}
	if owner == nil {
		owner, err = s.cases.ByID(ctx, e.CaseID)
		if err != nil {
			return nil, nil, err
		}
	}
	return owner, []*models.SentenceEvent{e}, nil
}

func (s *Service) afterCommit(ctx context.Context, t target, kdType models.KeyDateType) {
	name := EventKeyDateUpdated
	notify := s.notifier.NotifyUpdateOfKeyDate
	if t.inserted {
		name = EventKeyDateAdded
		notify = s.notifier.NotifyNewKeyDate
	}

	s.runner.Run(ctx, []effects.Effect{
		effects.New("spg.key_date", func(ctx context.Context) error {
			return notify(ctx, t.kase, t.event, kdType.Code)
		}),
		effects.New("iaps.event_updated", func(ctx context.Context) error {
			return s.iaps.NotifyEventUpdated(ctx, t.event)
		}).When(kdType.AffectsSentenceExpiry()),
	})

	s.telemetry.TrackEvent(ctx, name, map[string]string{
		"caseId":      t.kase.ID.String(),
		"eventId":     t.event.ID.String(),
		"eventNumber": t.event.EventNumber,
		"date":        t.keyDate.Date.Format(time.DateOnly),
		"type":        kdType.Code,
	})
	s.logger.InfoContext(ctx, "key date stored",
		"request_id", requestcontext.RequestID(ctx),
		"case_id", t.kase.ID,
		"event_id", t.event.ID,
		"type", kdType.Code,
		"inserted", t.inserted,
	)
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	if reason, ok := models.ReasonOf(err); ok {
		s.metrics.IncrementOutcome(operation, string(reason))
		span.SetAttributes(attribute.String("failure.reason", string(reason)))
		return err
	}
	span.SetStatus(codes.Error, err.Error())
	s.metrics.IncrementOutcome(operation, "error")
	s.logger.ErrorContext(ctx, "key date update failed",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	return err
}
