package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casework/internal/custody/effects"
	"casework/internal/custody/models"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/sentinel"
	"casework/pkg/requestcontext"
)

const (
	opTransfer = "prison_transfer"
	opSync     = "prison_location_sync"
)

// locationChange is what one run of the location pipeline produced.
type locationChange struct {
	kase    *models.Case
	changed []*models.SentenceEvent
	mutated bool
	result  models.LocationResult
}

// UpdatePrisonLocation moves every eligible custody of the case to the
// institution and returns the most recently sentenced custody. The booking
// number is reported in telemetry only.
func (s *Service) UpdatePrisonLocation(ctx context.Context, noms id.NOMSNumber, booking id.BookingNumber, institutionCode string) (*models.CustodyRecord, error) {
	ctx, span := s.tracer.Start(ctx, "custody.update_prison_location",
		trace.WithAttributes(
			attribute.String("noms_number", noms.String()),
			attribute.String("institution.code", institutionCode),
		),
	)
	defer span.End()

	props := map[string]string{
		"offenderNo":    noms.String(),
		"bookingNumber": booking.String(),
		"toAgency":      institutionCode,
	}

	change, err := s.updateLocation(ctx, noms, institutionCode)
	if err != nil {
		if reason, ok := models.ReasonOf(err); ok {
			s.track(ctx, transferFailureEvents[reason], props)
		}
		s.finish(ctx, span, opTransfer, "", err)
		return nil, err
	}

	switch change.result.Outcome {
	case models.OutcomeUpdated:
		s.track(ctx, EventTransferPrisonUpdated, with(props, "updatedCount", strconv.Itoa(len(change.result.Records))))
	case models.OutcomeNoUpdateRequired:
		s.track(ctx, EventTransferPrisonUpdateIgnored, props)
	}
	s.finish(ctx, span, opTransfer, string(change.result.Outcome), nil)

	rec, _ := change.result.MostRecentlySentenced()
	return &rec, nil
}

// SyncPrisonLocation is the unattended variant: every domain outcome becomes a
// telemetry event and only infrastructure errors are returned.
func (s *Service) SyncPrisonLocation(ctx context.Context, noms id.NOMSNumber, institutionCode string) error {
	ctx, span := s.tracer.Start(ctx, "custody.sync_prison_location",
		trace.WithAttributes(
			attribute.String("noms_number", noms.String()),
			attribute.String("institution.code", institutionCode),
		),
	)
	defer span.End()

	props := map[string]string{
		"offenderNo": noms.String(),
		"toAgency":   institutionCode,
	}

	change, err := s.updateLocation(ctx, noms, institutionCode)
	if err != nil {
		reason, ok := models.ReasonOf(err)
		s.finish(ctx, span, opSync, "", err)
		if !ok {
			return err
		}
		s.track(ctx, syncFailureEvents[reason], props)
		return nil
	}

	switch change.result.Outcome {
	case models.OutcomeUpdated:
		s.track(ctx, EventPOMLocationUpdated, with(props, "updatedCount", strconv.Itoa(len(change.result.Records))))
	case models.OutcomeNoUpdateRequired:
		s.track(ctx, EventPOMLocationCorrect, props)
	}
	s.finish(ctx, span, opSync, string(change.result.Outcome), nil)
	return nil
}

// updateLocation runs the pipeline in one transaction and the notifications
// after it commits.
func (s *Service) updateLocation(ctx context.Context, noms id.NOMSNumber, institutionCode string) (*locationChange, error) {
	mutate := s.Switches.CustodyUpdateEnabled(ctx)

	var change *locationChange
	err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		change, err = s.locationPipeline(txCtx, noms, institutionCode, mutate)
		return err
	})
	if err != nil {
		return nil, err
	}

	if change.mutated {
		for _, e := range change.changed {
			s.runner.Run(ctx, []effects.Effect{
				effects.New("spg.custody_location_change", func(ctx context.Context) error {
					return s.Notifier.NotifyCustodyLocationChange(ctx, change.kase, e)
				}),
				effects.New("spg.custody_update", func(ctx context.Context) error {
					return s.Notifier.NotifyCustodyUpdate(ctx, change.kase, e)
				}),
			})
		}
	}
	return change, nil
}

func (s *Service) locationPipeline(ctx context.Context, noms id.NOMSNumber, institutionCode string, mutate bool) (*locationChange, error) {
	kase, err := s.Cases.MostLikelyByNOMSNumber(ctx, noms)
	if err != nil {
		return nil, err
	}

	events, err := s.activeCustodialEvents(ctx, kase)
	if err != nil {
		return nil, err
	}

	eligible, err := inCustodyOrAboutToEnter(events)
	if err != nil {
		return nil, err
	}

	inst, err := s.Institutions.FindInstitutionByCode(ctx, institutionCode)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, models.Failf(models.ReasonTransferPrisonNotFound, "prison institution with nomis code %s not found", institutionCode)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load institution")
	}

	var different []*models.SentenceEvent
	for _, e := range eligible {
		if !e.Custody.IsAtInstitution(inst) {
			different = append(different, e)
		}
	}
	if len(different) == 0 {
		return &locationChange{
			kase:   kase,
			result: models.LocationResult{Outcome: models.OutcomeNoUpdateRequired, Records: records(eligible)},
		}, nil
	}

	if mutate {
		for _, e := range different {
			if err := s.moveCustody(ctx, kase, e, inst); err != nil {
				return nil, err
			}
		}
	} else {
		s.logger.WarnContext(ctx, "custody update switched off, institution change ignored",
			"request_id", requestcontext.RequestID(ctx),
			"case_id", kase.ID,
			"institution", inst.Code,
		)
	}

	return &locationChange{
		kase:    kase,
		changed: different,
		mutated: mutate,
		result:  models.LocationResult{Outcome: models.OutcomeUpdated, Records: records(different)},
	}, nil
}

func (s *Service) activeCustodialEvents(ctx context.Context, kase *models.Case) ([]*models.SentenceEvent, error) {
	events, err := s.Events.FindActiveCustodialByCaseID(ctx, kase.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load sentence events")
	}
	if len(events) == 0 {
		return nil, models.Failf(models.ReasonConvictionNotFound, "no active custodial events found for offender %s", kase.CRN)
	}
	if len(events) > 1 && !s.Switches.MultiEventLocationUpdateEnabled(ctx) {
		return nil, models.Failf(models.ReasonMultipleCustodialSentences,
			"multiple active custodial events found for offender %s. %d found", kase.CRN, len(events))
	}
	return events, nil
}

func inCustodyOrAboutToEnter(events []*models.SentenceEvent) ([]*models.SentenceEvent, error) {
	var eligible []*models.SentenceEvent
	statuses := make([]string, 0, len(events))
	for _, e := range events {
		if e.Custody.IsInCustody() || e.Custody.IsAboutToEnterCustody() {
			eligible = append(eligible, e)
		}
		statuses = append(statuses, e.Custody.Status.Description())
	}
	if len(eligible) == 0 {
		return nil, models.Failf(models.ReasonCustodialSentenceNotFoundInCorrectState,
			"conviction with custodial status of In Custody or Sentenced Custody not found. Status was %s", strings.Join(statuses, ", "))
	}
	return eligible, nil
}

// moveCustody applies the location change, and the move into custody for a
// sentenced record, together with their history rows, the manager allocation
// and the contact record.
func (s *Service) moveCustody(ctx context.Context, kase *models.Case, e *models.SentenceEvent, inst *models.Institution) error {
	now := requestcontext.Now(ctx)
	c := e.Custody

	c.MoveTo(inst, now)
	if err := s.appendHistory(ctx, kase, c, models.HistoryLocationChange, inst.Description); err != nil {
		return err
	}
	if c.IsAboutToEnterCustody() {
		c.EnterCustody(now)
		if err := s.appendHistory(ctx, kase, c, models.HistoryStatusChange, models.AutoInCustodyDetail); err != nil {
			return err
		}
	}
	if err := s.Events.Save(ctx, e); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save custody")
	}

	allocated, err := s.Managers.IsManagerAtInstitution(ctx, kase, inst)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check prison offender manager")
	}
	if !allocated {
		if err := s.Managers.AutoAllocateManagerAtInstitution(ctx, kase, inst); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to allocate prison offender manager")
		}
	}

	if err := s.Contacts.AddContactForPrisonLocationChange(ctx, kase, e); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record prison location contact")
	}
	return nil
}

func (s *Service) appendHistory(ctx context.Context, kase *models.Case, c *models.Custody, eventTypeCode, detail string) error {
	eventType, err := s.Reference.CustodyEventType(ctx, eventTypeCode)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up custody event type")
	}
	err = s.History.AppendHistory(ctx, models.CustodyHistory{
		CustodyID: c.ID,
		CaseID:    kase.ID,
		Detail:    detail,
		When:      requestcontext.Now(ctx),
		EventType: eventType,
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write custody history")
	}
	return nil
}

func records(events []*models.SentenceEvent) []models.CustodyRecord {
	out := make([]models.CustodyRecord, 0, len(events))
	for _, e := range events {
		out = append(out, e.Record())
	}
	return out
}
