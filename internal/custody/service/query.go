package service

import (
	"context"
	"errors"
	"fmt"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/sentinel"
)

// CustodyByBookingNumber returns the custody of the single active custodial
// event carrying the booking number.
func (s *Service) CustodyByBookingNumber(ctx context.Context, noms id.NOMSNumber, booking id.BookingNumber) (*models.CustodyRecord, error) {
	ctx, span := s.tracer.Start(ctx, "custody.by_booking_number")
	defer span.End()

	kase, err := s.Cases.SingleByNOMSNumber(ctx, noms)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	events, err := s.Events.FindActiveCustodialByCaseID(ctx, kase.ID)
	if err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load sentence events")
	}

	var matches []*models.SentenceEvent
	for _, e := range events {
		if e.Custody.BookingNumber == booking {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return nil, models.Failf(models.ReasonConvictionNotFound, "conviction with bookNumber %s not found", booking)
	case 1:
		rec := matches[0].Record()
		return &rec, nil
	default:
		return nil, models.Failf(models.ReasonMultipleCustodialSentences,
			"no single conviction with bookingNumber %s found, instead %d duplicates found", booking, len(matches))
	}
}

// CustodyByConviction returns the custody of one event on the case.
func (s *Service) CustodyByConviction(ctx context.Context, crn id.CRN, eventID id.EventID) (*models.CustodyRecord, error) {
	ctx, span := s.tracer.Start(ctx, "custody.by_conviction")
	defer span.End()

	kase, err := s.Cases.ByCRN(ctx, crn)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	e, err := s.Events.FindEventByID(ctx, eventID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, models.Failf(models.ReasonConvictionNotFound, "conviction with convictionId %d not found", eventID)
	case err != nil:
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load sentence event")
	}
	if e.CaseID != kase.ID || e.SoftDeleted {
		return nil, models.Failf(models.ReasonConvictionNotFound, "conviction with convictionId %d not found", eventID)
	}
	if e.Custody == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("The conviction with convictionId %d is not a custodial sentence", eventID))
	}
	rec := e.Record()
	return &rec, nil
}
