package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casework/internal/custody/effects"
	"casework/internal/custody/models"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/requestcontext"
)

const opBooking = "booking_number"

// sentenceDateWindow bounds how far a sentence start date may sit from the one
// reported by the prison system.
const sentenceDateWindow = 7 * 24 * time.Hour

// UpdateBookingNumber assigns the prison booking number to the active custodial
// event whose sentence started closest to sentenceStart.
func (s *Service) UpdateBookingNumber(ctx context.Context, noms id.NOMSNumber, booking id.BookingNumber, sentenceStart time.Time) (*models.BookingResult, error) {
	ctx, span := s.tracer.Start(ctx, "custody.update_booking_number",
		trace.WithAttributes(
			attribute.String("noms_number", noms.String()),
			attribute.String("booking_number", booking.String()),
		),
	)
	defer span.End()

	props := map[string]string{
		"offenderNo":        noms.String(),
		"bookingNumber":     booking.String(),
		"sentenceStartDate": sentenceStart.Format(time.DateOnly),
	}
	write := s.Switches.BookingNumberUpdateEnabled(ctx)

	var (
		kase   *models.Case
		target *models.SentenceEvent
		result *models.BookingResult
	)
	err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		kase, err = s.Cases.SingleByNOMSNumber(txCtx, noms)
		if err != nil {
			return err
		}
		target, err = s.closestToSentenceDate(txCtx, kase, sentenceStart)
		if err != nil {
			return err
		}

		existing := target.Custody.BookingNumber
		if existing == booking {
			result = &models.BookingResult{Outcome: models.BookingAlreadySet, Record: target.Record()}
			return nil
		}
		outcome := models.BookingInserted
		if existing != "" {
			outcome = models.BookingUpdated
		}

		if write {
			if err := s.assignBookingNumber(txCtx, kase, target, booking); err != nil {
				return err
			}
		} else {
			s.logger.WarnContext(txCtx, "booking number update switched off, change ignored",
				"request_id", requestcontext.RequestID(txCtx),
				"case_id", kase.ID,
				"event_id", target.ID,
			)
		}
		result = &models.BookingResult{Outcome: outcome, Record: target.Record()}
		return nil
	})
	if err != nil {
		if reason, ok := models.ReasonOf(err); ok {
			s.track(ctx, bookingFailureEvents[reason], props)
		}
		s.finish(ctx, span, opBooking, "", err)
		return nil, err
	}

	if write && result.Outcome != models.BookingAlreadySet {
		s.runner.Run(ctx, []effects.Effect{
			effects.New("spg.custody_update", func(ctx context.Context) error {
				return s.Notifier.NotifyCustodyUpdate(ctx, kase, target)
			}),
		})
	}

	switch result.Outcome {
	case models.BookingAlreadySet:
		s.track(ctx, EventImprisonmentBookingNumberAlreadySet, props)
	case models.BookingInserted:
		s.track(ctx, EventImprisonmentBookingNumberInserted, props)
	case models.BookingUpdated:
		s.track(ctx, EventImprisonmentBookingNumberUpdated, props)
	}
	s.finish(ctx, span, opBooking, string(result.Outcome), nil)
	return result, nil
}

// closestToSentenceDate picks the active custodial event whose sentence start
// is nearest to date within the window. Equally close events are ambiguous.
func (s *Service) closestToSentenceDate(ctx context.Context, kase *models.Case, date time.Time) (*models.SentenceEvent, error) {
	events, err := s.Events.FindActiveCustodialByCaseID(ctx, kase.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load sentence events")
	}

	var (
		best     *models.SentenceEvent
		bestGap  time.Duration
		tiedWith int
	)
	for _, e := range events {
		gap := absDuration(e.Disposal.SentenceStartDate.Sub(date))
		if gap > sentenceDateWindow {
			continue
		}
		switch {
		case best == nil || gap < bestGap:
			best, bestGap, tiedWith = e, gap, 1
		case gap == bestGap:
			tiedWith++
		}
	}

	day := date.Format(time.DateOnly)
	if best == nil {
		return nil, models.Failf(models.ReasonConvictionNotFound, "conviction with sentence date close to %s not found", day)
	}
	if tiedWith > 1 {
		return nil, models.Failf(models.ReasonMultipleCustodialSentences,
			"no single conviction with sentence date around %s found, instead %d duplicates found", day, tiedWith)
	}
	return best, nil
}

func (s *Service) assignBookingNumber(ctx context.Context, kase *models.Case, e *models.SentenceEvent, booking id.BookingNumber) error {
	e.Custody.BookingNumber = booking
	if err := s.Events.Save(ctx, e); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save booking number")
	}
	if err := s.Prisoners.RefreshPrisonerNumbers(ctx, kase); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to refresh prisoner numbers")
	}
	if err := s.Contacts.AddContactForBookingNumberUpdate(ctx, kase, e); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record booking number contact")
	}
	return nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
