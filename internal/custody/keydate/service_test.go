package keydate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casework/internal/custody/keydate/mocks"
	"casework/internal/custody/models"
	portmocks "casework/internal/custody/ports/mocks"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/sentinel"
	"casework/pkg/requestcontext"
)

// =============================================================================
// Key Date Reconciler Test Suite
// =============================================================================
// Justification for unit tests: insert vs replace stamping, target selection
// and which notifications fire are decided here and nowhere else.

type KeyDateServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	events    *mocks.MockEventStore
	cases     *mocks.MockCaseResolver
	reference *portmocks.MockReferenceData
	tx        *portmocks.MockTx
	notifier  *portmocks.MockNotifier
	iaps      *portmocks.MockIAPSNotifier
	telemetry *portmocks.MockTelemetry
	switches  *portmocks.MockFeatureSwitches
	service   *Service

	ctx  context.Context
	now  time.Time
	kase *models.Case
}

func TestKeyDateServiceSuite(t *testing.T) {
	suite.Run(t, new(KeyDateServiceSuite))
}

var (
	pomHandover    = models.KeyDateType{Code: "POM1", Description: "POM Handover expected start date"}
	sentenceExpiry = models.KeyDateType{Code: "SED", Description: "Sentence Expiry Date"}
)

func (s *KeyDateServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.events = mocks.NewMockEventStore(s.ctrl)
	s.cases = mocks.NewMockCaseResolver(s.ctrl)
	s.reference = portmocks.NewMockReferenceData(s.ctrl)
	s.tx = portmocks.NewMockTx(s.ctrl)
	s.notifier = portmocks.NewMockNotifier(s.ctrl)
	s.iaps = portmocks.NewMockIAPSNotifier(s.ctrl)
	s.telemetry = portmocks.NewMockTelemetry(s.ctrl)
	s.switches = portmocks.NewMockFeatureSwitches(s.ctrl)

	s.tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	var err error
	s.service, err = New(s.deps(), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)

	s.now = time.Date(2026, 4, 14, 11, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(requestcontext.WithActor(context.Background(), "officer.jones"), s.now)
	s.kase = &models.Case{ID: 7, CRN: "X320741", NOMSNumber: "G9542VP", CurrentDisposal: true}
}

func (s *KeyDateServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *KeyDateServiceSuite) deps() Deps {
	return Deps{
		Events:    s.events,
		Cases:     s.cases,
		Reference: s.reference,
		Tx:        s.tx,
		Notifier:  s.notifier,
		IAPS:      s.iaps,
		Telemetry: s.telemetry,
		Switches:  s.switches,
	}
}

func custodialEvent(eventID id.EventID, caseID id.CaseID, keyDates ...models.KeyDate) *models.SentenceEvent {
	return &models.SentenceEvent{
		ID:          eventID,
		CaseID:      caseID,
		EventNumber: "1",
		Active:      true,
		Disposal:    models.Disposal{SentenceStartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		Custody:     &models.Custody{ID: id.CustodyID(eventID * 10), EventID: eventID, Status: models.StatusInCustody, KeyDates: keyDates},
	}
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *KeyDateServiceSuite) TestNew() {
	s.Run("missing event store returns error", func() {
		deps := s.deps()
		deps.Events = nil
		_, err := New(deps)
		s.ErrorContains(err, "event store is required")
	})

	s.Run("missing feature switches returns error", func() {
		deps := s.deps()
		deps.Switches = nil
		_, err := New(deps)
		s.ErrorContains(err, "feature switches are required")
	})

	s.Run("with options applies options", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc, err := New(s.deps(), WithLogger(logger))
		s.NoError(err)
		s.Equal(logger, svc.logger)
	})
}

// =============================================================================
// Type Code Validation
// =============================================================================

func (s *KeyDateServiceSuite) TestInvalidTypeCode() {
	s.reference.EXPECT().KeyDateType(gomock.Any(), "XXX").Return(models.KeyDateType{}, sentinel.ErrNotFound)

	_, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "XXX", s.now)

	reason, ok := models.ReasonOf(err)
	s.Require().True(ok)
	s.Equal(models.ReasonInvalidTypeCode, reason)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *KeyDateServiceSuite) TestReferenceLookupFailureIsInternal() {
	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(models.KeyDateType{}, errors.New("connection refused"))

	_, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "POM1", s.now)

	_, ok := models.ReasonOf(err)
	s.False(ok)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

// =============================================================================
// Selection by Case
// =============================================================================

func (s *KeyDateServiceSuite) TestByCaseWithoutActiveCustodialEvents() {
	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).Return(nil, nil)

	_, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "POM1", s.now)

	reason, _ := models.ReasonOf(err)
	s.Equal(models.ReasonNoActiveCustodialSentence, reason)
}

func (s *KeyDateServiceSuite) TestByCaseWithSeveralEventsAndSwitchOff() {
	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).
		Return([]*models.SentenceEvent{custodialEvent(1, s.kase.ID), custodialEvent(2, s.kase.ID)}, nil)
	s.switches.EXPECT().MultiEventKeyDateUpdateEnabled(gomock.Any()).Return(false)

	_, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "POM1", s.now)

	reason, _ := models.ReasonOf(err)
	s.Equal(models.ReasonNoActiveCustodialSentence, reason)
	s.Contains(err.Error(), "found 2")
}

func (s *KeyDateServiceSuite) TestByCaseWithSeveralEventsAndSwitchOn() {
	date := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	first, second := custodialEvent(1, s.kase.ID), custodialEvent(2, s.kase.ID)
	second.EventNumber = "2"

	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).
		Return([]*models.SentenceEvent{first, second}, nil)
	s.switches.EXPECT().MultiEventKeyDateUpdateEnabled(gomock.Any()).Return(true)
	s.events.EXPECT().SaveAndFlush(gomock.Any(), first).Return(nil)
	s.events.EXPECT().SaveAndFlush(gomock.Any(), second).Return(nil)
	s.notifier.EXPECT().NotifyNewKeyDate(gomock.Any(), s.kase, first, "POM1").Return(nil)
	s.notifier.EXPECT().NotifyNewKeyDate(gomock.Any(), s.kase, second, "POM1").Return(nil)
	s.telemetry.EXPECT().TrackEvent(gomock.Any(), EventKeyDateAdded, map[string]string{
		"caseId": "7", "eventId": "1", "eventNumber": "1", "date": "2027-01-01", "type": "POM1",
	})
	s.telemetry.EXPECT().TrackEvent(gomock.Any(), EventKeyDateAdded, map[string]string{
		"caseId": "7", "eventId": "2", "eventNumber": "2", "date": "2027-01-01", "type": "POM1",
	})

	result, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "POM1", date)

	s.Require().NoError(err)
	s.True(result.Inserted)
	s.Equal(date, result.KeyDate.Date)
	s.Len(first.Custody.KeyDates, 1)
	s.Len(second.Custody.KeyDates, 1)
}

// =============================================================================
// Insert vs Replace
// =============================================================================

func (s *KeyDateServiceSuite) TestInsertStampsCreatedAndUpdatedIdentically() {
	event := custodialEvent(1, s.kase.ID)
	date := time.Date(2027, 3, 9, 0, 0, 0, 0, time.UTC)

	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).Return([]*models.SentenceEvent{event}, nil)
	s.events.EXPECT().SaveAndFlush(gomock.Any(), event).Return(nil)
	s.notifier.EXPECT().NotifyNewKeyDate(gomock.Any(), s.kase, event, "POM1").Return(nil)
	s.telemetry.EXPECT().TrackEvent(gomock.Any(), EventKeyDateAdded, gomock.Any())

	result, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "POM1", date)

	s.Require().NoError(err)
	kd := result.KeyDate
	s.Equal(s.now, kd.CreatedAt)
	s.Equal("officer.jones", kd.CreatedBy)
	s.Equal(kd.CreatedAt, kd.LastUpdatedAt)
	s.Equal(kd.CreatedBy, kd.LastUpdatedBy)
	s.Equal(pomHandover, kd.Type)
}

func (s *KeyDateServiceSuite) TestReplacePreservesCreatedStamp() {
	created := s.now.AddDate(0, -2, 0)
	event := custodialEvent(1, s.kase.ID, models.KeyDate{
		Type: pomHandover, Date: created.AddDate(0, 6, 0),
		CreatedAt: created, CreatedBy: "original.user",
		LastUpdatedAt: created, LastUpdatedBy: "original.user",
	})
	date := time.Date(2027, 3, 9, 0, 0, 0, 0, time.UTC)

	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).Return([]*models.SentenceEvent{event}, nil)
	s.events.EXPECT().Save(gomock.Any(), event).Return(nil)
	s.notifier.EXPECT().NotifyUpdateOfKeyDate(gomock.Any(), s.kase, event, "POM1").Return(nil)
	s.telemetry.EXPECT().TrackEvent(gomock.Any(), EventKeyDateUpdated, gomock.Any())

	result, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "POM1", date)

	s.Require().NoError(err)
	s.False(result.Inserted)
	s.Equal(created, result.KeyDate.CreatedAt)
	s.Equal("original.user", result.KeyDate.CreatedBy)
	s.Equal(s.now, result.KeyDate.LastUpdatedAt)
	s.Equal("officer.jones", result.KeyDate.LastUpdatedBy)
	s.Equal(date, result.KeyDate.Date)
	s.Len(event.Custody.KeyDates, 1)
}

func (s *KeyDateServiceSuite) TestSaveFailureIsFatal() {
	event := custodialEvent(1, s.kase.ID)
	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).Return([]*models.SentenceEvent{event}, nil)
	s.events.EXPECT().SaveAndFlush(gomock.Any(), event).Return(errors.New("deadlock detected"))

	_, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "POM1", s.now)

	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

// =============================================================================
// Secondary Notification
// =============================================================================

func (s *KeyDateServiceSuite) TestExpiryCodeNotifiesIAPS() {
	event := custodialEvent(1, s.kase.ID)
	s.reference.EXPECT().KeyDateType(gomock.Any(), "SED").Return(sentenceExpiry, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).Return([]*models.SentenceEvent{event}, nil)
	s.events.EXPECT().SaveAndFlush(gomock.Any(), event).Return(nil)
	s.notifier.EXPECT().NotifyNewKeyDate(gomock.Any(), s.kase, event, "SED").Return(nil)
	s.iaps.EXPECT().NotifyEventUpdated(gomock.Any(), event).Return(nil)
	s.telemetry.EXPECT().TrackEvent(gomock.Any(), EventKeyDateAdded, gomock.Any())

	_, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "SED", s.now)
	s.Require().NoError(err)
}

func (s *KeyDateServiceSuite) TestNotificationFailureDoesNotFailUpdate() {
	event := custodialEvent(1, s.kase.ID)
	s.reference.EXPECT().KeyDateType(gomock.Any(), "SED").Return(sentenceExpiry, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().FindActiveCustodialByCaseID(gomock.Any(), s.kase.ID).Return([]*models.SentenceEvent{event}, nil)
	s.events.EXPECT().SaveAndFlush(gomock.Any(), event).Return(nil)
	s.notifier.EXPECT().NotifyNewKeyDate(gomock.Any(), s.kase, event, "SED").Return(errors.New("broker unavailable"))
	s.iaps.EXPECT().NotifyEventUpdated(gomock.Any(), event).Return(errors.New("broker unavailable"))
	s.telemetry.EXPECT().TrackEvent(gomock.Any(), EventKeyDateAdded, gomock.Any())

	result, err := s.service.AddOrReplace(s.ctx, ByCase(s.kase.ID), "SED", s.now)
	s.Require().NoError(err)
	s.True(result.Inserted)
}

// =============================================================================
// Selection by Event
// =============================================================================

func (s *KeyDateServiceSuite) TestByEventProceedsWhenInactive() {
	event := custodialEvent(3, s.kase.ID)
	event.Active = false
	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.events.EXPECT().FindEventByID(gomock.Any(), id.EventID(3)).Return(event, nil)
	s.cases.EXPECT().ByID(gomock.Any(), s.kase.ID).Return(s.kase, nil)
	s.events.EXPECT().SaveAndFlush(gomock.Any(), event).Return(nil)
	s.notifier.EXPECT().NotifyNewKeyDate(gomock.Any(), s.kase, event, "POM1").Return(nil)
	s.telemetry.EXPECT().TrackEvent(gomock.Any(), EventKeyDateAdded, gomock.Any())

	_, err := s.service.AddOrReplace(s.ctx, ByEvent(3), "POM1", s.now)
	s.Require().NoError(err)
}

func (s *KeyDateServiceSuite) TestByEventFailures() {
	s.Run("missing event is ConvictionNotFound", func() {
		s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
		s.events.EXPECT().FindEventByID(gomock.Any(), id.EventID(99)).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.AddOrReplace(s.ctx, ByEvent(99), "POM1", s.now)
		reason, _ := models.ReasonOf(err)
		s.Equal(models.ReasonConvictionNotFound, reason)
	})

	s.Run("non-custodial event is NoActiveCustodialSentence", func() {
		event := custodialEvent(4, s.kase.ID)
		event.Custody = nil
		s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
		s.events.EXPECT().FindEventByID(gomock.Any(), id.EventID(4)).Return(event, nil)

		_, err := s.service.AddOrReplace(s.ctx, ByEvent(4), "POM1", s.now)
		reason, _ := models.ReasonOf(err)
		s.Equal(models.ReasonNoActiveCustodialSentence, reason)
	})

	s.Run("event of another case is ConvictionNotFound", func() {
		event := custodialEvent(5, 1234)
		s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
		s.cases.EXPECT().ByCRN(gomock.Any(), s.kase.CRN).Return(s.kase, nil)
		s.events.EXPECT().FindEventByID(gomock.Any(), id.EventID(5)).Return(event, nil)

		_, err := s.service.AddOrReplace(s.ctx, ByConviction(s.kase.CRN, 5), "POM1", s.now)
		reason, _ := models.ReasonOf(err)
		s.Equal(models.ReasonConvictionNotFound, reason)
	})
}

func (s *KeyDateServiceSuite) TestByNOMSNumberPropagatesResolutionFailure() {
	s.reference.EXPECT().KeyDateType(gomock.Any(), "POM1").Return(pomHandover, nil)
	s.cases.EXPECT().MostLikelyByNOMSNumber(gomock.Any(), id.NOMSNumber("G9542VP")).
		Return(nil, models.Failf(models.ReasonMultipleOffendersFound, "found 2 offenders"))

	_, err := s.service.AddOrReplace(s.ctx, ByNOMSNumber("G9542VP"), "POM1", s.now)

	reason, _ := models.ReasonOf(err)
	s.Equal(models.ReasonMultipleOffendersFound, reason)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}
