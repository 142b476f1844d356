package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casework/internal/custody/handler/mocks"
	"casework/internal/custody/keydate"
	"casework/internal/custody/models"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/middleware/auth"
	"casework/pkg/requestcontext"
	"casework/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks CustodyService,KeyDateService

type stubValidator map[string]*auth.JWTClaims

func (v stubValidator) ValidateToken(token string) (*auth.JWTClaims, error) {
	if c, ok := v[token]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

var validator = stubValidator{
	"reader": {Actor: "reader", Authorities: []string{AuthorityRead}},
	"writer": {Actor: "jbloggs", Authorities: []string{AuthorityUpdate}},
}

type CustodyHandlerSuite struct {
	suite.Suite
	custody  *mocks.MockCustodyService
	keyDates *mocks.MockKeyDateService
	router   http.Handler
}

func TestCustodyHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustodyHandlerSuite))
}

func (s *CustodyHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.custody = mocks.NewMockCustodyService(ctrl)
	s.keyDates = mocks.NewMockKeyDateService(ctrl)

	r := chi.NewRouter()
	New(s.custody, s.keyDates, validator, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *CustodyHandlerSuite) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		testutil.WithBearer(req, token)
	}
	return testutil.DoRequest(s.router, req)
}

func sampleRecord() *models.CustodyRecord {
	changed := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return &models.CustodyRecord{
		EventID:           42,
		EventNumber:       "1",
		SentenceStartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Custody: models.Custody{
			ID:                 99,
			Status:             models.StatusInCustody,
			BookingNumber:      id.BookingNumber("44463B"),
			Institution:        &models.Institution{Code: "MDI", Description: "Moorland"},
			LocationChangeDate: &changed,
			KeyDates: []models.KeyDate{{
				Type: models.KeyDateType{Code: "LED", Description: "Licence Expiry Date"},
				Date: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
		},
	}
}

func (s *CustodyHandlerSuite) TestUpdatePrisonLocation() {
	s.Run("moves custody and returns the most recent record", func() {
		s.custody.EXPECT().
			UpdatePrisonLocation(gomock.Any(), id.NOMSNumber("G1234AB"), id.BookingNumber("44463B"), "MDI").
			DoAndReturn(func(ctx context.Context, _ id.NOMSNumber, _ id.BookingNumber, _ string) (*models.CustodyRecord, error) {
				return sampleRecord(), nil
			})

		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/g1234ab/custody/bookingNumber/44463B",
			map[string]string{"nomsPrisonInstitutionCode": "MDI"})
		rr := s.do(req, "writer")

		testutil.AssertStatusOK(s.T(), rr)
		body := testutil.UnmarshalResponse[custodyResponse](s.T(), rr)
		s.Equal(int64(42), body.EventID)
		s.Equal("2025-06-01", body.SentenceStartDate)
		s.Equal("D", body.Status.Code)
		s.Equal("In Custody", body.Status.Description)
		s.Equal("MDI", body.Institution.Code)
		s.Require().Len(body.KeyDates, 1)
		s.Equal("2027-01-01", body.KeyDates[0].Date)
	})

	s.Run("domain failures map to their status", func() {
		s.custody.EXPECT().UpdatePrisonLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, models.Failf(models.ReasonTransferPrisonNotFound, "prison institution with nomis code XXX not found"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber/44463B",
			map[string]string{"nomsPrisonInstitutionCode": "XXX"})
		rr := s.do(req, "writer")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
		testutil.AssertErrorDescription(s.T(), rr, "nomis code XXX")
	})

	s.Run("ambiguous offender is a conflict", func() {
		s.custody.EXPECT().UpdatePrisonLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, models.Failf(models.ReasonMultipleCustodialSentences, "duplicates"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber/44463B",
			map[string]string{"nomsPrisonInstitutionCode": "MDI"})
		testutil.AssertStatus(s.T(), s.do(req, "writer"), http.StatusConflict)
	})

	s.Run("invalid identifiers are rejected before the service", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/not-a-noms/custody/bookingNumber/44463B",
			map[string]string{"nomsPrisonInstitutionCode": "MDI"})
		testutil.AssertStatusAndError(s.T(), s.do(req, "writer"), http.StatusBadRequest, "bad_request")
	})

	s.Run("missing institution code", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber/44463B",
			map[string]string{"nomsPrisonInstitutionCode": " "})
		testutil.AssertStatusAndError(s.T(), s.do(req, "writer"), http.StatusBadRequest, "validation_error")
	})

	s.Run("read-only token is forbidden", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber/44463B",
			map[string]string{"nomsPrisonInstitutionCode": "MDI"})
		testutil.AssertStatus(s.T(), s.do(req, "reader"), http.StatusForbidden)
	})

	s.Run("missing token is unauthorized", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber/44463B",
			map[string]string{"nomsPrisonInstitutionCode": "MDI"})
		testutil.AssertStatus(s.T(), s.do(req, ""), http.StatusUnauthorized)
	})
}

func (s *CustodyHandlerSuite) TestUpdateBookingNumber() {
	s.Run("returns the outcome and passes the acting user", func() {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		rec := sampleRecord()
		s.custody.EXPECT().
			UpdateBookingNumber(gomock.Any(), id.NOMSNumber("G1234AB"), id.BookingNumber("V74111"), start).
			DoAndReturn(func(ctx context.Context, _ id.NOMSNumber, _ id.BookingNumber, _ time.Time) (*models.BookingResult, error) {
				return &models.BookingResult{Outcome: models.BookingInserted, Record: *rec}, nil
			})

		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber",
			map[string]string{"bookingNumber": "v74111", "sentenceStartDate": "2025-06-01"})
		rr := s.do(req, "writer")

		testutil.AssertStatusOK(s.T(), rr)
		body := testutil.UnmarshalResponse[bookingResponse](s.T(), rr)
		s.Equal("Inserted", body.Outcome)
		s.Equal(int64(99), body.Custody.CustodyID)
	})

	s.Run("bad sentence date", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut,
			"/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber",
			map[string]string{"bookingNumber": "V74111", "sentenceStartDate": "01/06/2025"})
		testutil.AssertStatusAndError(s.T(), s.do(req, "writer"), http.StatusBadRequest, "validation_error")
	})
}

func (s *CustodyHandlerSuite) TestQueries() {
	s.Run("by booking number", func() {
		s.custody.EXPECT().
			CustodyByBookingNumber(gomock.Any(), id.NOMSNumber("G1234AB"), id.BookingNumber("44463B")).
			Return(sampleRecord(), nil)

		req := testutil.NewRequest(s.T(), http.MethodGet, "/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber/44463B")
		rr := s.do(req, "reader")
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("by conviction not custodial", func() {
		s.custody.EXPECT().
			CustodyByConviction(gomock.Any(), id.CRN("X123456"), id.EventID(42)).
			Return(nil, dErrors.New(dErrors.CodeBadRequest, "The conviction with convictionId 42 is not a custodial sentence"))

		req := testutil.NewRequest(s.T(), http.MethodGet, "/secure/offenders/crn/X123456/convictions/42/custody")
		rr := s.do(req, "writer")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("infrastructure errors hide their detail", func() {
		s.custody.EXPECT().CustodyByConviction(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		req := testutil.NewRequest(s.T(), http.MethodGet, "/secure/offenders/crn/X123456/convictions/42/custody")
		rr := s.do(req, "reader")
		testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
		s.NotContains(rr.Body.String(), "connection reset")
	})

	s.Run("non-numeric conviction id", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/secure/offenders/crn/X123456/convictions/abc/custody")
		testutil.AssertStatus(s.T(), s.do(req, "reader"), http.StatusBadRequest)
	})
}

func (s *CustodyHandlerSuite) TestKeyDates() {
	date := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := &models.KeyDateResult{
		Inserted: true,
		KeyDate: models.KeyDate{
			Type:      models.KeyDateType{Code: "LED", Description: "Licence Expiry Date"},
			Date:      date,
			CreatedBy: "jbloggs",
		},
	}

	cases := []struct {
		name string
		path string
		sel  keydate.Selector
	}{
		{"by noms number", "/secure/offenders/nomsNumber/G1234AB/custody/keyDates/LED", keydate.ByNOMSNumber("G1234AB")},
		{"by crn", "/secure/offenders/crn/X123456/custody/keyDates/LED", keydate.ByCRN("X123456")},
		{"by offender id", "/secure/offenders/offenderId/7/custody/keyDates/LED", keydate.ByCase(7)},
		{"by conviction", "/secure/offenders/crn/X123456/convictions/42/custody/keyDates/LED", keydate.ByConviction("X123456", 42)},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.keyDates.EXPECT().AddOrReplace(gomock.Any(), tc.sel, "LED", date).
				DoAndReturn(func(ctx context.Context, _ keydate.Selector, _ string, _ time.Time) (*models.KeyDateResult, error) {
					return stored, nil
				})

			req := testutil.NewJSONRequest(s.T(), http.MethodPut, tc.path, map[string]string{"date": "2027-01-01"})
			rr := s.do(req, "writer")
			testutil.AssertStatus(s.T(), rr, http.StatusCreated)
			body := testutil.UnmarshalResponse[keyDateResponse](s.T(), rr)
			s.Equal("LED", body.Type.Code)
			s.Equal("2027-01-01", body.Date)
		})
	}

	s.Run("replace returns ok", func() {
		replaced := *stored
		replaced.Inserted = false
		s.keyDates.EXPECT().AddOrReplace(gomock.Any(), keydate.ByCase(7), "LED", date).Return(&replaced, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/secure/offenders/offenderId/7/custody/keyDates/LED", map[string]string{"date": "2027-01-01"})
		testutil.AssertStatusOK(s.T(), s.do(req, "writer"))
	})

	s.Run("invalid type code is a bad request", func() {
		s.keyDates.EXPECT().AddOrReplace(gomock.Any(), gomock.Any(), "ZZZ", date).
			Return(nil, models.Failf(models.ReasonInvalidTypeCode, "key date type ZZZ not found"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/secure/offenders/offenderId/7/custody/keyDates/ZZZ", map[string]string{"date": "2027-01-01"})
		testutil.AssertStatusAndError(s.T(), s.do(req, "writer"), http.StatusBadRequest, "bad_request")
	})

	s.Run("acting user reaches the service", func() {
		s.keyDates.EXPECT().AddOrReplace(gomock.Any(), gomock.Any(), "LED", date).
			DoAndReturn(func(ctx context.Context, _ keydate.Selector, _ string, _ time.Time) (*models.KeyDateResult, error) {
				s.Equal("jbloggs", requestcontext.Actor(ctx))
				return stored, nil
			})

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/secure/offenders/offenderId/7/custody/keyDates/LED", map[string]string{"date": "2027-01-01"})
		testutil.AssertStatus(s.T(), s.do(req, "writer"), http.StatusCreated)
	})
}
