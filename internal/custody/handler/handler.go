package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"casework/internal/custody/keydate"
	"casework/internal/custody/models"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/httputil"
	"casework/pkg/platform/middleware/auth"
	"casework/pkg/platform/middleware/request"
)

// Authorities accepted on the custody routes.
const (
	AuthorityRead   = "ROLE_COMMUNITY"
	AuthorityUpdate = "ROLE_COMMUNITY_CUSTODY_UPDATE"
)

// CustodyService defines the custody operations exposed over HTTP.
type CustodyService interface {
	UpdatePrisonLocation(ctx context.Context, noms id.NOMSNumber, booking id.BookingNumber, institutionCode string) (*models.CustodyRecord, error)
	UpdateBookingNumber(ctx context.Context, noms id.NOMSNumber, booking id.BookingNumber, sentenceStart time.Time) (*models.BookingResult, error)
	CustodyByBookingNumber(ctx context.Context, noms id.NOMSNumber, booking id.BookingNumber) (*models.CustodyRecord, error)
	CustodyByConviction(ctx context.Context, crn id.CRN, eventID id.EventID) (*models.CustodyRecord, error)
}

// KeyDateService defines key date reconciliation.
type KeyDateService interface {
	AddOrReplace(ctx context.Context, sel keydate.Selector, typeCode string, date time.Time) (*models.KeyDateResult, error)
}

// Handler serves the custody endpoints.
type Handler struct {
	logger       *slog.Logger
	custody      CustodyService
	keyDates     KeyDateService
	jwtValidator auth.JWTValidator
}

// New creates a custody Handler.
func New(
	custody CustodyService,
	keyDates KeyDateService,
	jwtValidator auth.JWTValidator,
	logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		custody:      custody,
		keyDates:     keyDates,
		jwtValidator: jwtValidator,
	}
}

// Register registers the custody routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/secure/offenders", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(h.jwtValidator, h.logger, AuthorityRead, AuthorityUpdate))
			r.Get("/nomsNumber/{nomsNumber}/custody/bookingNumber/{bookingNumber}", h.handleGetByBookingNumber)
			r.Get("/crn/{crn}/convictions/{convictionId}/custody", h.handleGetByConviction)
		})
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(h.jwtValidator, h.logger, AuthorityUpdate))
			r.Put("/nomsNumber/{nomsNumber}/custody/bookingNumber/{bookingNumber}", h.handleUpdatePrisonLocation)
			r.Put("/nomsNumber/{nomsNumber}/custody/bookingNumber", h.handleUpdateBookingNumber)
			r.Put("/crn/{crn}/convictions/{convictionId}/custody/keyDates/{typeCode}", h.handleKeyDateByConviction)
			r.Put("/nomsNumber/{nomsNumber}/custody/keyDates/{typeCode}", h.handleKeyDateByOffender("nomsNumber"))
			r.Put("/crn/{crn}/custody/keyDates/{typeCode}", h.handleKeyDateByOffender("crn"))
			r.Put("/offenderId/{offenderId}/custody/keyDates/{typeCode}", h.handleKeyDateByOffender("offenderId"))
		})
	})
}

func (h *Handler) handleUpdatePrisonLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	noms, booking, ok := h.nomsAndBooking(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[updatePrisonLocationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.custody.UpdatePrisonLocation(ctx, noms, booking, req.NOMSPrisonInstitutionCode)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to update prison location", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCustodyResponse(*rec))
}

func (h *Handler) handleUpdateBookingNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	noms, err := id.ParseNOMSNumber(chi.URLParam(r, "nomsNumber"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid nomsNumber"))
		return
	}
	req, ok := httputil.DecodeAndPrepare[updateBookingNumberRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.custody.UpdateBookingNumber(ctx, noms, req.booking, req.sentenceStart)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to update booking number", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, bookingResponse{
		Outcome: string(res.Outcome),
		Custody: toCustodyResponse(res.Record),
	})
}

func (h *Handler) handleGetByBookingNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	noms, booking, ok := h.nomsAndBooking(w, r)
	if !ok {
		return
	}
	rec, err := h.custody.CustodyByBookingNumber(ctx, noms, booking)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to read custody", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCustodyResponse(*rec))
}

func (h *Handler) handleGetByConviction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	crn, eventID, ok := h.crnAndConviction(w, r)
	if !ok {
		return
	}
	rec, err := h.custody.CustodyByConviction(ctx, crn, eventID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to read custody", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCustodyResponse(*rec))
}

func (h *Handler) handleKeyDateByConviction(w http.ResponseWriter, r *http.Request) {
	crn, eventID, ok := h.crnAndConviction(w, r)
	if !ok {
		return
	}
	h.addOrReplaceKeyDate(w, r, keydate.ByConviction(crn, eventID))
}

// handleKeyDateByOffender resolves the offender by the named identifier and
// applies the key date to its active custodial sentence.
func (h *Handler) handleKeyDateByOffender(selector string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel, err := offenderSelector(selector, chi.URLParam(r, selector))
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		h.addOrReplaceKeyDate(w, r, sel)
	}
}

func offenderSelector(selector, value string) (keydate.Selector, error) {
	switch selector {
	case "nomsNumber":
		noms, err := id.ParseNOMSNumber(value)
		if err != nil {
			return keydate.Selector{}, dErrors.New(dErrors.CodeBadRequest, "invalid nomsNumber")
		}
		return keydate.ByNOMSNumber(noms), nil
	case "crn":
		crn, err := id.ParseCRN(value)
		if err != nil {
			return keydate.Selector{}, dErrors.New(dErrors.CodeBadRequest, "invalid crn")
		}
		return keydate.ByCRN(crn), nil
	case "offenderId":
		caseID, err := id.ParseCaseID(value)
		if err != nil {
			return keydate.Selector{}, dErrors.New(dErrors.CodeBadRequest, "invalid offenderId")
		}
		return keydate.ByCase(caseID), nil
	default:
		return keydate.Selector{}, dErrors.New(dErrors.CodeNotFound, "unknown offender selector")
	}
}

func (h *Handler) addOrReplaceKeyDate(w http.ResponseWriter, r *http.Request, sel keydate.Selector) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[keyDateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	res, err := h.keyDates.AddOrReplace(ctx, sel, chi.URLParam(r, "typeCode"), req.date)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to add or replace key date", err)
		return
	}
	status := http.StatusOK
	if res.Inserted {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, toKeyDateResponse(res.KeyDate))
}

func (h *Handler) nomsAndBooking(w http.ResponseWriter, r *http.Request) (id.NOMSNumber, id.BookingNumber, bool) {
	noms, err := id.ParseNOMSNumber(chi.URLParam(r, "nomsNumber"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid nomsNumber"))
		return "", "", false
	}
	booking, err := id.ParseBookingNumber(chi.URLParam(r, "bookingNumber"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid bookingNumber"))
		return "", "", false
	}
	return noms, booking, true
}

func (h *Handler) crnAndConviction(w http.ResponseWriter, r *http.Request) (id.CRN, id.EventID, bool) {
	crn, err := id.ParseCRN(chi.URLParam(r, "crn"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid crn"))
		return "", 0, false
	}
	eventID, err := id.ParseEventID(chi.URLParam(r, "convictionId"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid convictionId"))
		return "", 0, false
	}
	return crn, eventID, true
}

// writeServiceError logs infrastructure failures loudly and domain failures
// at warn before writing the mapped response.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	requestID := request.GetRequestID(ctx)
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestID,
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestID,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
