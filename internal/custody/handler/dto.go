package handler

import (
	"strings"
	"time"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
)

const dateLayout = time.DateOnly

type updatePrisonLocationRequest struct {
	NOMSPrisonInstitutionCode string `json:"nomsPrisonInstitutionCode"`
}

func (r *updatePrisonLocationRequest) Validate() error {
	r.NOMSPrisonInstitutionCode = strings.TrimSpace(r.NOMSPrisonInstitutionCode)
	if r.NOMSPrisonInstitutionCode == "" {
		return dErrors.New(dErrors.CodeValidation, "nomsPrisonInstitutionCode is required")
	}
	return nil
}

type updateBookingNumberRequest struct {
	BookingNumber     string `json:"bookingNumber"`
	SentenceStartDate string `json:"sentenceStartDate"`

	booking       id.BookingNumber
	sentenceStart time.Time
}

func (r *updateBookingNumberRequest) Validate() error {
	booking, err := id.ParseBookingNumber(r.BookingNumber)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "bookingNumber is required")
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(r.SentenceStartDate))
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "sentenceStartDate must be a date in YYYY-MM-DD format")
	}
	r.booking, r.sentenceStart = booking, start
	return nil
}

type keyDateRequest struct {
	Date string `json:"date"`

	date time.Time
}

func (r *keyDateRequest) Validate() error {
	d, err := time.Parse(dateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "date must be a date in YYYY-MM-DD format")
	}
	r.date = d
	return nil
}

type codeDescription struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type keyDateResponse struct {
	Type          codeDescription `json:"type"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"createdDateTime"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedDateTime"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

type custodyResponse struct {
	EventID            int64             `json:"convictionId"`
	EventNumber        string            `json:"eventNumber,omitempty"`
	SentenceStartDate  string            `json:"sentenceStartDate,omitempty"`
	CustodyID          int64             `json:"custodyId"`
	BookingNumber      string            `json:"bookingNumber,omitempty"`
	Status             *codeDescription  `json:"status,omitempty"`
	Institution        *codeDescription  `json:"institution,omitempty"`
	StatusChangeDate   *time.Time        `json:"statusChangeDate,omitempty"`
	LocationChangeDate *time.Time        `json:"locationChangeDate,omitempty"`
	KeyDates           []keyDateResponse `json:"keyDates"`
}

type bookingResponse struct {
	Outcome string          `json:"outcome"`
	Custody custodyResponse `json:"custody"`
}

func toKeyDateResponse(k models.KeyDate) keyDateResponse {
	return keyDateResponse{
		Type:          codeDescription{Code: k.Type.Code, Description: k.Type.Description},
		Date:          k.Date.Format(dateLayout),
		CreatedAt:     k.CreatedAt,
		CreatedBy:     k.CreatedBy,
		LastUpdatedAt: k.LastUpdatedAt,
		LastUpdatedBy: k.LastUpdatedBy,
	}
}

func toCustodyResponse(rec models.CustodyRecord) custodyResponse {
	c := rec.Custody
	out := custodyResponse{
		EventID:            int64(rec.EventID),
		EventNumber:        rec.EventNumber,
		CustodyID:          int64(c.ID),
		BookingNumber:      c.BookingNumber.String(),
		StatusChangeDate:   c.StatusChangeDate,
		LocationChangeDate: c.LocationChangeDate,
		KeyDates:           make([]keyDateResponse, 0, len(c.KeyDates)),
	}
	if !rec.SentenceStartDate.IsZero() {
		out.SentenceStartDate = rec.SentenceStartDate.Format(dateLayout)
	}
	if c.Status != models.StatusNone {
		out.Status = &codeDescription{Code: string(c.Status), Description: c.Status.Description()}
	}
	if c.Institution != nil {
		out.Institution = &codeDescription{Code: c.Institution.Code, Description: c.Institution.Description}
	}
	for _, k := range c.KeyDates {
		out.KeyDates = append(out.KeyDates, toKeyDateResponse(k))
	}
	return out
}
