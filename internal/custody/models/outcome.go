package models

import (
	"errors"
	"fmt"

	dErrors "casework/pkg/domain-errors"
)

// Reason is the closed set of expected domain failures.
type Reason string

const (
	ReasonOffenderNotFound                        Reason = "OffenderNotFound"
	ReasonMultipleOffendersFound                  Reason = "MultipleOffendersFound"
	ReasonConvictionNotFound                      Reason = "ConvictionNotFound"
	ReasonMultipleCustodialSentences              Reason = "MultipleCustodialSentences"
	ReasonCustodialSentenceNotFoundInCorrectState Reason = "CustodialSentenceNotFoundInCorrectState"
	ReasonTransferPrisonNotFound                  Reason = "TransferPrisonNotFound"
	ReasonInvalidTypeCode                         Reason = "InvalidTypeCode"
	ReasonNoActiveCustodialSentence               Reason = "NoActiveCustodialSentence"
)

// Code maps the reason to the API error code.
func (r Reason) Code() dErrors.Code {
	switch r {
	case ReasonMultipleOffendersFound, ReasonMultipleCustodialSentences:
		return dErrors.CodeConflict
	case ReasonInvalidTypeCode:
		return dErrors.CodeBadRequest
	default:
		return dErrors.CodeNotFound
	}
}

// Failure is a tagged domain failure. It unwraps to a coded domain error so
// transport layers map it without knowing the reason set.
type Failure struct {
	Reason  Reason
	Message string
}

// Failf builds a Failure with a formatted diagnostic message.
func Failf(reason Reason, format string, args ...any) *Failure {
	return &Failure{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return dErrors.New(f.Reason.Code(), f.Message)
}

// ReasonOf extracts the failure reason from err.
func ReasonOf(err error) (Reason, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason, true
	}
	return "", false
}

// LocationOutcome classifies a successful prison-location update.
type LocationOutcome string

const (
	OutcomeUpdated          LocationOutcome = "Updated"
	OutcomeNoUpdateRequired LocationOutcome = "NoUpdateRequired"
)

// LocationResult carries the custody snapshots touched by a location update.
// For NoUpdateRequired these are the unchanged eligible custodies.
type LocationResult struct {
	Outcome LocationOutcome
	Records []CustodyRecord
}

// MostRecentlySentenced returns the record with the latest sentence start date.
func (r LocationResult) MostRecentlySentenced() (CustodyRecord, bool) {
	if len(r.Records) == 0 {
		return CustodyRecord{}, false
	}
	best := r.Records[0]
	for _, rec := range r.Records[1:] {
		if rec.SentenceStartDate.After(best.SentenceStartDate) {
			best = rec
		}
	}
	return best, true
}

// BookingOutcome classifies a booking number assignment.
type BookingOutcome string

const (
	BookingAlreadySet BookingOutcome = "AlreadySet"
	BookingInserted   BookingOutcome = "Inserted"
	BookingUpdated    BookingOutcome = "Updated"
)

// BookingResult is returned by booking number assignment.
type BookingResult struct {
	Outcome BookingOutcome
	Record  CustodyRecord
}

// KeyDateResult is the key date stored on the first target custody.
type KeyDateResult struct {
	KeyDate  KeyDate
	Inserted bool
}
