// Package domain holds the typed identifiers shared across packages.
//
// Numeric IDs are surrogate keys assigned by the store. External identifiers
// (CRN, NOMS number, booking number) arrive from other systems and are parsed
// at the trust boundary so services only ever see normalised values.
package domain

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	dErrors "casework/pkg/domain-errors"
)

type (
	CaseID        int64
	EventID       int64
	CustodyID     int64
	InstitutionID int64
)

func (id CaseID) String() string        { return strconv.FormatInt(int64(id), 10) }
func (id EventID) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id CustodyID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id InstitutionID) String() string { return strconv.FormatInt(int64(id), 10) }

// CRN is the case reference number, unique per case.
type CRN string

// NOMSNumber is the prison system's offender number. Not guaranteed unique
// across cases; duplicates are resolved by the identifier resolver.
type NOMSNumber string

// BookingNumber identifies one period in custody in the prison system.
type BookingNumber string

func (c CRN) String() string           { return string(c) }
func (n NOMSNumber) String() string    { return string(n) }
func (b BookingNumber) String() string { return string(b) }

var (
	crnPattern     = regexp.MustCompile(`^[A-Z][0-9]{6}$`)
	nomsPattern    = regexp.MustCompile(`^[A-Z][0-9]{4}[A-Z]{2}$`)
	bookingPattern = regexp.MustCompile(`^[A-Z0-9]{1,20}$`)
)

func normalise(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "identifier is not valid UTF-8")
	}
	return strings.ToUpper(strings.TrimSpace(s)), nil
}

// ParseCRN validates and normalises a case reference number.
func ParseCRN(s string) (CRN, error) {
	v, err := normalise(s)
	if err != nil {
		return "", err
	}
	if !crnPattern.MatchString(v) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid CRN format")
	}
	return CRN(v), nil
}

// ParseNOMSNumber validates and normalises a NOMS number.
func ParseNOMSNumber(s string) (NOMSNumber, error) {
	v, err := normalise(s)
	if err != nil {
		return "", err
	}
	if !nomsPattern.MatchString(v) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid NOMS number format")
	}
	return NOMSNumber(v), nil
}

// ParseBookingNumber validates a booking number.
func ParseBookingNumber(s string) (BookingNumber, error) {
	v, err := normalise(s)
	if err != nil {
		return "", err
	}
	if !bookingPattern.MatchString(v) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid booking number format")
	}
	return BookingNumber(v), nil
}

// ParseCaseID parses a positive numeric case id.
func ParseCaseID(s string) (CaseID, error) {
	n, err := parsePositive(s)
	return CaseID(n), err
}

// ParseEventID parses a positive numeric sentence event id.
func ParseEventID(s string) (EventID, error) {
	n, err := parsePositive(s)
	return EventID(n), err
}

func parsePositive(s string) (int64, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "ID cannot be empty")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "ID must be a positive integer")
	}
	return n, nil
}
