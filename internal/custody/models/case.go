package models

import (
	id "casework/pkg/domain"
)

// Case is the internal record of a person under supervision.
type Case struct {
	ID         id.CaseID
	CRN        id.CRN
	NOMSNumber id.NOMSNumber
	// SoftDeleted records are kept for audit but never selected by resolution.
	SoftDeleted bool
	// CurrentDisposal is set while the case has a live sentence.
	CurrentDisposal bool
	// MostRecentPrisonerNumber is the prison-system cross-reference derived from
	// the booking numbers on the case's custodies.
	MostRecentPrisonerNumber id.BookingNumber
}

// Institution is a prison or other establishment holding a person.
type Institution struct {
	ID          id.InstitutionID
	Code        string
	Description string
}
