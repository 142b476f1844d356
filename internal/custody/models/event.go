package models

import (
	"time"

	id "casework/pkg/domain"
)

// Disposal is the sentence attached to an event.
type Disposal struct {
	SentenceStartDate time.Time
	TerminationDate   *time.Time
}

// SentenceEvent is one sentence or conviction on a case.
type SentenceEvent struct {
	ID          id.EventID
	CaseID      id.CaseID
	EventNumber string
	Active      bool
	SoftDeleted bool
	Disposal    Disposal
	// Custody is nil for non-custodial sentences.
	Custody *Custody
}

// IsActive reports whether the event is live: active flag set, not deleted and
// the sentence has not terminated.
func (e *SentenceEvent) IsActive() bool {
	return e.Active && !e.SoftDeleted && e.Disposal.TerminationDate == nil
}

// IsActiveCustodial reports whether the event is active and custodial.
func (e *SentenceEvent) IsActiveCustodial() bool {
	return e.IsActive() && e.Custody != nil
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (e *SentenceEvent) Clone() *SentenceEvent {
	if e == nil {
		return nil
	}
	out := *e
	if e.Disposal.TerminationDate != nil {
		t := *e.Disposal.TerminationDate
		out.Disposal.TerminationDate = &t
	}
	out.Custody = e.Custody.Clone()
	return &out
}

// Record builds the read model returned to callers.
func (e *SentenceEvent) Record() CustodyRecord {
	r := CustodyRecord{
		EventID:           e.ID,
		EventNumber:       e.EventNumber,
		SentenceStartDate: e.Disposal.SentenceStartDate,
	}
	if e.Custody != nil {
		r.Custody = *e.Custody.Clone()
	}
	return r
}

// CustodyRecord is a point-in-time snapshot of an event's custody.
type CustodyRecord struct {
	EventID           id.EventID
	EventNumber       string
	SentenceStartDate time.Time
	Custody           Custody
}
