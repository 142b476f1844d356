package memory

import (
	"context"
	"sort"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	"casework/pkg/requestcontext"
)

const (
	ContactPrisonLocationChange = "EPLC"
	ContactBookingNumberUpdate  = "EPBN"
)

func (st *Store) AddContactForPrisonLocationChange(ctx context.Context, c *models.Case, e *models.SentenceEvent) error {
	notes := "Prison location changed"
	if e.Custody != nil && e.Custody.Institution != nil {
		notes = "Prison location changed to " + e.Custody.Institution.Description
	}
	st.addContact(ctx, c, e, ContactPrisonLocationChange, notes)
	return nil
}

func (st *Store) AddContactForBookingNumberUpdate(ctx context.Context, c *models.Case, e *models.SentenceEvent) error {
	notes := "Prison booking number updated"
	if e.Custody != nil {
		notes = "Prison booking number updated to " + e.Custody.BookingNumber.String()
	}
	st.addContact(ctx, c, e, ContactBookingNumberUpdate, notes)
	return nil
}

func (st *Store) addContact(ctx context.Context, c *models.Case, e *models.SentenceEvent, kind, notes string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.contacts = append(st.s.contacts, Contact{
		CaseID:  c.ID,
		EventID: e.ID,
		Type:    kind,
		Notes:   notes,
		At:      requestcontext.Now(ctx),
	})
}

// Contacts returns the contacts written for a case.
func (st *Store) Contacts(caseID id.CaseID) []Contact {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var out []Contact
	for _, ct := range st.s.contacts {
		if ct.CaseID == caseID {
			out = append(out, ct)
		}
	}
	return out
}

func (st *Store) IsManagerAtInstitution(_ context.Context, c *models.Case, inst *models.Institution) (bool, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	a, ok := st.s.allocations[c.ID]
	return ok && a.InstitutionID == inst.ID, nil
}

func (st *Store) AutoAllocateManagerAtInstitution(ctx context.Context, c *models.Case, inst *models.Institution) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.allocations[c.ID] = Allocation{CaseID: c.ID, InstitutionID: inst.ID, At: requestcontext.Now(ctx)}
	return nil
}

// Allocation returns the current manager allocation for a case.
func (st *Store) Allocation(caseID id.CaseID) (Allocation, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	a, ok := st.s.allocations[caseID]
	return a, ok
}

// RefreshPrisonerNumbers rebuilds the booking number cross reference from the
// case's custodies and stores the most recently sentenced one on the case.
func (st *Store) RefreshPrisonerNumbers(_ context.Context, c *models.Case) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	var events []*models.SentenceEvent
	for _, e := range st.s.events {
		if e.CaseID == c.ID && e.Custody != nil && e.Custody.BookingNumber != "" && !e.SoftDeleted {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Disposal.SentenceStartDate.After(events[j].Disposal.SentenceStartDate)
	})
	numbers := make([]id.BookingNumber, 0, len(events))
	for _, e := range events {
		numbers = append(numbers, e.Custody.BookingNumber)
	}
	st.s.prisonerLookup[c.ID] = numbers
	if stored, ok := st.s.cases[c.ID]; ok {
		stored.MostRecentPrisonerNumber = ""
		if len(numbers) > 0 {
			stored.MostRecentPrisonerNumber = numbers[0]
		}
	}
	return nil
}

// PrisonerNumbers returns the cross reference for a case, most recent first.
func (st *Store) PrisonerNumbers(caseID id.CaseID) []id.BookingNumber {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return append([]id.BookingNumber(nil), st.s.prisonerLookup[caseID]...)
}
