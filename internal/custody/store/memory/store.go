// Package memory is an in-process implementation of the custody stores and
// the transactional collaborators that share their unit of work.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	"casework/pkg/platform/sentinel"
)

// Contact is a recorded case contact.
type Contact struct {
	CaseID  id.CaseID
	EventID id.EventID
	Type    string
	Notes   string
	At      time.Time
}

// Allocation is a prison offender manager allocation.
type Allocation struct {
	CaseID        id.CaseID
	InstitutionID id.InstitutionID
	At            time.Time
}

type state struct {
	cases          map[id.CaseID]*models.Case
	events         map[id.EventID]*models.SentenceEvent
	institutions   map[string]*models.Institution
	keyDateTypes   map[string]models.KeyDateType
	eventTypes     map[string]models.CustodyEventType
	history        []models.CustodyHistory
	contacts       []Contact
	allocations    map[id.CaseID]Allocation
	prisonerLookup map[id.CaseID][]id.BookingNumber
	flushes        int
}

func (s *state) clone() *state {
	out := &state{
		cases:          make(map[id.CaseID]*models.Case, len(s.cases)),
		events:         make(map[id.EventID]*models.SentenceEvent, len(s.events)),
		institutions:   s.institutions,
		keyDateTypes:   s.keyDateTypes,
		eventTypes:     s.eventTypes,
		history:        append([]models.CustodyHistory(nil), s.history...),
		contacts:       append([]Contact(nil), s.contacts...),
		allocations:    make(map[id.CaseID]Allocation, len(s.allocations)),
		prisonerLookup: make(map[id.CaseID][]id.BookingNumber, len(s.prisonerLookup)),
		flushes:        s.flushes,
	}
	for k, v := range s.cases {
		c := *v
		out.cases[k] = &c
	}
	for k, v := range s.events {
		out.events[k] = v.Clone()
	}
	for k, v := range s.allocations {
		out.allocations[k] = v
	}
	for k, v := range s.prisonerLookup {
		out.prisonerLookup[k] = append([]id.BookingNumber(nil), v...)
	}
	return out
}

// Store keeps everything in maps guarded by a mutex. RunInTx serialises units
// of work and restores a snapshot when fn fails.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	s    *state
}

// New returns an empty store seeded with the standard custody event types.
func New() *Store {
	return &Store{s: &state{
		cases:        make(map[id.CaseID]*models.Case),
		events:       make(map[id.EventID]*models.SentenceEvent),
		institutions: make(map[string]*models.Institution),
		keyDateTypes: make(map[string]models.KeyDateType),
		eventTypes: map[string]models.CustodyEventType{
			models.HistoryLocationChange: {Code: models.HistoryLocationChange, Description: "Transfer"},
			models.HistoryStatusChange:   {Code: models.HistoryStatusChange, Description: "Custodial Status Change"},
		},
		allocations:    make(map[id.CaseID]Allocation),
		prisonerLookup: make(map[id.CaseID][]id.BookingNumber),
	}}
}

// RunInTx executes fn atomically with respect to other units of work.
func (st *Store) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	st.txMu.Lock()
	defer st.txMu.Unlock()

	st.mu.RLock()
	snapshot := st.s.clone()
	st.mu.RUnlock()

	if err := fn(ctx); err != nil {
		st.mu.Lock()
		st.s = snapshot
		st.mu.Unlock()
		return err
	}
	return nil
}

// Seeding helpers used by tests and the demo data loader.

func (st *Store) PutCase(c *models.Case) {
	st.mu.Lock()
	defer st.mu.Unlock()
	cp := *c
	st.s.cases[c.ID] = &cp
}

func (st *Store) PutEvent(e *models.SentenceEvent) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.events[e.ID] = e.Clone()
}

func (st *Store) PutInstitution(inst *models.Institution) {
	st.mu.Lock()
	defer st.mu.Unlock()
	cp := *inst
	st.s.institutions[inst.Code] = &cp
}

func (st *Store) PutKeyDateType(t models.KeyDateType) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.keyDateTypes[t.Code] = t
}

// CaseStore

func (st *Store) FindByID(_ context.Context, caseID id.CaseID) (*models.Case, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	c, ok := st.s.cases[caseID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (st *Store) FindByCRN(_ context.Context, crn id.CRN) (*models.Case, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, c := range st.s.cases {
		if c.CRN == crn {
			cp := *c
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (st *Store) FindAllByNOMSNumber(_ context.Context, noms id.NOMSNumber) ([]*models.Case, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var out []*models.Case
	for _, c := range st.s.cases {
		if c.NOMSNumber == noms {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// EventStore

func (st *Store) FindEventByID(_ context.Context, eventID id.EventID) (*models.SentenceEvent, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	e, ok := st.s.events[eventID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return e.Clone(), nil
}

func (st *Store) FindActiveCustodialByCaseID(_ context.Context, caseID id.CaseID) ([]*models.SentenceEvent, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var out []*models.SentenceEvent
	for _, e := range st.s.events {
		if e.CaseID == caseID && e.IsActiveCustodial() {
			out = append(out, e.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st *Store) Save(_ context.Context, e *models.SentenceEvent) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.s.events[e.ID]; !ok {
		return sentinel.ErrNotFound
	}
	st.s.events[e.ID] = e.Clone()
	return nil
}

// SaveAndFlush is Save plus a flush counter so tests can tell the two apart.
func (st *Store) SaveAndFlush(ctx context.Context, e *models.SentenceEvent) error {
	if err := st.Save(ctx, e); err != nil {
		return err
	}
	st.mu.Lock()
	st.s.flushes++
	st.mu.Unlock()
	return nil
}

// Flushes returns how many times SaveAndFlush succeeded.
func (st *Store) Flushes() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.flushes
}

// InstitutionStore

func (st *Store) FindInstitutionByCode(_ context.Context, code string) (*models.Institution, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	inst, ok := st.s.institutions[code]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *inst
	return &cp, nil
}

// ReferenceData

func (st *Store) KeyDateType(_ context.Context, code string) (models.KeyDateType, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	t, ok := st.s.keyDateTypes[code]
	if !ok {
		return models.KeyDateType{}, sentinel.ErrNotFound
	}
	return t, nil
}

func (st *Store) CustodyEventType(_ context.Context, code string) (models.CustodyEventType, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	t, ok := st.s.eventTypes[code]
	if !ok {
		return models.CustodyEventType{}, sentinel.ErrNotFound
	}
	return t, nil
}

// HistoryStore

func (st *Store) AppendHistory(_ context.Context, h models.CustodyHistory) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	h.ID = int64(len(st.s.history) + 1)
	st.s.history = append(st.s.history, h)
	return nil
}

// History returns the rows written for a custody, oldest first.
func (st *Store) History(custodyID id.CustodyID) []models.CustodyHistory {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var out []models.CustodyHistory
	for _, h := range st.s.history {
		if h.CustodyID == custodyID {
			out = append(out, h)
		}
	}
	return out
}
