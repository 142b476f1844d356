// Package postgres implements the case-side collaborators that share the
// custody transaction: manager allocation, contact records and the prisoner
// number cross reference.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	txcontext "casework/pkg/platform/tx"
	"casework/pkg/requestcontext"
)

// Contact type codes.
const (
	ContactPrisonLocationChange = "EPLC"
	ContactBookingNumberUpdate  = "EPBN"
)

// Collaborators writes to the contact, allocation and prisoner number tables.
type Collaborators struct {
	db *sql.DB
}

func New(db *sql.DB) *Collaborators {
	return &Collaborators{db: db}
}

func (c *Collaborators) execer(ctx context.Context) txcontext.Executor {
	return txcontext.Execer(ctx, c.db)
}

func (c *Collaborators) IsManagerAtInstitution(ctx context.Context, kase *models.Case, inst *models.Institution) (bool, error) {
	var exists bool
	err := c.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM manager_allocations WHERE case_id = $1 AND institution_id = $2)`,
		int64(kase.ID), int64(inst.ID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check manager allocation: %w", err)
	}
	return exists, nil
}

// AutoAllocateManagerAtInstitution replaces any previous allocation.
func (c *Collaborators) AutoAllocateManagerAtInstitution(ctx context.Context, kase *models.Case, inst *models.Institution) error {
	_, err := c.execer(ctx).ExecContext(ctx, `
		INSERT INTO manager_allocations (case_id, institution_id, allocated_at, allocated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (case_id) DO UPDATE SET
			institution_id = EXCLUDED.institution_id,
			allocated_at = EXCLUDED.allocated_at,
			allocated_by = EXCLUDED.allocated_by`,
		int64(kase.ID), int64(inst.ID), requestcontext.Now(ctx), requestcontext.Actor(ctx),
	)
	if err != nil {
		return fmt.Errorf("allocate manager: %w", err)
	}
	return nil
}

func (c *Collaborators) AddContactForPrisonLocationChange(ctx context.Context, kase *models.Case, e *models.SentenceEvent) error {
	notes := "Prison location changed"
	if e.Custody != nil && e.Custody.Institution != nil {
		notes = "Prison location changed to " + e.Custody.Institution.Description
	}
	return c.addContact(ctx, kase, e, ContactPrisonLocationChange, notes)
}

func (c *Collaborators) AddContactForBookingNumberUpdate(ctx context.Context, kase *models.Case, e *models.SentenceEvent) error {
	notes := "Prison booking number updated"
	if e.Custody != nil {
		notes = "Prison booking number updated to " + e.Custody.BookingNumber.String()
	}
	return c.addContact(ctx, kase, e, ContactBookingNumberUpdate, notes)
}

func (c *Collaborators) addContact(ctx context.Context, kase *models.Case, e *models.SentenceEvent, kind, notes string) error {
	_, err := c.execer(ctx).ExecContext(ctx, `
		INSERT INTO contacts (case_id, event_id, contact_type, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		int64(kase.ID), int64(e.ID), kind, notes, requestcontext.Now(ctx), requestcontext.Actor(ctx),
	)
	if err != nil {
		return fmt.Errorf("add %s contact: %w", kind, err)
	}
	return nil
}

// RefreshPrisonerNumbers rebuilds the cross reference from the case's
// custodies, most recently sentenced first, and stores the head on the case.
func (c *Collaborators) RefreshPrisonerNumbers(ctx context.Context, kase *models.Case) error {
	ex := c.execer(ctx)
	rows, err := ex.QueryContext(ctx, `
		SELECT cu.booking_number
		FROM sentence_events e
		JOIN custodies cu ON cu.event_id = e.id
		WHERE e.case_id = $1 AND NOT e.soft_deleted AND cu.booking_number <> ''
		ORDER BY e.sentence_start_date DESC, e.id DESC`, int64(kase.ID))
	if err != nil {
		return fmt.Errorf("list booking numbers: %w", err)
	}
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return fmt.Errorf("scan booking number: %w", err)
		}
		numbers = append(numbers, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate booking numbers: %w", err)
	}

	if _, err := ex.ExecContext(ctx, `DELETE FROM prisoner_numbers WHERE case_id = $1`, int64(kase.ID)); err != nil {
		return fmt.Errorf("clear prisoner numbers: %w", err)
	}
	if len(numbers) > 0 {
		_, err = ex.ExecContext(ctx, `
			INSERT INTO prisoner_numbers (case_id, position, booking_number)
			SELECT $1, n.ord, n.booking_number
			FROM unnest($2::text[]) WITH ORDINALITY AS n(booking_number, ord)`,
			int64(kase.ID), pq.Array(numbers))
		if err != nil {
			return fmt.Errorf("insert prisoner numbers: %w", err)
		}
	}

	mostRecent := ""
	if len(numbers) > 0 {
		mostRecent = numbers[0]
	}
	if _, err := ex.ExecContext(ctx,
		`UPDATE cases SET most_recent_prisoner_number = $2 WHERE id = $1`, int64(kase.ID), mostRecent); err != nil {
		return fmt.Errorf("update most recent prisoner number: %w", err)
	}
	kase.MostRecentPrisonerNumber = id.BookingNumber(mostRecent)
	return nil
}

// PrisonerNumbers returns the cross reference for a case, most recent first.
func (c *Collaborators) PrisonerNumbers(ctx context.Context, caseID id.CaseID) ([]id.BookingNumber, error) {
	var numbers []string
	err := c.execer(ctx).QueryRowContext(ctx, `
		SELECT COALESCE(array_agg(booking_number ORDER BY position), '{}')
		FROM prisoner_numbers WHERE case_id = $1`, int64(caseID),
	).Scan(pq.Array(&numbers))
	if err != nil {
		return nil, fmt.Errorf("list prisoner numbers: %w", err)
	}
	out := make([]id.BookingNumber, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, id.BookingNumber(n))
	}
	return out, nil
}
