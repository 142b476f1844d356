package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	"casework/pkg/platform/sentinel"
)

// Inserts used to load reference and case data. Ids on the argument are
// replaced with the generated ones.

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (s *Store) InsertInstitution(ctx context.Context, inst *models.Institution) error {
	err := s.execer(ctx).QueryRowContext(ctx,
		`INSERT INTO institutions (code, description) VALUES ($1, $2) RETURNING id`,
		inst.Code, inst.Description,
	).Scan(&inst.ID)
	if isUniqueViolation(err) {
		return sentinel.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert institution: %w", err)
	}
	return nil
}

func (s *Store) InsertKeyDateType(ctx context.Context, t models.KeyDateType) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO key_date_types (code, description) VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET description = EXCLUDED.description`,
		t.Code, t.Description,
	)
	if err != nil {
		return fmt.Errorf("insert key date type: %w", err)
	}
	return nil
}

func (s *Store) InsertCase(ctx context.Context, c *models.Case) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO cases (crn, noms_number, soft_deleted, current_disposal, most_recent_prisoner_number)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.CRN.String(), c.NOMSNumber.String(), c.SoftDeleted, c.CurrentDisposal, c.MostRecentPrisonerNumber.String(),
	).Scan(&c.ID)
	if isUniqueViolation(err) {
		return sentinel.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

// InsertEvent writes the event, its custody and key dates.
func (s *Store) InsertEvent(ctx context.Context, e *models.SentenceEvent) error {
	ex := s.execer(ctx)
	err := ex.QueryRowContext(ctx, `
		INSERT INTO sentence_events (case_id, event_number, active, soft_deleted, sentence_start_date, termination_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		int64(e.CaseID), e.EventNumber, e.Active, e.SoftDeleted,
		e.Disposal.SentenceStartDate, toNullTime(e.Disposal.TerminationDate),
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert sentence event: %w", err)
	}
	if e.Custody == nil {
		return nil
	}

	e.Custody.EventID = e.ID
	var custodyID id.CustodyID
	err = ex.QueryRowContext(ctx,
		`INSERT INTO custodies (event_id) VALUES ($1) RETURNING id`, int64(e.ID),
	).Scan(&custodyID)
	if err != nil {
		return fmt.Errorf("insert custody: %w", err)
	}
	e.Custody.ID = custodyID
	return s.Save(ctx, e)
}
