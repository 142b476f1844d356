package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	"casework/pkg/platform/sentinel"
)

const caseColumns = `id, crn, noms_number, soft_deleted, current_disposal, most_recent_prisoner_number`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*models.Case, error) {
	var (
		c        models.Case
		crn      string
		noms     string
		prisoner string
	)
	if err := row.Scan(&c.ID, &crn, &noms, &c.SoftDeleted, &c.CurrentDisposal, &prisoner); err != nil {
		return nil, err
	}
	c.CRN = id.CRN(crn)
	c.NOMSNumber = id.NOMSNumber(noms)
	c.MostRecentPrisonerNumber = id.BookingNumber(prisoner)
	return &c, nil
}

func (s *Store) FindByID(ctx context.Context, caseID id.CaseID) (*models.Case, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = $1`, int64(caseID))
	c, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find case by id: %w", err)
	}
	return c, nil
}

func (s *Store) FindByCRN(ctx context.Context, crn id.CRN) (*models.Case, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+caseColumns+` FROM cases WHERE crn = $1`, crn.String())
	c, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find case by crn: %w", err)
	}
	return c, nil
}

// FindAllByNOMSNumber includes soft-deleted records; resolution filters them.
func (s *Store) FindAllByNOMSNumber(ctx context.Context, noms id.NOMSNumber) ([]*models.Case, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT `+caseColumns+` FROM cases WHERE noms_number = $1 ORDER BY id`, noms.String())
	if err != nil {
		return nil, fmt.Errorf("find cases by noms number: %w", err)
	}
	defer rows.Close()

	var out []*models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return out, nil
}
