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

func (s *Store) FindInstitutionByCode(ctx context.Context, code string) (*models.Institution, error) {
	var inst models.Institution
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT id, code, description FROM institutions WHERE code = $1`, code,
	).Scan(&inst.ID, &inst.Code, &inst.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find institution: %w", err)
	}
	return &inst, nil
}

func (s *Store) KeyDateType(ctx context.Context, code string) (models.KeyDateType, error) {
	var t models.KeyDateType
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT code, description FROM key_date_types WHERE code = $1`, code,
	).Scan(&t.Code, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.KeyDateType{}, sentinel.ErrNotFound
	}
	if err != nil {
		return models.KeyDateType{}, fmt.Errorf("find key date type: %w", err)
	}
	return t, nil
}

func (s *Store) CustodyEventType(ctx context.Context, code string) (models.CustodyEventType, error) {
	var t models.CustodyEventType
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT code, description FROM custody_event_types WHERE code = $1`, code,
	).Scan(&t.Code, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CustodyEventType{}, sentinel.ErrNotFound
	}
	if err != nil {
		return models.CustodyEventType{}, fmt.Errorf("find custody event type: %w", err)
	}
	return t, nil
}

// AppendHistory inserts a custody history row.
func (s *Store) AppendHistory(ctx context.Context, h models.CustodyHistory) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO custody_history (custody_id, case_id, detail, happened_at, event_type_code)
		VALUES ($1, $2, $3, $4, $5)`,
		int64(h.CustodyID), int64(h.CaseID), h.Detail, h.When, h.EventType.Code,
	)
	if err != nil {
		return fmt.Errorf("append custody history: %w", err)
	}
	return nil
}

// History returns the rows written for a custody, oldest first.
func (s *Store) History(ctx context.Context, custodyID id.CustodyID) ([]models.CustodyHistory, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT h.id, h.custody_id, h.case_id, h.detail, h.happened_at, t.code, t.description
		FROM custody_history h
		JOIN custody_event_types t ON t.code = h.event_type_code
		WHERE h.custody_id = $1
		ORDER BY h.id`, int64(custodyID))
	if err != nil {
		return nil, fmt.Errorf("list custody history: %w", err)
	}
	defer rows.Close()

	var out []models.CustodyHistory
	for rows.Next() {
		var h models.CustodyHistory
		if err := rows.Scan(&h.ID, &h.CustodyID, &h.CaseID, &h.Detail, &h.When, &h.EventType.Code, &h.EventType.Description); err != nil {
			return nil, fmt.Errorf("scan custody history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
