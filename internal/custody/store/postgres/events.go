package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	"casework/pkg/platform/sentinel"
)

const eventQuery = `
	SELECT e.id, e.case_id, e.event_number, e.active, e.soft_deleted,
	       e.sentence_start_date, e.termination_date,
	       c.id, c.status, c.booking_number, c.status_change_date, c.location_change_date,
	       i.id, i.code, i.description
	FROM sentence_events e
	LEFT JOIN custodies c ON c.event_id = e.id
	LEFT JOIN institutions i ON i.id = c.institution_id
`

func scanEvent(row rowScanner) (*models.SentenceEvent, error) {
	var (
		e            models.SentenceEvent
		terminated   sql.NullTime
		custodyID    sql.NullInt64
		status       sql.NullString
		booking      sql.NullString
		statusChange sql.NullTime
		moved        sql.NullTime
		instID       sql.NullInt64
		instCode     sql.NullString
		instDesc     sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.CaseID, &e.EventNumber, &e.Active, &e.SoftDeleted,
		&e.Disposal.SentenceStartDate, &terminated,
		&custodyID, &status, &booking, &statusChange, &moved,
		&instID, &instCode, &instDesc,
	)
	if err != nil {
		return nil, err
	}
	e.Disposal.TerminationDate = nullTime(&terminated)
	if !custodyID.Valid {
		return &e, nil
	}

	st, err := models.ParseCustodialStatus(status.String)
	if err != nil {
		return nil, err
	}
	e.Custody = &models.Custody{
		ID:                 id.CustodyID(custodyID.Int64),
		EventID:            e.ID,
		Status:             st,
		BookingNumber:      id.BookingNumber(booking.String),
		StatusChangeDate:   nullTime(&statusChange),
		LocationChangeDate: nullTime(&moved),
	}
	if instID.Valid {
		e.Custody.Institution = &models.Institution{
			ID:          id.InstitutionID(instID.Int64),
			Code:        instCode.String,
			Description: instDesc.String,
		}
	}
	return &e, nil
}

func (s *Store) FindEventByID(ctx context.Context, eventID id.EventID) (*models.SentenceEvent, error) {
	row := s.execer(ctx).QueryRowContext(ctx, eventQuery+` WHERE e.id = $1`, int64(eventID))
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	if err := s.loadKeyDates(ctx, []*models.SentenceEvent{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// FindActiveCustodialByCaseID returns live custodial events ordered by id.
func (s *Store) FindActiveCustodialByCaseID(ctx context.Context, caseID id.CaseID) ([]*models.SentenceEvent, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, eventQuery+`
		WHERE e.case_id = $1
		  AND e.active
		  AND NOT e.soft_deleted
		  AND e.termination_date IS NULL
		  AND c.id IS NOT NULL
		ORDER BY e.id`, int64(caseID))
	if err != nil {
		return nil, fmt.Errorf("find active custodial events: %w", err)
	}
	defer rows.Close()

	var out []*models.SentenceEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	if err := s.loadKeyDates(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) loadKeyDates(ctx context.Context, events []*models.SentenceEvent) error {
	byCustody := make(map[id.CustodyID]*models.Custody)
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		if e.Custody == nil {
			continue
		}
		byCustody[e.Custody.ID] = e.Custody
		ids = append(ids, int64(e.Custody.ID))
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT kd.custody_id, kd.type_code, t.description, kd.key_date,
		       kd.created_at, kd.created_by, kd.last_updated_at, kd.last_updated_by
		FROM key_dates kd
		JOIN key_date_types t ON t.code = kd.type_code
		WHERE kd.custody_id = ANY($1)
		ORDER BY kd.custody_id, kd.type_code`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load key dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			custodyID id.CustodyID
			kd        models.KeyDate
		)
		err := rows.Scan(&custodyID, &kd.Type.Code, &kd.Type.Description, &kd.Date,
			&kd.CreatedAt, &kd.CreatedBy, &kd.LastUpdatedAt, &kd.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("scan key date: %w", err)
		}
		c := byCustody[custodyID]
		c.KeyDates = append(c.KeyDates, kd)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate key dates: %w", err)
	}
	return nil
}

// Save writes the custody row and upserts its key dates. Events without a
// custody have nothing mutable.
func (s *Store) Save(ctx context.Context, e *models.SentenceEvent) error {
	if e.Custody == nil {
		return nil
	}
	c := e.Custody
	var instID sql.NullInt64
	if c.Institution != nil {
		instID = sql.NullInt64{Int64: int64(c.Institution.ID), Valid: true}
	}

	ex := s.execer(ctx)
	res, err := ex.ExecContext(ctx, `
		UPDATE custodies
		SET status = $2,
		    institution_id = $3,
		    booking_number = $4,
		    status_change_date = $5,
		    location_change_date = $6
		WHERE id = $1`,
		int64(c.ID), string(c.Status), instID, c.BookingNumber.String(),
		toNullTime(c.StatusChangeDate), toNullTime(c.LocationChangeDate),
	)
	if err != nil {
		return fmt.Errorf("update custody: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update custody: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}

	for _, kd := range c.KeyDates {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO key_dates (custody_id, type_code, key_date, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (custody_id, type_code) DO UPDATE SET
				key_date = EXCLUDED.key_date,
				last_updated_at = EXCLUDED.last_updated_at,
				last_updated_by = EXCLUDED.last_updated_by`,
			int64(c.ID), kd.Type.Code, kd.Date.Format(time.DateOnly),
			kd.CreatedAt, kd.CreatedBy, kd.LastUpdatedAt, kd.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("upsert key date %s: %w", kd.Type.Code, err)
		}
	}
	return nil
}

// SaveAndFlush is Save; statements are sent to the server as they run.
func (s *Store) SaveAndFlush(ctx context.Context, e *models.SentenceEvent) error {
	return s.Save(ctx, e)
}
