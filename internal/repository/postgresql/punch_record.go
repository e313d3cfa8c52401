package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/attendance"
	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRecordRepository struct {
	db *database.DB
}

func NewPunchRecordRepository(db *database.DB) attendance.PunchRecordRepository {
	return &punchRecordRepository{db: db}
}

// Create implements attendance.PunchRecordRepository. The insert is
// conditional on no open record existing for the user, so two concurrent
// punch-ins cannot both commit a session.
func (p *punchRecordRepository) Create(ctx context.Context, userID string, inTime time.Time) (attendance.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punch_records (user_id, in_time)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM punch_records
			WHERE user_id = $1 AND out_time IS NULL
		)
		RETURNING id, user_id, in_time, out_time, duration_seconds, created_at, updated_at
	`

	var record attendance.PunchRecord
	err := q.QueryRow(ctx, query, userID, inTime).Scan(
		&record.ID, &record.UserID, &record.InTime, &record.OutTime,
		&record.DurationSeconds, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchRecord{}, attendance.ErrSessionAlreadyOpen
		}
		return attendance.PunchRecord{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	return record, nil
}

// GetOpenRecord implements attendance.PunchRecordRepository. Should more than
// one open record ever exist, the most recent in_time wins.
func (p *punchRecordRepository) GetOpenRecord(ctx context.Context, userID string) (attendance.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, user_id, in_time, out_time, duration_seconds, created_at, updated_at
		FROM punch_records
		WHERE user_id = $1
		  AND out_time IS NULL
		ORDER BY in_time DESC
		LIMIT 1
	`

	var record attendance.PunchRecord
	err := q.QueryRow(ctx, query, userID).Scan(
		&record.ID, &record.UserID, &record.InTime, &record.OutTime,
		&record.DurationSeconds, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchRecord{}, err
		}
		return attendance.PunchRecord{}, fmt.Errorf("failed to get open record: %w", err)
	}

	return record, nil
}

// Close implements attendance.PunchRecordRepository. Only rows still open
// match, so a closed record is never mutated again.
func (p *punchRecordRepository) Close(ctx context.Context, id string, outTime time.Time, durationSeconds int) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE punch_records
		SET out_time = $1, duration_seconds = $2, updated_at = NOW()
		WHERE id = $3 AND out_time IS NULL
		RETURNING id
	`

	var closedID string
	if err := q.QueryRow(ctx, query, outTime, durationSeconds, id).Scan(&closedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to close punch record: %w", err)
	}

	return nil
}

// ListInRange implements attendance.PunchRecordRepository.
func (p *punchRecordRepository) ListInRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, user_id, in_time, out_time, duration_seconds, created_at, updated_at
		FROM punch_records
		WHERE user_id = $1
		  AND in_time >= $2
		  AND in_time <= $3
		ORDER BY in_time ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch records: %w", err)
	}
	defer rows.Close()

	return scanPunchRecords(rows)
}

// ListAll implements attendance.PunchRecordRepository.
func (p *punchRecordRepository) ListAll(ctx context.Context, userID string) ([]attendance.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, user_id, in_time, out_time, duration_seconds, created_at, updated_at
		FROM punch_records
		WHERE user_id = $1
		ORDER BY in_time ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch records: %w", err)
	}
	defer rows.Close()

	return scanPunchRecords(rows)
}

func scanPunchRecords(rows pgx.Rows) ([]attendance.PunchRecord, error) {
	var records []attendance.PunchRecord
	for rows.Next() {
		var record attendance.PunchRecord
		err := rows.Scan(
			&record.ID, &record.UserID, &record.InTime, &record.OutTime,
			&record.DurationSeconds, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch records: %w", err)
	}
	return records, nil
}
