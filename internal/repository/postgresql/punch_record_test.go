package postgresql

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPunchRows yields a fixed number of punch record rows and then stops,
// optionally reporting an iteration error afterwards, the way a dropped
// connection surfaces mid-stream.
type stubPunchRows struct {
	rowsLeft int
	iterErr  error
}

func (s *stubPunchRows) Next() bool {
	if s.rowsLeft > 0 {
		s.rowsLeft--
		return true
	}
	return false
}

func (s *stubPunchRows) Scan(dest ...any) error {
	now := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	*(dest[0].(*string)) = uuid.NewString()
	*(dest[1].(*string)) = "user-1"
	*(dest[2].(*time.Time)) = now
	*(dest[3].(**time.Time)) = nil
	*(dest[4].(**int)) = nil
	*(dest[5].(*time.Time)) = now
	*(dest[6].(*time.Time)) = now
	return nil
}

func (s *stubPunchRows) Err() error                                   { return s.iterErr }
func (s *stubPunchRows) Close()                                       {}
func (s *stubPunchRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (s *stubPunchRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (s *stubPunchRows) Values() ([]any, error)                       { return nil, nil }
func (s *stubPunchRows) RawValues() [][]byte                          { return nil }
func (s *stubPunchRows) Conn() *pgx.Conn                              { return nil }

func TestScanPunchRecords(t *testing.T) {
	t.Parallel()

	records, err := scanPunchRecords(&stubPunchRows{rowsLeft: 2})
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "user-1", records[0].UserID)
}

func TestScanPunchRecordsSurfacesIterationError(t *testing.T) {
	t.Parallel()

	// The stream breaks after the first row. A truncated slice must not be
	// returned as a complete result: callers aggregate over it and would
	// otherwise render partial stats.
	iterErr := errors.New("connection reset mid-stream")
	records, err := scanPunchRecords(&stubPunchRows{rowsLeft: 1, iterErr: iterErr})

	require.Error(t, err)
	assert.ErrorIs(t, err, iterErr)
	assert.Nil(t, records)
}
