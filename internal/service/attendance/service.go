package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendance.PunchRecordRepository
	loc *time.Location

	// nowFn supplies wall-clock time so the derived views stay pure
	// functions of their inputs in tests.
	nowFn func() time.Time
}

func NewAttendanceService(repo attendance.PunchRecordRepository, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		PunchRecordRepository: repo,
		loc:                   loc,
		nowFn:                 time.Now,
	}
}

// getUserID extracts user_id from JWT claims
func getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func mapRecordToResponse(r attendance.PunchRecord) attendance.PunchRecordResponse {
	return attendance.PunchRecordResponse{
		ID:              r.ID,
		InTime:          r.InTime.Format(time.RFC3339),
		OutTime:         timePtrToString(r.OutTime),
		DurationSeconds: r.DurationSeconds,
	}
}

// PunchIn implements attendance.AttendanceService. When an open session
// already exists the call is a no-op: Punched is false and no record is
// created. The store enforces this atomically.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context) (attendance.PunchResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	record, err := s.PunchRecordRepository.Create(ctx, userID, s.nowFn().UTC())
	if err != nil {
		if errors.Is(err, attendance.ErrSessionAlreadyOpen) {
			return attendance.PunchResponse{Punched: false}, nil
		}
		return attendance.PunchResponse{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	resp := mapRecordToResponse(record)
	return attendance.PunchResponse{Punched: true, Record: &resp}, nil
}

// PunchOut implements attendance.AttendanceService. The most recently opened
// session is closed; duration is computed exactly once, in whole seconds.
// With no open session the call is a no-op.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.PunchResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	record, err := s.PunchRecordRepository.GetOpenRecord(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchResponse{Punched: false}, nil
		}
		return attendance.PunchResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	outTime := s.nowFn().UTC()
	durationSeconds := int(outTime.Sub(record.InTime) / time.Second)

	if err := s.PunchRecordRepository.Close(ctx, record.ID, outTime, durationSeconds); err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to close punch record: %w", err)
	}

	record.OutTime = &outTime
	record.DurationSeconds = &durationSeconds

	resp := mapRecordToResponse(record)
	return attendance.PunchResponse{Punched: true, Record: &resp}, nil
}

// GetDashboard implements attendance.AttendanceService. The year range and
// the trailing week window are fetched independently: around the turn of a
// year the week window reaches into the previous year, outside the year
// range.
func (s *AttendanceServiceImpl) GetDashboard(ctx context.Context, year int) (attendance.DashboardResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.DashboardResponse{}, err
	}

	now := s.nowFn()
	if year == 0 {
		year = now.In(s.loc).Year()
	}

	var (
		yearRecords []attendance.PunchRecord
		weekRecords []attendance.PunchRecord
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start, end := YearRange(year, s.loc)
		var err error
		yearRecords, err = s.PunchRecordRepository.ListInRange(gCtx, userID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list records for year %d: %w", year, err)
		}
		return nil
	})

	g.Go(func() error {
		start, end := WeekWindow(now, s.loc)
		var err error
		weekRecords, err = s.PunchRecordRepository.ListInRange(gCtx, userID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list records for week window: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.DashboardResponse{}, err
	}

	set := NewPresenceSet(yearRecords, s.loc)
	stats := Aggregate(yearRecords, set, YearDenominator(year, now.In(s.loc)))

	// Newest first, capped at five. Records arrive ascending by in_time.
	recent := make([]attendance.PunchRecordResponse, 0, 5)
	for i := len(yearRecords) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, mapRecordToResponse(yearRecords[i]))
	}

	return attendance.DashboardResponse{
		Year:          year,
		Stats:         stats,
		Calendar:      BuildYearCalendar(year, set),
		Week:          BuildWeekStrip(now, s.loc, NewPresenceSet(weekRecords, s.loc)),
		RecentRecords: recent,
	}, nil
}

// GetMonthDetails implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthDetails(ctx context.Context, year, month int) (attendance.MonthDetailsResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.MonthDetailsResponse{}, err
	}

	if month < 1 || month > 12 {
		return attendance.MonthDetailsResponse{}, attendance.ErrInvalidMonth
	}

	now := s.nowFn().In(s.loc)
	if year == 0 {
		year = now.Year()
	}

	start, end := MonthRange(year, time.Month(month), s.loc)
	records, err := s.PunchRecordRepository.ListInRange(ctx, userID, start, end)
	if err != nil {
		return attendance.MonthDetailsResponse{}, fmt.Errorf("failed to list records for month: %w", err)
	}

	set := NewPresenceSet(records, s.loc)
	denominator := MonthDenominator(year, time.Month(month), now)

	responses := make([]attendance.PunchRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapRecordToResponse(r))
	}

	return attendance.MonthDetailsResponse{
		Year:    year,
		Month:   month,
		Stats:   Aggregate(records, set, denominator),
		Records: responses,
	}, nil
}

// GetWeekDetails implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWeekDetails(ctx context.Context) (attendance.WeekDetailsResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.WeekDetailsResponse{}, err
	}

	now := s.nowFn()
	start, end := WeekWindow(now, s.loc)

	records, err := s.PunchRecordRepository.ListInRange(ctx, userID, start, end)
	if err != nil {
		return attendance.WeekDetailsResponse{}, fmt.Errorf("failed to list records for week: %w", err)
	}

	set := NewPresenceSet(records, s.loc)

	responses := make([]attendance.PunchRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapRecordToResponse(r))
	}

	return attendance.WeekDetailsResponse{
		StartDate: attendance.DayOf(start, s.loc).String(),
		EndDate:   attendance.DayOf(end, s.loc).String(),
		Days:      BuildWeekStrip(now, s.loc, set),
		Records:   responses,
	}, nil
}

// GetRecordFeed implements attendance.AttendanceService. A pass-through of
// stored records for the client-side duration chart.
func (s *AttendanceServiceImpl) GetRecordFeed(ctx context.Context) ([]attendance.FeedItem, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.PunchRecordRepository.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for feed: %w", err)
	}

	items := make([]attendance.FeedItem, 0, len(records))
	for _, r := range records {
		items = append(items, attendance.FeedItem{
			InTime:          r.InTime.Format(time.RFC3339),
			DurationSeconds: r.DurationSeconds,
		})
	}
	return items, nil
}
