package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/attendance"
	"github.com/HarshitVatsa-7/employee-management-system/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	MonthDetails(w http.ResponseWriter, r *http.Request)
	WeekDetails(w http.ResponseWriter, r *http.Request)
	RecordFeed(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseYear reads the optional year query parameter. Absent means zero: the
// service resolves it to the current year on its own clock.
func parseYear(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1970 || year > 9999 {
		return 0, attendance.ErrInvalidYear
	}
	return year, nil
}

// PunchIn implements AttendanceHandler. A punch that cannot be recorded is
// logged and acknowledged without an error status, so a double-tap or a
// transient storage failure never surfaces to the client as a failed
// check-in.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.PunchIn(r.Context())
	if err != nil {
		slog.Error("Punch in failed", "error", err)
		response.SuccessWithMessage(w, "Punch in not recorded", attendance.PunchResponse{})
		return
	}

	response.SuccessWithMessage(w, "Punch in processed", result)
}

// PunchOut implements AttendanceHandler. Same acknowledgement contract as
// PunchIn.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.PunchOut(r.Context())
	if err != nil {
		slog.Error("Punch out failed", "error", err)
		response.SuccessWithMessage(w, "Punch out not recorded", attendance.PunchResponse{})
		return
	}

	response.SuccessWithMessage(w, "Punch out processed", result)
}

// Dashboard implements AttendanceHandler.
func (h *attendanceHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetDashboard(r.Context(), year)
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthDetails implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthDetails(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, attendance.ErrInvalidMonth)
		return
	}

	result, err := h.attendanceService.GetMonthDetails(r.Context(), year, month)
	if err != nil {
		slog.Error("Month details service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WeekDetails implements AttendanceHandler.
func (h *attendanceHandlerImpl) WeekDetails(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetWeekDetails(r.Context())
	if err != nil {
		slog.Error("Week details service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecordFeed implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordFeed(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetRecordFeed(r.Context())
	if err != nil {
		slog.Error("Record feed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
