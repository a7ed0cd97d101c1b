package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/apiserver/internal/services"
	"github.com/staffdesk/apiserver/internal/store"
	"github.com/staffdesk/apiserver/types"
)

// AttendanceHandler provides HTTP handlers for attendance records.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// AttendanceRouter registers attendance routes on the given router.
func AttendanceRouter(r chi.Router, attendanceService *services.AttendanceService, requireAuth func(http.Handler) http.Handler) {
	handler := NewAttendanceHandler(attendanceService)

	r.Use(requireAuth)
	r.Post("/", handler.MarkAttendance)
	r.Get("/", handler.ListAttendance)
	r.Put("/{attendanceID}", handler.RecordCheckOut)
}

func (h *AttendanceHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req types.AttendanceCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	record, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "attendance already marked for this date")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to mark attendance")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *AttendanceHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := store.AttendanceFilter{
		EmployeeID: strings.TrimSpace(r.URL.Query().Get("employee_id")),
		StartDate:  strings.TrimSpace(r.URL.Query().Get("start_date")),
		EndDate:    strings.TrimSpace(r.URL.Query().Get("end_date")),
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list attendance")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// RecordCheckOut stores the check-out time passed as a query parameter and
// recomputes working hours from the stored check-in. Calling it again
// overwrites the previous check-out.
func (h *AttendanceHandler) RecordCheckOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "attendanceID")

	checkOut := strings.TrimSpace(r.URL.Query().Get("check_out"))
	if checkOut == "" {
		writeError(w, http.StatusBadRequest, "check_out is required")
		return
	}

	hours, err := h.attendanceService.RecordCheckOut(r.Context(), id, checkOut)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "attendance record not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to record check-out")
		return
	}

	writeJSON(w, http.StatusOK, CheckOutResponse{
		Message:      "Check-out recorded successfully",
		WorkingHours: hours,
	})
}

// CheckOutResponse confirms a recorded check-out. WorkingHours is null when
// the stored check-in or supplied check-out could not be parsed.
type CheckOutResponse struct {
	Message      string   `json:"message"`
	WorkingHours *float64 `json:"working_hours"`
}
