package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/apiserver/internal/services"
	"github.com/staffdesk/apiserver/types"
)

// DashboardHandler serves the aggregate dashboard and report endpoints.
type DashboardHandler struct {
	dashboardService  *services.DashboardService
	attendanceService *services.AttendanceService
}

func NewDashboardHandler(dashboardService *services.DashboardService, attendanceService *services.AttendanceService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
	}
}

// DashboardRouter registers the stats route on the given router.
func DashboardRouter(r chi.Router, handler *DashboardHandler, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Get("/stats", handler.GetStats)
}

// ReportsRouter registers the report routes on the given router. Reports are
// restricted to admin and hr.
func ReportsRouter(r chi.Router, handler *DashboardHandler, requireAuth func(http.Handler) http.Handler) {
	requireStaff := RequireRole(types.RoleAdmin, types.RoleHR)
	r.With(requireAuth, requireStaff).Get("/attendance", handler.GetAttendanceReport)
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month"))
	year := strings.TrimSpace(r.URL.Query().Get("year"))
	if month == "" || year == "" {
		writeError(w, http.StatusBadRequest, "month and year are required")
		return
	}

	report, err := h.attendanceService.MonthlyReport(r.Context(), month, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
