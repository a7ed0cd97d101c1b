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

// LeaveHandler provides HTTP handlers for leave requests.
type LeaveHandler struct {
	leaveService *services.LeaveService
}

func NewLeaveHandler(leaveService *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// LeaveRouter registers leave routes on the given router. Applying and
// listing need authentication only; review actions are restricted to admin
// and hr.
func LeaveRouter(r chi.Router, leaveService *services.LeaveService, requireAuth func(http.Handler) http.Handler) {
	handler := NewLeaveHandler(leaveService)
	requireStaff := RequireRole(types.RoleAdmin, types.RoleHR)

	r.Use(requireAuth)
	r.Post("/", handler.ApplyLeave)
	r.Get("/", handler.ListLeaves)
	r.With(requireStaff).Put("/{leaveID}/approve", handler.ApproveLeave)
	r.With(requireStaff).Put("/{leaveID}/reject", handler.RejectLeave)
}

func (h *LeaveHandler) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	var req types.LeaveCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	leave, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to apply for leave")
		return
	}

	writeJSON(w, http.StatusOK, leave)
}

func (h *LeaveHandler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	filter := store.LeaveFilter{
		EmployeeID: strings.TrimSpace(r.URL.Query().Get("employee_id")),
		Status:     strings.TrimSpace(r.URL.Query().Get("status")),
	}

	leaves, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list leaves")
		return
	}

	writeJSON(w, http.StatusOK, leaves)
}

func (h *LeaveHandler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, types.LeaveStatusApproved)
}

func (h *LeaveHandler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, types.LeaveStatusRejected)
}

func (h *LeaveHandler) review(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "leaveID")

	reviewer, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if status == types.LeaveStatusApproved {
		err = h.leaveService.Approve(r.Context(), id, reviewer.FullName)
	} else {
		err = h.leaveService.Reject(r.Context(), id, reviewer.FullName)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "leave request not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to review leave")
		return
	}

	if status == types.LeaveStatusApproved {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Leave approved successfully"})
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Leave rejected successfully"})
}
