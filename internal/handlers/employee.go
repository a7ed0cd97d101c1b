package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/apiserver/internal/services"
	"github.com/staffdesk/apiserver/internal/store"
	"github.com/staffdesk/apiserver/types"
)

// EmployeeHandler provides HTTP handlers for employee records.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRouter registers employee routes on the given router. Reads need
// authentication only; mutations are restricted to admin and hr.
func EmployeeRouter(r chi.Router, employeeService *services.EmployeeService, requireAuth func(http.Handler) http.Handler) {
	handler := NewEmployeeHandler(employeeService)
	requireStaff := RequireRole(types.RoleAdmin, types.RoleHR)

	r.Use(requireAuth)
	r.Get("/", handler.ListEmployees)
	r.With(requireStaff).Post("/", handler.CreateEmployee)
	r.Route("/{employeeID}", func(r chi.Router) {
		r.Get("/", handler.GetEmployee)
		r.With(requireStaff).Put("/", handler.UpdateEmployee)
		r.With(requireStaff).Delete("/", handler.DeleteEmployee)
	})
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req types.EmployeeUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	employee, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "employee ID already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create employee")
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")

	employee, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch employee")
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")

	var req types.EmployeeUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	employee, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "employee ID already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update employee")
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// DeleteEmployee soft-deletes by flipping status to inactive. The modified
// count drives the 404, so deleting an already-inactive employee also reads
// as not found.
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")

	if err := h.employeeService.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Employee deleted successfully"})
}
