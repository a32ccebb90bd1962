package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListDesignations(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{staffService: staffService}
}

// Create implements StaffHandler.
func (h *staffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Create staff validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member enrolled", created)
}

// GetByID implements StaffHandler.
func (h *staffHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.staffService.GetByID(r.Context(), staffID)
	if err != nil {
		slog.Error("Get staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements StaffHandler.
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter staff.StaffFilter
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	results, err := h.staffService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements StaffHandler.
func (h *staffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "staffID")

	if err := req.Validate(); err != nil {
		slog.Error("Update staff validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.staffService.Update(r.Context(), req); err != nil {
		slog.Error("Update staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated", nil)
}

// Delete implements StaffHandler.
func (h *staffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	if err := h.staffService.Delete(r.Context(), staffID); err != nil {
		slog.Error("Delete staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member removed", nil)
}

// ListDepartments implements StaffHandler.
func (h *staffHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.staffService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("List departments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// ListDesignations implements StaffHandler.
func (h *staffHandlerImpl) ListDesignations(w http.ResponseWriter, r *http.Request) {
	designations, err := h.staffService.ListDesignations(r.Context())
	if err != nil {
		slog.Error("List designations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, designations)
}
