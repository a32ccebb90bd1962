package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-mis/attendance-backend-go/internal/domain/access"
	"github.com/campus-mis/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AccessHandler interface {
	CreateRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)

	UpsertPageRule(w http.ResponseWriter, r *http.Request)
	ListPageRules(w http.ResponseWriter, r *http.Request)
	DeletePageRule(w http.ResponseWriter, r *http.Request)

	BulkUpdateStaffRoles(w http.ResponseWriter, r *http.Request)

	ListHODDepartments(w http.ResponseWriter, r *http.Request)
	SetHODDepartments(w http.ResponseWriter, r *http.Request)
}

type accessHandlerImpl struct {
	accessService access.AccessService
}

func NewAccessHandler(accessService access.AccessService) AccessHandler {
	return &accessHandlerImpl{accessService: accessService}
}

// CreateRole implements AccessHandler.
func (h *accessHandlerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req access.CreateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Create role validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.accessService.CreateRole(r.Context(), req)
	if err != nil {
		slog.Error("Create role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Access role created", created)
}

// ListRoles implements AccessHandler.
func (h *accessHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	results, err := h.accessService.ListRoles(r.Context())
	if err != nil {
		slog.Error("List roles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateRole implements AccessHandler.
func (h *accessHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req access.UpdateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		slog.Error("Update role validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.accessService.UpdateRole(r.Context(), req); err != nil {
		slog.Error("Update role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access role updated", nil)
}

// DeleteRole implements AccessHandler.
func (h *accessHandlerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	if err := h.accessService.DeleteRole(r.Context(), id); err != nil {
		slog.Error("Delete role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access role deleted", nil)
}

// UpsertPageRule implements AccessHandler.
func (h *accessHandlerImpl) UpsertPageRule(w http.ResponseWriter, r *http.Request) {
	var req access.UpsertPageRuleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert page rule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Upsert page rule validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	rule, err := h.accessService.UpsertPageRule(r.Context(), req)
	if err != nil {
		slog.Error("Upsert page rule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rule)
}

// ListPageRules implements AccessHandler.
func (h *accessHandlerImpl) ListPageRules(w http.ResponseWriter, r *http.Request) {
	results, err := h.accessService.ListPageRules(r.Context())
	if err != nil {
		slog.Error("List page rules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeletePageRule implements AccessHandler.
func (h *accessHandlerImpl) DeletePageRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Page rule ID is required", nil)
		return
	}

	if err := h.accessService.DeletePageRule(r.Context(), id); err != nil {
		slog.Error("Delete page rule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Page access rule deleted", nil)
}

// BulkUpdateStaffRoles implements AccessHandler.
func (h *accessHandlerImpl) BulkUpdateStaffRoles(w http.ResponseWriter, r *http.Request) {
	var req access.BulkRoleUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk role update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Bulk role update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.accessService.BulkUpdateStaffRoles(r.Context(), req); err != nil {
		slog.Error("Bulk role update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff roles updated", nil)
}

// ListHODDepartments implements AccessHandler.
func (h *accessHandlerImpl) ListHODDepartments(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	departments, err := h.accessService.ListHODDepartments(r.Context(), staffID)
	if err != nil {
		slog.Error("List HOD departments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// SetHODDepartments implements AccessHandler.
func (h *accessHandlerImpl) SetHODDepartments(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req struct {
		Departments []string `json:"departments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set HOD departments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.accessService.SetHODDepartments(r.Context(), staffID, req.Departments); err != nil {
		slog.Error("Set HOD departments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department access updated", nil)
}
