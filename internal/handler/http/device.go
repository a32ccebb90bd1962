package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-mis/attendance-backend-go/internal/domain/device"
	"github.com/campus-mis/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DeviceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ToggleMaintenance(w http.ResponseWriter, r *http.Request)
	ProvisionStaff(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	deviceService device.DeviceService
}

func NewDeviceHandler(deviceService device.DeviceService) DeviceHandler {
	return &deviceHandlerImpl{deviceService: deviceService}
}

// Create implements DeviceHandler.
func (h *deviceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req device.CreateDeviceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create device decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Create device validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.deviceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create device service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Device registered", created)
}

// GetByID implements DeviceHandler.
func (h *deviceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Device ID is required", nil)
		return
	}

	result, err := h.deviceService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get device service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DeviceHandler.
func (h *deviceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.deviceService.List(r.Context())
	if err != nil {
		slog.Error("List devices service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements DeviceHandler.
func (h *deviceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req device.UpdateDeviceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update device decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		slog.Error("Update device validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.deviceService.Update(r.Context(), req); err != nil {
		slog.Error("Update device service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device updated", nil)
}

// Delete implements DeviceHandler.
func (h *deviceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Device ID is required", nil)
		return
	}

	if err := h.deviceService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete device service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device removed", nil)
}

// ToggleMaintenance implements DeviceHandler.
func (h *deviceHandlerImpl) ToggleMaintenance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Device ID is required", nil)
		return
	}

	maintenance, err := h.deviceService.ToggleMaintenance(r.Context(), id)
	if err != nil {
		slog.Error("Toggle maintenance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"maintenance": maintenance})
}

// ProvisionStaff implements DeviceHandler.
func (h *deviceHandlerImpl) ProvisionStaff(w http.ResponseWriter, r *http.Request) {
	var req device.ProvisionStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Provision staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Provision staff validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.deviceService.ProvisionStaff(r.Context(), req); err != nil {
		slog.Error("Provision staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff credentials pushed to devices", nil)
}
