package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// CategoryHandler serves the shift category master data.
type CategoryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type categoryHandlerImpl struct {
	categoryService category.CategoryService
}

func NewCategoryHandler(categoryService category.CategoryService) CategoryHandler {
	return &categoryHandlerImpl{categoryService: categoryService}
}

// Create implements CategoryHandler.
func (h *categoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req category.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create category decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Create category validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.categoryService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift category created", created)
}

// GetByID implements CategoryHandler.
func (h *categoryHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Category ID is required", nil)
		return
	}

	result, err := h.categoryService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CategoryHandler.
func (h *categoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.categoryService.List(r.Context())
	if err != nil {
		slog.Error("List categories service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements CategoryHandler.
func (h *categoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req category.UpdateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update category decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		slog.Error("Update category validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.categoryService.Update(r.Context(), req); err != nil {
		slog.Error("Update category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift category updated", nil)
}

// Delete implements CategoryHandler.
func (h *categoryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Category ID is required", nil)
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift category deleted", nil)
}
