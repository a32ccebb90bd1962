package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campus-mis/attendance-backend-go/internal/domain/auth"
	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type ExemptionHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type exemptionHandlerImpl struct {
	exemptionService exemption.ExemptionService
}

func NewExemptionHandler(exemptionService exemption.ExemptionService) ExemptionHandler {
	return &exemptionHandlerImpl{exemptionService: exemptionService}
}

// Apply implements ExemptionHandler.
func (h *exemptionHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req exemption.ApplyExemptionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply exemption decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Apply exemption validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.exemptionService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply exemption service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exemption request submitted", created)
}

// review pulls the reviewer identity off the access token and runs the
// given status transition.
func (h *exemptionHandlerImpl) review(w http.ResponseWriter, r *http.Request, transition func(req exemption.ReviewExemptionRequest) error, message string) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	reviewerID, ok := claims["user_id"].(string)
	if !ok || reviewerID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	req := exemption.ReviewExemptionRequest{
		ID:         chi.URLParam(r, "id"),
		ReviewerID: reviewerID,
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := transition(req); err != nil {
		slog.Error("Review exemption service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

// Approve implements ExemptionHandler.
func (h *exemptionHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(req exemption.ReviewExemptionRequest) error {
		return h.exemptionService.Approve(r.Context(), req)
	}, "Exemption request approved")
}

// Reject implements ExemptionHandler.
func (h *exemptionHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(req exemption.ReviewExemptionRequest) error {
		return h.exemptionService.Reject(r.Context(), req)
	}, "Exemption request rejected")
}

// GetByID implements ExemptionHandler.
func (h *exemptionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Exemption ID is required", nil)
		return
	}

	result, err := h.exemptionService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get exemption service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ExemptionHandler.
func (h *exemptionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter exemption.ExemptionFilter
	if staffID := r.URL.Query().Get("staff_id"); staffID != "" {
		filter.StaffID = &staffID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	results, err := h.exemptionService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List exemptions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{TotalItems: int64(len(results))})
}
