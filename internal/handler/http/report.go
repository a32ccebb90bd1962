package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/report"
	"github.com/campus-mis/attendance-backend-go/internal/handler/http/response"
	"github.com/campus-mis/attendance-backend-go/internal/service/export"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	IndividualReport(w http.ResponseWriter, r *http.Request)
	DepartmentSummary(w http.ResponseWriter, r *http.Request)
	ExportSummaryPDF(w http.ResponseWriter, r *http.Request)
	ToggleFlag(w http.ResponseWriter, r *http.Request)
	SetAdditionalLateMinutes(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// IndividualReport implements ReportHandler.
func (h *reportHandlerImpl) IndividualReport(w http.ResponseWriter, r *http.Request) {
	req := report.IndividualReportRequest{
		StaffID:   chi.URLParam(r, "staffID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.IndividualReport(r.Context(), req)
	if err != nil {
		slog.Error("IndividualReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func summaryRequestFromQuery(r *http.Request) report.DeptSummaryRequest {
	req := report.DeptSummaryRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if department := r.URL.Query().Get("department"); department != "" {
		req.Department = &department
	}
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		req.CategoryID = &categoryID
	}
	return req
}

// DepartmentSummary implements ReportHandler.
func (h *reportHandlerImpl) DepartmentSummary(w http.ResponseWriter, r *http.Request) {
	req := summaryRequestFromQuery(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.DepartmentSummary(r.Context(), req)
	if err != nil {
		slog.Error("DepartmentSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportSummaryPDF implements ReportHandler. Same query contract as the
// JSON summary, rendered as a downloadable PDF.
func (h *reportHandlerImpl) ExportSummaryPDF(w http.ResponseWriter, r *http.Request) {
	req := summaryRequestFromQuery(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.DepartmentSummary(r.Context(), req)
	if err != nil {
		slog.Error("ExportSummaryPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	pdfBytes, err := export.SummaryPDF(result)
	if err != nil {
		slog.Error("ExportSummaryPDF render error", "error", err)
		response.InternalServerError(w, "Failed to render summary PDF")
		return
	}

	filename := fmt.Sprintf("attendance-summary-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// ToggleFlag implements ReportHandler.
func (h *reportHandlerImpl) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	var req report.FlagToggleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ToggleFlag decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("ToggleFlag validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.ToggleFlag(r.Context(), req)
	if err != nil {
		slog.Error("ToggleFlag service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetAdditionalLateMinutes implements ReportHandler.
func (h *reportHandlerImpl) SetAdditionalLateMinutes(w http.ResponseWriter, r *http.Request) {
	var req report.AdditionalLateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetAdditionalLateMinutes decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("SetAdditionalLateMinutes validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.reportService.SetAdditionalLateMinutes(r.Context(), req); err != nil {
		slog.Error("SetAdditionalLateMinutes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment recorded", nil)
}
