package exemption

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
)

const dateLayout = "2006-01-02"

type ExemptionServiceImpl struct {
	db *database.DB
	exemption.ExemptionRepository
	staff.StaffRepository
}

// Apply implements exemption.ExemptionService. One row is filed per
// requested session; each session is checked for an identical request
// that is still pending or already approved.
func (s *ExemptionServiceImpl) Apply(ctx context.Context, req exemption.ApplyExemptionRequest) ([]exemption.ExemptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.StaffRepository.GetByID(ctx, req.StaffID); err != nil {
		return nil, err
	}

	date, _ := time.Parse(dateLayout, req.Date)

	for _, session := range req.Sessions {
		duplicate, err := s.ExemptionRepository.HasActiveDuplicate(ctx, req.StaffID, date, req.Type, session, req.StartTime, req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("failed to check duplicate exemption: %w", err)
		}
		if duplicate {
			return nil, exemption.ErrDuplicateExemption
		}
	}

	var responses []exemption.ExemptionResponse
	for _, session := range req.Sessions {
		created, err := s.ExemptionRepository.Create(ctx, exemption.Exemption{
			StaffID:   req.StaffID,
			Type:      req.Type,
			Session:   session,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Reason:    req.Reason,
			Status:    exemption.StatusPending,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create exemption: %w", err)
		}
		responses = append(responses, toResponse(created))
	}

	return responses, nil
}

// Approve implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) Approve(ctx context.Context, req exemption.ReviewExemptionRequest) error {
	return s.review(ctx, req, exemption.StatusApproved)
}

// Reject implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) Reject(ctx context.Context, req exemption.ReviewExemptionRequest) error {
	return s.review(ctx, req, exemption.StatusRejected)
}

func (s *ExemptionServiceImpl) review(ctx context.Context, req exemption.ReviewExemptionRequest, status string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.ExemptionRepository.UpdateStatus(ctx, req.ID, status, req.ReviewerID); err != nil {
		return err
	}

	return nil
}

// GetByID implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) GetByID(ctx context.Context, id string) (exemption.ExemptionResponse, error) {
	ex, err := s.ExemptionRepository.GetByID(ctx, id)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}
	return toResponse(ex), nil
}

// List implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) List(ctx context.Context, filter exemption.ExemptionFilter) ([]exemption.ExemptionResponse, error) {
	exemptions, err := s.ExemptionRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list exemptions: %w", err)
	}

	responses := make([]exemption.ExemptionResponse, 0, len(exemptions))
	for _, ex := range exemptions {
		responses = append(responses, toResponse(ex))
	}
	return responses, nil
}

func toResponse(ex exemption.Exemption) exemption.ExemptionResponse {
	return exemption.ExemptionResponse{
		ID:        ex.ID,
		StaffID:   ex.StaffID,
		StaffName: ex.StaffName,
		Type:      ex.Type,
		Session:   ex.Session,
		Date:      ex.Date.Format(dateLayout),
		StartTime: ex.StartTime,
		EndTime:   ex.EndTime,
		Reason:    ex.Reason,
		Status:    ex.Status,
	}
}

func NewExemptionService(
	db *database.DB,
	exemptionRepo exemption.ExemptionRepository,
	staffRepo staff.StaffRepository,
) exemption.ExemptionService {
	return &ExemptionServiceImpl{
		db:                  db,
		ExemptionRepository: exemptionRepo,
		StaffRepository:     staffRepo,
	}
}
