package exemption

import (
	"github.com/campus-mis/attendance-backend-go/internal/pkg/validator"
)

var (
	validTypes    = []string{"late_arrival", "early_departure", "official_duty", "personal"}
	validSessions = []string{SessionMorning, SessionAfternoon, SessionFullDay}
)

type ApplyExemptionRequest struct {
	StaffID   string   `json:"staff_id"`
	Type      string   `json:"type"`
	Sessions  []string `json:"sessions"`
	Date      string   `json:"date"`
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
	Reason    string   `json:"reason"`
}

func (r *ApplyExemptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a numeric device enrollment number",
		})
	}
	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of late_arrival, early_departure, official_duty, personal",
		})
	}
	if len(r.Sessions) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sessions",
			Message: "at least one session is required",
		})
	}
	for _, session := range r.Sessions {
		if !validator.IsInSlice(session, validSessions) {
			errs = append(errs, validator.ValidationError{
				Field:   "sessions",
				Message: "sessions must be morning, afternoon or full_day",
			})
			break
		}
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time of day",
		})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time of day",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewExemptionRequest struct {
	ID         string `json:"id"`
	ReviewerID string `json:"-"` // from JWT
}

func (r *ReviewExemptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExemptionResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	StaffName *string `json:"staff_name,omitempty"`
	Type      string  `json:"type"`
	Session   string  `json:"session"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
}

type ExemptionFilter struct {
	StaffID *string
	Status  *string
}
