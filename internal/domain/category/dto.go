package category

import (
	"github.com/campus-mis/attendance-backend-go/internal/pkg/validator"
)

type CategoryResponse struct {
	ID                    string `json:"id"`
	Description           string `json:"description"`
	InTime                string `json:"in_time"`
	BreakInTime           string `json:"break_in_time"`
	BreakOutTime          string `json:"break_out_time"`
	OutTime               string `json:"out_time"`
	BreakAllowanceMinutes int    `json:"break_allowance_minutes"`
	GraceMinutes          int    `json:"grace_minutes"`
}

type CreateCategoryRequest struct {
	Description           string `json:"description"`
	InTime                string `json:"in_time"`
	BreakInTime           string `json:"break_in_time"`
	BreakOutTime          string `json:"break_out_time"`
	OutTime               string `json:"out_time"`
	BreakAllowanceMinutes int    `json:"break_allowance_minutes"`
	GraceMinutes          int    `json:"grace_minutes"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if len(r.Description) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 100 characters",
		})
	}

	for field, value := range map[string]string{
		"in_time":        r.InTime,
		"break_in_time":  r.BreakInTime,
		"break_out_time": r.BreakOutTime,
		"out_time":       r.OutTime,
	} {
		if !validator.IsValidTimeOfDay(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid time of day (HH:MM)",
			})
		}
	}

	if r.BreakAllowanceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_allowance_minutes",
			Message: "break_allowance_minutes must not be negative",
		})
	}
	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCategoryRequest struct {
	ID                    string  `json:"id"`
	Description           *string `json:"description,omitempty"`
	InTime                *string `json:"in_time,omitempty"`
	BreakInTime           *string `json:"break_in_time,omitempty"`
	BreakOutTime          *string `json:"break_out_time,omitempty"`
	OutTime               *string `json:"out_time,omitempty"`
	BreakAllowanceMinutes *int    `json:"break_allowance_minutes,omitempty"`
	GraceMinutes          *int    `json:"grace_minutes,omitempty"`
}

func (r *UpdateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not be empty",
		})
	}

	for field, value := range map[string]*string{
		"in_time":        r.InTime,
		"break_in_time":  r.BreakInTime,
		"break_out_time": r.BreakOutTime,
		"out_time":       r.OutTime,
	} {
		if value != nil && !validator.IsValidTimeOfDay(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid time of day (HH:MM)",
			})
		}
	}

	if r.BreakAllowanceMinutes != nil && *r.BreakAllowanceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_allowance_minutes",
			Message: "break_allowance_minutes must not be negative",
		})
	}
	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
