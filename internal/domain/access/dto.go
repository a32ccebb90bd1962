package access

import (
	"github.com/campus-mis/attendance-backend-go/internal/pkg/validator"
)

type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PageRuleResponse struct {
	ID    string   `json:"id"`
	Page  string   `json:"page"`
	Roles []string `json:"roles"`
}

type UpsertPageRuleRequest struct {
	Page  string   `json:"page"`
	Roles []string `json:"roles"`
}

func (r *UpsertPageRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Page) {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page is required",
		})
	}
	for _, role := range r.Roles {
		if !validator.IsInSlice(role, []string{"admin", "hr", "hod", "staff"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "roles",
				Message: "roles must be a subset of admin, hr, hod, staff",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StaffRoleUpdate is one entry of the bulk role update. The whole batch
// is applied in a single transaction.
type StaffRoleUpdate struct {
	StaffID string `json:"staff_id"`
	Role    string `json:"role"`
}

type BulkRoleUpdateRequest struct {
	Updates []StaffRoleUpdate `json:"updates"`
}

func (r *BulkRoleUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Updates) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "updates",
			Message: "at least one update is required",
		})
	}
	for _, u := range r.Updates {
		if !validator.IsValidStaffID(u.StaffID) {
			errs = append(errs, validator.ValidationError{
				Field:   "updates",
				Message: "every staff_id must be a numeric device enrollment number",
			})
			break
		}
		if !validator.IsInSlice(u.Role, []string{"admin", "hr", "hod", "staff"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "updates",
				Message: "every role must be one of admin, hr, hod, staff",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
