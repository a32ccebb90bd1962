package staff

import (
	"github.com/campus-mis/attendance-backend-go/internal/pkg/validator"
)

type StaffResponse struct {
	StaffID             string  `json:"staff_id"`
	Name                string  `json:"name"`
	Department          string  `json:"department"`
	Designation         string  `json:"designation"`
	CategoryID          string  `json:"category_id"`
	CategoryDescription *string `json:"category_description,omitempty"`
	Email               string  `json:"email"`
	Role                string  `json:"role"`
}

type CreateStaffRequest struct {
	StaffID     string `json:"staff_id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	CategoryID  string `json:"category_id"`
	Email       string `json:"email"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a numeric device enrollment number",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	StaffID     string  `json:"staff_id"`
	Name        *string `json:"name,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Email       *string `json:"email,omitempty"`
	Role        *string `json:"role,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a numeric device enrollment number",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{"admin", "hr", "hod", "staff"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, hr, hod, staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StaffFilter struct {
	Department *string
	CategoryID *string
	Search     *string
}
