package device

import (
	"github.com/campus-mis/attendance-backend-go/internal/pkg/validator"
)

type DeviceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IP          string `json:"ip"`
	Port        int    `json:"port"`
	Location    string `json:"location"`
	Maintenance bool   `json:"maintenance"`
}

type CreateDeviceRequest struct {
	Name     string `json:"name"`
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Location string `json:"location"`
}

func (r *CreateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidIPv4(r.IP) {
		errs = append(errs, validator.ValidationError{
			Field:   "ip",
			Message: "ip must be a valid IPv4 address",
		})
	}
	if r.Port <= 0 || r.Port > 65535 {
		errs = append(errs, validator.ValidationError{
			Field:   "port",
			Message: "port must be between 1 and 65535",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDeviceRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	IP       *string `json:"ip,omitempty"`
	Port     *int    `json:"port,omitempty"`
	Location *string `json:"location,omitempty"`
}

func (r *UpdateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.IP != nil && !validator.IsValidIPv4(*r.IP) {
		errs = append(errs, validator.ValidationError{
			Field:   "ip",
			Message: "ip must be a valid IPv4 address",
		})
	}
	if r.Port != nil && (*r.Port <= 0 || *r.Port > 65535) {
		errs = append(errs, validator.ValidationError{
			Field:   "port",
			Message: "port must be between 1 and 65535",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProvisionStaffRequest pushes or removes one staff credential on the
// devices via the external sync script.
type ProvisionStaffRequest struct {
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
}

func (r *ProvisionStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a numeric device enrollment number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
