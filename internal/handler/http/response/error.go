package response

import (
	"errors"
	"net/http"

	"github.com/campus-mis/attendance-backend-go/internal/domain/access"
	"github.com/campus-mis/attendance-backend-go/internal/domain/auth"
	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/domain/device"
	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/domain/report"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/domain/user"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrEmailNotRegistered):
		Forbidden(w, "Email is not registered")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		BadRequest(w, "Password reset token is invalid or expired", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrReviewAccessRequired):
		Forbidden(w, err.Error())

	// Staff and master data errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffIDExists):
		Conflict(w, "Staff id already enrolled")
	case errors.Is(err, staff.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, category.ErrCategoryNotFound):
		NotFound(w, "Shift category not found")
	case errors.Is(err, category.ErrCategoryDescriptionExists):
		Conflict(w, "Shift category with this description already exists")
	case errors.Is(err, category.ErrCategoryInUse):
		Conflict(w, "Shift category is still referenced by staff")

	// Report errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Daily report not found")
	case errors.Is(err, report.ErrAdjustmentOutOfBounds):
		BadRequest(w, "Additional late minutes outside the permitted bound", nil)
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Exemption errors
	case errors.Is(err, exemption.ErrExemptionNotFound):
		NotFound(w, "Exemption request not found")
	case errors.Is(err, exemption.ErrDuplicateExemption):
		Conflict(w, "An identical exemption request is already pending or approved")
	case errors.Is(err, exemption.ErrExemptionAlreadyProcessed):
		Conflict(w, "Exemption request has already been processed")

	// Device errors
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrDeviceIPExists):
		Conflict(w, "A device with this IP address already exists")
	case errors.Is(err, device.ErrSyncNotConfigured):
		BadRequest(w, "Device sync script is not configured", nil)
	case errors.Is(err, device.ErrProvisionFailed):
		InternalServerError(w, "Device provisioning script failed")

	// Access control errors
	case errors.Is(err, access.ErrRoleNotFound):
		NotFound(w, "Access role not found")
	case errors.Is(err, access.ErrRoleNameExists):
		Conflict(w, "Access role with this name already exists")
	case errors.Is(err, access.ErrPageNotFound):
		NotFound(w, "Page access rule not found")
	case errors.Is(err, access.ErrPageExists):
		Conflict(w, "Page access rule for this path already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
