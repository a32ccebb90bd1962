package user

type Permission string

const (
	// Reports
	PermissionReportViewOwn  Permission = "report.view_own"
	PermissionReportViewAll  Permission = "report.view_all"
	PermissionReportViewDept Permission = "report.view_dept"
	PermissionReportAdjust   Permission = "report.adjust"

	// Punch review
	PermissionFlagToggle Permission = "flag.toggle"

	// Exemptions
	PermissionExemptionApply  Permission = "exemption.apply"
	PermissionExemptionReview Permission = "exemption.review"

	// Staff and masters
	PermissionStaffManage  Permission = "staff.manage"
	PermissionMasterManage Permission = "master.manage"

	// Devices
	PermissionDeviceManage Permission = "device.manage"

	// Access administration
	PermissionAccessManage Permission = "access.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionReportViewOwn,
		PermissionReportViewAll,
		PermissionReportViewDept,
		PermissionReportAdjust,
		PermissionFlagToggle,
		PermissionExemptionApply,
		PermissionExemptionReview,
		PermissionStaffManage,
		PermissionMasterManage,
		PermissionDeviceManage,
		PermissionAccessManage,
	},
	RoleHR: {
		PermissionReportViewOwn,
		PermissionReportViewAll,
		PermissionReportViewDept,
		PermissionReportAdjust,
		PermissionFlagToggle,
		PermissionExemptionApply,
		PermissionExemptionReview,
		PermissionStaffManage,
	},
	RoleHOD: {
		PermissionReportViewOwn,
		PermissionReportViewDept,
		PermissionExemptionApply,
	},
	RoleStaff: {
		PermissionReportViewOwn,
		PermissionExemptionApply,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
