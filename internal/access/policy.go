// Package access derives a user's role from group membership and answers
// capability questions. Every state-changing service consults it before
// touching storage.
package access

import (
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Capability is a coarse action class in the permission matrix.
type Capability string

const (
	CapViewSamples   Capability = "view_samples"
	CapViewAudit     Capability = "view_audit"
	CapMutateSample  Capability = "mutate_sample"
	CapManageUsers   Capability = "manage_users"
	CapExportReports Capability = "export_reports"
)

// matrix lists the capabilities granted to each role.
var matrix = map[domain.Role]map[Capability]bool{
	domain.RoleAdmin: {
		CapViewSamples:   true,
		CapViewAudit:     true,
		CapMutateSample:  true,
		CapManageUsers:   true,
		CapExportReports: true,
	},
	domain.RoleOperator: {
		CapViewSamples:   true,
		CapViewAudit:     true,
		CapMutateSample:  true,
		CapExportReports: true,
	},
	domain.RoleViewer: {
		CapViewSamples: true,
		CapViewAudit:   true,
	},
}

// RoleOf returns the effective role of the user: Admin if any group is
// "Admin", else Operator if any group is "Operator", else Viewer.
// A nil user is a Viewer.
func RoleOf(u *domain.User) domain.Role {
	switch {
	case u.InGroup(domain.RoleAdmin.String()):
		return domain.RoleAdmin
	case u.InGroup(domain.RoleOperator.String()):
		return domain.RoleOperator
	default:
		return domain.RoleViewer
	}
}

// CanPerform reports whether the user's role grants the capability.
// Inactive users can do nothing.
func CanPerform(u *domain.User, c Capability) bool {
	if u == nil || !u.IsActive {
		return false
	}
	return matrix[RoleOf(u)][c]
}

// Require returns domain.ErrForbidden unless the user holds the permission
// codename and, when c is non-empty, the role capability as well.
func Require(u *domain.User, codename string, c Capability) error {
	if u == nil || !u.IsActive {
		return domain.ErrForbidden
	}
	if codename != "" && !u.HasPermission(codename) {
		return domain.ErrForbidden
	}
	if c != "" && !CanPerform(u, c) {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeTransition is the gate in front of every workflow action: the
// caller needs the change_sample permission and an Admin or Operator role.
func AuthorizeTransition(u *domain.User) error {
	return Require(u, domain.PermChangeSample, CapMutateSample)
}
