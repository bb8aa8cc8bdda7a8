package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Permission codenames checked by the access policy.
const (
	PermViewSample     = "view_sample"
	PermAddSample      = "add_sample"
	PermChangeSample   = "change_sample"
	PermDeleteSample   = "delete_sample"
	PermViewRFIDTag    = "view_rfidtag"
	PermAddRFIDTag     = "add_rfidtag"
	PermChangeRFIDTag  = "change_rfidtag"
	PermDeleteRFIDTag  = "delete_rfidtag"
	PermViewAuditLog   = "view_auditlog"
	PermAddAuditLog    = "add_auditlog"
	PermChangeAuditLog = "change_auditlog"
	PermDeleteAuditLog = "delete_auditlog"
)

// User represents an authenticated application user.
// Groups and Permissions are loaded together with the user; Permissions is
// the union of the groups' permissions and direct grants.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsActive     bool
	Groups       []string
	Permissions  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission reports whether the user holds the given capability codename.
func (u *User) HasPermission(codename string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Permissions, codename)
}

// InGroup reports whether the user belongs to the named group.
func (u *User) InGroup(name string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Groups, name)
}

// UserFilter contains pagination parameters for user lists.
type UserFilter struct {
	Limit  int
	Offset int
}
