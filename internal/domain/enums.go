package domain

import "strings"

// SampleStatus is the position of a sample in the approval workflow.
type SampleStatus string

const (
	SampleStatusPending  SampleStatus = "pending"
	SampleStatusChecked  SampleStatus = "checked"
	SampleStatusApproved SampleStatus = "approved"
	SampleStatusRejected SampleStatus = "rejected"
)

func (s SampleStatus) String() string { return string(s) }

func (s SampleStatus) IsValid() bool {
	switch s {
	case SampleStatusPending, SampleStatusChecked, SampleStatusApproved, SampleStatusRejected:
		return true
	}
	return false
}

// Label returns the human-readable status shown in lists and reports.
func (s SampleStatus) Label() string {
	switch s {
	case SampleStatusPending:
		return "Pending"
	case SampleStatusChecked:
		return "RFID Checked"
	case SampleStatusApproved:
		return "Approved"
	case SampleStatusRejected:
		return "Rejected"
	}
	return string(s)
}

// IsRFIDChecked reports whether the tag of a sample in this status has been verified.
func (s SampleStatus) IsRFIDChecked() bool {
	return s == SampleStatusChecked || s == SampleStatusApproved
}

// WorkflowAction is a token a caller posts to move a sample through the workflow.
type WorkflowAction string

const (
	ActionRFIDCheck WorkflowAction = "rfid_check"
	ActionApprove   WorkflowAction = "approve"
	ActionReject    WorkflowAction = "reject"
)

func (a WorkflowAction) String() string { return string(a) }

func (a WorkflowAction) IsValid() bool {
	switch a {
	case ActionRFIDCheck, ActionApprove, ActionReject:
		return true
	}
	return false
}

// Role is the effective authorization level of a user. It is derived from
// group membership on every check and never stored.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleOperator Role = "Operator"
	RoleViewer   Role = "Viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// ParseRole accepts a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{RoleAdmin, RoleOperator, RoleViewer} {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, true
		}
	}
	return "", false
}

// AuditKind identifies what an audit entry records. Display text is derived
// from the kind and its payload by AuditText.
type AuditKind string

const (
	AuditKindRFIDCheck       AuditKind = "rfid_check"
	AuditKindApprove         AuditKind = "approve"
	AuditKindReject          AuditKind = "reject"
	AuditKindLogin           AuditKind = "login"
	AuditKindSampleCreated   AuditKind = "sample_created"
	AuditKindSampleUpdated   AuditKind = "sample_updated"
	AuditKindSampleDeleted   AuditKind = "sample_deleted"
	AuditKindTagCreated      AuditKind = "tag_created"
	AuditKindUserCreated     AuditKind = "user_created"
	AuditKindUserUpdated     AuditKind = "user_updated"
	AuditKindUserActivated   AuditKind = "user_activated"
	AuditKindUserDeactivated AuditKind = "user_deactivated"
	AuditKindRoleChanged     AuditKind = "role_changed"
	AuditKindPasswordReset   AuditKind = "password_reset"
	AuditKindProfileUpdated  AuditKind = "profile_updated"
	AuditKindNote            AuditKind = "note"
)

func (k AuditKind) String() string { return string(k) }

func (k AuditKind) IsValid() bool {
	switch k {
	case AuditKindRFIDCheck, AuditKindApprove, AuditKindReject, AuditKindLogin,
		AuditKindSampleCreated, AuditKindSampleUpdated, AuditKindSampleDeleted,
		AuditKindTagCreated, AuditKindUserCreated, AuditKindUserUpdated,
		AuditKindUserActivated, AuditKindUserDeactivated, AuditKindRoleChanged,
		AuditKindPasswordReset, AuditKindProfileUpdated, AuditKindNote:
		return true
	}
	return false
}

// ReportKind selects one of the tabular report projections.
type ReportKind string

const (
	ReportKindSamples  ReportKind = "samples"
	ReportKindRFID     ReportKind = "rfid"
	ReportKindApproval ReportKind = "approval"
	ReportKindAudit    ReportKind = "audit"
)

func (k ReportKind) String() string { return string(k) }

// ParseReportKind maps a request token to a kind. Long-form aliases are
// accepted; unknown or empty tokens fall back to the samples report.
func ParseReportKind(s string) ReportKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rfid", "rfid-checks":
		return ReportKindRFID
	case "approval", "approvals":
		return ReportKindApproval
	case "audit", "full-audit":
		return ReportKindAudit
	}
	return ReportKindSamples
}
