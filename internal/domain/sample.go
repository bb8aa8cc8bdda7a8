package domain

import (
	"time"

	"github.com/google/uuid"
)

// RFIDTag is a hardware identifier bound one-to-one to a sample.
type RFIDTag struct {
	ID        uuid.UUID
	UID       string
	IsActive  bool
	CreatedAt time.Time
}

// Sample is a registered specimen tracked through the approval workflow.
// Status is changed only through the workflow service.
type Sample struct {
	ID            uuid.UUID
	SampleNumber  string
	SampleType    string
	Category      string
	PersonName    string
	CollectedDate time.Time
	Location      string
	Status        SampleStatus
	Tag           RFIDTag
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SampleFilter contains filtering/pagination parameters for sample lists.
// Query matches sample number or person name case-insensitively.
type SampleFilter struct {
	Query         string
	SampleType    string
	Category      string
	CollectedDate *time.Time
	CollectedFrom *time.Time
	CollectedTo   *time.Time
	Limit         int
	Offset        int
}

// transitions is the complete workflow table. A missing key means the
// action is refused from that status.
var transitions = map[SampleStatus]map[WorkflowAction]SampleStatus{
	SampleStatusPending: {
		ActionRFIDCheck: SampleStatusChecked,
		ActionReject:    SampleStatusRejected,
	},
	SampleStatusChecked: {
		ActionApprove: SampleStatusApproved,
		ActionReject:  SampleStatusRejected,
	},
	SampleStatusApproved: {
		ActionReject: SampleStatusRejected,
	},
}

// NextStatus returns the status reached by applying action to a sample in
// status current. ok is false when the action is not legal.
func NextStatus(current SampleStatus, action WorkflowAction) (next SampleStatus, ok bool) {
	next, ok = transitions[current][action]
	return next, ok
}

// TransitionAuditKind maps an accepted workflow action to its audit kind.
func TransitionAuditKind(action WorkflowAction) AuditKind {
	switch action {
	case ActionRFIDCheck:
		return AuditKindRFIDCheck
	case ActionApprove:
		return AuditKindApprove
	case ActionReject:
		return AuditKindReject
	}
	return AuditKindNote
}
