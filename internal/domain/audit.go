package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Payload keys used by AuditText.
const (
	PayloadUID          = "uid"
	PayloadUsername     = "username"
	PayloadRole         = "role"
	PayloadText         = "text"
	PayloadSampleNumber = "sample_number"
)

// Fixed audit texts. Reports match on kinds, but these strings are what
// external readers of the audit log see.
const (
	AuditTextApproved       = "sample approved"
	AuditTextRejected       = "sample rejected"
	AuditTextLogin          = "login"
	AuditTextSampleCreated  = "sample created"
	AuditTextSampleUpdated  = "sample updated"
	AuditTextSampleDeleted  = "sample deleted"
	AuditTextProfileUpdated = "user updated own profile"
)

// AuditEntry is an immutable record of who did what to which sample and when.
// Username and SampleNumber are filled on reads only.
type AuditEntry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Username     string
	SampleID     *uuid.UUID
	SampleNumber string
	Kind         AuditKind
	Payload      map[string]string
	Action       string
	CreatedAt    time.Time
}

// AuditFilter narrows audit queries. Zero values mean "no restriction".
// From and To are inclusive calendar dates compared against created_at.
type AuditFilter struct {
	Kinds    []AuditKind
	UserID   *uuid.UUID
	SampleID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// AuditText renders the display text for an audit kind and its payload.
// The output is deterministic for a given input.
func AuditText(kind AuditKind, payload map[string]string) string {
	p := func(key string) string { return payload[key] }

	switch kind {
	case AuditKindRFIDCheck:
		return fmt.Sprintf("RFID check (UID: %s)", p(PayloadUID))
	case AuditKindApprove:
		return AuditTextApproved
	case AuditKindReject:
		return AuditTextRejected
	case AuditKindLogin:
		return AuditTextLogin
	case AuditKindSampleCreated:
		return AuditTextSampleCreated
	case AuditKindSampleUpdated:
		return AuditTextSampleUpdated
	case AuditKindSampleDeleted:
		return AuditTextSampleDeleted
	case AuditKindTagCreated:
		return fmt.Sprintf("RFID tag created: %s", p(PayloadUID))
	case AuditKindUserCreated:
		return fmt.Sprintf("user created: %s (%s)", p(PayloadUsername), p(PayloadRole))
	case AuditKindUserUpdated:
		return fmt.Sprintf("user details updated: %s", p(PayloadUsername))
	case AuditKindUserActivated:
		return fmt.Sprintf("user activated: %s", p(PayloadUsername))
	case AuditKindUserDeactivated:
		return fmt.Sprintf("user deactivated: %s", p(PayloadUsername))
	case AuditKindRoleChanged:
		return fmt.Sprintf("user role changed to %s: %s", p(PayloadRole), p(PayloadUsername))
	case AuditKindPasswordReset:
		return fmt.Sprintf("password reset for user: %s", p(PayloadUsername))
	case AuditKindProfileUpdated:
		return AuditTextProfileUpdated
	}
	return p(PayloadText)
}
