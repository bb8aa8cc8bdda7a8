package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string, sampleID *uuid.UUID) (domain.AuditEntry, error)

	calls struct {
		Record []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Kind     domain.AuditKind
			Payload  map[string]string
			SampleID *uuid.UUID
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string, sampleID *uuid.UUID) (domain.AuditEntry, error) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Kind     domain.AuditKind
		Payload  map[string]string
		SampleID *uuid.UUID
	}{
		Ctx:      ctx,
		UserID:   userID,
		Kind:     kind,
		Payload:  payload,
		SampleID: sampleID,
	}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, userID, kind, payload, sampleID)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Kind     domain.AuditKind
	Payload  map[string]string
	SampleID *uuid.UUID
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
