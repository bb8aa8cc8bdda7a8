package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	LatestApprovalsFunc func(ctx context.Context, userID *uuid.UUID) ([]domain.ApprovalRef, error)
	ListFunc            func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)

	calls struct {
		LatestApprovals []struct {
			Ctx    context.Context
			UserID *uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
	}
	lockLatestApprovals sync.RWMutex
	lockList            sync.RWMutex
}

func (mock *auditRepoMock) LatestApprovals(ctx context.Context, userID *uuid.UUID) ([]domain.ApprovalRef, error) {
	if mock.LatestApprovalsFunc == nil {
		panic("auditRepoMock.LatestApprovalsFunc: method is nil but auditRepo.LatestApprovals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID *uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockLatestApprovals.Lock()
	mock.calls.LatestApprovals = append(mock.calls.LatestApprovals, callInfo)
	mock.lockLatestApprovals.Unlock()
	return mock.LatestApprovalsFunc(ctx, userID)
}

func (mock *auditRepoMock) LatestApprovalsCalls() []struct {
	Ctx    context.Context
	UserID *uuid.UUID
} {
	mock.lockLatestApprovals.RLock()
	calls := mock.calls.LatestApprovals
	mock.lockLatestApprovals.RUnlock()
	return calls
}

func (mock *auditRepoMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if mock.ListFunc == nil {
		panic("auditRepoMock.ListFunc: method is nil but auditRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *auditRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
