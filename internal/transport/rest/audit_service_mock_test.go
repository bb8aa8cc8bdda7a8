package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	ListFunc func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *auditServiceMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	if mock.ListFunc == nil {
		panic("auditServiceMock.ListFunc: method is nil but auditService.List was just called")
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

func (mock *auditServiceMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
