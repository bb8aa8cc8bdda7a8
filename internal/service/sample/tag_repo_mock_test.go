package sample

import (
	"context"
	"sync"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CreateFunc func(ctx context.Context, t *domain.RFIDTag) (*domain.RFIDTag, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.RFIDTag
		}
	}
	lockCreate sync.RWMutex
}

func (mock *tagRepoMock) Create(ctx context.Context, t *domain.RFIDTag) (*domain.RFIDTag, error) {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.RFIDTag
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tagRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.RFIDTag
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
