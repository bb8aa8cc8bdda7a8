package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ sampleRepo = &sampleRepoMock{}

type sampleRepoMock struct {
	ListFunc func(ctx context.Context, f domain.SampleFilter) ([]domain.Sample, int, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.SampleFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *sampleRepoMock) List(ctx context.Context, f domain.SampleFilter) ([]domain.Sample, int, error) {
	if mock.ListFunc == nil {
		panic("sampleRepoMock.ListFunc: method is nil but sampleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SampleFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *sampleRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.SampleFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
