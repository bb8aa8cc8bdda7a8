package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ sampleRepo = &sampleRepoMock{}

type sampleRepoMock struct {
	GetByNumberForUpdateFunc func(ctx context.Context, number string) (*domain.Sample, error)
	UpdateStatusFunc         func(ctx context.Context, id uuid.UUID, status domain.SampleStatus, at time.Time) error

	calls struct {
		GetByNumberForUpdate []struct {
			Ctx    context.Context
			Number string
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.SampleStatus
			At     time.Time
		}
	}
	lockGetByNumberForUpdate sync.RWMutex
	lockUpdateStatus         sync.RWMutex
}

func (mock *sampleRepoMock) GetByNumberForUpdate(ctx context.Context, number string) (*domain.Sample, error) {
	if mock.GetByNumberForUpdateFunc == nil {
		panic("sampleRepoMock.GetByNumberForUpdateFunc: method is nil but sampleRepo.GetByNumberForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
	}{
		Ctx:    ctx,
		Number: number,
	}
	mock.lockGetByNumberForUpdate.Lock()
	mock.calls.GetByNumberForUpdate = append(mock.calls.GetByNumberForUpdate, callInfo)
	mock.lockGetByNumberForUpdate.Unlock()
	return mock.GetByNumberForUpdateFunc(ctx, number)
}

func (mock *sampleRepoMock) GetByNumberForUpdateCalls() []struct {
	Ctx    context.Context
	Number string
} {
	mock.lockGetByNumberForUpdate.RLock()
	calls := mock.calls.GetByNumberForUpdate
	mock.lockGetByNumberForUpdate.RUnlock()
	return calls
}

func (mock *sampleRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SampleStatus, at time.Time) error {
	if mock.UpdateStatusFunc == nil {
		panic("sampleRepoMock.UpdateStatusFunc: method is nil but sampleRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.SampleStatus
		At     time.Time
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
		At:     at,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, at)
}

func (mock *sampleRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.SampleStatus
	At     time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
