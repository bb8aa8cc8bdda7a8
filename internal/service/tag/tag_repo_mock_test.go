package tag

import (
	"context"
	"sync"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CreateFunc    func(ctx context.Context, t *domain.RFIDTag) (*domain.RFIDTag, error)
	DeleteFunc    func(ctx context.Context, uid string) error
	ListFunc      func(ctx context.Context, limit int, offset int) ([]domain.RFIDTag, error)
	SetActiveFunc func(ctx context.Context, uid string, active bool) (*domain.RFIDTag, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.RFIDTag
		}
		Delete []struct {
			Ctx context.Context
			UID string
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		SetActive []struct {
			Ctx    context.Context
			UID    string
			Active bool
		}
	}
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockList      sync.RWMutex
	lockSetActive sync.RWMutex
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

func (mock *tagRepoMock) Delete(ctx context.Context, uid string) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UID string
	}{
		Ctx: ctx,
		UID: uid,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, uid)
}

func (mock *tagRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	UID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tagRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.RFIDTag, error) {
	if mock.ListFunc == nil {
		panic("tagRepoMock.ListFunc: method is nil but tagRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *tagRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tagRepoMock) SetActive(ctx context.Context, uid string, active bool) (*domain.RFIDTag, error) {
	if mock.SetActiveFunc == nil {
		panic("tagRepoMock.SetActiveFunc: method is nil but tagRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UID    string
		Active bool
	}{
		Ctx:    ctx,
		UID:    uid,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, uid, active)
}

func (mock *tagRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	UID    string
	Active bool
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}
