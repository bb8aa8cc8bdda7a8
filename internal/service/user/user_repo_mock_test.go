package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc      func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc        func(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	SetActiveFunc   func(ctx context.Context, id uuid.UUID, active bool, at time.Time) error
	SetGroupsFunc   func(ctx context.Context, id uuid.UUID, groups []string) error
	SetPasswordFunc func(ctx context.Context, id uuid.UUID, hash string, at time.Time) error
	UpdateFunc      func(ctx context.Context, u *domain.User) error

	calls struct {
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.UserFilter
		}
		SetActive []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
			At     time.Time
		}
		SetGroups []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Groups []string
		}
		SetPassword []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Hash string
			At   time.Time
		}
		Update []struct {
			Ctx context.Context
			U   *domain.User
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockSetActive   sync.RWMutex
	lockSetGroups   sync.RWMutex
	lockSetPassword sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.UserFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.UserFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	if mock.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
		At     time.Time
	}{
		Ctx:    ctx,
		ID:     id,
		Active: active,
		At:     at,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active, at)
}

func (mock *userRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
	At     time.Time
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *userRepoMock) SetGroups(ctx context.Context, id uuid.UUID, groups []string) error {
	if mock.SetGroupsFunc == nil {
		panic("userRepoMock.SetGroupsFunc: method is nil but userRepo.SetGroups was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Groups []string
	}{
		Ctx:    ctx,
		ID:     id,
		Groups: groups,
	}
	mock.lockSetGroups.Lock()
	mock.calls.SetGroups = append(mock.calls.SetGroups, callInfo)
	mock.lockSetGroups.Unlock()
	return mock.SetGroupsFunc(ctx, id, groups)
}

func (mock *userRepoMock) SetGroupsCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Groups []string
} {
	mock.lockSetGroups.RLock()
	calls := mock.calls.SetGroups
	mock.lockSetGroups.RUnlock()
	return calls
}

func (mock *userRepoMock) SetPassword(ctx context.Context, id uuid.UUID, hash string, at time.Time) error {
	if mock.SetPasswordFunc == nil {
		panic("userRepoMock.SetPasswordFunc: method is nil but userRepo.SetPassword was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Hash string
		At   time.Time
	}{
		Ctx:  ctx,
		ID:   id,
		Hash: hash,
		At:   at,
	}
	mock.lockSetPassword.Lock()
	mock.calls.SetPassword = append(mock.calls.SetPassword, callInfo)
	mock.lockSetPassword.Unlock()
	return mock.SetPasswordFunc(ctx, id, hash, at)
}

func (mock *userRepoMock) SetPasswordCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Hash string
	At   time.Time
} {
	mock.lockSetPassword.RLock()
	calls := mock.calls.SetPassword
	mock.lockSetPassword.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, u *domain.User) error {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, u)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
