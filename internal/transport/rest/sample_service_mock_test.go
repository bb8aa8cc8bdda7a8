package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/labsample-backend/internal/domain"
	"github.com/heartmarshall/labsample-backend/internal/service/sample"
)

var _ sampleService = &sampleServiceMock{}

type sampleServiceMock struct {
	CreateFunc func(ctx context.Context, in sample.CreateInput) (*domain.Sample, error)
	DeleteFunc func(ctx context.Context, number string) error
	DetailFunc func(ctx context.Context, number string) (*sample.Detail, error)
	ExportFunc func(ctx context.Context, in sample.ListInput) ([]domain.Sample, int, error)
	GetFunc    func(ctx context.Context, number string) (*domain.Sample, error)
	ListFunc   func(ctx context.Context, in sample.ListInput) ([]domain.Sample, int, error)
	UpdateFunc func(ctx context.Context, in sample.UpdateInput) (*domain.Sample, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  sample.CreateInput
		}
		Delete []struct {
			Ctx    context.Context
			Number string
		}
		Detail []struct {
			Ctx    context.Context
			Number string
		}
		Export []struct {
			Ctx context.Context
			In  sample.ListInput
		}
		Get []struct {
			Ctx    context.Context
			Number string
		}
		List []struct {
			Ctx context.Context
			In  sample.ListInput
		}
		Update []struct {
			Ctx context.Context
			In  sample.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockDetail sync.RWMutex
	lockExport sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *sampleServiceMock) Create(ctx context.Context, in sample.CreateInput) (*domain.Sample, error) {
	if mock.CreateFunc == nil {
		panic("sampleServiceMock.CreateFunc: method is nil but sampleService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  sample.CreateInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *sampleServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  sample.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sampleServiceMock) Delete(ctx context.Context, number string) error {
	if mock.DeleteFunc == nil {
		panic("sampleServiceMock.DeleteFunc: method is nil but sampleService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
	}{
		Ctx:    ctx,
		Number: number,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, number)
}

func (mock *sampleServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	Number string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sampleServiceMock) Detail(ctx context.Context, number string) (*sample.Detail, error) {
	if mock.DetailFunc == nil {
		panic("sampleServiceMock.DetailFunc: method is nil but sampleService.Detail was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
	}{
		Ctx:    ctx,
		Number: number,
	}
	mock.lockDetail.Lock()
	mock.calls.Detail = append(mock.calls.Detail, callInfo)
	mock.lockDetail.Unlock()
	return mock.DetailFunc(ctx, number)
}

func (mock *sampleServiceMock) DetailCalls() []struct {
	Ctx    context.Context
	Number string
} {
	mock.lockDetail.RLock()
	calls := mock.calls.Detail
	mock.lockDetail.RUnlock()
	return calls
}

func (mock *sampleServiceMock) Export(ctx context.Context, in sample.ListInput) ([]domain.Sample, int, error) {
	if mock.ExportFunc == nil {
		panic("sampleServiceMock.ExportFunc: method is nil but sampleService.Export was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  sample.ListInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, in)
}

func (mock *sampleServiceMock) ExportCalls() []struct {
	Ctx context.Context
	In  sample.ListInput
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}

func (mock *sampleServiceMock) Get(ctx context.Context, number string) (*domain.Sample, error) {
	if mock.GetFunc == nil {
		panic("sampleServiceMock.GetFunc: method is nil but sampleService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
	}{
		Ctx:    ctx,
		Number: number,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, number)
}

func (mock *sampleServiceMock) GetCalls() []struct {
	Ctx    context.Context
	Number string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sampleServiceMock) List(ctx context.Context, in sample.ListInput) ([]domain.Sample, int, error) {
	if mock.ListFunc == nil {
		panic("sampleServiceMock.ListFunc: method is nil but sampleService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  sample.ListInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *sampleServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  sample.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sampleServiceMock) Update(ctx context.Context, in sample.UpdateInput) (*domain.Sample, error) {
	if mock.UpdateFunc == nil {
		panic("sampleServiceMock.UpdateFunc: method is nil but sampleService.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  sample.UpdateInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, in)
}

func (mock *sampleServiceMock) UpdateCalls() []struct {
	Ctx context.Context
	In  sample.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
