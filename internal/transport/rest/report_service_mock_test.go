package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	BuildFunc  func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error)
	ExportFunc func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error)

	calls struct {
		Build []struct {
			Ctx context.Context
			Req domain.ReportRequest
		}
		Export []struct {
			Ctx context.Context
			Req domain.ReportRequest
		}
	}
	lockBuild  sync.RWMutex
	lockExport sync.RWMutex
}

func (mock *reportServiceMock) Build(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	if mock.BuildFunc == nil {
		panic("reportServiceMock.BuildFunc: method is nil but reportService.Build was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.ReportRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockBuild.Lock()
	mock.calls.Build = append(mock.calls.Build, callInfo)
	mock.lockBuild.Unlock()
	return mock.BuildFunc(ctx, req)
}

func (mock *reportServiceMock) BuildCalls() []struct {
	Ctx context.Context
	Req domain.ReportRequest
} {
	mock.lockBuild.RLock()
	calls := mock.calls.Build
	mock.lockBuild.RUnlock()
	return calls
}

func (mock *reportServiceMock) Export(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	if mock.ExportFunc == nil {
		panic("reportServiceMock.ExportFunc: method is nil but reportService.Export was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.ReportRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, req)
}

func (mock *reportServiceMock) ExportCalls() []struct {
	Ctx context.Context
	Req domain.ReportRequest
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}
