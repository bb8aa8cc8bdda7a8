package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/labsample-backend/internal/domain"
	"github.com/heartmarshall/labsample-backend/internal/service/workflow"
)

var _ workflowService = &workflowServiceMock{}

type workflowServiceMock struct {
	ApplyActionFunc func(ctx context.Context, number string, action domain.WorkflowAction) (*workflow.Transition, error)

	calls struct {
		ApplyAction []struct {
			Ctx    context.Context
			Number string
			Action domain.WorkflowAction
		}
	}
	lockApplyAction sync.RWMutex
}

func (mock *workflowServiceMock) ApplyAction(ctx context.Context, number string, action domain.WorkflowAction) (*workflow.Transition, error) {
	if mock.ApplyActionFunc == nil {
		panic("workflowServiceMock.ApplyActionFunc: method is nil but workflowService.ApplyAction was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
		Action domain.WorkflowAction
	}{
		Ctx:    ctx,
		Number: number,
		Action: action,
	}
	mock.lockApplyAction.Lock()
	mock.calls.ApplyAction = append(mock.calls.ApplyAction, callInfo)
	mock.lockApplyAction.Unlock()
	return mock.ApplyActionFunc(ctx, number, action)
}

func (mock *workflowServiceMock) ApplyActionCalls() []struct {
	Ctx    context.Context
	Number string
	Action domain.WorkflowAction
} {
	mock.lockApplyAction.RLock()
	calls := mock.calls.ApplyAction
	mock.lockApplyAction.RUnlock()
	return calls
}
