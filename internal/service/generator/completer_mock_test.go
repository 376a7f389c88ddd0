package generator

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-shlok/internal/provider"
)

var _ provider.Completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req provider.CompletionRequest) (string, error)
	NameFunc     func() string

	calls struct {
		Complete []struct {
			Ctx context.Context
			Req provider.CompletionRequest
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but Completer.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req provider.CompletionRequest
	}{Ctx: ctx, Req: req}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx context.Context
	Req provider.CompletionRequest
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *completerMock) Name() string {
	if mock.NameFunc == nil {
		return "mock"
	}
	return mock.NameFunc()
}
