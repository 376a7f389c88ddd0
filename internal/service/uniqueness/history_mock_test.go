package uniqueness

import (
	"context"
	"sync"
)

var _ historySource = &historySourceMock{}

type historySourceMock struct {
	RecentTextsFunc func(ctx context.Context, n int) ([]string, error)

	calls struct {
		RecentTexts []struct {
			Ctx context.Context
			N   int
		}
	}
	lockRecentTexts sync.RWMutex
}

func (mock *historySourceMock) RecentTexts(ctx context.Context, n int) ([]string, error) {
	if mock.RecentTextsFunc == nil {
		panic("historySourceMock.RecentTextsFunc: method is nil but historySource.RecentTexts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   int
	}{Ctx: ctx, N: n}
	mock.lockRecentTexts.Lock()
	mock.calls.RecentTexts = append(mock.calls.RecentTexts, callInfo)
	mock.lockRecentTexts.Unlock()
	return mock.RecentTextsFunc(ctx, n)
}

func (mock *historySourceMock) RecentTextsCalls() []struct {
	Ctx context.Context
	N   int
} {
	mock.lockRecentTexts.RLock()
	calls := mock.calls.RecentTexts
	mock.lockRecentTexts.RUnlock()
	return calls
}
