package balancer

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

var _ usageSource = &usageSourceMock{}

type usageSourceMock struct {
	CategoryCountsFunc func(ctx context.Context, n int) (map[domain.Category]int, error)

	calls struct {
		CategoryCounts []struct {
			Ctx context.Context
			N   int
		}
	}
	lockCategoryCounts sync.RWMutex
}

func (mock *usageSourceMock) CategoryCounts(ctx context.Context, n int) (map[domain.Category]int, error) {
	if mock.CategoryCountsFunc == nil {
		panic("usageSourceMock.CategoryCountsFunc: method is nil but usageSource.CategoryCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   int
	}{Ctx: ctx, N: n}
	mock.lockCategoryCounts.Lock()
	mock.calls.CategoryCounts = append(mock.calls.CategoryCounts, callInfo)
	mock.lockCategoryCounts.Unlock()
	return mock.CategoryCountsFunc(ctx, n)
}

func (mock *usageSourceMock) CategoryCountsCalls() []struct {
	Ctx context.Context
	N   int
} {
	mock.lockCategoryCounts.RLock()
	calls := mock.calls.CategoryCounts
	mock.lockCategoryCounts.RUnlock()
	return calls
}
