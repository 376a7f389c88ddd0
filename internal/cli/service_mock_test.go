package cli

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/publication"
)

var _ service = &serviceMock{}

type serviceMock struct {
	PublishForDateFunc func(ctx context.Context, date domain.Date) (*publication.PublishResult, error)
	ForDateFunc        func(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	PruneOrphansFunc   func(ctx context.Context, olderThan time.Duration) (int64, error)
	CurrentDateFunc    func() domain.Date

	calls struct {
		PublishForDate []struct {
			Ctx  context.Context
			Date domain.Date
		}
		ForDate []struct {
			Ctx  context.Context
			Date domain.Date
		}
		PruneOrphans []struct {
			Ctx       context.Context
			OlderThan time.Duration
		}
		CurrentDate []struct {
		}
	}
	lockPublishForDate sync.RWMutex
	lockForDate        sync.RWMutex
	lockPruneOrphans   sync.RWMutex
	lockCurrentDate    sync.RWMutex
}

func (mock *serviceMock) PublishForDate(ctx context.Context, date domain.Date) (*publication.PublishResult, error) {
	if mock.PublishForDateFunc == nil {
		panic("serviceMock.PublishForDateFunc: method is nil but service.PublishForDate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date domain.Date
	}{Ctx: ctx, Date: date}
	mock.lockPublishForDate.Lock()
	mock.calls.PublishForDate = append(mock.calls.PublishForDate, callInfo)
	mock.lockPublishForDate.Unlock()
	return mock.PublishForDateFunc(ctx, date)
}

func (mock *serviceMock) PublishForDateCalls() []struct {
	Ctx  context.Context
	Date domain.Date
} {
	mock.lockPublishForDate.RLock()
	calls := mock.calls.PublishForDate
	mock.lockPublishForDate.RUnlock()
	return calls
}

func (mock *serviceMock) ForDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	if mock.ForDateFunc == nil {
		panic("serviceMock.ForDateFunc: method is nil but service.ForDate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date domain.Date
	}{Ctx: ctx, Date: date}
	mock.lockForDate.Lock()
	mock.calls.ForDate = append(mock.calls.ForDate, callInfo)
	mock.lockForDate.Unlock()
	return mock.ForDateFunc(ctx, date)
}

func (mock *serviceMock) ForDateCalls() []struct {
	Ctx  context.Context
	Date domain.Date
} {
	mock.lockForDate.RLock()
	calls := mock.calls.ForDate
	mock.lockForDate.RUnlock()
	return calls
}

func (mock *serviceMock) PruneOrphans(ctx context.Context, olderThan time.Duration) (int64, error) {
	if mock.PruneOrphansFunc == nil {
		panic("serviceMock.PruneOrphansFunc: method is nil but service.PruneOrphans was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OlderThan time.Duration
	}{Ctx: ctx, OlderThan: olderThan}
	mock.lockPruneOrphans.Lock()
	mock.calls.PruneOrphans = append(mock.calls.PruneOrphans, callInfo)
	mock.lockPruneOrphans.Unlock()
	return mock.PruneOrphansFunc(ctx, olderThan)
}

func (mock *serviceMock) PruneOrphansCalls() []struct {
	Ctx       context.Context
	OlderThan time.Duration
} {
	mock.lockPruneOrphans.RLock()
	calls := mock.calls.PruneOrphans
	mock.lockPruneOrphans.RUnlock()
	return calls
}

func (mock *serviceMock) CurrentDate() domain.Date {
	if mock.CurrentDateFunc == nil {
		panic("serviceMock.CurrentDateFunc: method is nil but service.CurrentDate was just called")
	}
	callInfo := struct {
	}{}
	mock.lockCurrentDate.Lock()
	mock.calls.CurrentDate = append(mock.calls.CurrentDate, callInfo)
	mock.lockCurrentDate.Unlock()
	return mock.CurrentDateFunc()
}

func (mock *serviceMock) CurrentDateCalls() []struct {
} {
	mock.lockCurrentDate.RLock()
	calls := mock.calls.CurrentDate
	mock.lockCurrentDate.RUnlock()
	return calls
}
