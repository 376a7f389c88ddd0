package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/publication"
)

var _ publicationService = &publicationServiceMock{}

type publicationServiceMock struct {
	TodayFunc          func(ctx context.Context) (*domain.PublishedShlok, error)
	ForDateFunc        func(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	HistoryFunc        func(ctx context.Context, limit int, offset int) (*publication.HistoryPage, error)
	PublishForDateFunc func(ctx context.Context, date domain.Date) (*publication.PublishResult, error)
	CurrentDateFunc    func() domain.Date

	calls struct {
		Today []struct {
			Ctx context.Context
		}
		ForDate []struct {
			Ctx  context.Context
			Date domain.Date
		}
		History []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		PublishForDate []struct {
			Ctx  context.Context
			Date domain.Date
		}
		CurrentDate []struct {
		}
	}
	lockToday          sync.RWMutex
	lockForDate        sync.RWMutex
	lockHistory        sync.RWMutex
	lockPublishForDate sync.RWMutex
	lockCurrentDate    sync.RWMutex
}

func (mock *publicationServiceMock) Today(ctx context.Context) (*domain.PublishedShlok, error) {
	if mock.TodayFunc == nil {
		panic("publicationServiceMock.TodayFunc: method is nil but publicationService.Today was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockToday.Lock()
	mock.calls.Today = append(mock.calls.Today, callInfo)
	mock.lockToday.Unlock()
	return mock.TodayFunc(ctx)
}

func (mock *publicationServiceMock) TodayCalls() []struct {
	Ctx context.Context
} {
	mock.lockToday.RLock()
	calls := mock.calls.Today
	mock.lockToday.RUnlock()
	return calls
}

func (mock *publicationServiceMock) ForDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	if mock.ForDateFunc == nil {
		panic("publicationServiceMock.ForDateFunc: method is nil but publicationService.ForDate was just called")
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

func (mock *publicationServiceMock) ForDateCalls() []struct {
	Ctx  context.Context
	Date domain.Date
} {
	mock.lockForDate.RLock()
	calls := mock.calls.ForDate
	mock.lockForDate.RUnlock()
	return calls
}

func (mock *publicationServiceMock) History(ctx context.Context, limit int, offset int) (*publication.HistoryPage, error) {
	if mock.HistoryFunc == nil {
		panic("publicationServiceMock.HistoryFunc: method is nil but publicationService.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, limit, offset)
}

func (mock *publicationServiceMock) HistoryCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *publicationServiceMock) PublishForDate(ctx context.Context, date domain.Date) (*publication.PublishResult, error) {
	if mock.PublishForDateFunc == nil {
		panic("publicationServiceMock.PublishForDateFunc: method is nil but publicationService.PublishForDate was just called")
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

func (mock *publicationServiceMock) PublishForDateCalls() []struct {
	Ctx  context.Context
	Date domain.Date
} {
	mock.lockPublishForDate.RLock()
	calls := mock.calls.PublishForDate
	mock.lockPublishForDate.RUnlock()
	return calls
}

func (mock *publicationServiceMock) CurrentDate() domain.Date {
	if mock.CurrentDateFunc == nil {
		panic("publicationServiceMock.CurrentDateFunc: method is nil but publicationService.CurrentDate was just called")
	}
	callInfo := struct {
	}{}
	mock.lockCurrentDate.Lock()
	mock.calls.CurrentDate = append(mock.calls.CurrentDate, callInfo)
	mock.lockCurrentDate.Unlock()
	return mock.CurrentDateFunc()
}

func (mock *publicationServiceMock) CurrentDateCalls() []struct {
} {
	mock.lockCurrentDate.RLock()
	calls := mock.calls.CurrentDate
	mock.lockCurrentDate.RUnlock()
	return calls
}
