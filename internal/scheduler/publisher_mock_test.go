package scheduler

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-shlok/internal/service/publication"
)

var _ publisher = &publisherMock{}

type publisherMock struct {
	ShouldPublishTodayFunc func(ctx context.Context) bool
	PublishTodayFunc       func(ctx context.Context) (*publication.PublishResult, error)

	calls struct {
		ShouldPublishToday []struct {
			Ctx context.Context
		}
		PublishToday []struct {
			Ctx context.Context
		}
	}
	lockShouldPublishToday sync.RWMutex
	lockPublishToday       sync.RWMutex
}

func (mock *publisherMock) ShouldPublishToday(ctx context.Context) bool {
	if mock.ShouldPublishTodayFunc == nil {
		panic("publisherMock.ShouldPublishTodayFunc: method is nil but publisher.ShouldPublishToday was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockShouldPublishToday.Lock()
	mock.calls.ShouldPublishToday = append(mock.calls.ShouldPublishToday, callInfo)
	mock.lockShouldPublishToday.Unlock()
	return mock.ShouldPublishTodayFunc(ctx)
}

func (mock *publisherMock) ShouldPublishTodayCalls() []struct {
	Ctx context.Context
} {
	mock.lockShouldPublishToday.RLock()
	calls := mock.calls.ShouldPublishToday
	mock.lockShouldPublishToday.RUnlock()
	return calls
}

func (mock *publisherMock) PublishToday(ctx context.Context) (*publication.PublishResult, error) {
	if mock.PublishTodayFunc == nil {
		panic("publisherMock.PublishTodayFunc: method is nil but publisher.PublishToday was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPublishToday.Lock()
	mock.calls.PublishToday = append(mock.calls.PublishToday, callInfo)
	mock.lockPublishToday.Unlock()
	return mock.PublishTodayFunc(ctx)
}

func (mock *publisherMock) PublishTodayCalls() []struct {
	Ctx context.Context
} {
	mock.lockPublishToday.RLock()
	calls := mock.calls.PublishToday
	mock.lockPublishToday.RUnlock()
	return calls
}
