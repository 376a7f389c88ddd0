package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ client = &clientMock{}

type clientMock struct {
	GetFunc func(ctx context.Context, key string) *redis.StringCmd
	SetFunc func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Set []struct {
			Ctx        context.Context
			Key        string
			Value      any
			Expiration time.Duration
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *clientMock) Get(ctx context.Context, key string) *redis.StringCmd {
	if mock.GetFunc == nil {
		panic("clientMock.GetFunc: method is nil but client.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *clientMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *clientMock) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if mock.SetFunc == nil {
		panic("clientMock.SetFunc: method is nil but client.Set was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Key        string
		Value      any
		Expiration time.Duration
	}{Ctx: ctx, Key: key, Value: value, Expiration: expiration}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, value, expiration)
}

func (mock *clientMock) SetCalls() []struct {
	Ctx        context.Context
	Key        string
	Value      any
	Expiration time.Duration
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
