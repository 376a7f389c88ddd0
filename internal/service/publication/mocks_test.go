package publication

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/balancer"
	"github.com/heartmarshall/daily-shlok/internal/service/generator"
	"github.com/heartmarshall/daily-shlok/internal/service/uniqueness"
)

var _ shlokRepo = &shlokRepoMock{}

type shlokRepoMock struct {
	CreateFunc        func(ctx context.Context, s *domain.Shlok) (*domain.Shlok, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteOrphansFunc func(ctx context.Context, insertedBefore time.Time) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Shlok
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteOrphans []struct {
			Ctx           context.Context
			InsertedBefore time.Time
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteOrphans sync.RWMutex
}

func (mock *shlokRepoMock) Create(ctx context.Context, s *domain.Shlok) (*domain.Shlok, error) {
	if mock.CreateFunc == nil {
		panic("shlokRepoMock.CreateFunc: method is nil but shlokRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Shlok
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *shlokRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Shlok
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *shlokRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("shlokRepoMock.DeleteFunc: method is nil but shlokRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *shlokRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *shlokRepoMock) DeleteOrphans(ctx context.Context, insertedBefore time.Time) (int64, error) {
	if mock.DeleteOrphansFunc == nil {
		panic("shlokRepoMock.DeleteOrphansFunc: method is nil but shlokRepo.DeleteOrphans was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		InsertedBefore time.Time
	}{Ctx: ctx, InsertedBefore: insertedBefore}
	mock.lockDeleteOrphans.Lock()
	mock.calls.DeleteOrphans = append(mock.calls.DeleteOrphans, callInfo)
	mock.lockDeleteOrphans.Unlock()
	return mock.DeleteOrphansFunc(ctx, insertedBefore)
}

func (mock *shlokRepoMock) DeleteOrphansCalls() []struct {
	Ctx           context.Context
	InsertedBefore time.Time
} {
	mock.lockDeleteOrphans.RLock()
	calls := mock.calls.DeleteOrphans
	mock.lockDeleteOrphans.RUnlock()
	return calls
}

var _ publicationRepo = &publicationRepoMock{}

type publicationRepoMock struct {
	GetByDateFunc func(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	LinkFunc      func(ctx context.Context, date domain.Date, shlokID uuid.UUID) (*domain.DailyShlok, error)
	ListFunc      func(ctx context.Context, onOrBefore domain.Date, limit int, offset int) ([]domain.PublishedShlok, error)

	calls struct {
		GetByDate []struct {
			Ctx  context.Context
			Date domain.Date
		}
		Link []struct {
			Ctx     context.Context
			Date    domain.Date
			ShlokID uuid.UUID
		}
		List []struct {
			Ctx        context.Context
			OnOrBefore domain.Date
			Limit      int
			Offset     int
		}
	}
	lockGetByDate sync.RWMutex
	lockLink      sync.RWMutex
	lockList      sync.RWMutex
}

func (mock *publicationRepoMock) GetByDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	if mock.GetByDateFunc == nil {
		panic("publicationRepoMock.GetByDateFunc: method is nil but publicationRepo.GetByDate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date domain.Date
	}{Ctx: ctx, Date: date}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, callInfo)
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, date)
}

func (mock *publicationRepoMock) GetByDateCalls() []struct {
	Ctx  context.Context
	Date domain.Date
} {
	mock.lockGetByDate.RLock()
	calls := mock.calls.GetByDate
	mock.lockGetByDate.RUnlock()
	return calls
}

func (mock *publicationRepoMock) Link(ctx context.Context, date domain.Date, shlokID uuid.UUID) (*domain.DailyShlok, error) {
	if mock.LinkFunc == nil {
		panic("publicationRepoMock.LinkFunc: method is nil but publicationRepo.Link was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Date    domain.Date
		ShlokID uuid.UUID
	}{Ctx: ctx, Date: date, ShlokID: shlokID}
	mock.lockLink.Lock()
	mock.calls.Link = append(mock.calls.Link, callInfo)
	mock.lockLink.Unlock()
	return mock.LinkFunc(ctx, date, shlokID)
}

func (mock *publicationRepoMock) LinkCalls() []struct {
	Ctx     context.Context
	Date    domain.Date
	ShlokID uuid.UUID
} {
	mock.lockLink.RLock()
	calls := mock.calls.Link
	mock.lockLink.RUnlock()
	return calls
}

func (mock *publicationRepoMock) List(ctx context.Context, onOrBefore domain.Date, limit int, offset int) ([]domain.PublishedShlok, error) {
	if mock.ListFunc == nil {
		panic("publicationRepoMock.ListFunc: method is nil but publicationRepo.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OnOrBefore domain.Date
		Limit      int
		Offset     int
	}{Ctx: ctx, OnOrBefore: onOrBefore, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, onOrBefore, limit, offset)
}

func (mock *publicationRepoMock) ListCalls() []struct {
	Ctx        context.Context
	OnOrBefore domain.Date
	Limit      int
	Offset     int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ contentGenerator = &contentGeneratorMock{}

type contentGeneratorMock struct {
	GenerateFunc func(ctx context.Context, req generator.Request) (generator.Result, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			Req generator.Request
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *contentGeneratorMock) Generate(ctx context.Context, req generator.Request) (generator.Result, error) {
	if mock.GenerateFunc == nil {
		panic("contentGeneratorMock.GenerateFunc: method is nil but contentGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req generator.Request
	}{Ctx: ctx, Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *contentGeneratorMock) GenerateCalls() []struct {
	Ctx context.Context
	Req generator.Request
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ uniquenessChecker = &uniquenessCheckerMock{}

type uniquenessCheckerMock struct {
	CheckFunc func(ctx context.Context, candidate string, sampleSize int) uniqueness.Verdict

	calls struct {
		Check []struct {
			Ctx        context.Context
			Candidate  string
			SampleSize int
		}
	}
	lockCheck sync.RWMutex
}

func (mock *uniquenessCheckerMock) Check(ctx context.Context, candidate string, sampleSize int) uniqueness.Verdict {
	if mock.CheckFunc == nil {
		panic("uniquenessCheckerMock.CheckFunc: method is nil but uniquenessChecker.Check was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Candidate  string
		SampleSize int
	}{Ctx: ctx, Candidate: candidate, SampleSize: sampleSize}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, candidate, sampleSize)
}

func (mock *uniquenessCheckerMock) CheckCalls() []struct {
	Ctx        context.Context
	Candidate  string
	SampleSize int
} {
	mock.lockCheck.RLock()
	calls := mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}

var _ categoryBalancer = &categoryBalancerMock{}

type categoryBalancerMock struct {
	LeastUsedFunc func(ctx context.Context, sampleSize int) balancer.Choice

	calls struct {
		LeastUsed []struct {
			Ctx        context.Context
			SampleSize int
		}
	}
	lockLeastUsed sync.RWMutex
}

func (mock *categoryBalancerMock) LeastUsed(ctx context.Context, sampleSize int) balancer.Choice {
	if mock.LeastUsedFunc == nil {
		panic("categoryBalancerMock.LeastUsedFunc: method is nil but categoryBalancer.LeastUsed was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SampleSize int
	}{Ctx: ctx, SampleSize: sampleSize}
	mock.lockLeastUsed.Lock()
	mock.calls.LeastUsed = append(mock.calls.LeastUsed, callInfo)
	mock.lockLeastUsed.Unlock()
	return mock.LeastUsedFunc(ctx, sampleSize)
}

func (mock *categoryBalancerMock) LeastUsedCalls() []struct {
	Ctx        context.Context
	SampleSize int
} {
	mock.lockLeastUsed.RLock()
	calls := mock.calls.LeastUsed
	mock.lockLeastUsed.RUnlock()
	return calls
}

var _ shlokCache = &shlokCacheMock{}

type shlokCacheMock struct {
	GetFunc func(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	SetFunc func(ctx context.Context, p *domain.PublishedShlok) error

	calls struct {
		Get []struct {
			Ctx  context.Context
			Date domain.Date
		}
		Set []struct {
			Ctx context.Context
			P   *domain.PublishedShlok
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *shlokCacheMock) Get(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error) {
	if mock.GetFunc == nil {
		panic("shlokCacheMock.GetFunc: method is nil but shlokCache.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date domain.Date
	}{Ctx: ctx, Date: date}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, date)
}

func (mock *shlokCacheMock) GetCalls() []struct {
	Ctx  context.Context
	Date domain.Date
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *shlokCacheMock) Set(ctx context.Context, p *domain.PublishedShlok) error {
	if mock.SetFunc == nil {
		panic("shlokCacheMock.SetFunc: method is nil but shlokCache.Set was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PublishedShlok
	}{Ctx: ctx, P: p}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, p)
}

func (mock *shlokCacheMock) SetCalls() []struct {
	Ctx context.Context
	P   *domain.PublishedShlok
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
