package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetCreditsFunc    func(ctx context.Context, userID uuid.UUID, credits int) error
	AddQuotaFunc      func(ctx context.Context, userID uuid.UUID, delta int) error
	AddTotalUsageFunc func(ctx context.Context, userID uuid.UUID, delta int) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetCredits []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			Credits int
		}
		AddQuota []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Delta  int
		}
		AddTotalUsage []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Delta  int
		}
	}
	lockGetByID       sync.RWMutex
	lockSetCredits    sync.RWMutex
	lockAddQuota      sync.RWMutex
	lockAddTotalUsage sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) SetCredits(ctx context.Context, userID uuid.UUID, credits int) error {
	if mock.SetCreditsFunc == nil {
		panic("userRepoMock.SetCreditsFunc: method is nil but userRepo.SetCredits was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Credits int
	}{Ctx: ctx, UserID: userID, Credits: credits}
	mock.lockSetCredits.Lock()
	mock.calls.SetCredits = append(mock.calls.SetCredits, callInfo)
	mock.lockSetCredits.Unlock()
	return mock.SetCreditsFunc(ctx, userID, credits)
}

func (mock *userRepoMock) SetCreditsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	Credits int
} {
	mock.lockSetCredits.RLock()
	calls := mock.calls.SetCredits
	mock.lockSetCredits.RUnlock()
	return calls
}

func (mock *userRepoMock) AddQuota(ctx context.Context, userID uuid.UUID, delta int) error {
	if mock.AddQuotaFunc == nil {
		panic("userRepoMock.AddQuotaFunc: method is nil but userRepo.AddQuota was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Delta  int
	}{Ctx: ctx, UserID: userID, Delta: delta}
	mock.lockAddQuota.Lock()
	mock.calls.AddQuota = append(mock.calls.AddQuota, callInfo)
	mock.lockAddQuota.Unlock()
	return mock.AddQuotaFunc(ctx, userID, delta)
}

func (mock *userRepoMock) AddQuotaCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Delta  int
} {
	mock.lockAddQuota.RLock()
	calls := mock.calls.AddQuota
	mock.lockAddQuota.RUnlock()
	return calls
}

func (mock *userRepoMock) AddTotalUsage(ctx context.Context, userID uuid.UUID, delta int) error {
	if mock.AddTotalUsageFunc == nil {
		panic("userRepoMock.AddTotalUsageFunc: method is nil but userRepo.AddTotalUsage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Delta  int
	}{Ctx: ctx, UserID: userID, Delta: delta}
	mock.lockAddTotalUsage.Lock()
	mock.calls.AddTotalUsage = append(mock.calls.AddTotalUsage, callInfo)
	mock.lockAddTotalUsage.Unlock()
	return mock.AddTotalUsageFunc(ctx, userID, delta)
}

func (mock *userRepoMock) AddTotalUsageCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Delta  int
} {
	mock.lockAddTotalUsage.RLock()
	calls := mock.calls.AddTotalUsage
	mock.lockAddTotalUsage.RUnlock()
	return calls
}
