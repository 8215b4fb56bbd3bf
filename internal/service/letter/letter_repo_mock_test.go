package letter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

var _ letterRepo = &letterRepoMock{}

type letterRepoMock struct {
	CreateFunc     func(ctx context.Context, l *domain.Letter) (*domain.Letter, error)
	GetByIDFunc    func(ctx context.Context, userID, letterID uuid.UUID) (*domain.Letter, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Letter, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.Letter
		}
		GetByID []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			LetterID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *letterRepoMock) Create(ctx context.Context, l *domain.Letter) (*domain.Letter, error) {
	if mock.CreateFunc == nil {
		panic("letterRepoMock.CreateFunc: method is nil but letterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Letter
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *letterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Letter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *letterRepoMock) GetByID(ctx context.Context, userID, letterID uuid.UUID) (*domain.Letter, error) {
	if mock.GetByIDFunc == nil {
		panic("letterRepoMock.GetByIDFunc: method is nil but letterRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		LetterID uuid.UUID
	}{Ctx: ctx, UserID: userID, LetterID: letterID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, letterID)
}

func (mock *letterRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	LetterID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *letterRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Letter, int, error) {
	if mock.ListByUserFunc == nil {
		panic("letterRepoMock.ListByUserFunc: method is nil but letterRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *letterRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
