package billing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

var _ transactionRepo = &transactionRepoMock{}

type transactionRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *transactionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	if mock.ListByUserFunc == nil {
		panic("transactionRepoMock.ListByUserFunc: method is nil but transactionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *transactionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
