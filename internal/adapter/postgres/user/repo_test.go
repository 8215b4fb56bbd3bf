package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/amoura-app/amoura-backend/internal/adapter/postgres/user"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

func newUser(email string) *domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$2a$04$fakehash",
		Role:         domain.RoleUser,
		Credits:      2,
		Quota:        5,
		TotalUsage:   0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepo_CreateAndGet(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	repo := userrepo.New(db)
	ctx := context.Background()

	u := newUser("create-get@example.com")

	created, err := repo.Create(ctx, u)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != u.ID {
		t.Errorf("ID = %v, want %v", created.ID, u.ID)
	}
	if created.Credits != 2 || created.Quota != 5 {
		t.Errorf("balances = (%d, %d), want (2, 5)", created.Credits, created.Quota)
	}

	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != u.Email {
		t.Errorf("Email = %q, want %q", byID.Email, u.Email)
	}

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("GetByEmail ID = %v, want %v", byEmail.ID, u.ID)
	}
}

func TestRepo_CreateDuplicateEmail(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	repo := userrepo.New(db)
	ctx := context.Background()

	u := newUser("dup@example.com")
	if _, err := repo.Create(ctx, u); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	dup := newUser("dup@example.com")
	_, err := repo.Create(ctx, dup)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_GetNotFound(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	repo := userrepo.New(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_SetCredits(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	repo := userrepo.New(db)
	ctx := context.Background()

	u := newUser("credits@example.com")
	u.Credits = 0
	if _, err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Repeated absolute sets always land on the same value.
	for i := 0; i < 3; i++ {
		if err := repo.SetCredits(ctx, u.ID, 2); err != nil {
			t.Fatalf("SetCredits call %d: %v", i+1, err)
		}
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Credits != 2 {
		t.Errorf("Credits = %d, want 2", got.Credits)
	}
}

func TestRepo_SetCreditsNotFound(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	repo := userrepo.New(db)

	err := repo.SetCredits(context.Background(), uuid.New(), 2)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_BalanceShifts(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	repo := userrepo.New(db)
	ctx := context.Background()

	u := newUser("balance@example.com")
	u.Quota = 4
	u.TotalUsage = 1
	if _, err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.AddQuota(ctx, u.ID, 1); err != nil {
		t.Fatalf("AddQuota: %v", err)
	}
	if err := repo.AddTotalUsage(ctx, u.ID, -1); err != nil {
		t.Fatalf("AddTotalUsage: %v", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Quota != 5 {
		t.Errorf("Quota = %d, want 5", got.Quota)
	}
	if got.TotalUsage != 0 {
		t.Errorf("TotalUsage = %d, want 0", got.TotalUsage)
	}
}

func TestRepo_BalanceShiftsInTx(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	repo := userrepo.New(db)
	tm := postgres.NewTxManager(db)
	ctx := context.Background()

	u := newUser("tx-balance@example.com")
	u.Quota = 3
	u.TotalUsage = 2
	if _, err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A failing second update must roll back the first.
	sentinel := errors.New("abort")
	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.AddQuota(ctx, u.ID, 1); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Quota != 3 || got.TotalUsage != 2 {
		t.Errorf("balances = (%d, %d) after rollback, want (3, 2)", got.Quota, got.TotalUsage)
	}

	// The committed pair applies both shifts.
	err = tm.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.AddQuota(ctx, u.ID, 1); err != nil {
			return err
		}
		return repo.AddTotalUsage(ctx, u.ID, -1)
	})
	if err != nil {
		t.Fatalf("RunInTx: %v", err)
	}

	got, err = repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Quota != 4 || got.TotalUsage != 1 {
		t.Errorf("balances = (%d, %d) after commit, want (4, 1)", got.Quota, got.TotalUsage)
	}
}
