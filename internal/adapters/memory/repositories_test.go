package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

func TestTransactionRepository(t *testing.T) {
	t.Parallel()
	repo := NewTransactionRepository()
	ctx := context.Background()

	record := domain.NewTransactionRecord(1, 7, domain.TransactionDeposit, domain.AmountFromFractions(10000))
	if err := repo.Record(ctx, record); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := repo.Record(ctx, record); !errors.Is(err, domain.ErrDuplicateTransaction) {
		t.Fatalf("duplicate Record error = %v, want ErrDuplicateTransaction", err)
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != record {
		t.Fatalf("Get = %+v, want %+v", got, record)
	}
	if _, err := repo.Get(ctx, 2); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("Get missing error = %v, want ErrTransactionNotFound", err)
	}

	record.State = domain.DisputeStateDisputed
	if err := repo.Update(ctx, record); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.State != domain.DisputeStateDisputed {
		t.Fatalf("state after update = %q, want disputed", got.State)
	}

	missing := domain.NewTransactionRecord(9, 7, domain.TransactionDeposit, domain.AmountFromFractions(1))
	if err := repo.Update(ctx, missing); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("Update missing error = %v, want ErrTransactionNotFound", err)
	}
}

func TestAccountRepositoryLazyCreation(t *testing.T) {
	t.Parallel()
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Get(ctx, 1); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("Get before creation error = %v, want ErrAccountNotFound", err)
	}

	account, err := repo.GetOrCreate(ctx, 1)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if account.Client != 1 || !account.Available.IsZero() || !account.Held.IsZero() || account.Locked {
		t.Fatalf("fresh account = %+v", account)
	}

	account.Available = domain.AmountFromFractions(5000)
	if err := repo.Update(ctx, account); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, err := repo.GetOrCreate(ctx, 1)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if again.Available.Fractions() != 5000 {
		t.Fatalf("GetOrCreate returned stale account: %+v", again)
	}

	if err := repo.Update(ctx, domain.NewAccount(4)); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("Update missing error = %v, want ErrAccountNotFound", err)
	}
}

func TestAccountRepositoryListOrder(t *testing.T) {
	t.Parallel()
	repo := NewAccountRepository()
	ctx := context.Background()

	for _, client := range []domain.ClientID{42, 3, 17} {
		if _, err := repo.GetOrCreate(ctx, client); err != nil {
			t.Fatalf("GetOrCreate(%d): %v", client, err)
		}
	}
	// Re-referencing an existing account must not move it.
	if _, err := repo.GetOrCreate(ctx, 3); err != nil {
		t.Fatalf("GetOrCreate(3): %v", err)
	}

	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("List returned %d accounts, want 3", len(accounts))
	}
	for i, want := range []domain.ClientID{42, 3, 17} {
		if accounts[i].Client != want {
			t.Fatalf("accounts[%d].Client = %d, want %d", i, accounts[i].Client, want)
		}
	}
}
