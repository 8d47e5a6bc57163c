package ports

import (
	"context"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

type TransactionRepository interface {
	// Record inserts a new transaction record. It fails with
	// domain.ErrDuplicateTransaction if the id is already present.
	Record(ctx context.Context, row domain.TransactionRecord) error
	// Get returns the record for the id or domain.ErrTransactionNotFound.
	Get(ctx context.Context, id domain.TransactionID) (domain.TransactionRecord, error)
	// Update replaces an existing record.
	Update(ctx context.Context, row domain.TransactionRecord) error
}

type AccountRepository interface {
	// GetOrCreate returns the account for the client, creating it with
	// zeroed balances on first reference.
	GetOrCreate(ctx context.Context, client domain.ClientID) (domain.Account, error)
	// Get returns the account for the client or domain.ErrAccountNotFound.
	Get(ctx context.Context, client domain.ClientID) (domain.Account, error)
	// Update replaces an existing account.
	Update(ctx context.Context, row domain.Account) error
	// List returns all known accounts in creation order.
	List(ctx context.Context) ([]domain.Account, error)
}
