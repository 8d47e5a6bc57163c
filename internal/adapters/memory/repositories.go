// Package memory provides in-process repository implementations backed by
// maps. Account listing preserves creation order.
package memory

import (
	"context"
	"sync"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

// Repositories bundles the in-memory stores behind a single constructor.
type Repositories struct {
	Transactions *TransactionRepository
	Accounts     *AccountRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Transactions: NewTransactionRepository(),
		Accounts:     NewAccountRepository(),
	}
}

type TransactionRepository struct {
	mu      sync.RWMutex
	records map[domain.TransactionID]domain.TransactionRecord
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{records: map[domain.TransactionID]domain.TransactionRecord{}}
}

func (r *TransactionRepository) Record(_ context.Context, record domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.ID]; exists {
		return domain.ErrDuplicateTransaction
	}
	r.records[record.ID] = record
	return nil
}

func (r *TransactionRepository) Get(_ context.Context, id domain.TransactionID) (domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return domain.TransactionRecord{}, domain.ErrTransactionNotFound
	}
	return record, nil
}

func (r *TransactionRepository) Update(_ context.Context, record domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	r.records[record.ID] = record
	return nil
}

type AccountRepository struct {
	mu      sync.RWMutex
	records map[domain.ClientID]domain.Account
	order   []domain.ClientID
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{records: map[domain.ClientID]domain.Account{}}
}

// GetOrCreate returns the account for client, creating an empty unlocked
// account on first reference.
func (r *AccountRepository) GetOrCreate(_ context.Context, client domain.ClientID) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.records[client]
	if !ok {
		account = domain.NewAccount(client)
		r.records[client] = account
		r.order = append(r.order, client)
	}
	return account, nil
}

func (r *AccountRepository) Get(_ context.Context, client domain.ClientID) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.records[client]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[account.Client]; !ok {
		return domain.ErrAccountNotFound
	}
	r.records[account.Client] = account
	return nil
}

// List returns all accounts in creation order.
func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	accounts := make([]domain.Account, 0, len(r.order))
	for _, client := range r.order {
		accounts = append(accounts, r.records[client])
	}
	return accounts, nil
}
