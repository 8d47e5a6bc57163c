package application

import (
	"context"
	"errors"
	"sort"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

// Submit validates and applies one command. A returned error means the
// command was rejected with no effect on the ledger or the accounts; it is
// never fatal to the stream.
func (s *Service) Submit(ctx context.Context, cmd domain.Command) error {
	switch cmd.Type {
	case domain.CommandDeposit:
		if cmd.Amount == nil {
			return s.reject(ctx, cmd.Type, cmd.Client, cmd.Tx, domain.ErrMalformedCommand)
		}
		return s.Deposit(ctx, TransactionInput{Client: cmd.Client, Tx: cmd.Tx, Amount: *cmd.Amount})
	case domain.CommandWithdrawal:
		if cmd.Amount == nil {
			return s.reject(ctx, cmd.Type, cmd.Client, cmd.Tx, domain.ErrMalformedCommand)
		}
		return s.Withdraw(ctx, TransactionInput{Client: cmd.Client, Tx: cmd.Tx, Amount: *cmd.Amount})
	case domain.CommandDispute:
		return s.Dispute(ctx, DisputeInput{Client: cmd.Client, Tx: cmd.Tx})
	case domain.CommandResolve:
		return s.Resolve(ctx, DisputeInput{Client: cmd.Client, Tx: cmd.Tx})
	case domain.CommandChargeback:
		return s.Chargeback(ctx, DisputeInput{Client: cmd.Client, Tx: cmd.Tx})
	default:
		return s.reject(ctx, cmd.Type, cmd.Client, cmd.Tx, domain.ErrMalformedCommand)
	}
}

// Deposit credits available funds and records a clean deposit transaction.
func (s *Service) Deposit(ctx context.Context, input TransactionInput) error {
	account, err := s.accounts.GetOrCreate(ctx, input.Client)
	if err != nil {
		return err
	}
	if account.Locked {
		return s.reject(ctx, domain.CommandDeposit, input.Client, input.Tx, domain.ErrAccountLocked)
	}
	if err := s.requireFreshTransaction(ctx, input.Tx); err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			return s.reject(ctx, domain.CommandDeposit, input.Client, input.Tx, err)
		}
		return err
	}
	available, err := account.Available.Add(input.Amount)
	if err != nil {
		return s.reject(ctx, domain.CommandDeposit, input.Client, input.Tx, err)
	}
	account.Available = available
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}
	row := domain.NewTransactionRecord(input.Tx, input.Client, domain.TransactionDeposit, input.Amount)
	if err := s.transactions.Record(ctx, row); err != nil {
		return err
	}
	s.auditAccepted(ctx, domain.CommandDeposit, input.Client, input.Tx, input.Amount.String())
	return nil
}

// Withdraw debits available funds and records a clean withdrawal
// transaction. It fails with insufficient funds rather than letting the
// balance go negative.
func (s *Service) Withdraw(ctx context.Context, input TransactionInput) error {
	account, err := s.accounts.GetOrCreate(ctx, input.Client)
	if err != nil {
		return err
	}
	if account.Locked {
		return s.reject(ctx, domain.CommandWithdrawal, input.Client, input.Tx, domain.ErrAccountLocked)
	}
	if account.Available.Less(input.Amount) {
		return s.reject(ctx, domain.CommandWithdrawal, input.Client, input.Tx, domain.ErrInsufficientFunds)
	}
	if err := s.requireFreshTransaction(ctx, input.Tx); err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			return s.reject(ctx, domain.CommandWithdrawal, input.Client, input.Tx, err)
		}
		return err
	}
	available, err := account.Available.Sub(input.Amount)
	if err != nil {
		return s.reject(ctx, domain.CommandWithdrawal, input.Client, input.Tx, err)
	}
	account.Available = available
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}
	row := domain.NewTransactionRecord(input.Tx, input.Client, domain.TransactionWithdrawal, input.Amount)
	if err := s.transactions.Record(ctx, row); err != nil {
		return err
	}
	s.auditAccepted(ctx, domain.CommandWithdrawal, input.Client, input.Tx, input.Amount.String())
	return nil
}

// Dispute freezes the amount of a past transaction pending settlement.
//
// For a deposit the disputed amount moves from available to held. For a
// withdrawal the funds were already debited, so the disputed amount enters
// held without touching available; the account must still hold at least the
// disputed amount available as collateral, and the strict policy denies
// withdrawal disputes outright.
func (s *Service) Dispute(ctx context.Context, input DisputeInput) error {
	account, record, err := s.disputeTarget(ctx, domain.CommandDispute, input)
	if err != nil {
		return err
	}
	if record.State != domain.DisputeStateClean {
		return s.reject(ctx, domain.CommandDispute, input.Client, input.Tx, domain.ErrInvalidDisputeTransition)
	}
	if record.Kind == domain.TransactionWithdrawal && s.cfg.WithdrawalDisputePolicy == domain.WithdrawalDisputeStrict {
		return s.reject(ctx, domain.CommandDispute, input.Client, input.Tx, domain.ErrWithdrawalDisputeDenied)
	}
	if account.Available.Less(record.Amount) {
		return s.reject(ctx, domain.CommandDispute, input.Client, input.Tx, domain.ErrInsufficientFunds)
	}
	held, err := account.Held.Add(record.Amount)
	if err != nil {
		return s.reject(ctx, domain.CommandDispute, input.Client, input.Tx, err)
	}
	if record.Kind == domain.TransactionDeposit {
		available, err := account.Available.Sub(record.Amount)
		if err != nil {
			return s.reject(ctx, domain.CommandDispute, input.Client, input.Tx, err)
		}
		account.Available = available
	}
	account.Held = held
	if err := record.MarkDisputed(); err != nil {
		return s.reject(ctx, domain.CommandDispute, input.Client, input.Tx, err)
	}
	if err := s.persist(ctx, account, record); err != nil {
		return err
	}
	s.auditAccepted(ctx, domain.CommandDispute, input.Client, input.Tx, record.Amount.String())
	return nil
}

// Resolve settles a dispute in favor of the transaction, undoing exactly
// the balance movement the dispute made. The record returns to clean and may
// be disputed again.
func (s *Service) Resolve(ctx context.Context, input DisputeInput) error {
	account, record, err := s.disputeTarget(ctx, domain.CommandResolve, input)
	if err != nil {
		return err
	}
	if record.State != domain.DisputeStateDisputed {
		return s.reject(ctx, domain.CommandResolve, input.Client, input.Tx, domain.ErrInvalidDisputeTransition)
	}
	held, err := account.Held.Sub(record.Amount)
	if err != nil {
		return s.reject(ctx, domain.CommandResolve, input.Client, input.Tx, err)
	}
	if record.Kind == domain.TransactionDeposit {
		available, err := account.Available.Add(record.Amount)
		if err != nil {
			return s.reject(ctx, domain.CommandResolve, input.Client, input.Tx, err)
		}
		account.Available = available
	}
	account.Held = held
	if err := record.MarkResolved(); err != nil {
		return s.reject(ctx, domain.CommandResolve, input.Client, input.Tx, err)
	}
	if err := s.persist(ctx, account, record); err != nil {
		return err
	}
	s.auditAccepted(ctx, domain.CommandResolve, input.Client, input.Tx, record.Amount.String())
	return nil
}

// Chargeback settles a dispute against the transaction. A charged-back
// deposit is removed from held entirely; a charged-back withdrawal refunds
// the withdrawn amount to available. The account is locked permanently in
// both cases and the record is terminally charged back.
func (s *Service) Chargeback(ctx context.Context, input DisputeInput) error {
	account, record, err := s.disputeTarget(ctx, domain.CommandChargeback, input)
	if err != nil {
		return err
	}
	if record.State != domain.DisputeStateDisputed {
		return s.reject(ctx, domain.CommandChargeback, input.Client, input.Tx, domain.ErrInvalidDisputeTransition)
	}
	held, err := account.Held.Sub(record.Amount)
	if err != nil {
		return s.reject(ctx, domain.CommandChargeback, input.Client, input.Tx, err)
	}
	if record.Kind == domain.TransactionWithdrawal {
		available, err := account.Available.Add(record.Amount)
		if err != nil {
			return s.reject(ctx, domain.CommandChargeback, input.Client, input.Tx, err)
		}
		account.Available = available
	}
	account.Held = held
	account.Locked = true
	if err := record.MarkChargedBack(); err != nil {
		return s.reject(ctx, domain.CommandChargeback, input.Client, input.Tx, err)
	}
	if err := s.persist(ctx, account, record); err != nil {
		return err
	}
	s.auditAccepted(ctx, domain.CommandChargeback, input.Client, input.Tx, record.Amount.String())
	s.auditLocked(ctx, input.Client, input.Tx)
	return nil
}

// Snapshot returns all known accounts, sorted by client id when configured.
func (s *Service) Snapshot(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cfg.SortSnapshotByClient {
		sort.Slice(accounts, func(i, j int) bool { return accounts[i].Client < accounts[j].Client })
	}
	return accounts, nil
}

func (s *Service) GetAccount(ctx context.Context, client domain.ClientID) (domain.Account, error) {
	return s.accounts.Get(ctx, client)
}

func (s *Service) GetTransaction(ctx context.Context, id domain.TransactionID) (domain.TransactionRecord, error) {
	return s.transactions.Get(ctx, id)
}

// disputeTarget runs the shared validation of dispute, resolve and
// chargeback: the commanding client's account must not be locked, the
// transaction must exist, and it must belong to the commanding client.
func (s *Service) disputeTarget(ctx context.Context, cmdType domain.CommandType, input DisputeInput) (domain.Account, domain.TransactionRecord, error) {
	account, err := s.accounts.GetOrCreate(ctx, input.Client)
	if err != nil {
		return domain.Account{}, domain.TransactionRecord{}, err
	}
	if account.Locked {
		return domain.Account{}, domain.TransactionRecord{}, s.reject(ctx, cmdType, input.Client, input.Tx, domain.ErrAccountLocked)
	}
	record, err := s.transactions.Get(ctx, input.Tx)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return domain.Account{}, domain.TransactionRecord{}, s.reject(ctx, cmdType, input.Client, input.Tx, err)
		}
		return domain.Account{}, domain.TransactionRecord{}, err
	}
	if record.Client != input.Client {
		return domain.Account{}, domain.TransactionRecord{}, s.reject(ctx, cmdType, input.Client, input.Tx, domain.ErrClientMismatch)
	}
	return account, record, nil
}

func (s *Service) requireFreshTransaction(ctx context.Context, id domain.TransactionID) error {
	_, err := s.transactions.Get(ctx, id)
	if err == nil {
		return domain.ErrDuplicateTransaction
	}
	if errors.Is(err, domain.ErrTransactionNotFound) {
		return nil
	}
	return err
}

func (s *Service) persist(ctx context.Context, account domain.Account, record domain.TransactionRecord) error {
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}
	return s.transactions.Update(ctx, record)
}
