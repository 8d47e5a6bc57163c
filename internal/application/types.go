package application

import (
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/ports"
)

type Config struct {
	ServiceName             string
	WithdrawalDisputePolicy domain.WithdrawalDisputePolicy
	SortSnapshotByClient    bool
}

// TransactionInput carries a deposit or withdrawal command.
type TransactionInput struct {
	Client domain.ClientID
	Tx     domain.TransactionID
	Amount domain.Amount
}

// DisputeInput carries a dispute, resolve or chargeback command.
type DisputeInput struct {
	Client domain.ClientID
	Tx     domain.TransactionID
}

// Service is the command engine. It owns no state of its own beyond the
// repositories it mutates; commands are applied strictly one at a time.
type Service struct {
	cfg          Config
	transactions ports.TransactionRepository
	accounts     ports.AccountRepository
	audit        ports.AuditPublisher
	nowFn        func() time.Time
}

type Dependencies struct {
	Config       Config
	Transactions ports.TransactionRepository
	Accounts     ports.AccountRepository
	Audit        ports.AuditPublisher
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "M42-Transaction-Ledger-Service"
	}
	if cfg.WithdrawalDisputePolicy == "" {
		cfg.WithdrawalDisputePolicy = domain.WithdrawalDisputePermissive
	}
	return &Service{
		cfg:          cfg,
		transactions: deps.Transactions,
		accounts:     deps.Accounts,
		audit:        deps.Audit,
		nowFn:        func() time.Time { return time.Now().UTC() },
	}
}
