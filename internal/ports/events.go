package ports

import (
	"context"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/contracts"
)

type AuditPublisher interface {
	Publish(ctx context.Context, event contracts.AuditEvent) error
}
