package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/contracts"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

// reject publishes a rejection audit event and returns the cause unchanged,
// so every rejection path reports exactly once.
func (s *Service) reject(ctx context.Context, cmdType domain.CommandType, client domain.ClientID, tx domain.TransactionID, cause error) error {
	s.publishAudit(ctx, contracts.AuditEvent{
		EventID:       uuid.NewString(),
		EventType:     domain.EventCommandRejected,
		CommandType:   string(cmdType),
		Client:        uint16(client),
		Tx:            uint32(tx),
		Reason:        cause.Error(),
		OccurredAt:    s.nowFn(),
		SourceService: s.cfg.ServiceName,
	})
	return cause
}

func (s *Service) auditAccepted(ctx context.Context, cmdType domain.CommandType, client domain.ClientID, tx domain.TransactionID, amount string) {
	s.publishAudit(ctx, contracts.AuditEvent{
		EventID:       uuid.NewString(),
		EventType:     domain.EventCommandAccepted,
		CommandType:   string(cmdType),
		Client:        uint16(client),
		Tx:            uint32(tx),
		Amount:        amount,
		OccurredAt:    s.nowFn(),
		SourceService: s.cfg.ServiceName,
	})
}

func (s *Service) auditLocked(ctx context.Context, client domain.ClientID, tx domain.TransactionID) {
	s.publishAudit(ctx, contracts.AuditEvent{
		EventID:       uuid.NewString(),
		EventType:     domain.EventAccountLocked,
		Client:        uint16(client),
		Tx:            uint32(tx),
		OccurredAt:    s.nowFn(),
		SourceService: s.cfg.ServiceName,
	})
}

// Audit delivery is best effort: a publisher failure never affects the
// outcome of the command itself.
func (s *Service) publishAudit(ctx context.Context, event contracts.AuditEvent) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Publish(ctx, event)
}
