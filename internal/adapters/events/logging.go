package events

import (
	"context"
	"log/slog"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/contracts"
)

// LoggingAuditPublisher writes audit events to a structured logger.
type LoggingAuditPublisher struct {
	logger *slog.Logger
}

func NewLoggingAuditPublisher(logger *slog.Logger) *LoggingAuditPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingAuditPublisher{logger: logger}
}

func (p *LoggingAuditPublisher) Publish(ctx context.Context, event contracts.AuditEvent) error {
	attrs := []any{
		"event_id", event.EventID,
		"event_type", event.EventType,
		"command_type", event.CommandType,
		"client", event.Client,
		"tx", event.Tx,
	}
	if event.Amount != "" {
		attrs = append(attrs, "amount", event.Amount)
	}
	if event.Reason != "" {
		attrs = append(attrs, "reason", event.Reason)
	}
	p.logger.InfoContext(ctx, "audit event", attrs...)
	return nil
}
