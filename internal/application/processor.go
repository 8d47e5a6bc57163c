package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/ports"
)

// ProcessStats summarizes one pass over a command stream.
type ProcessStats struct {
	Accepted  int
	Rejected  int
	Malformed int
}

// Processor drains a command source into the ledger service. Rejected and
// malformed commands are logged and skipped; only source failures other than
// end-of-stream stop the run.
type Processor struct {
	logger  *slog.Logger
	source  ports.CommandSource
	service *Service
}

func NewProcessor(logger *slog.Logger, source ports.CommandSource, service *Service) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, source: source, service: service}
}

func (p *Processor) Run(ctx context.Context) (ProcessStats, error) {
	var stats ProcessStats
	for {
		cmd, err := p.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if errors.Is(err, domain.ErrMalformedCommand) {
			stats.Malformed++
			p.logger.WarnContext(ctx, "command skipped", "error", err)
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("read command: %w", err)
		}

		if err := p.service.Submit(ctx, cmd); err != nil {
			stats.Rejected++
			p.logger.WarnContext(ctx, "command rejected",
				"command_type", string(cmd.Type),
				"client", uint16(cmd.Client),
				"tx", uint32(cmd.Tx),
				"error", err,
			)
			continue
		}
		stats.Accepted++
	}
}
