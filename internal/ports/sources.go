package ports

import (
	"context"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

// CommandSource yields commands from an ordered stream.
//
// Next returns io.EOF once the stream is exhausted. A record that cannot be
// turned into a command is reported with an error wrapping
// domain.ErrMalformedCommand; the source remains usable afterwards, so the
// caller can skip the record and keep reading.
type CommandSource interface {
	Next(ctx context.Context) (domain.Command, error)
}
