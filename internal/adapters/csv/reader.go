// Package csv adapts comma-separated command streams and account snapshots
// to the ledger's ports.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

// CommandReader decodes ledger commands from CSV input. Rows carry
// type,client,tx and, for deposits and withdrawals, a fourth amount column.
// A leading header row is skipped. Malformed rows are reported as
// domain.ErrMalformedCommand and the reader stays usable.
type CommandReader struct {
	inner      *csv.Reader
	headerSeen bool
}

func NewCommandReader(r io.Reader) *CommandReader {
	inner := csv.NewReader(r)
	inner.FieldsPerRecord = -1
	inner.TrimLeadingSpace = true
	return &CommandReader{inner: inner}
}

func (r *CommandReader) Next(ctx context.Context) (domain.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Command{}, err
		}
		fields, err := r.inner.Read()
		if errors.Is(err, io.EOF) {
			return domain.Command{}, io.EOF
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return domain.Command{}, fmt.Errorf("row %d: %v: %w", parseErr.Line, parseErr.Err, domain.ErrMalformedCommand)
			}
			return domain.Command{}, err
		}
		if !r.headerSeen {
			r.headerSeen = true
			if len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "type") {
				continue
			}
		}
		return parseRecord(fields)
	}
}

func parseRecord(fields []string) (domain.Command, error) {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 3 {
		return domain.Command{}, fmt.Errorf("expected at least 3 columns, got %d: %w", len(fields), domain.ErrMalformedCommand)
	}

	cmdType := domain.CommandType(strings.ToLower(fields[0]))
	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return domain.Command{}, fmt.Errorf("client %q: %w", fields[1], domain.ErrMalformedCommand)
	}
	tx, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return domain.Command{}, fmt.Errorf("tx %q: %w", fields[2], domain.ErrMalformedCommand)
	}

	var amountText string
	if len(fields) > 3 {
		amountText = fields[3]
	}

	cmd := domain.Command{
		Type:   cmdType,
		Client: domain.ClientID(client),
		Tx:     domain.TransactionID(tx),
	}

	switch cmdType {
	case domain.CommandDeposit, domain.CommandWithdrawal:
		if amountText == "" {
			return domain.Command{}, fmt.Errorf("%s requires an amount: %w", cmdType, domain.ErrMalformedCommand)
		}
		amount, err := domain.ParseAmount(amountText)
		if err != nil {
			return domain.Command{}, fmt.Errorf("amount %q: %v: %w", amountText, err, domain.ErrMalformedCommand)
		}
		cmd.Amount = &amount
	case domain.CommandDispute, domain.CommandResolve, domain.CommandChargeback:
		if amountText != "" {
			return domain.Command{}, fmt.Errorf("%s carries no amount: %w", cmdType, domain.ErrMalformedCommand)
		}
	default:
		return domain.Command{}, fmt.Errorf("unknown command type %q: %w", fields[0], domain.ErrMalformedCommand)
	}
	return cmd, nil
}
