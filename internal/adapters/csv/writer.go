package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

// AccountWriter renders account snapshots as CSV with a fixed header.
type AccountWriter struct {
	inner *csv.Writer
}

func NewAccountWriter(w io.Writer) *AccountWriter {
	return &AccountWriter{inner: csv.NewWriter(w)}
}

func (w *AccountWriter) WriteAll(accounts []domain.Account) error {
	if err := w.inner.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, account := range accounts {
		total, err := account.Total()
		if err != nil {
			return fmt.Errorf("client %d: %w", account.Client, err)
		}
		row := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			account.Available.String(),
			account.Held.String(),
			total.String(),
			strconv.FormatBool(account.Locked),
		}
		if err := w.inner.Write(row); err != nil {
			return err
		}
	}
	w.inner.Flush()
	return w.inner.Error()
}
