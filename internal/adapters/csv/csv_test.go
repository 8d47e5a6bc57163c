package csv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

func TestCommandReaderParsesStream(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 10.5",
		"withdrawal, 1, 2, 3",
		"dispute, 1, 2",
		"resolve, 1, 2",
		"chargeback, 1, 2",
	}, "\n")

	reader := NewCommandReader(strings.NewReader(input))
	ctx := context.Background()

	cmd, err := reader.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if cmd.Type != domain.CommandDeposit || cmd.Client != 1 || cmd.Tx != 1 {
		t.Fatalf("first command = %+v", cmd)
	}
	if cmd.Amount == nil || cmd.Amount.Fractions() != 105000 {
		t.Fatalf("first amount = %v, want 10.5000", cmd.Amount)
	}

	cmd, err = reader.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if cmd.Type != domain.CommandWithdrawal || cmd.Amount == nil || cmd.Amount.Fractions() != 30000 {
		t.Fatalf("second command = %+v", cmd)
	}

	for _, want := range []domain.CommandType{domain.CommandDispute, domain.CommandResolve, domain.CommandChargeback} {
		cmd, err = reader.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if cmd.Type != want || cmd.Amount != nil {
			t.Fatalf("command = %+v, want type %s without amount", cmd, want)
		}
	}

	if _, err := reader.Next(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("end of stream error = %v, want io.EOF", err)
	}
}

func TestCommandReaderNoHeader(t *testing.T) {
	t.Parallel()
	reader := NewCommandReader(strings.NewReader("deposit,1,1,2.0\n"))

	cmd, err := reader.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if cmd.Type != domain.CommandDeposit || cmd.Amount == nil || cmd.Amount.Fractions() != 20000 {
		t.Fatalf("command = %+v", cmd)
	}
}

func TestCommandReaderMalformedRows(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		row  string
	}{
		{"missing columns", "deposit,1"},
		{"bad client", "deposit,abc,1,2"},
		{"client out of range", "deposit,70000,1,2"},
		{"bad tx", "deposit,1,xyz,2"},
		{"missing amount", "deposit,1,1"},
		{"negative amount", "deposit,1,1,-3"},
		{"excess precision", "deposit,1,1,1.00001"},
		{"amount on dispute", "dispute,1,1,5"},
		{"unknown type", "transfer,1,1,5"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reader := NewCommandReader(strings.NewReader("type,client,tx,amount\n" + tc.row + "\n"))
			if _, err := reader.Next(context.Background()); !errors.Is(err, domain.ErrMalformedCommand) {
				t.Fatalf("Next error = %v, want ErrMalformedCommand", err)
			}
		})
	}
}

func TestCommandReaderRecoversAfterMalformedRow(t *testing.T) {
	t.Parallel()
	input := "deposit,1,1,bogus\nwithdrawal,2,2,1.0\n"
	reader := NewCommandReader(strings.NewReader(input))
	ctx := context.Background()

	if _, err := reader.Next(ctx); !errors.Is(err, domain.ErrMalformedCommand) {
		t.Fatalf("first Next error = %v, want ErrMalformedCommand", err)
	}
	cmd, err := reader.Next(ctx)
	if err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if cmd.Type != domain.CommandWithdrawal || cmd.Client != 2 {
		t.Fatalf("command after malformed row = %+v", cmd)
	}
	if _, err := reader.Next(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("end of stream error = %v, want io.EOF", err)
	}
}

func TestAccountWriterOutput(t *testing.T) {
	t.Parallel()
	available, err := domain.ParseAmount("1.5")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	held, err := domain.ParseAmount("2")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}

	first := domain.NewAccount(1)
	first.Available = available
	first.Held = held
	second := domain.NewAccount(2)
	second.Locked = true

	var buf bytes.Buffer
	if err := NewAccountWriter(&buf).WriteAll([]domain.Account{first, second}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	want := "client,available,held,total,locked\n" +
		"1,1.5000,2.0000,3.5000,false\n" +
		"2,0.0000,0.0000,0.0000,true\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
