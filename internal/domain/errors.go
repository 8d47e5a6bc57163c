package domain

import "errors"

// Amount parse and arithmetic failures.
var (
	ErrAmountMalformed = errors.New("malformed amount")
	ErrAmountNegative  = errors.New("negative amount")
	ErrAmountPrecision = errors.New("amount exceeds four fractional digits")
	ErrAmountOverflow  = errors.New("amount overflow")
	ErrAmountUnderflow = errors.New("amount underflow")
)

// Command validation failures. Each one rejects a single command; none is
// fatal to the stream.
var (
	ErrAccountLocked            = errors.New("account locked")
	ErrAccountNotFound          = errors.New("account not found")
	ErrInsufficientFunds        = errors.New("insufficient available funds")
	ErrDuplicateTransaction     = errors.New("duplicate transaction id")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrClientMismatch           = errors.New("transaction belongs to another client")
	ErrInvalidDisputeTransition = errors.New("invalid dispute state transition")
	ErrWithdrawalDisputeDenied  = errors.New("withdrawal disputes denied by policy")
	ErrMalformedCommand         = errors.New("malformed command")
)
