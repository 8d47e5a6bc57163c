package domain

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "deposit"
	TransactionWithdrawal TransactionKind = "withdrawal"
)

// DisputeState tracks the dispute lifecycle of a recorded transaction:
//
//	clean → disputed → clean        (resolve, re-disputable)
//	clean → disputed → charged_back (terminal)
type DisputeState string

const (
	DisputeStateClean       DisputeState = "clean"
	DisputeStateDisputed    DisputeState = "disputed"
	DisputeStateChargedBack DisputeState = "charged_back"
)

// TransactionRecord is one accepted deposit or withdrawal together with its
// current dispute state. Records are append-only: once created they are only
// ever mutated through the Mark* transitions, and never deleted.
type TransactionRecord struct {
	ID     TransactionID
	Client ClientID
	Kind   TransactionKind
	Amount Amount
	State  DisputeState
}

// NewTransactionRecord builds a clean record for an accepted transaction.
func NewTransactionRecord(id TransactionID, client ClientID, kind TransactionKind, amount Amount) TransactionRecord {
	return TransactionRecord{ID: id, Client: client, Kind: kind, Amount: amount, State: DisputeStateClean}
}

// MarkDisputed transitions clean → disputed.
func (t *TransactionRecord) MarkDisputed() error {
	if t.State != DisputeStateClean {
		return ErrInvalidDisputeTransition
	}
	t.State = DisputeStateDisputed
	return nil
}

// MarkResolved transitions disputed → clean. A resolved transaction may be
// disputed again.
func (t *TransactionRecord) MarkResolved() error {
	if t.State != DisputeStateDisputed {
		return ErrInvalidDisputeTransition
	}
	t.State = DisputeStateClean
	return nil
}

// MarkChargedBack transitions disputed → charged_back. No transition leaves
// charged_back.
func (t *TransactionRecord) MarkChargedBack() error {
	if t.State != DisputeStateDisputed {
		return ErrInvalidDisputeTransition
	}
	t.State = DisputeStateChargedBack
	return nil
}
