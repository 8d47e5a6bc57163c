package domain

type CommandType string

const (
	CommandDeposit    CommandType = "deposit"
	CommandWithdrawal CommandType = "withdrawal"
	CommandDispute    CommandType = "dispute"
	CommandResolve    CommandType = "resolve"
	CommandChargeback CommandType = "chargeback"
)

// Command is one record of the ordered input stream.
type Command struct {
	Type   CommandType
	Client ClientID
	Tx     TransactionID
	// Amount is present only for deposit and withdrawal commands.
	Amount *Amount
}

// WithdrawalDisputePolicy controls how disputes against withdrawal
// transactions are handled.
type WithdrawalDisputePolicy string

const (
	// WithdrawalDisputePermissive allows a withdrawal dispute when the
	// account currently has at least the disputed amount available as
	// collateral.
	WithdrawalDisputePermissive WithdrawalDisputePolicy = "permissive"
	// WithdrawalDisputeStrict denies every withdrawal dispute.
	WithdrawalDisputeStrict WithdrawalDisputePolicy = "strict"
)
