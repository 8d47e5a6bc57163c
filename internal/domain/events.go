package domain

// Audit event types emitted while processing the command stream.
const (
	EventCommandAccepted = "command.accepted"
	EventCommandRejected = "command.rejected"
	EventAccountLocked   = "account.locked"
)
