package contracts

import "time"

// AuditEvent is the envelope emitted for every processed command and for
// account locks.
type AuditEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	CommandType   string    `json:"command_type,omitempty"`
	Client        uint16    `json:"client"`
	Tx            uint32    `json:"tx,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
	SourceService string    `json:"source_service"`
}
