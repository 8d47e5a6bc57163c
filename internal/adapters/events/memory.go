// Package events provides audit publishers for the ledger. The in-memory
// publisher backs tests; the logging publisher mirrors events onto the
// service log.
package events

import (
	"context"
	"sync"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/contracts"
)

// MemoryAuditPublisher retains published events in order.
type MemoryAuditPublisher struct {
	mu     sync.Mutex
	events []contracts.AuditEvent
}

func NewMemoryAuditPublisher() *MemoryAuditPublisher {
	return &MemoryAuditPublisher{}
}

func (p *MemoryAuditPublisher) Publish(_ context.Context, event contracts.AuditEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything published so far.
func (p *MemoryAuditPublisher) Events() []contracts.AuditEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]contracts.AuditEvent, len(p.events))
	copy(out, p.events)
	return out
}
