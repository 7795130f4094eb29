// Package notify publishes domain events for the push delivery service.
package notify

import "context"

// Publisher sends events to whoever delivers notifications.
type Publisher interface {
	PublishTransactionCreated(ctx context.Context, msg *TransactionCreated) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) PublishTransactionCreated(context.Context, *TransactionCreated) error { return nil }

func (Nop) Close() error { return nil }
