package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionCompleted struct {
	LedgerTransactionID uuid.UUID       `json:"ledgerTransactionID"`
	UserAccountID       uuid.UUID       `json:"userAccountID"`
	Symbol              string          `json:"symbol"`
	Quantity            int64           `json:"quantity"`
	Price               decimal.Decimal `json:"price"`
	OccurredAt          time.Time       `json:"occurredAt"`
}

// Publisher emits ledger events after commit. Publishing is
// fire-and-forget: a failed publish never rolls back a trade.
type Publisher interface {
	PublishTransactionCompleted(ctx context.Context, event TransactionCompleted) error
}

type noopPublisher struct{}

// NewNoopPublisher is wired when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishTransactionCompleted(ctx context.Context, event TransactionCompleted) error {
	return nil
}
