package app

import (
	"context"
	"time"

	orderdomain "github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/shopspring/decimal"
)

type OrderStore interface {
	Get(ctx context.Context, orderID string) (orderdomain.Order, error)

	// SetStatus commits a transition only when the row still holds the
	// expected current status.
	SetStatus(ctx context.Context, orderID string, from, to orderdomain.Status) (orderdomain.Order, error)
}

// PaymentProcessor is the pluggable payment capability. Implementations
// must not be called while holding any lock or open transaction.
type PaymentProcessor interface {
	Process(ctx context.Context, amount decimal.Decimal, method string) (PaymentResult, error)
}

type PaymentResult struct {
	Success       bool
	TransactionID string
	Reason        string
}

type Receipt struct {
	TransactionID string
	PaymentMethod string
	CardLastFour  string
	Amount        decimal.Decimal
	ProcessedAt   time.Time
}

// Settlement is the outcome of a successful payment.
type Settlement struct {
	Order   orderdomain.Order
	Receipt Receipt
}
