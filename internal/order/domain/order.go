package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo encodes the forward-only order lifecycle:
// PENDING -> PAID -> SHIPPED -> DELIVERED, with PENDING -> CANCELLED as the
// alternate terminal. No transition is reversible.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusCancelled
	case StatusPaid:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	default:
		return false
	}
}

type Order struct {
	ID          string
	UserID      string
	Status      Status
	TotalAmount decimal.Decimal
	Items       []Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Item struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int32

	// Price is frozen at order creation and never follows later catalog
	// price changes.
	Price decimal.Decimal

	Product ProductRef
}

// ProductRef is the catalog row resolved into an order line for views.
type ProductRef struct {
	ID       string
	Name     string
	ImageURL string
}
