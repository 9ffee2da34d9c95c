package app

import (
	"context"

	"github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/shopspring/decimal"
)

// CheckoutLine is a cart line joined with the product's current price and
// stock at read time.
type CheckoutLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Stock     int32
	Quantity  int32
}

type OrderRepo interface {
	// CheckoutLines loads the user's cart joined with current product
	// rows. A missing cart yields an empty cartID.
	CheckoutLines(ctx context.Context, userID string) (cartID string, lines []CheckoutLine, err error)

	// CreateFromCart executes the checkout as one atomic unit: insert the
	// order and its items, decrement stock for every line through the
	// conditional gate, and clear the cart. A refused decrement rolls the
	// whole unit back and surfaces a typed out-of-stock error.
	CreateFromCart(ctx context.Context, order domain.Order, cartID string) (domain.Order, error)

	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (domain.Order, error)
}
