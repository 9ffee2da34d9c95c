package app

import (
	"context"

	"github.com/TheSamadAzeez/nexus-backend/internal/cart/domain"
	"github.com/shopspring/decimal"
)

type CartRepo interface {
	// GetOrCreate returns the user's single cart, creating it lazily.
	// Implementations must survive concurrent first access without
	// producing duplicate carts.
	GetOrCreate(ctx context.Context, userID string) (domain.Cart, error)

	Item(ctx context.Context, cartID, itemID string) (domain.Item, error)
	ItemByProduct(ctx context.Context, cartID, productID string) (domain.Item, error)
	UpsertItem(ctx context.Context, cartID, productID string, quantity int32) error
	SetItemQuantity(ctx context.Context, itemID string, quantity int32) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error

	ItemViews(ctx context.Context, cartID string) ([]domain.ItemView, error)
}

type ProductReader interface {
	Product(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int32
}
