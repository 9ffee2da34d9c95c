package app

import (
	"context"

	"github.com/TheSamadAzeez/nexus-backend/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	SetPrice(ctx context.Context, id string, price decimal.Decimal) (domain.Product, error)
	AddStock(ctx context.Context, id string, qty int32) (domain.Product, error)

	// TryDecrementStock is the authoritative stock gate: one conditional
	// write that only lands when stock >= qty. It reports whether the
	// decrement happened.
	TryDecrementStock(ctx context.Context, id string, qty int32) (bool, error)
}
