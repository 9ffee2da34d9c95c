package memory

import (
	"context"
	"sync"
	"time"

	"github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRepo is a mutex-guarded in-memory implementation of the catalog
// repository. It keeps the same conditional-decrement contract as the
// Postgres repo and backs the service tests.
type ProductRepo struct {
	mu       sync.Mutex
	products map[string]domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: make(map[string]domain.Product)}
}

func (r *ProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ID] = p
	return p, nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) SetPrice(_ context.Context, id string, price decimal.Decimal) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	r.products[id] = p
	return p, nil
}

func (r *ProductRepo) AddStock(_ context.Context, id string, qty int32) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	p.Stock += qty
	p.UpdatedAt = time.Now()
	r.products[id] = p
	return p, nil
}

func (r *ProductRepo) TryDecrementStock(_ context.Context, id string, qty int32) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return false, app.ErrNotFound
	}
	if p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	p.UpdatedAt = time.Now()
	r.products[id] = p
	return true, nil
}
