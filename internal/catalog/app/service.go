package app

import (
	"context"
	"strings"

	"github.com/TheSamadAzeez/nexus-backend/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, name, desc, imageURL string, price decimal.Decimal, stock int32) (domain.Product, error) {
	name = strings.TrimSpace(name)

	if name == "" || !price.IsPositive() || stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	p := domain.Product{
		Name:        name,
		Description: desc,
		ImageURL:    imageURL,
		Price:       price.Round(2),
		Stock:       stock,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// UpdatePrice changes the catalog price. Prices frozen into existing orders
// are not touched.
func (s *Service) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (domain.Product, error) {
	if strings.TrimSpace(id) == "" || !price.IsPositive() {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.SetPrice(ctx, id, price.Round(2))
}

func (s *Service) Restock(ctx context.Context, id string, qty int32) (domain.Product, error) {
	if strings.TrimSpace(id) == "" || qty <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.AddStock(ctx, id, qty)
}

// DecrementStock runs the conditional decrement and converts a refusal into
// a typed out-of-stock error.
func (s *Service) DecrementStock(ctx context.Context, id string, qty int32) error {
	if qty <= 0 {
		return ErrInvalidInput
	}

	ok, err := s.repo.TryDecrementStock(ctx, id, qty)
	if err != nil {
		return err
	}
	if !ok {
		p, gerr := s.repo.Get(ctx, id)
		if gerr != nil {
			return gerr
		}
		return &OutOfStockError{ProductID: p.ID, Name: p.Name, Requested: qty, Available: p.Stock}
	}
	return nil
}
