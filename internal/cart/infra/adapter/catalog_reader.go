package adapter

import (
	"context"

	cartapp "github.com/TheSamadAzeez/nexus-backend/internal/cart/app"
	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
)

type CatalogReader struct {
	svc *catalogapp.Service
}

func NewCatalogReader(svc *catalogapp.Service) *CatalogReader {
	return &CatalogReader{svc: svc}
}

func (r *CatalogReader) Product(ctx context.Context, productID string) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}, nil
}
