package app

import (
	"context"
	"errors"

	"github.com/TheSamadAzeez/nexus-backend/internal/cart/domain"
	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo     CartRepo
	products ProductReader
}

func NewService(repo CartRepo, products ProductReader) *Service {
	return &Service{
		repo:     repo,
		products: products,
	}
}

func (s *Service) GetOrCreateCart(ctx context.Context, userID string) (domain.Cart, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

func (s *Service) GetCart(ctx context.Context, userID string) (domain.View, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}
	return s.view(ctx, cart.ID)
}

// AddItem merges quantities when the product already has a line. The stock
// check here is advisory; the checkout transaction is the authoritative gate.
func (s *Service) AddItem(ctx context.Context, userID, productID string, quantity int32) (domain.View, error) {
	if quantity <= 0 {
		return domain.View{}, ErrInvalidInput
	}

	product, err := s.products.Product(ctx, productID)
	if err != nil {
		return domain.View{}, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}

	newQuantity := quantity
	existing, err := s.repo.ItemByProduct(ctx, cart.ID, productID)
	if err == nil {
		newQuantity += existing.Quantity
	} else if !errors.Is(err, ErrNotFound) {
		return domain.View{}, err
	}

	if product.Stock < newQuantity {
		return domain.View{}, &catalogapp.OutOfStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: newQuantity,
			Available: product.Stock,
		}
	}

	if err := s.repo.UpsertItem(ctx, cart.ID, productID, newQuantity); err != nil {
		return domain.View{}, err
	}

	return s.view(ctx, cart.ID)
}

// UpdateItem sets a line's quantity; zero deletes the line.
func (s *Service) UpdateItem(ctx context.Context, userID, itemID string, quantity int32) (domain.View, error) {
	if quantity < 0 {
		return domain.View{}, ErrInvalidInput
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}

	item, err := s.repo.Item(ctx, cart.ID, itemID)
	if err != nil {
		return domain.View{}, err
	}

	if quantity == 0 {
		if err := s.repo.RemoveItem(ctx, cart.ID, item.ID); err != nil {
			return domain.View{}, err
		}
		return s.view(ctx, cart.ID)
	}

	product, err := s.products.Product(ctx, item.ProductID)
	if err == nil && product.Stock < quantity {
		return domain.View{}, &catalogapp.OutOfStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: quantity,
			Available: product.Stock,
		}
	}
	if err != nil && !errors.Is(err, catalogapp.ErrNotFound) {
		return domain.View{}, err
	}

	if err := s.repo.SetItemQuantity(ctx, item.ID, quantity); err != nil {
		return domain.View{}, err
	}

	return s.view(ctx, cart.ID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) (domain.View, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}

	item, err := s.repo.Item(ctx, cart.ID, itemID)
	if err != nil {
		return domain.View{}, err
	}

	if err := s.repo.RemoveItem(ctx, cart.ID, item.ID); err != nil {
		return domain.View{}, err
	}

	return s.view(ctx, cart.ID)
}

// ClearCart empties the cart. Clearing an already-empty cart is a no-op.
func (s *Service) ClearCart(ctx context.Context, userID string) error {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, cart.ID)
}

func (s *Service) view(ctx context.Context, cartID string) (domain.View, error) {
	items, err := s.repo.ItemViews(ctx, cartID)
	if err != nil {
		return domain.View{}, err
	}
	return domain.NewView(cartID, items), nil
}
