package app

import (
	"context"
	"errors"

	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotFound  = errors.New("not found")
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// CreateFromCart converts the user's cart into a PENDING order with frozen
// prices. The per-line stock comparison here is a pre-check; the binding
// check is the conditional decrement inside the repo transaction.
func (s *Service) CreateFromCart(ctx context.Context, userID string) (domain.Order, error) {
	cartID, lines, err := s.repo.CheckoutLines(ctx, userID)
	if err != nil {
		return domain.Order{}, err
	}
	if cartID == "" || len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]domain.Item, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		if line.Quantity > line.Stock {
			return domain.Order{}, &catalogapp.OutOfStockError{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: line.Stock,
			}
		}

		items = append(items, domain.Item{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
		total = total.Add(line.Price.Mul(decimal.NewFromInt32(line.Quantity)))
	}

	order := domain.Order{
		UserID:      userID,
		Status:      domain.StatusPending,
		TotalAmount: total,
		Items:       items,
	}

	return s.repo.CreateFromCart(ctx, order, cartID)
}

func (s *Service) FindAll(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// FindOne reports an ownership mismatch exactly like absence so callers
// cannot probe for foreign orders.
func (s *Service) FindOne(ctx context.Context, userID, orderID string) (domain.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.UserID != userID {
		return domain.Order{}, ErrNotFound
	}
	return order, nil
}
