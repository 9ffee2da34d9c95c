package app

import (
	"context"
	"strings"
	"time"

	orderapp "github.com/TheSamadAzeez/nexus-backend/internal/order/app"
	orderdomain "github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
)

type Service struct {
	orders    OrderStore
	processor PaymentProcessor

	now func() time.Time
}

func NewService(orders OrderStore, processor PaymentProcessor) *Service {
	return &Service{
		orders:    orders,
		processor: processor,
		now:       time.Now,
	}
}

// ProcessPayment settles a PENDING order. The processor call happens outside
// any lock or transaction; the PAID transition itself is a conditional
// single-row write. Retrying an already-paid order is rejected with no side
// effects, so retries of a succeeded payment are safe.
func (s *Service) ProcessPayment(ctx context.Context, userID, orderID, paymentMethod, cardLastFour string) (Settlement, error) {
	if strings.TrimSpace(paymentMethod) == "" {
		return Settlement{}, ErrInvalidInput
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return Settlement{}, err
	}
	if order.UserID != userID {
		// Report foreign orders exactly like missing ones.
		return Settlement{}, orderapp.ErrNotFound
	}

	if order.Status != orderdomain.StatusPending {
		return Settlement{}, &InvalidTransitionError{
			OrderID:   order.ID,
			From:      order.Status,
			Attempted: orderdomain.StatusPaid,
		}
	}

	result, err := s.processor.Process(ctx, order.TotalAmount, paymentMethod)
	if err != nil {
		return Settlement{}, err
	}
	if !result.Success {
		// Order stays PENDING; the caller may retry.
		return Settlement{}, &PaymentDeclinedError{Reason: result.Reason}
	}

	updated, err := s.orders.SetStatus(ctx, order.ID, orderdomain.StatusPending, orderdomain.StatusPaid)
	if err != nil {
		if err == orderapp.ErrNotFound {
			// The row moved between our read and the conditional
			// write.
			return Settlement{}, &InvalidTransitionError{
				OrderID:   order.ID,
				From:      order.Status,
				Attempted: orderdomain.StatusPaid,
			}
		}
		return Settlement{}, err
	}

	return Settlement{
		Order: updated,
		Receipt: Receipt{
			TransactionID: result.TransactionID,
			PaymentMethod: paymentMethod,
			CardLastFour:  cardLastFour,
			Amount:        order.TotalAmount,
			ProcessedAt:   s.now(),
		},
	}, nil
}

// AdvanceStatus moves an order forward through its lifecycle (SHIPPED,
// DELIVERED, or CANCELLED from PENDING). Backward and skipping moves are
// rejected.
func (s *Service) AdvanceStatus(ctx context.Context, orderID string, next orderdomain.Status) (orderdomain.Order, error) {
	if !next.Valid() {
		return orderdomain.Order{}, ErrInvalidInput
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return orderdomain.Order{}, err
	}

	if !order.Status.CanTransitionTo(next) {
		return orderdomain.Order{}, &InvalidTransitionError{
			OrderID:   order.ID,
			From:      order.Status,
			Attempted: next,
		}
	}

	updated, err := s.orders.SetStatus(ctx, order.ID, order.Status, next)
	if err != nil {
		if err == orderapp.ErrNotFound {
			return orderdomain.Order{}, &InvalidTransitionError{
				OrderID:   order.ID,
				From:      order.Status,
				Attempted: next,
			}
		}
		return orderdomain.Order{}, err
	}
	return updated, nil
}
