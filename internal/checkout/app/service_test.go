package app

import (
	"context"
	"errors"
	"testing"
	"time"

	orderapp "github.com/TheSamadAzeez/nexus-backend/internal/order/app"
	orderdomain "github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/shopspring/decimal"
)

type fakeOrderStore struct {
	orders map[string]orderdomain.Order
}

func newFakeOrderStore(orders ...orderdomain.Order) *fakeOrderStore {
	s := &fakeOrderStore{orders: make(map[string]orderdomain.Order)}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *fakeOrderStore) Get(_ context.Context, orderID string) (orderdomain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return orderdomain.Order{}, orderapp.ErrNotFound
	}
	return o, nil
}

func (s *fakeOrderStore) SetStatus(_ context.Context, orderID string, from, to orderdomain.Status) (orderdomain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok || o.Status != from {
		return orderdomain.Order{}, orderapp.ErrNotFound
	}
	o.Status = to
	s.orders[orderID] = o
	return o, nil
}

type scriptedProcessor struct {
	result PaymentResult
	err    error
	calls  int
}

func (p *scriptedProcessor) Process(_ context.Context, _ decimal.Decimal, _ string) (PaymentResult, error) {
	p.calls++
	return p.result, p.err
}

func pendingOrder() orderdomain.Order {
	return orderdomain.Order{
		ID:          "order-1",
		UserID:      "u-1",
		Status:      orderdomain.StatusPending,
		TotalAmount: decimal.NewFromInt(100),
	}
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("missing method -> invalid", func(t *testing.T) {
		svc := NewService(newFakeOrderStore(pendingOrder()), &scriptedProcessor{})
		_, err := svc.ProcessPayment(ctx, "u-1", "order-1", "  ", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("success -> PAID with receipt", func(t *testing.T) {
		store := newFakeOrderStore(pendingOrder())
		proc := &scriptedProcessor{result: PaymentResult{Success: true, TransactionID: "TXN_1_ABCDEFGHI"}}
		svc := NewService(store, proc)
		svc.now = func() time.Time { return at }

		settlement, err := svc.ProcessPayment(ctx, "u-1", "order-1", "credit_card", "4242")
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		if settlement.Order.Status != orderdomain.StatusPaid {
			t.Fatalf("expected PAID, got %s", settlement.Order.Status)
		}
		if settlement.Receipt.TransactionID != "TXN_1_ABCDEFGHI" {
			t.Fatalf("unexpected transaction id %q", settlement.Receipt.TransactionID)
		}
		if got := settlement.Receipt.Amount.StringFixed(2); got != "100.00" {
			t.Fatalf("expected amount 100.00, got %s", got)
		}
		if settlement.Receipt.PaymentMethod != "credit_card" || settlement.Receipt.CardLastFour != "4242" {
			t.Fatalf("unexpected receipt %+v", settlement.Receipt)
		}
		if !settlement.Receipt.ProcessedAt.Equal(at) {
			t.Fatalf("unexpected processed at %v", settlement.Receipt.ProcessedAt)
		}
		if store.orders["order-1"].Status != orderdomain.StatusPaid {
			t.Fatal("status not persisted")
		}
	})

	t.Run("declined -> order stays PENDING", func(t *testing.T) {
		store := newFakeOrderStore(pendingOrder())
		proc := &scriptedProcessor{result: PaymentResult{Success: false, Reason: "Payment declined. Please try again."}}
		svc := NewService(store, proc)

		_, err := svc.ProcessPayment(ctx, "u-1", "order-1", "credit_card", "")
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected declined, got %v", err)
		}

		var declined *PaymentDeclinedError
		if !errors.As(err, &declined) || declined.Reason == "" {
			t.Fatalf("expected reason on declined error, got %v", err)
		}
		if store.orders["order-1"].Status != orderdomain.StatusPending {
			t.Fatal("declined payment must not move the order")
		}
	})

	t.Run("already paid -> invalid transition, processor untouched", func(t *testing.T) {
		paid := pendingOrder()
		paid.Status = orderdomain.StatusPaid
		proc := &scriptedProcessor{result: PaymentResult{Success: true}}
		svc := NewService(newFakeOrderStore(paid), proc)

		_, err := svc.ProcessPayment(ctx, "u-1", "order-1", "credit_card", "")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
		if proc.calls != 0 {
			t.Fatalf("processor must not be charged, got %d calls", proc.calls)
		}
	})

	t.Run("foreign order reads like a missing one", func(t *testing.T) {
		svc := NewService(newFakeOrderStore(pendingOrder()), &scriptedProcessor{})
		_, err := svc.ProcessPayment(ctx, "u-2", "order-1", "credit_card", "")
		if !errors.Is(err, orderapp.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("unknown order -> not found", func(t *testing.T) {
		svc := NewService(newFakeOrderStore(), &scriptedProcessor{})
		_, err := svc.ProcessPayment(ctx, "u-1", "order-404", "credit_card", "")
		if !errors.Is(err, orderapp.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestAdvanceStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("PAID -> SHIPPED", func(t *testing.T) {
		o := pendingOrder()
		o.Status = orderdomain.StatusPaid
		svc := NewService(newFakeOrderStore(o), &scriptedProcessor{})

		updated, err := svc.AdvanceStatus(ctx, "order-1", orderdomain.StatusShipped)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if updated.Status != orderdomain.StatusShipped {
			t.Fatalf("expected SHIPPED, got %s", updated.Status)
		}
	})

	t.Run("PENDING -> CANCELLED", func(t *testing.T) {
		svc := NewService(newFakeOrderStore(pendingOrder()), &scriptedProcessor{})

		updated, err := svc.AdvanceStatus(ctx, "order-1", orderdomain.StatusCancelled)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if updated.Status != orderdomain.StatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", updated.Status)
		}
	})

	t.Run("skipping a step -> invalid transition", func(t *testing.T) {
		svc := NewService(newFakeOrderStore(pendingOrder()), &scriptedProcessor{})

		_, err := svc.AdvanceStatus(ctx, "order-1", orderdomain.StatusDelivered)
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("backward move -> invalid transition", func(t *testing.T) {
		o := pendingOrder()
		o.Status = orderdomain.StatusDelivered
		svc := NewService(newFakeOrderStore(o), &scriptedProcessor{})

		_, err := svc.AdvanceStatus(ctx, "order-1", orderdomain.StatusShipped)
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("unknown status -> invalid", func(t *testing.T) {
		svc := NewService(newFakeOrderStore(pendingOrder()), &scriptedProcessor{})

		_, err := svc.AdvanceStatus(ctx, "order-1", orderdomain.Status("PROCESSING"))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}
