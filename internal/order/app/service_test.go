package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// fakeOrderRepo mirrors the Postgres repo's contract: CreateFromCart is one
// atomic unit that decrements stock through a conditional gate and clears the
// cart, rolling back entirely on a refused line.
type fakeOrderRepo struct {
	mu sync.Mutex

	stock  map[string]int32
	prices map[string]decimal.Decimal
	carts  map[string][]CheckoutLine // userID -> lines
	orders map[string]domain.Order
	next   int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		stock:  make(map[string]int32),
		prices: make(map[string]decimal.Decimal),
		carts:  make(map[string][]CheckoutLine),
		orders: make(map[string]domain.Order),
	}
}

func (r *fakeOrderRepo) addProduct(id string, price string, stock int32) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	r.stock[id] = stock
	r.prices[id] = d
}

func (r *fakeOrderRepo) fillCart(userID string, productID string, qty int32) {
	r.carts[userID] = append(r.carts[userID], CheckoutLine{ProductID: productID, Quantity: qty})
}

func (r *fakeOrderRepo) CheckoutLines(_ context.Context, userID string) (string, []CheckoutLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines, ok := r.carts[userID]
	if !ok {
		return "", nil, nil
	}

	out := make([]CheckoutLine, 0, len(lines))
	for _, l := range lines {
		l.Price = r.prices[l.ProductID]
		l.Stock = r.stock[l.ProductID]
		l.Name = l.ProductID
		out = append(out, l)
	}
	return "cart-" + userID, out, nil
}

func (r *fakeOrderRepo) CreateFromCart(_ context.Context, order domain.Order, cartID string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range order.Items {
		if r.stock[it.ProductID] < it.Quantity {
			return domain.Order{}, &catalogapp.OutOfStockError{
				ProductID: it.ProductID,
				Requested: it.Quantity,
				Available: r.stock[it.ProductID],
			}
		}
	}
	for _, it := range order.Items {
		r.stock[it.ProductID] -= it.Quantity
	}

	r.next++
	order.ID = fmt.Sprintf("order-%d", r.next)
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = order
	delete(r.carts, order.UserID)

	return order, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Get(_ context.Context, orderID string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	return o, nil
}

func TestCreateFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("missing cart -> empty cart", func(t *testing.T) {
		svc := NewService(newFakeOrderRepo())
		_, err := svc.CreateFromCart(ctx, "u-1")
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("happy path freezes prices and clears the cart", func(t *testing.T) {
		repo := newFakeOrderRepo()
		repo.addProduct("p-1", "89.99", 5)
		repo.addProduct("p-2", "59.99", 3)
		repo.fillCart("u-1", "p-1", 2)
		repo.fillCart("u-1", "p-2", 1)
		svc := NewService(repo)

		order, err := svc.CreateFromCart(ctx, "u-1")
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if order.Status != domain.StatusPending {
			t.Fatalf("expected PENDING, got %s", order.Status)
		}
		if got := order.TotalAmount.StringFixed(2); got != "239.97" {
			t.Fatalf("expected total 239.97, got %s", got)
		}
		if len(order.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(order.Items))
		}
		if repo.stock["p-1"] != 3 || repo.stock["p-2"] != 2 {
			t.Fatalf("stock not decremented: p-1=%d p-2=%d", repo.stock["p-1"], repo.stock["p-2"])
		}
		if _, ok := repo.carts["u-1"]; ok {
			t.Fatal("cart must be cleared after checkout")
		}

		// A later catalog price change must not touch the frozen line.
		repo.prices["p-1"] = decimal.NewFromInt(999)
		got, err := svc.FindOne(ctx, "u-1", order.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if p := got.Items[0].Price.StringFixed(2); p != "89.99" {
			t.Fatalf("frozen price changed: %s", p)
		}
		if tot := got.TotalAmount.StringFixed(2); tot != "239.97" {
			t.Fatalf("frozen total changed: %s", tot)
		}
	})

	t.Run("insufficient stock -> out of stock, nothing committed", func(t *testing.T) {
		repo := newFakeOrderRepo()
		repo.addProduct("p-1", "10.00", 1)
		repo.fillCart("u-1", "p-1", 2)
		svc := NewService(repo)

		_, err := svc.CreateFromCart(ctx, "u-1")
		if !errors.Is(err, catalogapp.ErrOutOfStock) {
			t.Fatalf("expected out of stock, got %v", err)
		}

		if repo.stock["p-1"] != 1 {
			t.Fatalf("stock must be untouched, got %d", repo.stock["p-1"])
		}
		if _, ok := repo.carts["u-1"]; !ok {
			t.Fatal("cart must survive a failed checkout")
		}
	})

	t.Run("two buyers race one unit -> exactly one order", func(t *testing.T) {
		repo := newFakeOrderRepo()
		repo.addProduct("p-1", "10.00", 1)
		repo.fillCart("u-1", "p-1", 1)
		repo.fillCart("u-2", "p-1", 1)
		svc := NewService(repo)

		results := make(chan error, 2)
		var g errgroup.Group
		for _, user := range []string{"u-1", "u-2"} {
			g.Go(func() error {
				_, err := svc.CreateFromCart(ctx, user)
				results <- err
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("wait: %v", err)
		}
		close(results)

		var won, lost int
		for err := range results {
			switch {
			case err == nil:
				won++
			case errors.Is(err, catalogapp.ErrOutOfStock):
				lost++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if won != 1 || lost != 1 {
			t.Fatalf("expected one winner and one refusal, got won=%d lost=%d", won, lost)
		}
		if repo.stock["p-1"] != 0 {
			t.Fatalf("expected stock 0, got %d", repo.stock["p-1"])
		}
	})
}

func TestFindOne(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	repo.addProduct("p-1", "10.00", 5)
	repo.fillCart("u-1", "p-1", 1)
	svc := NewService(repo)

	order, err := svc.CreateFromCart(ctx, "u-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("owner sees the order", func(t *testing.T) {
		got, err := svc.FindOne(ctx, "u-1", order.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if got.ID != order.ID {
			t.Fatalf("expected %s, got %s", order.ID, got.ID)
		}
	})

	t.Run("foreign order reads like a missing one", func(t *testing.T) {
		_, err := svc.FindOne(ctx, "u-2", order.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := svc.FindOne(ctx, "u-1", "order-404")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
