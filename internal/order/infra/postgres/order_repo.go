package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/order/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	pqSerializationFailure = "40001"

	// checkout transactions retry this many times on serialization
	// failures before giving up.
	maxCheckoutAttempts = 3
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *OrderRepo) CheckoutLines(ctx context.Context, userID string) (string, []app.CheckoutLine, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", nil, app.ErrEmptyCart
	}

	var cartID string
	err = r.db.QueryRowContext(ctx, `SELECT id FROM carts WHERE user_id = $1`, userUUID).Scan(&cartID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("query cart: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.product_id, p.name, p.price, p.stock, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at`,
		cartID,
	)
	if err != nil {
		return "", nil, fmt.Errorf("query cart lines: %w", err)
	}
	defer rows.Close()

	var lines []app.CheckoutLine
	for rows.Next() {
		var l app.CheckoutLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Price, &l.Stock, &l.Quantity); err != nil {
			return "", nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return "", nil, err
	}

	return cartID, lines, nil
}

// CreateFromCart runs the whole checkout in one transaction: order insert,
// item inserts with frozen prices, one conditional decrement per line, cart
// clear. Losing a stock race aborts everything. Serialization failures are
// retried a bounded number of times; a refused decrement is not retried,
// only restocking could change its outcome.
func (r *OrderRepo) CreateFromCart(ctx context.Context, order domain.Order, cartID string) (domain.Order, error) {
	userUUID, err := uuid.Parse(order.UserID)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}

	var orderID string
	attempt := func() error {
		return r.execTX(ctx, func(tx *sql.Tx) error {
			err := tx.QueryRowContext(ctx, `
				INSERT INTO orders (user_id, status, total_amount)
				VALUES ($1, $2, $3)
				RETURNING id`,
				userUUID, order.Status, order.TotalAmount,
			).Scan(&orderID)
			if err != nil {
				return fmt.Errorf("insert order: %w", err)
			}

			for _, item := range order.Items {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO order_items (order_id, product_id, quantity, price)
					VALUES ($1, $2, $3, $4)`,
					orderID, item.ProductID, item.Quantity, item.Price,
				); err != nil {
					return fmt.Errorf("insert order item: %w", err)
				}

				res, err := tx.ExecContext(ctx, `
					UPDATE products SET stock = stock - $2, updated_at = now()
					WHERE id = $1 AND stock >= $2`,
					item.ProductID, item.Quantity,
				)
				if err != nil {
					return fmt.Errorf("decrement stock: %w", err)
				}
				n, err := res.RowsAffected()
				if err != nil {
					return err
				}
				if n == 0 {
					// Lost the race for the last units. The tx
					// is still healthy, so read the current row
					// to report what was actually available.
					oos := &catalogapp.OutOfStockError{ProductID: item.ProductID, Requested: item.Quantity}
					_ = tx.QueryRowContext(ctx, `SELECT name, stock FROM products WHERE id = $1`,
						item.ProductID).Scan(&oos.Name, &oos.Available)
					return oos
				}
			}

			if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
				return fmt.Errorf("clear cart: %w", err)
			}
			return nil
		})
	}

	err = attempt()
	for i := 1; i < maxCheckoutAttempts && isSerializationFailure(err); i++ {
		err = attempt()
	}
	if isSerializationFailure(err) {
		// Exhausted retries while contending for stock rows.
		err = catalogapp.ErrOutOfStock
	}
	if err != nil {
		return domain.Order{}, err
	}

	return r.Get(ctx, orderID)
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return []domain.Order{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, status, total_amount, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userUUID,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) Get(ctx context.Context, orderID string) (domain.Order, error) {
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}

	var o domain.Order
	err = r.db.QueryRowContext(ctx, `
		SELECT id, user_id, status, total_amount, created_at, updated_at
		FROM orders WHERE id = $1`,
		orderUUID,
	).Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("query order: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       p.id, p.name, p.image_url
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at`,
		orderUUID,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&it.Product.ID, &it.Product.Name, &it.Product.ImageURL,
		); err != nil {
			return domain.Order{}, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, err
	}

	return o, nil
}

// SetStatus performs the conditional transition write. Zero affected rows
// means the order is gone or its status moved concurrently.
func (r *OrderRepo) SetStatus(ctx context.Context, orderID string, from, to domain.Status) (domain.Order, error) {
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}

	var o domain.Order
	err = r.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING id, user_id, status, total_amount, created_at, updated_at`,
		orderUUID, from, to,
	).Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}
	return o, nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqSerializationFailure
}
