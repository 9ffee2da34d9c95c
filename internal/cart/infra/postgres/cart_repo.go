package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TheSamadAzeez/nexus-backend/internal/cart/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) GetOrCreate(ctx context.Context, userID string) (domain.Cart, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Cart{}, app.ErrInvalidInput
	}

	// 1) Try get
	cart, err := r.byUser(ctx, userUUID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, err
	}

	// 2) Not found => try create
	_, createErr := r.db.ExecContext(ctx, `INSERT INTO carts (user_id) VALUES ($1)`, userUUID)
	if createErr != nil {
		// 3) Someone else created concurrently => re-get
		var pqErr *pq.Error
		if !errors.As(createErr, &pqErr) || string(pqErr.Code) != pqUniqueViolation {
			return domain.Cart{}, fmt.Errorf("create cart: %w", createErr)
		}
	}

	return r.byUser(ctx, userUUID)
}

func (r *CartRepo) byUser(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	var c domain.Cart
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Cart{}, err
	}
	return c, nil
}

func (r *CartRepo) Item(ctx context.Context, cartID, itemID string) (domain.Item, error) {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return domain.Item{}, app.ErrNotFound
	}
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.Item{}, app.ErrNotFound
	}

	var it domain.Item
	err = r.db.QueryRowContext(ctx, `
		SELECT id, cart_id, product_id, quantity FROM cart_items
		WHERE id = $1 AND cart_id = $2`,
		itemUUID, cartUUID,
	).Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("query cart item: %w", err)
	}
	return it, nil
}

func (r *CartRepo) ItemByProduct(ctx context.Context, cartID, productID string) (domain.Item, error) {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return domain.Item{}, app.ErrNotFound
	}
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return domain.Item{}, app.ErrNotFound
	}

	var it domain.Item
	err = r.db.QueryRowContext(ctx, `
		SELECT id, cart_id, product_id, quantity FROM cart_items
		WHERE cart_id = $1 AND product_id = $2`,
		cartUUID, productUUID,
	).Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("query cart item by product: %w", err)
	}
	return it, nil
}

func (r *CartRepo) UpsertItem(ctx context.Context, cartID, productID string, quantity int32) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidInput
	}
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return app.ErrInvalidInput
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		cartUUID, productUUID, quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

func (r *CartRepo) SetItemQuantity(ctx context.Context, itemID string, quantity int32) error {
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $2, updated_at = now() WHERE id = $1`,
		itemUUID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set item quantity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrNotFound
	}
	return nil
}

func (r *CartRepo) RemoveItem(ctx context.Context, cartID, itemID string) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrNotFound
	}
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`,
		itemUUID, cartUUID,
	)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrNotFound
	}
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, cartID string) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidInput
	}

	_, err = r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartUUID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *CartRepo) ItemViews(ctx context.Context, cartID string) ([]domain.ItemView, error) {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return nil, app.ErrInvalidInput
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.id, ci.quantity, p.id, p.name, p.price, p.image_url, p.stock
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at`,
		cartUUID,
	)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ItemView, 0)
	for rows.Next() {
		var iv domain.ItemView
		if err := rows.Scan(
			&iv.ID, &iv.Quantity,
			&iv.Product.ID, &iv.Product.Name, &iv.Product.Price, &iv.Product.ImageURL, &iv.Product.Stock,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
