package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, name, description, price, image_url, stock, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, image_url, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.ImageURL, p.Stock,
	)

	created, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, prodID)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) SetPrice(ctx context.Context, id string, price decimal.Decimal) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE products SET price = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns,
		prodID, price,
	)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("update price: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) AddStock(ctx context.Context, id string, qty int32) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE products SET stock = stock + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns,
		prodID, qty,
	)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("add stock: %w", err)
	}
	return p, nil
}

// TryDecrementStock compares and decrements in a single statement; an
// affected-row count of zero means the gate refused.
func (r *ProductRepo) TryDecrementStock(ctx context.Context, id string, qty int32) (bool, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return false, app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`,
		prodID, qty,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
