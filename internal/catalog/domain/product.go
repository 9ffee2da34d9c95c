package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Stock       int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
