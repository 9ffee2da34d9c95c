package app

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrOutOfStock   = errors.New("out of stock")
)

// OutOfStockError carries the refused line so callers can name the product.
type OutOfStockError struct {
	ProductID string
	Name      string
	Requested int32
	Available int32
}

func (e *OutOfStockError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
	}
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

func (e *OutOfStockError) Is(target error) bool { return target == ErrOutOfStock }
