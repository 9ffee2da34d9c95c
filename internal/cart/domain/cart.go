package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Item struct {
	ID        string
	CartID    string
	ProductID string
	Quantity  int32
}

// ProductSnapshot is the catalog row resolved into a cart line at read time.
type ProductSnapshot struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Stock    int32
}

type ItemView struct {
	ID       string
	Quantity int32
	Product  ProductSnapshot
}

type View struct {
	ID        string
	Items     []ItemView
	Total     string
	ItemCount int
}

// NewView totals the resolved lines. Total is the exact sum of
// price x quantity formatted to two decimal places; ItemCount counts
// distinct lines, not units.
func NewView(cartID string, items []ItemView) View {
	if items == nil {
		items = make([]ItemView, 0)
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt32(it.Quantity)))
	}

	return View{
		ID:        cartID,
		Items:     items,
		Total:     total.StringFixed(2),
		ItemCount: len(items),
	}
}
