package httpapi

import (
	"time"

	cartdomain "github.com/TheSamadAzeez/nexus-backend/internal/cart/domain"
	catalogdomain "github.com/TheSamadAzeez/nexus-backend/internal/catalog/domain"
	checkoutapp "github.com/TheSamadAzeez/nexus-backend/internal/checkout/app"
	orderdomain "github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
)

type productDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Stock       int32     `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProductDTO(p catalogdomain.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type cartProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
	Stock    int32  `json:"stock"`
}

type cartItemDTO struct {
	ID       string         `json:"id"`
	Quantity int32          `json:"quantity"`
	Product  cartProductDTO `json:"product"`
}

type cartViewDTO struct {
	ID        string        `json:"id"`
	Items     []cartItemDTO `json:"items"`
	Total     string        `json:"total"`
	ItemCount int           `json:"itemCount"`
}

func toCartViewDTO(v cartdomain.View) cartViewDTO {
	items := make([]cartItemDTO, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, cartItemDTO{
			ID:       it.ID,
			Quantity: it.Quantity,
			Product: cartProductDTO{
				ID:       it.Product.ID,
				Name:     it.Product.Name,
				Price:    it.Product.Price.StringFixed(2),
				ImageURL: it.Product.ImageURL,
				Stock:    it.Product.Stock,
			},
		})
	}

	return cartViewDTO{
		ID:        v.ID,
		Items:     items,
		Total:     v.Total,
		ItemCount: v.ItemCount,
	}
}

type orderProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type orderItemDTO struct {
	ID       string          `json:"id"`
	Quantity int32           `json:"quantity"`
	Price    string          `json:"price"`
	Product  orderProductDTO `json:"product"`
}

type orderDTO struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Status      string         `json:"status"`
	TotalAmount string         `json:"totalAmount"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Items       []orderItemDTO `json:"items,omitempty"`
}

func toOrderDTO(o orderdomain.Order) orderDTO {
	dto := orderDTO{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount.StringFixed(2),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	for _, it := range o.Items {
		dto.Items = append(dto.Items, orderItemDTO{
			ID:       it.ID,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
			Product: orderProductDTO{
				ID:       it.Product.ID,
				Name:     it.Product.Name,
				ImageURL: it.Product.ImageURL,
			},
		})
	}

	return dto
}

type paymentDTO struct {
	TransactionID string    `json:"transactionId"`
	PaymentMethod string    `json:"paymentMethod"`
	CardLastFour  string    `json:"cardLastFour,omitempty"`
	Amount        string    `json:"amount"`
	ProcessedAt   time.Time `json:"processedAt"`
}

type paymentResponseDTO struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Order   orderDTO   `json:"order"`
	Payment paymentDTO `json:"payment"`
}

func toPaymentResponseDTO(s checkoutapp.Settlement) paymentResponseDTO {
	return paymentResponseDTO{
		Success: true,
		Message: "Payment processed successfully",
		Order:   toOrderDTO(s.Order),
		Payment: paymentDTO{
			TransactionID: s.Receipt.TransactionID,
			PaymentMethod: s.Receipt.PaymentMethod,
			CardLastFour:  s.Receipt.CardLastFour,
			Amount:        s.Receipt.Amount.StringFixed(2),
			ProcessedAt:   s.Receipt.ProcessedAt,
		},
	}
}
