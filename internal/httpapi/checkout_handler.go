package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	checkoutapp "github.com/TheSamadAzeez/nexus-backend/internal/checkout/app"
	orderdomain "github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	svc *checkoutapp.Service

	// payments records payment attempts by result label; nil disables it.
	payments func(result string)
}

func NewCheckoutHandler(svc *checkoutapp.Service, payments func(result string)) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, payments: payments}
}

type processPaymentRequest struct {
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	CardLastFour  string `json:"cardLastFour"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *CheckoutHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if _, err := uuid.Parse(req.OrderID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "orderId must be a UUID")
		return
	}
	if req.PaymentMethod == "" {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "paymentMethod is required")
		return
	}

	settlement, err := h.svc.ProcessPayment(r.Context(), userIDFrom(r.Context()), req.OrderID, req.PaymentMethod, req.CardLastFour)
	if err != nil {
		if h.payments != nil && errors.Is(err, checkoutapp.ErrPaymentDeclined) {
			h.payments("declined")
		}
		handleError(w, err)
		return
	}

	if h.payments != nil {
		h.payments("paid")
	}
	respondJSON(w, http.StatusOK, toPaymentResponseDTO(settlement))
}

func (h *CheckoutHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(orderID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id must be a UUID")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	next := orderdomain.Status(req.Status)
	if !next.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		return
	}

	order, err := h.svc.AdvanceStatus(r.Context(), orderID, next)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTO(order))
}
