package httpapi

import (
	"net/http"

	orderapp "github.com/TheSamadAzeez/nexus-backend/internal/order/app"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderHandler struct {
	svc *orderapp.Service

	// ordersCreated is bumped on successful checkout; nil disables it.
	ordersCreated func()
}

func NewOrderHandler(svc *orderapp.Service, ordersCreated func()) *OrderHandler {
	return &OrderHandler{svc: svc, ordersCreated: ordersCreated}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.CreateFromCart(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		handleError(w, err)
		return
	}
	if h.ordersCreated != nil {
		h.ordersCreated()
	}
	respondJSON(w, http.StatusCreated, toOrderDTO(order))
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.FindAll(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(orderID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id must be a UUID")
		return
	}

	order, err := h.svc.FindOne(r.Context(), userIDFrom(r.Context()), orderID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTO(order))
}
