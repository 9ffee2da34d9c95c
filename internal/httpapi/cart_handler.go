package httpapi

import (
	"encoding/json"
	"net/http"

	cartapp "github.com/TheSamadAzeez/nexus-backend/internal/cart/app"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CartHandler struct {
	svc *cartapp.Service
}

func NewCartHandler(svc *cartapp.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

type updateItemRequest struct {
	Quantity *int32 `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCart(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartViewDTO(view))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if _, err := uuid.Parse(req.ProductID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId must be a UUID")
		return
	}
	if req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
		return
	}

	view, err := h.svc.AddItem(r.Context(), userIDFrom(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCartViewDTO(view))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(itemID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item id must be a UUID")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "quantity is required")
		return
	}
	if *req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
		return
	}

	view, err := h.svc.UpdateItem(r.Context(), userIDFrom(r.Context()), itemID, *req.Quantity)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartViewDTO(view))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(itemID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item id must be a UUID")
		return
	}

	view, err := h.svc.RemoveItem(r.Context(), userIDFrom(r.Context()), itemID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartViewDTO(view))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearCart(r.Context(), userIDFrom(r.Context())); err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared successfully"})
}
