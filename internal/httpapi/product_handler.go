package httpapi

import (
	"encoding/json"
	"net/http"

	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	svc *catalogapp.Service
}

func NewProductHandler(svc *catalogapp.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Stock       int32  `json:"stock"`
}

type updateProductRequest struct {
	Price   *string `json:"price"`
	Restock *int32  `json:"restock"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must be a decimal string")
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), req.Name, req.Description, req.ImageURL, price, req.Stock)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toProductDTO(p))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(productID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a UUID")
		return
	}

	p, err := h.svc.GetProduct(r.Context(), productID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductDTO(p))
}

// Update changes the catalog price and/or adds stock. Orders created before
// a price change keep their frozen prices.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(productID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a UUID")
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Price == nil && req.Restock == nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "price or restock is required")
		return
	}

	ctx := r.Context()

	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_price", "price must be a decimal string")
			return
		}
		if _, err := h.svc.UpdatePrice(ctx, productID, price); err != nil {
			handleError(w, err)
			return
		}
	}

	if req.Restock != nil {
		if _, err := h.svc.Restock(ctx, productID, *req.Restock); err != nil {
			handleError(w, err)
			return
		}
	}

	p, err := h.svc.GetProduct(ctx, productID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductDTO(p))
}
