package httpapi

import (
	"errors"
	"net/http"

	cartapp "github.com/TheSamadAzeez/nexus-backend/internal/cart/app"
	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	checkoutapp "github.com/TheSamadAzeez/nexus-backend/internal/checkout/app"
	orderapp "github.com/TheSamadAzeez/nexus-backend/internal/order/app"
)

// errorStatus maps the core's typed failures onto conventional status codes.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, cartapp.ErrNotFound),
		errors.Is(err, orderapp.ErrNotFound):
		return http.StatusNotFound, "not_found"

	case errors.Is(err, orderapp.ErrEmptyCart):
		return http.StatusBadRequest, "empty_cart"

	case errors.Is(err, checkoutapp.ErrPaymentDeclined):
		return http.StatusBadRequest, "payment_declined"

	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_argument"

	case errors.Is(err, catalogapp.ErrOutOfStock):
		return http.StatusConflict, "out_of_stock"

	case errors.Is(err, checkoutapp.ErrInvalidStateTransition):
		return http.StatusConflict, "invalid_state_transition"

	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func handleError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	respondError(w, status, code, msg)
}
