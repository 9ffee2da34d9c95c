package httpapi

import (
	"errors"
	"net/http"
	"testing"

	cartapp "github.com/TheSamadAzeez/nexus-backend/internal/cart/app"
	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	checkoutapp "github.com/TheSamadAzeez/nexus-backend/internal/checkout/app"
	orderapp "github.com/TheSamadAzeez/nexus-backend/internal/order/app"
	orderdomain "github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"catalog not found", catalogapp.ErrNotFound, http.StatusNotFound, "not_found"},
		{"cart not found", cartapp.ErrNotFound, http.StatusNotFound, "not_found"},
		{"order not found", orderapp.ErrNotFound, http.StatusNotFound, "not_found"},
		{"empty cart", orderapp.ErrEmptyCart, http.StatusBadRequest, "empty_cart"},
		{"payment declined", &checkoutapp.PaymentDeclinedError{Reason: "no funds"}, http.StatusBadRequest, "payment_declined"},
		{"invalid argument", catalogapp.ErrInvalidInput, http.StatusBadRequest, "invalid_argument"},
		{
			"out of stock",
			&catalogapp.OutOfStockError{ProductID: "p-1", Requested: 3, Available: 1},
			http.StatusConflict, "out_of_stock",
		},
		{
			"invalid transition",
			&checkoutapp.InvalidTransitionError{OrderID: "o-1", From: orderdomain.StatusPaid, Attempted: orderdomain.StatusPending},
			http.StatusConflict, "invalid_state_transition",
		},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := errorStatus(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.code, code)
		})
	}
}
