package httpapi

import (
	"net/http"

	cartapp "github.com/TheSamadAzeez/nexus-backend/internal/cart/app"
	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	checkoutapp "github.com/TheSamadAzeez/nexus-backend/internal/checkout/app"
	orderapp "github.com/TheSamadAzeez/nexus-backend/internal/order/app"
	"github.com/TheSamadAzeez/nexus-backend/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Services struct {
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Orders   *orderapp.Service
	Checkout *checkoutapp.Service
}

func NewRouter(svcs Services, m *metrics.Metrics) http.Handler {
	productHandler := NewProductHandler(svcs.Catalog)
	cartHandler := NewCartHandler(svcs.Cart)

	var ordersCreated func()
	var payments func(string)
	if m != nil {
		ordersCreated = m.OrdersCreated.Inc
		payments = func(result string) { m.Payments.WithLabelValues(result).Inc() }
	}
	orderHandler := NewOrderHandler(svcs.Orders, ordersCreated)
	checkoutHandler := NewCheckoutHandler(svcs.Checkout, payments)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if m != nil {
		r.Use(MetricsMiddleware(m))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Get)
			r.Patch("/{id}", productHandler.Update)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{id}", cartHandler.UpdateItem)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.Create)
			r.Get("/", orderHandler.List)
			r.Get("/{id}", orderHandler.Get)
			r.Patch("/{id}/status", checkoutHandler.UpdateStatus)
		})

		r.Post("/checkout/pay", checkoutHandler.ProcessPayment)
	})

	return r
}
