package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/TheSamadAzeez/nexus-backend/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// AuthMiddleware resolves the identity collaborator. The authenticated user
// id arrives as the X-User-ID header (set by the auth proxy in front of this
// service); the core only ever sees the explicit parameter.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if _, err := uuid.Parse(raw); err != nil {
			respondError(w, http.StatusUnauthorized, "unauthenticated", "missing or invalid user identity")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, raw)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// MetricsMiddleware records request counts and latency per route pattern.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.Requests.WithLabelValues(route, http.StatusText(ww.Status())).Inc()
			m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
		})
	}
}
