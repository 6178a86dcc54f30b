package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	checkoutctrl "storefront/internal/checkout/controller"
	clientctrl "storefront/internal/client/controller"
	"storefront/internal/commons"
	invoicectrl "storefront/internal/invoice/controller"
	productctrl "storefront/internal/product/controller"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Routes struct {
	Clients  *clientctrl.Controller
	Products *productctrl.Controller
	Invoices *invoicectrl.Controller
	Checkout *checkoutctrl.Controller

	DB      Pinger
	Metrics http.Handler
	// Instrument and Idempotency are optional.
	Instrument  func(http.Handler) http.Handler
	Idempotency func(http.Handler) http.Handler
}

func NewRouter(routes Routes, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if routes.Instrument != nil {
		r.Use(routes.Instrument)
	}

	r.Get("/health", healthHandler(routes.DB, logger))
	if routes.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", routes.Metrics)
	}

	r.Route("/customer", func(r chi.Router) {
		r.Post("/", routes.Clients.AddClient)
		r.Get("/{id}", routes.Clients.FindClient)
	})

	r.Route("/product", func(r chi.Router) {
		r.Post("/", routes.Products.AddProduct)
		r.Get("/", routes.Products.ListProducts)
		r.Get("/{id}", routes.Products.FindProduct)
		r.Get("/{id}/stock", routes.Products.CheckStock)
	})

	r.Get("/invoice/{id}", routes.Invoices.FindInvoice)

	r.Route("/checkout", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if routes.Idempotency != nil {
				r.Use(routes.Idempotency)
			}
			r.Post("/", routes.Checkout.PlaceOrder)
		})
		r.Get("/{id}", routes.Checkout.FindOrder)
	})

	return r
}

func healthHandler(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			commons.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
			return
		}
		commons.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
