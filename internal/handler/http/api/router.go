package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/app/catalog"
	"github.com/1000011-67/Earthly-Liquids/internal/app/orders"
)

func NewRouter(catalogService catalog.CatalogService, orderService orders.OrderService, logger *zap.Logger) http.Handler {
	handler := NewAPIHandler(catalogService, orderService, logger.With(zap.String("component", "APIHandler")))

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// The storefront is served from arbitrary hosts, so any origin may call
	// the API, credentials included.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handler.GetProducts)
		r.Get("/products/{productID}", handler.GetProduct)
		r.Post("/create-order", handler.CreateOrder)
		r.Post("/verify-payment", handler.VerifyPayment)
		r.Get("/orders", handler.GetOrders)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Earthly Liquids API is running"})
	})

	return r
}
