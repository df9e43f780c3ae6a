package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/app/catalog"
	"github.com/1000011-67/Earthly-Liquids/internal/app/orders"
)

type APIHandler struct {
	catalogService catalog.CatalogService
	orderService   orders.OrderService
	logger         *zap.Logger
}

func NewAPIHandler(catalogService catalog.CatalogService, orderService orders.OrderService, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		catalogService: catalogService,
		orderService:   orderService,
		logger:         logger,
	}
}

func (h *APIHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.GetProducts(r.Context())
	if err != nil {
		h.logger.Error("Error listing products", zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *APIHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.catalogService.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			h.logger.Info("Product not found", zap.String("product_id", productID))
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Error getting product", zap.String("product_id", productID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *APIHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for CreateOrder", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.orderService.CreatePaymentOrder(r.Context(), &req)
	if err != nil {
		if errors.Is(err, orders.ErrInvalidOrder) {
			h.logger.Warn("Bad request for CreateOrder", zap.Error(err))
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Error creating payment order", zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, res)
}

func (h *APIHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req orders.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for VerifyPayment", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.orderService.VerifyPayment(r.Context(), &req)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			h.logger.Info("Order not found", zap.String("razorpay_order_id", req.RazorpayOrderID))
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("Error verifying payment", zap.String("razorpay_order_id", req.RazorpayOrderID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, res)
}

func (h *APIHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	allOrders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		h.logger.Error("Error listing orders", zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, allOrders)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError keeps the error body shape the storefront already parses.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
