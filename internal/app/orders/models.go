package orders

import (
	"time"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
)

type CreateOrderRequest struct {
	Amount          int64                  `json:"amount"`
	Currency        string                 `json:"currency"`
	CustomerDetails map[string]interface{} `json:"customer_details"`
}

// CreateOrderResponse carries what a checkout client needs to open the
// payment widget: the gateway's order id and the public key half.
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
}

type VerifyPaymentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type OrderResponse struct {
	ID              string                 `json:"id"`
	RazorpayOrderID string                 `json:"razorpay_order_id"`
	Amount          int64                  `json:"amount"`
	Currency        string                 `json:"currency"`
	CustomerDetails map[string]interface{} `json:"customer_details"`
	PaymentID       string                 `json:"payment_id,omitempty"`
	Status          string                 `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       *time.Time             `json:"updated_at,omitempty"`
}

func mapOrderToResponse(order *domain.PaymentOrder) *OrderResponse {
	return &OrderResponse{
		ID:              order.ID,
		RazorpayOrderID: order.RazorpayOrderID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		CustomerDetails: order.CustomerDetails,
		PaymentID:       order.PaymentID,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func mapOrdersToResponse(orders []*domain.PaymentOrder) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, mapOrderToResponse(order))
	}
	return responses
}
