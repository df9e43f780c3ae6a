package domain

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)

// PaymentOrder is the persisted record of a gateway order. RazorpayOrderID is
// assigned by the gateway and never changes; Status only moves created -> paid.
type PaymentOrder struct {
	ID              string
	RazorpayOrderID string
	Amount          int64
	Currency        string
	CustomerDetails map[string]interface{}
	PaymentID       string
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func NewPaymentOrder(id, razorpayOrderID string, amount int64, currency string, customerDetails map[string]interface{}) (*PaymentOrder, error) {
	if id == "" || razorpayOrderID == "" || amount <= 0 || currency == "" {
		return nil, errors.New("invalid payment order data")
	}

	return &PaymentOrder{
		ID:              id,
		RazorpayOrderID: razorpayOrderID,
		Amount:          amount,
		Currency:        currency,
		CustomerDetails: customerDetails,
		Status:          OrderStatusCreated,
		CreatedAt:       time.Now(),
	}, nil
}
