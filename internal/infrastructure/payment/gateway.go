package payment

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// GatewayOrder is the remote order as the gateway reports it back. Amount and
// Currency are the gateway's echo of what was requested, not the local record.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway creates orders on an external payment provider. Implementations own
// the provider credentials; KeyID exposes the public half for checkout clients.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*GatewayOrder, error)
	KeyID() string
}

type razorpayGateway struct {
	client *razorpay.Client
	keyID  string
	logger *zap.Logger
}

func NewRazorpayGateway(keyID, keySecret string, logger *zap.Logger) Gateway {
	client := razorpay.NewClient(keyID, keySecret)
	logger.Info("Razorpay client initialized", zap.String("key_id", keyID))

	return &razorpayGateway{
		client: client,
		keyID:  keyID,
		logger: logger,
	}
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"payment_capture": 1,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		g.logger.Error("Failed to create Razorpay order",
			zap.Int64("amount", amount),
			zap.String("currency", currency),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	order, err := orderFromResponse(body, amount, currency)
	if err != nil {
		g.logger.Error("Unexpected Razorpay order response", zap.Any("response", body), zap.Error(err))
		return nil, err
	}

	g.logger.Debug("Razorpay order created", zap.String("razorpay_order_id", order.ID))
	return order, nil
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

// orderFromResponse extracts the fields checkout needs from the raw SDK
// response. The SDK decodes JSON numbers as float64; amount and currency fall
// back to the requested values when the gateway omits them.
func orderFromResponse(body map[string]interface{}, requestedAmount int64, requestedCurrency string) (*GatewayOrder, error) {
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, errors.New("razorpay order response missing id")
	}

	order := &GatewayOrder{
		ID:       id,
		Amount:   requestedAmount,
		Currency: requestedCurrency,
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}

	return order, nil
}
