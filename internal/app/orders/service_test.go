package orders

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
	"github.com/1000011-67/Earthly-Liquids/internal/infrastructure/payment"
)

type stubGateway struct {
	orderID      string
	keyID        string
	err          error
	calls        int
	lastAmount   int64
	lastCurrency string
}

func (g *stubGateway) CreateOrder(ctx context.Context, amount int64, currency string) (*payment.GatewayOrder, error) {
	g.calls++
	g.lastAmount = amount
	g.lastCurrency = currency
	if g.err != nil {
		return nil, g.err
	}
	return &payment.GatewayOrder{ID: g.orderID, Amount: amount, Currency: currency}, nil
}

func (g *stubGateway) KeyID() string {
	return g.keyID
}

type stubOrderRepo struct {
	orders    []*domain.PaymentOrder
	createErr error
	getAllErr error
}

func (s *stubOrderRepo) Create(ctx context.Context, order *domain.PaymentOrder) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.orders = append(s.orders, order)
	return nil
}

func (s *stubOrderRepo) GetAll(ctx context.Context) ([]*domain.PaymentOrder, error) {
	if s.getAllErr != nil {
		return nil, s.getAllErr
	}
	return s.orders, nil
}

func (s *stubOrderRepo) MarkPaid(ctx context.Context, razorpayOrderID, paymentID string, paidAt time.Time) error {
	for _, order := range s.orders {
		if order.RazorpayOrderID == razorpayOrderID {
			order.PaymentID = paymentID
			order.Status = domain.OrderStatusPaid
			at := paidAt
			order.UpdatedAt = &at
			return nil
		}
	}
	return sql.ErrNoRows
}

func newTestService(repo *stubOrderRepo, gateway *stubGateway) OrderService {
	return NewOrderService(repo, gateway, zap.NewNop())
}

func TestCreatePaymentOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	gateway := &stubGateway{orderID: "order_abc123", keyID: "rzp_test_1234567890"}
	service := newTestService(repo, gateway)

	details := map[string]interface{}{
		"name":  "Test Customer",
		"email": "test@example.com",
	}
	res, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{
		Amount:          15900,
		Currency:        "INR",
		CustomerDetails: details,
	})
	require.NoError(t, err)

	assert.Equal(t, "order_abc123", res.OrderID)
	assert.Equal(t, int64(15900), res.Amount)
	assert.Equal(t, "INR", res.Currency)
	assert.Equal(t, "rzp_test_1234567890", res.KeyID)

	require.Len(t, repo.orders, 1)
	stored := repo.orders[0]
	assert.Equal(t, "order_abc123", stored.RazorpayOrderID)
	assert.Equal(t, int64(15900), stored.Amount)
	assert.Equal(t, "INR", stored.Currency)
	assert.Equal(t, details, stored.CustomerDetails)
	assert.Equal(t, domain.OrderStatusCreated, stored.Status)
	assert.Empty(t, stored.PaymentID)
	assert.Nil(t, stored.UpdatedAt)

	_, err = uuid.Parse(stored.ID)
	assert.NoError(t, err)
}

func TestCreatePaymentOrderDefaultsCurrency(t *testing.T) {
	repo := &stubOrderRepo{}
	gateway := &stubGateway{orderID: "order_abc123", keyID: "rzp_test_1234567890"}
	service := newTestService(repo, gateway)

	res, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{Amount: 15900})
	require.NoError(t, err)

	assert.Equal(t, "INR", gateway.lastCurrency)
	assert.Equal(t, "INR", res.Currency)
	require.Len(t, repo.orders, 1)
	assert.Equal(t, "INR", repo.orders[0].Currency)
}

func TestCreatePaymentOrderRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []int64{0, -100} {
		repo := &stubOrderRepo{}
		gateway := &stubGateway{orderID: "order_abc123"}
		service := newTestService(repo, gateway)

		res, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{Amount: amount})
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, ErrInvalidOrder))
		assert.Zero(t, gateway.calls)
		assert.Empty(t, repo.orders)
	}
}

func TestCreatePaymentOrderGatewayError(t *testing.T) {
	repo := &stubOrderRepo{}
	gateway := &stubGateway{err: errors.New("gateway unavailable")}
	service := newTestService(repo, gateway)

	res, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{Amount: 15900})
	assert.Nil(t, res)
	assert.ErrorContains(t, err, "failed to create payment order")
	assert.Empty(t, repo.orders)
}

func TestCreatePaymentOrderStoreError(t *testing.T) {
	repo := &stubOrderRepo{createErr: errors.New("connection refused")}
	gateway := &stubGateway{orderID: "order_abc123"}
	service := newTestService(repo, gateway)

	res, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{Amount: 15900})
	assert.Nil(t, res)
	assert.ErrorContains(t, err, "failed to store payment order")
	assert.Equal(t, 1, gateway.calls)
}

func TestVerifyPayment(t *testing.T) {
	repo := &stubOrderRepo{}
	gateway := &stubGateway{orderID: "order_abc123", keyID: "rzp_test_1234567890"}
	service := newTestService(repo, gateway)

	_, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{Amount: 15900})
	require.NoError(t, err)

	res, err := service.VerifyPayment(context.Background(), &VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz789",
	})
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "Payment verified successfully", res.Message)

	stored := repo.orders[0]
	assert.Equal(t, domain.OrderStatusPaid, stored.Status)
	assert.Equal(t, "pay_xyz789", stored.PaymentID)
	assert.NotNil(t, stored.UpdatedAt)
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	gateway := &stubGateway{}
	service := newTestService(repo, gateway)

	res, err := service.VerifyPayment(context.Background(), &VerifyPaymentRequest{
		RazorpayOrderID:   "order_unknown",
		RazorpayPaymentID: "pay_xyz789",
	})
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrOrderNotFound))
}

func TestVerifyPaymentTwiceKeepsOrderPaid(t *testing.T) {
	repo := &stubOrderRepo{}
	gateway := &stubGateway{orderID: "order_abc123"}
	service := newTestService(repo, gateway)

	_, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{Amount: 15900})
	require.NoError(t, err)

	req := &VerifyPaymentRequest{RazorpayOrderID: "order_abc123", RazorpayPaymentID: "pay_xyz789"}
	_, err = service.VerifyPayment(context.Background(), req)
	require.NoError(t, err)
	_, err = service.VerifyPayment(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPaid, repo.orders[0].Status)
}

func TestGetAllOrders(t *testing.T) {
	repo := &stubOrderRepo{}
	gateway := &stubGateway{orderID: "order_abc123"}
	service := newTestService(repo, gateway)

	_, err := service.CreatePaymentOrder(context.Background(), &CreateOrderRequest{
		Amount:          15900,
		CustomerDetails: map[string]interface{}{"name": "Test Customer"},
	})
	require.NoError(t, err)

	orders, err := service.GetAllOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "order_abc123", orders[0].RazorpayOrderID)
	assert.Equal(t, "created", orders[0].Status)
	assert.Equal(t, map[string]interface{}{"name": "Test Customer"}, orders[0].CustomerDetails)
}

func TestGetAllOrdersEmpty(t *testing.T) {
	service := newTestService(&stubOrderRepo{}, &stubGateway{})

	orders, err := service.GetAllOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Len(t, orders, 0)
}

func TestGetAllOrdersRepositoryError(t *testing.T) {
	repo := &stubOrderRepo{getAllErr: errors.New("connection refused")}
	service := newTestService(repo, &stubGateway{})

	orders, err := service.GetAllOrders(context.Background())
	assert.Nil(t, orders)
	assert.ErrorContains(t, err, "failed to list orders")
}
