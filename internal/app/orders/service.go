package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
	"github.com/1000011-67/Earthly-Liquids/internal/infrastructure/payment"
	"github.com/1000011-67/Earthly-Liquids/internal/repository/order_repo"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order data")
)

const defaultCurrency = "INR"

type OrderService interface {
	CreatePaymentOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req *VerifyPaymentRequest) (*VerifyPaymentResponse, error)
	GetAllOrders(ctx context.Context) ([]*OrderResponse, error)
}

type orderService struct {
	orderRepo order_repo.OrderRepository
	gateway   payment.Gateway
	logger    *zap.Logger
}

func NewOrderService(orderRepo order_repo.OrderRepository, gateway payment.Gateway, logger *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		gateway:   gateway,
		logger:    logger,
	}
}

func (s *orderService) CreatePaymentOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	if req.Amount <= 0 {
		s.logger.Warn("Rejected payment order with non-positive amount", zap.Int64("amount", req.Amount))
		return nil, ErrInvalidOrder
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	gatewayOrder, err := s.gateway.CreateOrder(ctx, req.Amount, currency)
	if err != nil {
		s.logger.Error("Failed to create gateway order",
			zap.Int64("amount", req.Amount),
			zap.String("currency", currency),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	order, err := domain.NewPaymentOrder(uuid.NewString(), gatewayOrder.ID, req.Amount, currency, req.CustomerDetails)
	if err != nil {
		s.logger.Error("Failed to construct payment order",
			zap.String("razorpay_order_id", gatewayOrder.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to construct payment order: %w", err)
	}

	// The gateway order already exists at this point. A failed insert leaves
	// it orphaned remotely; there is no reconciliation.
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist payment order",
			zap.String("order_id", order.ID),
			zap.String("razorpay_order_id", order.RazorpayOrderID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to store payment order: %w", err)
	}

	s.logger.Info("Payment order created",
		zap.String("order_id", order.ID),
		zap.String("razorpay_order_id", order.RazorpayOrderID),
		zap.Int64("amount", order.Amount),
		zap.String("currency", order.Currency))

	return &CreateOrderResponse{
		OrderID:  gatewayOrder.ID,
		Amount:   gatewayOrder.Amount,
		Currency: gatewayOrder.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

func (s *orderService) VerifyPayment(ctx context.Context, req *VerifyPaymentRequest) (*VerifyPaymentResponse, error) {
	// TODO: check the Razorpay payment signature here instead of trusting the
	// client-reported ids.
	err := s.orderRepo.MarkPaid(ctx, req.RazorpayOrderID, req.RazorpayPaymentID, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("Payment verification for unknown order",
				zap.String("razorpay_order_id", req.RazorpayOrderID))
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Failed to mark order paid",
			zap.String("razorpay_order_id", req.RazorpayOrderID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}

	s.logger.Info("Payment verified",
		zap.String("razorpay_order_id", req.RazorpayOrderID),
		zap.String("payment_id", req.RazorpayPaymentID))

	return &VerifyPaymentResponse{
		Status:  "success",
		Message: "Payment verified successfully",
	}, nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all orders from repository", zap.Error(err))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return mapOrdersToResponse(orders), nil
}
