package order_repo

import (
	"context"
	"time"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.PaymentOrder) error
	GetAll(ctx context.Context) ([]*domain.PaymentOrder, error)
	// MarkPaid records the payment against the order identified by the
	// gateway's order id. Returns sql.ErrNoRows when no such order exists.
	MarkPaid(ctx context.Context, razorpayOrderID, paymentID string, paidAt time.Time) error
}
