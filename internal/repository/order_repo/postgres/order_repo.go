package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
	"github.com/1000011-67/Earthly-Liquids/internal/repository/order_repo"
)

type pgOrderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewOrderRepository(db *sql.DB, logger *zap.Logger) order_repo.OrderRepository {
	return &pgOrderRepository{db: db, logger: logger}
}

func (r *pgOrderRepository) Create(ctx context.Context, order *domain.PaymentOrder) error {
	customerDetails, err := json.Marshal(order.CustomerDetails)
	if err != nil {
		return fmt.Errorf("failed to marshal customer details: %w", err)
	}

	query := `INSERT INTO payment_orders (id, razorpay_order_id, amount, currency, customer_details, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.ExecContext(ctx, query,
		order.ID,
		order.RazorpayOrderID,
		order.Amount,
		order.Currency,
		customerDetails,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create payment order",
			zap.String("order_id", order.ID),
			zap.String("razorpay_order_id", order.RazorpayOrderID),
			zap.Error(err))
		return fmt.Errorf("failed to create payment order: %w", err)
	}

	r.logger.Debug("Payment order created", zap.String("order_id", order.ID))
	return nil
}

func (r *pgOrderRepository) GetAll(ctx context.Context) ([]*domain.PaymentOrder, error) {
	query := `SELECT id, razorpay_order_id, amount, currency, customer_details, payment_id, status, created_at, updated_at FROM payment_orders ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query payment orders", zap.Error(err))
		return nil, fmt.Errorf("failed to query payment orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.PaymentOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.logger.Error("Failed to scan payment order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Rows error for payment orders", zap.Error(err))
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// MarkPaid flips the order to paid and records the payment id. Re-verifying an
// already paid order just rewrites the same terminal state.
func (r *pgOrderRepository) MarkPaid(ctx context.Context, razorpayOrderID, paymentID string, paidAt time.Time) error {
	query := `UPDATE payment_orders SET payment_id = $2, status = $3, updated_at = $4 WHERE razorpay_order_id = $1`

	result, err := r.db.ExecContext(ctx, query, razorpayOrderID, paymentID, domain.OrderStatusPaid, paidAt)
	if err != nil {
		r.logger.Error("Failed to mark payment order paid",
			zap.String("razorpay_order_id", razorpayOrderID),
			zap.Error(err))
		return fmt.Errorf("failed to mark payment order paid: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get rows affected for payment order update",
			zap.String("razorpay_order_id", razorpayOrderID),
			zap.Error(err))
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("No rows affected when marking order paid, order might not exist",
			zap.String("razorpay_order_id", razorpayOrderID))
		return sql.ErrNoRows
	}

	return nil
}

func scanOrder(rows *sql.Rows) (*domain.PaymentOrder, error) {
	order := &domain.PaymentOrder{}
	var customerDetails []byte
	var paymentID sql.NullString
	var updatedAt sql.NullTime

	if err := rows.Scan(
		&order.ID,
		&order.RazorpayOrderID,
		&order.Amount,
		&order.Currency,
		&customerDetails,
		&paymentID,
		&order.Status,
		&order.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan payment order row: %w", err)
	}

	if len(customerDetails) > 0 {
		if err := json.Unmarshal(customerDetails, &order.CustomerDetails); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customer details: %w", err)
		}
	}
	if paymentID.Valid {
		order.PaymentID = paymentID.String
	}
	if updatedAt.Valid {
		order.UpdatedAt = &updatedAt.Time
	}

	return order, nil
}
