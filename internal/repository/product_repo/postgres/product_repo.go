package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
	"github.com/1000011-67/Earthly-Liquids/internal/repository/product_repo"
)

type pgProductRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewProductRepository(db *sql.DB, logger *zap.Logger) product_repo.ProductRepository {
	return &pgProductRepository{db: db, logger: logger}
}

// Upsert inserts the product or refreshes the existing row in place, so
// repeated seeding never duplicates or wipes catalog rows.
func (r *pgProductRepository) Upsert(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, image_url, features, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			image_url = EXCLUDED.image_url,
			features = EXCLUDED.features,
			stock = EXCLUDED.stock`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		pq.Array(product.Features),
		product.Stock,
	)
	if err != nil {
		r.logger.Error("Failed to upsert product", zap.String("product_id", product.ID), zap.Error(err))
		return fmt.Errorf("failed to upsert product %s: %w", product.ID, err)
	}

	r.logger.Debug("Product upserted", zap.String("product_id", product.ID))
	return nil
}

func (r *pgProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product := &domain.Product{}
	query := `SELECT id, name, description, price, image_url, features, stock FROM products WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.ImageURL,
		pq.Array(&product.Features),
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get product by ID", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	return product, nil
}

func (r *pgProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT id, name, description, price, image_url, features, stock FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query products", zap.Error(err))
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.ImageURL,
			pq.Array(&product.Features),
			&product.Stock,
		); err != nil {
			r.logger.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Rows error for products", zap.Error(err))
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}
