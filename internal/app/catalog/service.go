package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/repository/product_repo"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	GetProducts(ctx context.Context) ([]*ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*ProductResponse, error)
	Seed(ctx context.Context) error
}

type catalogService struct {
	productRepo product_repo.ProductRepository
	logger      *zap.Logger
}

func NewCatalogService(productRepo product_repo.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *catalogService) GetProducts(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get products from repository", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return mapProductsToResponse(products), nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Product not found", zap.String("product_id", productID))
			return nil, ErrProductNotFound
		}
		s.logger.Error("Failed to get product from repository", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	return mapProductToResponse(product), nil
}

// Seed upserts the default catalog. Safe to run on every startup: existing
// rows are refreshed in place, never deleted and re-inserted.
func (s *catalogService) Seed(ctx context.Context) error {
	for _, product := range defaultCatalog {
		if err := s.productRepo.Upsert(ctx, product); err != nil {
			s.logger.Error("Failed to seed product", zap.String("product_id", product.ID), zap.Error(err))
			return fmt.Errorf("failed to seed product %s: %w", product.ID, err)
		}
	}

	s.logger.Info("Catalog seeded", zap.Int("products", len(defaultCatalog)))
	return nil
}
