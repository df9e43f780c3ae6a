package product_repo

import (
	"context"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
}
