package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/1000011-67/Earthly-Liquids/internal/domain"
)

var productColumns = []string{"id", "name", "description", "price", "image_url", "features", "stock"}

func TestProductUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db, zap.NewNop())

	mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), &domain.Product{
		ID:       "ecoshield-1l",
		Name:     "EcoShield Natural Floor Cleanser",
		Price:    159.0,
		Features: []string{"100% natural ingredients", "Safe for kids and pets"},
		Stock:    100,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db, zap.NewNop())

	mock.ExpectExec("INSERT INTO products").WillReturnError(errors.New("connection refused"))

	err = repo.Upsert(context.Background(), &domain.Product{ID: "ecoshield-1l"})
	assert.ErrorContains(t, err, "failed to upsert product ecoshield-1l")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db, zap.NewNop())

	rows := sqlmock.NewRows(productColumns).
		AddRow("ecoshield-1l", "EcoShield Natural Floor Cleanser", "Premium natural floor cleanser",
			159.0, "https://images.example.com/ecoshield.jpg", `{"100% natural ingredients","Safe for kids and pets"}`, 100)
	mock.ExpectQuery("SELECT (.+) FROM products WHERE").WithArgs("ecoshield-1l").WillReturnRows(rows)

	product, err := repo.GetByID(context.Background(), "ecoshield-1l")
	require.NoError(t, err)
	assert.Equal(t, "ecoshield-1l", product.ID)
	assert.Equal(t, 159.0, product.Price)
	assert.Equal(t, []string{"100% natural ingredients", "Safe for kids and pets"}, product.Features)
	assert.Equal(t, 100, product.Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM products WHERE").WithArgs("invalid-product-id").WillReturnError(sql.ErrNoRows)

	product, err := repo.GetByID(context.Background(), "invalid-product-id")
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db, zap.NewNop())

	rows := sqlmock.NewRows(productColumns).
		AddRow("ecoshield-1l", "EcoShield Natural Floor Cleanser", "Premium natural floor cleanser",
			159.0, "https://images.example.com/ecoshield.jpg", `{"100% natural ingredients"}`, 100).
		AddRow("ecoshield-5l", "EcoShield Natural Floor Cleanser 5L", "Bulk pack",
			649.0, "https://images.example.com/ecoshield-5l.jpg", `{"Bulk savings"}`, 25)
	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnRows(rows)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "ecoshield-1l", products[0].ID)
	assert.Equal(t, "ecoshield-5l", products[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetAllQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(errors.New("connection refused"))

	products, err := repo.GetAll(context.Background())
	assert.Nil(t, products)
	assert.ErrorContains(t, err, "failed to query products")
	assert.NoError(t, mock.ExpectationsWereMet())
}
