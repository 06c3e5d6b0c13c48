package repository

import (
	"context"
	"testing"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo ProductRepository
	ctx  context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewProductRepository(mock, zerolog.Nop())
	suite.ctx = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func productRow(id uuid.UUID, name, price string) []any {
	now := time.Now()
	return []any{
		id, name, "PlayStation Network gift card", decimal.RequireFromString(price),
		"https://cdn.example.com/card.png", "Gift Cards", 50, "PSN-" + name, now, now,
	}
}

var productRowColumns = []string{
	"id", "name", "description", "price", "image_url", "category",
	"stock_quantity", "sku", "created_at", "updated_at",
}

func (suite *ProductRepoTestSuite) TestList_FiltersByCategory() {
	rows := pgxmock.NewRows(productRowColumns).
		AddRow(productRow(uuid.New(), "PSN Card $25", "25.00")...)

	suite.mock.ExpectQuery(`FROM products`).
		WithArgs("Gift Cards", 20, 0).
		WillReturnRows(rows)

	products, err := suite.repo.List(suite.ctx, "Gift Cards", 20, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "PSN Card $25", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetByID_NotFoundReturnsNil() {
	id := uuid.New()

	suite.mock.ExpectQuery(`FROM products`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(productRowColumns))

	product, err := suite.repo.GetByID(suite.ctx, id)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), product)
}

func (suite *ProductRepoTestSuite) TestGetByIDs_EmptyInput() {
	products, err := suite.repo.GetByIDs(suite.ctx, nil)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), products)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ProductRepoTestSuite) TestGetByIDs() {
	idA := uuid.New()
	idB := uuid.New()

	rows := pgxmock.NewRows(productRowColumns).
		AddRow(productRow(idA, "PSN Card $10", "10.00")...).
		AddRow(productRow(idB, "PSN Card $50", "50.00")...)

	suite.mock.ExpectQuery(`WHERE id = ANY\(\$1\)`).
		WithArgs([]uuid.UUID{idA, idB}).
		WillReturnRows(rows)

	products, err := suite.repo.GetByIDs(suite.ctx, []uuid.UUID{idA, idB})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 2)
}

func (suite *ProductRepoTestSuite) TestCreate() {
	now := time.Now()
	product := &model.Product{
		ID:            uuid.New(),
		Name:          "PSN Card $100",
		Description:   "PlayStation Network gift card",
		Price:         decimal.RequireFromString("100.00"),
		ImageURL:      "https://cdn.example.com/psn100.png",
		Category:      "Gift Cards",
		StockQuantity: 25,
		SKU:           "PSN-100",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	suite.mock.ExpectExec(`INSERT INTO products`).
		WithArgs(product.ID, product.Name, product.Description, product.Price,
			product.ImageURL, product.Category, product.StockQuantity, product.SKU,
			product.CreatedAt, product.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, product)

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ProductRepoTestSuite) TestUpdate_Missing() {
	product := &model.Product{ID: uuid.New(), Name: "PSN Card $100", Price: decimal.RequireFromString("100.00")}

	suite.mock.ExpectExec(`UPDATE products`).
		WithArgs(product.ID, product.Name, product.Description, product.Price,
			product.ImageURL, product.Category, product.StockQuantity, product.SKU,
			product.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := suite.repo.Update(suite.ctx, product)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *ProductRepoTestSuite) TestDelete_Found() {
	id := uuid.New()

	suite.mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	found, err := suite.repo.Delete(suite.ctx, id)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), found)
}

func (suite *ProductRepoTestSuite) TestSKUInUse() {
	id := uuid.New()

	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("PSN-100", id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := suite.repo.SKUInUse(suite.ctx, "PSN-100", id)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), inUse)
}
