package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item in the storefront catalogue.
type Product struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	ImageURL      string          `json:"imageUrl" db:"image_url"`
	Category      string          `json:"category" db:"category"`
	StockQuantity int             `json:"stockQuantity" db:"stock_quantity"`
	SKU           string          `json:"sku" db:"sku"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stockQuantity"`
	SKU           string          `json:"sku"`
}

// CategoryCount represents the number of products in a single category.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
