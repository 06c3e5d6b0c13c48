package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order represents a customer order. Total and line items are frozen at
// creation time and never change afterwards.
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          uuid.UUID       `json:"userId" db:"user_id"`
	Status          OrderStatus     `json:"status" db:"status"`
	Total           decimal.Decimal `json:"total" db:"total"`
	ShippingAddress string          `json:"shippingAddress" db:"shipping_address"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order. Price is the product price
// captured at order creation, not a live reference to the catalogue.
type OrderItem struct {
	ID        uuid.UUID       `json:"-" db:"id"`
	OrderID   uuid.UUID       `json:"-" db:"order_id"`
	ProductID uuid.UUID       `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"`
}

// OrderSummary is the condensed order shape used in listings.
type OrderSummary struct {
	ID        uuid.UUID       `json:"id"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AdminOrder is an order summary joined with its owner for the admin listing.
type AdminOrder struct {
	OrderSummary
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// AdminOrderPage is a single page of the admin order listing.
type AdminOrderPage struct {
	Orders      []AdminOrder `json:"orders"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

// OrderResponse represents an order with its line items attached.
type OrderResponse struct {
	Order
	Items []OrderItem `json:"items"`
}

// CheckoutRequest represents the payload for checking out the current cart.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CheckoutResponse is returned once an order has been committed. The
// notification link is best-effort and may be empty if delivery setup failed.
type CheckoutResponse struct {
	OrderID      uuid.UUID `json:"orderId"`
	WhatsAppLink string    `json:"whatsappLink,omitempty"`
}
