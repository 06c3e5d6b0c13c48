package model

import "github.com/shopspring/decimal"

// DailySales is one day's worth of revenue for the sales chart.
type DailySales struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

// Dashboard aggregates the admin overview widgets.
type Dashboard struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOrders      int             `json:"totalOrders"`
	TotalUsers       int             `json:"totalUsers"`
	LowStockProducts int             `json:"lowStockProducts"`
	RecentOrders     []OrderSummary  `json:"recentOrders"`
	SalesData        []DailySales    `json:"salesData"`
}
