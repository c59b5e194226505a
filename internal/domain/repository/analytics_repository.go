package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopProductResult represents a product's sales performance
type TopProductResult struct {
	ProductID    uuid.UUID
	ProductName  string
	ProductCode  string
	QuantitySold int
	Revenue      float64
}

// CategorySalesResult represents sales aggregated by product category
type CategorySalesResult struct {
	Category   string
	TotalSales float64
	SaleCount  int
	Percentage float64
}

// StaffSalesResult represents a staff member's sales performance
type StaffSalesResult struct {
	StaffID     uuid.UUID
	StaffName   string
	TotalSales  float64
	SaleCount   int
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date    time.Time
	Revenue float64
	Profit  float64
}

// PaymentMethodResult represents revenue aggregated by payment method
type PaymentMethodResult struct {
	Method  string
	Revenue float64
	Count   int
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetTopProducts returns top selling products by revenue
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetSalesByCategory returns sales aggregated by category with percentages
	GetSalesByCategory(ctx context.Context) ([]CategorySalesResult, error)

	// GetSalesByStaff returns sales aggregated per staff member
	GetSalesByStaff(ctx context.Context, limit int) ([]StaffSalesResult, error)

	// GetSalesByPaymentMethod returns revenue aggregated by payment method
	GetSalesByPaymentMethod(ctx context.Context) ([]PaymentMethodResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetTotalRevenue returns total revenue from completed sales
	GetTotalRevenue(ctx context.Context) (float64, error)

	// GetMonthlyRevenue returns revenue for the current month
	GetMonthlyRevenue(ctx context.Context) (float64, error)
}
