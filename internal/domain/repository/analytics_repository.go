package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopMenuItemResult represents a menu item's sales performance
type TopMenuItemResult struct {
	MenuItemID   uuid.UUID
	MenuItemName string
	QuantitySold int
	Revenue      int64 // cents
}

// CategorySalesResult represents sales aggregated by menu category
type CategorySalesResult struct {
	Category      string
	TotalSales    int64 // cents
	CheckoutCount int
	Percentage    float64
}

// TopCustomerResult represents a customer's spending data
type TopCustomerResult struct {
	CustomerID    uuid.UUID
	CustomerName  string
	TotalSpent    int64 // cents
	CheckoutCount int
	LoyaltyPoints int
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date          time.Time
	Revenue       int64 // cents
	CheckoutCount int
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetTopMenuItems returns top selling menu items by revenue
	GetTopMenuItems(ctx context.Context, limit int) ([]TopMenuItemResult, error)

	// GetSalesByCategory returns completed sales aggregated by category with percentages
	GetSalesByCategory(ctx context.Context) ([]CategorySalesResult, error)

	// GetTopCustomers returns top customers by total spending
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetTotalRevenue returns total revenue in cents from completed checkouts
	GetTotalRevenue(ctx context.Context) (int64, error)

	// GetTodayRevenue returns revenue in cents for the current day
	GetTodayRevenue(ctx context.Context) (int64, error)
}
