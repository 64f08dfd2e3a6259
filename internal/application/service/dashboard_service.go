package service

import (
	"context"

	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// DashboardService provides sales and inventory statistics
type DashboardService struct {
	analyticsRepo  repository.AnalyticsRepository
	checkoutRepo   repository.CheckoutRepository
	ingredientRepo repository.IngredientRepository
	customerRepo   repository.CustomerRepository
	restockRepo    repository.RestockRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	checkoutRepo repository.CheckoutRepository,
	ingredientRepo repository.IngredientRepository,
	customerRepo repository.CustomerRepository,
	restockRepo repository.RestockRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo:  analyticsRepo,
		checkoutRepo:   checkoutRepo,
		ingredientRepo: ingredientRepo,
		customerRepo:   customerRepo,
		restockRepo:    restockRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalCheckouts    int64                `json:"total_checkouts"`
	PendingCheckouts  int64                `json:"pending_checkouts"`
	TotalCustomers    int64                `json:"total_customers"`
	TotalRevenue      float64              `json:"total_revenue"`
	TodayRevenue      float64              `json:"today_revenue"`
	LowStockCount     int64                `json:"low_stock_count"`
	PendingRestocks   int64                `json:"pending_restocks"`
	DailySalesData    []DailySalesPoint    `json:"daily_sales_data"`
	CategorySalesData []CategorySalesPoint `json:"category_sales_data"`
	TopMenuItems      []TopMenuItemPoint   `json:"top_menu_items"`
	TopCustomers      []TopCustomerPoint   `json:"top_customers"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Checkouts int     `json:"checkouts"`
}

// CategorySalesPoint represents sales by menu category
type CategorySalesPoint struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// TopMenuItemPoint represents a top selling menu item
type TopMenuItemPoint struct {
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// TopCustomerPoint represents a top spending customer
type TopCustomerPoint struct {
	Name          string  `json:"name"`
	TotalSpent    float64 `json:"total_spent"`
	Checkouts     int     `json:"checkouts"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// Count queries only need the totals, not rows
	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1

	_, checkoutCount, err := s.checkoutRepo.List(ctx, &repository.CheckoutFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalCheckouts = checkoutCount

	pendingStatus := enum.CheckoutStatusPending
	_, pendingCount, err := s.checkoutRepo.List(ctx, &repository.CheckoutFilterParams{
		Pagination: countParams,
		Status:     &pendingStatus,
	})
	if err != nil {
		return nil, err
	}
	stats.PendingCheckouts = pendingCount

	_, customerCount, err := s.customerRepo.List(ctx, countParams, "")
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerCount

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(totalRevenue) / 100

	todayRevenue, err := s.analyticsRepo.GetTodayRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TodayRevenue = float64(todayRevenue) / 100

	lowStock, err := s.ingredientRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = int64(len(lowStock))

	_, pendingRestockCount, err := s.restockRepo.GetPending(ctx, countParams)
	if err != nil {
		return nil, err
	}
	stats.PendingRestocks = pendingRestockCount

	daily, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailySalesData = make([]DailySalesPoint, 0, len(daily))
	for _, d := range daily {
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:      d.Date.Format("Jan 02"),
			Revenue:   float64(d.Revenue) / 100,
			Checkouts: d.CheckoutCount,
		})
	}

	categories, err := s.analyticsRepo.GetSalesByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats.CategorySalesData = make([]CategorySalesPoint, 0, len(categories))
	for _, c := range categories {
		stats.CategorySalesData = append(stats.CategorySalesData, CategorySalesPoint{
			Category:   c.Category,
			Amount:     float64(c.TotalSales) / 100,
			Percentage: c.Percentage,
		})
	}

	topItems, err := s.analyticsRepo.GetTopMenuItems(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopMenuItems = make([]TopMenuItemPoint, 0, len(topItems))
	for _, t := range topItems {
		stats.TopMenuItems = append(stats.TopMenuItems, TopMenuItemPoint{
			Name:         t.MenuItemName,
			QuantitySold: t.QuantitySold,
			Revenue:      float64(t.Revenue) / 100,
		})
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopCustomers = make([]TopCustomerPoint, 0, len(topCustomers))
	for _, t := range topCustomers {
		stats.TopCustomers = append(stats.TopCustomers, TopCustomerPoint{
			Name:          t.CustomerName,
			TotalSpent:    float64(t.TotalSpent) / 100,
			Checkouts:     t.CheckoutCount,
			LoyaltyPoints: t.LoyaltyPoints,
		})
	}

	return stats, nil
}
