package repository

import (
	"context"
	"database/sql"
	"time"

	domainRepo "github.com/kapehan/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopMenuItems(ctx context.Context, limit int) ([]domainRepo.TopMenuItemResult, error) {
	var results []domainRepo.TopMenuItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			m.id as menu_item_id,
			m.name as menu_item_name,
			COALESCE(SUM(ci.quantity), 0) as quantity_sold,
			COALESCE(SUM(ci.sub_total), 0) as revenue
		FROM checkout_items ci
		JOIN menu_items m ON m.id = ci.menu_item_id
		JOIN checkouts c ON c.id = ci.checkout_id
		WHERE c.status = 'completed'
		GROUP BY m.id, m.name
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByCategory(ctx context.Context) ([]domainRepo.CategorySalesResult, error) {
	var results []domainRepo.CategorySalesResult

	// Total first, for the percentage split
	var totalSales int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(ci.sub_total), 0)
		FROM checkout_items ci
		JOIN checkouts c ON c.id = ci.checkout_id
		WHERE c.status = 'completed'
	`).Scan(&totalSales).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			m.category as category,
			COALESCE(SUM(ci.sub_total), 0) as total_sales,
			COUNT(DISTINCT c.id) as checkout_count
		FROM checkout_items ci
		JOIN menu_items m ON m.id = ci.menu_item_id
		JOIN checkouts c ON c.id = ci.checkout_id
		WHERE c.status = 'completed'
		GROUP BY m.category
		ORDER BY total_sales DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	for i := range results {
		if totalSales > 0 {
			results[i].Percentage = (float64(results[i].TotalSales) / float64(totalSales)) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			cu.id as customer_id,
			cu.name as customer_name,
			COALESCE(SUM(c.total), 0) as total_spent,
			COUNT(c.id) as checkout_count,
			cu.loyalty_points as loyalty_points
		FROM checkouts c
		JOIN customers cu ON cu.id = c.customer_id
		WHERE c.status = 'completed' AND c.customer_id IS NOT NULL
		GROUP BY cu.id, cu.name, cu.loyalty_points
		ORDER BY total_spent DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue sql.NullInt64
			Count   sql.NullInt64
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0) as revenue, COUNT(id) as count
			FROM checkouts
			WHERE status = 'completed'
			AND created_at >= ? AND created_at < ?
		`, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:          startOfDay,
			Revenue:       row.Revenue.Int64,
			CheckoutCount: int(row.Count.Int64),
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM checkouts
		WHERE status = 'completed'
	`).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetTodayRevenue(ctx context.Context) (int64, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM checkouts
		WHERE status = 'completed' AND created_at >= ?
	`, startOfDay).Scan(&revenue).Error

	return revenue, err
}
