package repository

import (
	"context"
	"database/sql"
	"time"

	domainRepo "github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.code as product_code,
			COALESCE(SUM(si.quantity), 0) as quantity_sold,
			COALESCE(SUM(si.subtotal), 0) / 100.0 as revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = 0
		GROUP BY p.id, p.name, p.code
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

	// First get total sales for percentage calculation
	var totalSales float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(si.subtotal), 0) / 100.0
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = 0
	`).Scan(&totalSales).Error
	if err != nil {
		return nil, err
	}

	// Get sales by category
	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(NULLIF(p.category, ''), 'Uncategorized') as category,
			COALESCE(SUM(si.subtotal), 0) / 100.0 as total_sales,
			COUNT(DISTINCT s.id) as sale_count
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = 0
		GROUP BY COALESCE(NULLIF(p.category, ''), 'Uncategorized')
		ORDER BY total_sales DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	// Calculate percentages
	for i := range results {
		if totalSales > 0 {
			results[i].Percentage = (results[i].TotalSales / totalSales) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByStaff(ctx context.Context, limit int) ([]domainRepo.StaffSalesResult, error) {
	var results []domainRepo.StaffSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			st.id as staff_id,
			st.display_name as staff_name,
			COALESCE(SUM(s.total), 0) / 100.0 as total_sales,
			COUNT(s.id) as sale_count
		FROM sales s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.status = 0
		GROUP BY st.id, st.display_name
		ORDER BY total_sales DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByPaymentMethod(ctx context.Context) ([]domainRepo.PaymentMethodResult, error) {
	var results []domainRepo.PaymentMethodResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_method as method,
			COALESCE(SUM(total), 0) / 100.0 as revenue,
			COUNT(id) as count
		FROM sales
		WHERE status = 0
		GROUP BY payment_method
		ORDER BY revenue DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	// Generate dates for the last N days and get sales for each
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue sql.NullFloat64
			Profit  sql.NullFloat64
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT
				COALESCE(SUM(si.subtotal), 0) / 100.0 as revenue,
				COALESCE(SUM(si.subtotal - (p.cost_price * si.quantity)), 0) / 100.0 as profit
			FROM sale_items si
			JOIN products p ON p.id = si.product_id
			JOIN sales s ON s.id = si.sale_id
			WHERE s.status = 0
			AND s.sold_at >= ? AND s.sold_at < ?
		`, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		result := domainRepo.DailySalesResult{Date: startOfDay}
		if row.Revenue.Valid {
			result.Revenue = row.Revenue.Float64
		}
		if row.Profit.Valid {
			result.Profit = row.Profit.Float64
		}

		results = append(results, result)
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM sales
		WHERE status = 0
	`).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context) (float64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM sales
		WHERE status = 0 AND sold_at >= ?
	`, startOfMonth).Scan(&revenue).Error

	return revenue, err
}
