package service

import (
	"context"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/pagination"
)

// DashboardService provides admin dashboard statistics
type DashboardService struct {
	saleRepo      repository.SaleRepository
	restockRepo   repository.RestockRepository
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	saleRepo repository.SaleRepository,
	restockRepo repository.RestockRepository,
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
) *DashboardService {
	return &DashboardService{
		saleRepo:      saleRepo,
		restockRepo:   restockRepo,
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalProducts   int64                  `json:"total_products"`
	TotalSales      int64                  `json:"total_sales"`
	TotalRevenue    float64                `json:"total_revenue"`
	MonthlyRevenue  float64                `json:"monthly_revenue"`
	LowStockCount   int64                  `json:"low_stock_count"`
	ExpiringCount   int64                  `json:"expiring_count"`
	PendingRestocks int64                  `json:"pending_restocks"`
	DailySalesData  []DailySalesPoint      `json:"daily_sales_data"`
	CategorySales   []CategorySalesPoint   `json:"category_sales_data"`
	TopProducts     []TopProductPoint      `json:"top_products"`
	StaffLeaders    []StaffSalesPoint      `json:"staff_leaderboard"`
	PaymentMethods  []PaymentBreakdownItem `json:"payment_methods"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// CategorySalesPoint represents sales by product category
type CategorySalesPoint struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// TopProductPoint represents one of the best selling products
type TopProductPoint struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// StaffSalesPoint represents one staff member's sales performance
type StaffSalesPoint struct {
	Name      string  `json:"name"`
	SaleCount int     `json:"sale_count"`
	Revenue   float64 `json:"revenue"`
}

// PaymentBreakdownItem represents revenue per payment method
type PaymentBreakdownItem struct {
	Method  string  `json:"method"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// Counts only, so fetch a single-row page
	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1

	_, productCount, err := s.productRepo.List(ctx, &repository.ProductFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = productCount

	_, saleCount, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalSales = saleCount

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = int64(len(lowStock))

	expiring, err := s.productRepo.GetExpiringBefore(ctx, 90)
	if err != nil {
		return nil, err
	}
	stats.ExpiringCount = int64(len(expiring))

	_, pendingCount, err := s.restockRepo.GetPending(ctx, countParams)
	if err != nil {
		return nil, err
	}
	stats.PendingRestocks = pendingCount

	stats.TotalRevenue, err = s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	stats.MonthlyRevenue, err = s.analyticsRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}

	daily, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailySalesData = make([]DailySalesPoint, 0, len(daily))
	for _, d := range daily {
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:    d.Date.Format("Jan 02"),
			Revenue: d.Revenue,
			Profit:  d.Profit,
		})
	}

	categories, err := s.analyticsRepo.GetSalesByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats.CategorySales = make([]CategorySalesPoint, 0, len(categories))
	for _, c := range categories {
		stats.CategorySales = append(stats.CategorySales, CategorySalesPoint{
			Category:   c.Category,
			Amount:     c.TotalSales,
			Percentage: c.Percentage,
		})
	}

	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopProducts = make([]TopProductPoint, 0, len(topProducts))
	for _, p := range topProducts {
		stats.TopProducts = append(stats.TopProducts, TopProductPoint{
			Name:         p.ProductName,
			Code:         p.ProductCode,
			QuantitySold: p.QuantitySold,
			Revenue:      p.Revenue,
		})
	}

	staff, err := s.analyticsRepo.GetSalesByStaff(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.StaffLeaders = make([]StaffSalesPoint, 0, len(staff))
	for _, st := range staff {
		stats.StaffLeaders = append(stats.StaffLeaders, StaffSalesPoint{
			Name:      st.StaffName,
			SaleCount: st.SaleCount,
			Revenue:   st.TotalSales,
		})
	}

	payments, err := s.analyticsRepo.GetSalesByPaymentMethod(ctx)
	if err != nil {
		return nil, err
	}
	stats.PaymentMethods = make([]PaymentBreakdownItem, 0, len(payments))
	for _, pm := range payments {
		stats.PaymentMethods = append(stats.PaymentMethods, PaymentBreakdownItem{
			Method:  pm.Method,
			Count:   pm.Count,
			Revenue: pm.Revenue,
		})
	}

	return stats, nil
}
