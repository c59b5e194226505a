package export

import (
	"sort"
)

// ProductTotal aggregates quantity and revenue for one product
type ProductTotal struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// StaffTotal aggregates quantity and revenue for one staff member
type StaffTotal struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// PaymentTotal aggregates per-payment-method transaction count and amount
type PaymentTotal struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// Summary holds aggregate statistics computed over a set of export rows
type Summary struct {
	TotalQuantity     int            `json:"total_quantity"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalTransactions int            `json:"total_transactions"`
	AverageSale       float64        `json:"average_sale"`
	TopProducts       []ProductTotal `json:"top_products"`
	SalesByStaff      []StaffTotal   `json:"sales_by_staff"`
	SalesByPayment    []PaymentTotal `json:"sales_by_payment"`
}

const topProductLimit = 5

// Summarize computes aggregate statistics in a single pass over the rows.
// Product and staff groupings are sorted stably so ties keep their input
// encounter order.
func Summarize(rows []Row) Summary {
	var s Summary

	type productAgg struct {
		total ProductTotal
		seen  int
	}
	type staffAgg struct {
		total StaffTotal
		seen  int
	}
	type paymentAgg struct {
		total PaymentTotal
		seen  int
	}

	products := make(map[string]*productAgg)
	staff := make(map[string]*staffAgg)
	payments := make(map[string]*paymentAgg)
	saleIDs := make(map[string]struct{})

	for i, row := range rows {
		s.TotalQuantity += row.QuantitySold
		s.TotalRevenue += row.TotalAmount

		p, ok := products[row.ProductName]
		if !ok {
			p = &productAgg{total: ProductTotal{Name: row.ProductName}, seen: i}
			products[row.ProductName] = p
		}
		p.total.Quantity += row.QuantitySold
		p.total.Revenue += row.TotalAmount

		st, ok := staff[row.SoldBy]
		if !ok {
			st = &staffAgg{total: StaffTotal{Name: row.SoldBy}, seen: i}
			staff[row.SoldBy] = st
		}
		st.total.Quantity += row.QuantitySold
		st.total.Revenue += row.TotalAmount

		// Payment methods are attributed once per distinct sale. The first
		// row seen for a sale decides the method and the amount; later rows
		// of the same sale are skipped so a sale is never double counted.
		if _, counted := saleIDs[row.SaleID]; !counted {
			saleIDs[row.SaleID] = struct{}{}
			pm, ok := payments[row.PaymentMethod]
			if !ok {
				pm = &paymentAgg{total: PaymentTotal{Method: row.PaymentMethod}, seen: i}
				payments[row.PaymentMethod] = pm
			}
			pm.total.Count++
			pm.total.Amount += row.TotalAmount
		}
	}

	s.TotalTransactions = len(saleIDs)
	if s.TotalTransactions > 0 {
		s.AverageSale = s.TotalRevenue / float64(s.TotalTransactions)
	}

	productList := make([]*productAgg, 0, len(products))
	for _, p := range products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		if productList[i].total.Quantity != productList[j].total.Quantity {
			return productList[i].total.Quantity > productList[j].total.Quantity
		}
		return productList[i].seen < productList[j].seen
	})
	limit := topProductLimit
	if len(productList) < limit {
		limit = len(productList)
	}
	s.TopProducts = make([]ProductTotal, 0, limit)
	for _, p := range productList[:limit] {
		s.TopProducts = append(s.TopProducts, p.total)
	}

	staffList := make([]*staffAgg, 0, len(staff))
	for _, st := range staff {
		staffList = append(staffList, st)
	}
	sort.Slice(staffList, func(i, j int) bool {
		if staffList[i].total.Revenue != staffList[j].total.Revenue {
			return staffList[i].total.Revenue > staffList[j].total.Revenue
		}
		return staffList[i].seen < staffList[j].seen
	})
	s.SalesByStaff = make([]StaffTotal, 0, len(staffList))
	for _, st := range staffList {
		s.SalesByStaff = append(s.SalesByStaff, st.total)
	}

	paymentList := make([]*paymentAgg, 0, len(payments))
	for _, pm := range payments {
		paymentList = append(paymentList, pm)
	}
	sort.Slice(paymentList, func(i, j int) bool {
		if paymentList[i].total.Amount != paymentList[j].total.Amount {
			return paymentList[i].total.Amount > paymentList[j].total.Amount
		}
		return paymentList[i].seen < paymentList[j].seen
	})
	s.SalesByPayment = make([]PaymentTotal, 0, len(paymentList))
	for _, pm := range paymentList {
		s.SalesByPayment = append(s.SalesByPayment, pm.total)
	}

	return s
}
