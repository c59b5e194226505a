package export

import (
	"context"
)

const (
	unknownProduct = "Unknown Product"
	unknownBrand   = "Unknown"
	unknownStaff   = "Unknown Staff"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Row is one line item flattened with its parent sale's context.
// Optional fields are populated only when the matching option toggle is set.
type Row struct {
	SaleID        string   `json:"sale_id"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	ProductName   string   `json:"product_name"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	QuantitySold  int      `json:"quantity_sold"`
	UnitPrice     float64  `json:"unit_price"`
	TotalAmount   float64  `json:"total_amount"`
	SoldBy        string   `json:"sold_by"`
	PaymentMethod string   `json:"payment_method"`
	ReceiptNo     string   `json:"receipt_no"`
	CustomerName  string   `json:"customer_name,omitempty"`
	BatchNumber   string   `json:"batch_number,omitempty"`
	ProfitMargin  *float64 `json:"profit_margin,omitempty"`
}

// Transform flattens sales into rows, one row per line item. Row order
// preserves the input sale order and, within a sale, the item order.
func Transform(ctx context.Context, sales []SaleRecord, opts Options, staff StaffDirectory) []Row {
	rows := make([]Row, 0, len(sales))
	for _, sale := range sales {
		soldBy := resolveStaff(ctx, staff, sale.StaffID)
		date := sale.Timestamp.Format(dateLayout)
		clock := sale.Timestamp.Format(timeLayout)

		for _, item := range sale.Items {
			row := Row{
				SaleID:        sale.ID,
				Date:          date,
				Time:          clock,
				ProductName:   item.ProductName,
				Brand:         item.Brand,
				Category:      item.Category,
				QuantitySold:  item.Quantity,
				UnitPrice:     item.UnitPrice,
				TotalAmount:   item.Subtotal,
				SoldBy:        soldBy,
				PaymentMethod: sale.PaymentMethod,
				ReceiptNo:     sale.ReceiptNo,
			}
			if row.ProductName == "" {
				row.ProductName = unknownProduct
			}
			if row.Brand == "" {
				row.Brand = unknownBrand
			}
			if row.Category == "" {
				row.Category = unknownBrand
			}
			if row.QuantitySold <= 0 {
				row.QuantitySold = 1
			}
			if row.TotalAmount == 0 {
				row.TotalAmount = float64(row.QuantitySold) * item.UnitPrice
			}
			if opts.IncludeCustomer {
				row.CustomerName = sale.CustomerName
			}
			if opts.IncludeBatch {
				row.BatchNumber = item.BatchNumber
			}
			if opts.CalculateProfit {
				costPrice := item.UnitPrice * 0.7
				if item.CostPrice != nil {
					costPrice = *item.CostPrice
				}
				margin := item.UnitPrice - costPrice
				row.ProfitMargin = &margin
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// resolveStaff maps a staff id to a display name. Ids the directory does not
// know pass through literally; an empty id becomes "Unknown Staff".
func resolveStaff(ctx context.Context, staff StaffDirectory, staffID string) string {
	if staffID == "" {
		return unknownStaff
	}
	if staff != nil {
		if name, ok := staff.DisplayName(ctx, staffID); ok {
			return name
		}
	}
	return staffID
}
