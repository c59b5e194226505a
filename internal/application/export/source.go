package export

import (
	"context"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/google/uuid"
)

// LineItem is one product-quantity pairing within a sale, as seen by the
// export pipeline. Quantity <= 0 means unknown and defaults to 1 during
// transformation; Subtotal == 0 is recomputed as quantity * unit price.
type LineItem struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Quantity    int      `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	Subtotal    float64  `json:"subtotal"`
	BatchNumber string   `json:"batch_number,omitempty"`
	CostPrice   *float64 `json:"cost_price,omitempty"`
}

// SaleRecord is one completed transaction pulled from a data source.
// Monetary values are in naira.
type SaleRecord struct {
	ID            string     `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	StaffID       string     `json:"staff_id"`
	ReceiptNo     string     `json:"receipt_no"`
	CustomerName  string     `json:"customer_name,omitempty"`
	Items         []LineItem `json:"items"`
}

// DataSource supplies raw sale records for an inclusive date range.
type DataSource interface {
	SalesInRange(ctx context.Context, from, to time.Time) ([]SaleRecord, error)
}

// StaffDirectory resolves staff ids to display names for the sold-by column.
type StaffDirectory interface {
	DisplayName(ctx context.Context, staffID string) (string, bool)
}

// liveSource reads completed sales from the sale repository and flattens
// them into export records.
type liveSource struct {
	sales repository.SaleRepository
}

// NewLiveSource creates a DataSource backed by the sales database
func NewLiveSource(sales repository.SaleRepository) DataSource {
	return &liveSource{sales: sales}
}

func (s *liveSource) SalesInRange(ctx context.Context, from, to time.Time) ([]SaleRecord, error) {
	// Widen the end bound to the end of day so the range is inclusive
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), to.Location())

	sales, err := s.sales.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]SaleRecord, 0, len(sales))
	for _, sale := range sales {
		record := SaleRecord{
			ID:            sale.ID.String(),
			Timestamp:     sale.SoldAt,
			Total:         float64(sale.Total) / 100,
			PaymentMethod: sale.PaymentMethod.Label(),
			StaffID:       sale.StaffID.String(),
			ReceiptNo:     sale.ReceiptNo,
		}
		if sale.CustomerName != nil {
			record.CustomerName = *sale.CustomerName
		}
		for _, item := range sale.Items {
			li := LineItem{
				ProductID:   item.ProductID.String(),
				ProductName: item.Product.Name,
				Brand:       item.Product.Brand,
				Category:    item.Product.Category,
				Quantity:    item.Quantity,
				UnitPrice:   float64(item.UnitPrice) / 100,
				Subtotal:    float64(item.Subtotal) / 100,
			}
			if item.Product.BatchNumber != nil {
				li.BatchNumber = *item.Product.BatchNumber
			}
			if item.Product.CostPrice > 0 {
				cost := float64(item.Product.CostPrice) / 100
				li.CostPrice = &cost
			}
			record.Items = append(record.Items, li)
		}
		records = append(records, record)
	}
	return records, nil
}

// repoStaffDirectory resolves staff names through the staff repository.
type repoStaffDirectory struct {
	staff repository.StaffRepository
}

// NewStaffDirectory creates a StaffDirectory backed by the staff table
func NewStaffDirectory(staff repository.StaffRepository) StaffDirectory {
	return &repoStaffDirectory{staff: staff}
}

func (d *repoStaffDirectory) DisplayName(ctx context.Context, staffID string) (string, bool) {
	id, err := uuid.Parse(staffID)
	if err != nil {
		return "", false
	}
	member, err := d.staff.GetByID(ctx, id)
	if err != nil || member == nil {
		return "", false
	}
	return member.DisplayName, true
}

// StaticStaffDirectory is a fixed id-to-name lookup, used with sample data
// and in tests.
type StaticStaffDirectory map[string]string

func (d StaticStaffDirectory) DisplayName(_ context.Context, staffID string) (string, bool) {
	name, ok := d[staffID]
	return name, ok
}
