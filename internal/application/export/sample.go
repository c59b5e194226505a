package export

import (
	"context"
	"time"
)

// DefaultStaffNames maps the sample dataset's staff ids to display names.
var DefaultStaffNames = StaticStaffDirectory{
	"staff-001": "Adaeze Okafor",
	"staff-002": "Emeka Obi",
	"staff-003": "Funke Adeyemi",
}

// SampleSource serves a fixed built-in dataset so previews and exports stay
// deterministic when no live sales are reachable.
type SampleSource struct {
	records []SaleRecord
}

// NewSampleSource creates a DataSource over the built-in sample dataset
func NewSampleSource() *SampleSource {
	return &SampleSource{records: sampleSales()}
}

// SalesInRange filters the sample dataset by the inclusive date range
func (s *SampleSource) SalesInRange(_ context.Context, from, to time.Time) ([]SaleRecord, error) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)

	var out []SaleRecord
	for _, r := range s.records {
		ts := r.Timestamp.UTC()
		if ts.Before(start) || ts.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func cost(v float64) *float64 { return &v }

func sampleSales() []SaleRecord {
	return []SaleRecord{
		{
			ID:            "sale-1001",
			Timestamp:     time.Date(2025, 7, 13, 9, 42, 0, 0, time.UTC),
			Total:         2550,
			PaymentMethod: "Cash",
			StaffID:       "staff-001",
			ReceiptNo:     "RCP-20250713-A1B2C3D4",
			CustomerName:  "Chioma Nwosu",
			Items: []LineItem{
				{
					ProductID:   "prod-001",
					ProductName: "Paracetamol 500mg",
					Brand:       "Emzor",
					Category:    "Analgesics",
					Quantity:    3,
					UnitPrice:   850,
					Subtotal:    2550,
					BatchNumber: "PCM-2025-041",
					CostPrice:   cost(600),
				},
			},
		},
		{
			ID:            "sale-1002",
			Timestamp:     time.Date(2025, 7, 13, 14, 18, 0, 0, time.UTC),
			Total:         1200,
			PaymentMethod: "Transfer",
			StaffID:       "staff-002",
			ReceiptNo:     "RCP-20250713-E5F6A7B8",
			Items: []LineItem{
				{
					ProductID:   "prod-002",
					ProductName: "Amoxicillin 250mg",
					Brand:       "Fidson",
					Category:    "Antibiotics",
					Quantity:    1,
					UnitPrice:   1200,
					Subtotal:    1200,
					BatchNumber: "AMX-2025-017",
				},
			},
		},
		{
			ID:            "sale-1003",
			Timestamp:     time.Date(2025, 7, 14, 11, 5, 0, 0, time.UTC),
			Total:         4300,
			PaymentMethod: "Card",
			StaffID:       "staff-001",
			ReceiptNo:     "RCP-20250714-C9D0E1F2",
			Items: []LineItem{
				{
					ProductID:   "prod-003",
					ProductName: "Vitamin C 1000mg",
					Brand:       "GSK",
					Category:    "Supplements",
					Quantity:    2,
					UnitPrice:   1400,
					Subtotal:    2800,
					CostPrice:   cost(950),
				},
				{
					ProductID:   "prod-004",
					ProductName: "Loratadine 10mg",
					Brand:       "May & Baker",
					Category:    "Antihistamines",
					Quantity:    1,
					UnitPrice:   1500,
					Subtotal:    1500,
					BatchNumber: "LRT-2025-008",
				},
			},
		},
		{
			ID:            "sale-1004",
			Timestamp:     time.Date(2025, 7, 15, 16, 30, 0, 0, time.UTC),
			Total:         950,
			PaymentMethod: "Cash",
			StaffID:       "staff-003",
			ReceiptNo:     "RCP-20250715-A3B4C5D6",
			CustomerName:  "Tunde Bakare",
			Items: []LineItem{
				{
					ProductID:   "prod-005",
					ProductName: "ORS Sachets",
					Brand:       "Unicef",
					Category:    "Rehydration",
					Quantity:    5,
					UnitPrice:   190,
					Subtotal:    950,
				},
			},
		},
		{
			ID:            "sale-1005",
			Timestamp:     time.Date(2025, 7, 16, 10, 12, 0, 0, time.UTC),
			Total:         3400,
			PaymentMethod: "Transfer",
			StaffID:       "staff-002",
			ReceiptNo:     "RCP-20250716-E7F8A9B0",
			Items: []LineItem{
				{
					ProductID:   "prod-001",
					ProductName: "Paracetamol 500mg",
					Brand:       "Emzor",
					Category:    "Analgesics",
					Quantity:    4,
					UnitPrice:   850,
					Subtotal:    3400,
					BatchNumber: "PCM-2025-041",
					CostPrice:   cost(600),
				},
			},
		},
	}
}
