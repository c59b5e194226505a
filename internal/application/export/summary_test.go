package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSales() []SaleRecord {
	return []SaleRecord{
		{
			ID:            "s1",
			Timestamp:     time.Date(2025, 7, 13, 9, 0, 0, 0, time.UTC),
			PaymentMethod: "Cash",
			StaffID:       "staff-001",
			ReceiptNo:     "RCP-1",
			CustomerName:  "Ada",
			Items: []LineItem{
				{ProductName: "Paracetamol", Brand: "Emzor", Category: "Analgesics", Quantity: 2, UnitPrice: 500, Subtotal: 1000, BatchNumber: "B-1"},
				{ProductName: "Vitamin C", Brand: "GSK", Category: "Supplements", Quantity: 1, UnitPrice: 300, Subtotal: 300},
			},
		},
		{
			ID:            "s2",
			Timestamp:     time.Date(2025, 7, 13, 15, 30, 0, 0, time.UTC),
			PaymentMethod: "Card",
			StaffID:       "staff-002",
			ReceiptNo:     "RCP-2",
			Items: []LineItem{
				{ProductName: "Paracetamol", Brand: "Emzor", Category: "Analgesics", Quantity: 3, UnitPrice: 500, Subtotal: 1500},
			},
		},
	}
}

func testDirectory() StaticStaffDirectory {
	return StaticStaffDirectory{
		"staff-001": "Adaeze Okafor",
		"staff-002": "Emeka Obi",
	}
}

func TestTransform_OneRowPerLineItem(t *testing.T) {
	rows := Transform(context.Background(), testSales(), Options{}, testDirectory())

	assert.Len(t, rows, 3)
	assert.Equal(t, "Paracetamol", rows[0].ProductName)
	assert.Equal(t, "Vitamin C", rows[1].ProductName)
	assert.Equal(t, "Paracetamol", rows[2].ProductName)
	assert.Equal(t, "2025-07-13", rows[0].Date)
	assert.Equal(t, "09:00", rows[0].Time)
	assert.Equal(t, "Adaeze Okafor", rows[0].SoldBy)
	assert.Equal(t, "Emeka Obi", rows[2].SoldBy)
}

func TestTransform_Defaults(t *testing.T) {
	sales := []SaleRecord{
		{
			ID:        "s1",
			Timestamp: time.Date(2025, 7, 13, 9, 0, 0, 0, time.UTC),
			Items: []LineItem{
				{UnitPrice: 400},
			},
		},
	}

	rows := Transform(context.Background(), sales, Options{}, testDirectory())

	assert.Len(t, rows, 1)
	assert.Equal(t, "Unknown Product", rows[0].ProductName)
	assert.Equal(t, "Unknown", rows[0].Brand)
	assert.Equal(t, "Unknown", rows[0].Category)
	assert.Equal(t, 1, rows[0].QuantitySold, "missing quantity defaults to 1")
	assert.Equal(t, 400.0, rows[0].TotalAmount, "missing subtotal defaults to quantity * unit price")
	assert.Equal(t, "Unknown Staff", rows[0].SoldBy, "missing staff id becomes Unknown Staff")
}

func TestTransform_UnknownStaffIDPassesThrough(t *testing.T) {
	sales := testSales()
	sales[0].StaffID = "staff-999"

	rows := Transform(context.Background(), sales, Options{}, testDirectory())

	assert.Equal(t, "staff-999", rows[0].SoldBy)
}

func TestTransform_OptionGatedFields(t *testing.T) {
	off := Transform(context.Background(), testSales(), Options{}, testDirectory())
	assert.Empty(t, off[0].CustomerName)
	assert.Empty(t, off[0].BatchNumber)
	assert.Nil(t, off[0].ProfitMargin)

	on := Transform(context.Background(), testSales(), Options{
		IncludeCustomer: true,
		IncludeBatch:    true,
		CalculateProfit: true,
	}, testDirectory())
	assert.Equal(t, "Ada", on[0].CustomerName)
	assert.Equal(t, "B-1", on[0].BatchNumber)
	if assert.NotNil(t, on[0].ProfitMargin) {
		// No cost price supplied, so cost defaults to 70% of the unit price
		assert.InDelta(t, 150.0, *on[0].ProfitMargin, 0.0001)
	}
}

func TestTransform_ProfitMarginWithCostPrice(t *testing.T) {
	sales := testSales()
	c := 320.0
	sales[0].Items[0].CostPrice = &c

	rows := Transform(context.Background(), sales, Options{CalculateProfit: true}, testDirectory())

	if assert.NotNil(t, rows[0].ProfitMargin) {
		assert.InDelta(t, 180.0, *rows[0].ProfitMargin, 0.0001)
	}
}

func TestSummarize_Invariants(t *testing.T) {
	rows := Transform(context.Background(), testSales(), Options{}, testDirectory())
	summary := Summarize(rows)

	var revenue float64
	for _, r := range rows {
		revenue += r.TotalAmount
	}

	assert.Equal(t, revenue, summary.TotalRevenue, "total revenue equals sum of row amounts")
	assert.Equal(t, 2, summary.TotalTransactions, "transactions counted by distinct sale id")
	assert.Equal(t, 6, summary.TotalQuantity)
	assert.Equal(t, revenue/2, summary.AverageSale)
}

func TestSummarize_EmptyRows(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalTransactions)
	assert.Zero(t, summary.AverageSale, "average sale is 0 for empty input, not NaN")
	assert.Empty(t, summary.TopProducts)
}

func TestSummarize_TopProducts(t *testing.T) {
	var sales []SaleRecord
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		sales = append(sales, SaleRecord{
			ID:            name,
			Timestamp:     time.Date(2025, 7, 13, 9, 0, 0, 0, time.UTC),
			PaymentMethod: "Cash",
			Items: []LineItem{
				{ProductName: name, Quantity: len(names) - i, UnitPrice: 100, Subtotal: float64((len(names) - i) * 100)},
			},
		})
	}

	summary := Summarize(Transform(context.Background(), sales, Options{}, nil))

	assert.Len(t, summary.TopProducts, 5, "top products truncated to 5")
	for i := 1; i < len(summary.TopProducts); i++ {
		assert.GreaterOrEqual(t, summary.TopProducts[i-1].Quantity, summary.TopProducts[i].Quantity,
			"top products sorted non-increasing by quantity")
	}
	assert.Equal(t, "A", summary.TopProducts[0].Name)
}

func TestSummarize_TopProductTiesKeepEncounterOrder(t *testing.T) {
	sales := []SaleRecord{
		{
			ID:        "s1",
			Timestamp: time.Date(2025, 7, 13, 9, 0, 0, 0, time.UTC),
			Items: []LineItem{
				{ProductName: "First", Quantity: 2, UnitPrice: 100, Subtotal: 200},
				{ProductName: "Second", Quantity: 2, UnitPrice: 100, Subtotal: 200},
			},
		},
	}

	summary := Summarize(Transform(context.Background(), sales, Options{}, nil))

	assert.Equal(t, "First", summary.TopProducts[0].Name)
	assert.Equal(t, "Second", summary.TopProducts[1].Name)
}

func TestSummarize_StaffSortedByRevenue(t *testing.T) {
	rows := Transform(context.Background(), testSales(), Options{}, testDirectory())
	summary := Summarize(rows)

	assert.Len(t, summary.SalesByStaff, 2)
	for i := 1; i < len(summary.SalesByStaff); i++ {
		assert.GreaterOrEqual(t, summary.SalesByStaff[i-1].Revenue, summary.SalesByStaff[i].Revenue)
	}
}

func TestSummarize_PaymentDedupPerSale(t *testing.T) {
	rows := Transform(context.Background(), testSales(), Options{}, testDirectory())
	summary := Summarize(rows)

	// s1 contributes only through its first row (1000), s2 through its
	// single row (1500)
	assert.Len(t, summary.SalesByPayment, 2)
	assert.Equal(t, "Card", summary.SalesByPayment[0].Method)
	assert.Equal(t, 1500.0, summary.SalesByPayment[0].Amount)
	assert.Equal(t, 1, summary.SalesByPayment[0].Count)
	assert.Equal(t, "Cash", summary.SalesByPayment[1].Method)
	assert.Equal(t, 1000.0, summary.SalesByPayment[1].Amount)
	assert.Equal(t, 1, summary.SalesByPayment[1].Count)
}

func TestSummarize_PaymentAmountsSumToRevenueForSingleItemSales(t *testing.T) {
	sales := []SaleRecord{
		{ID: "s1", PaymentMethod: "Cash", Items: []LineItem{{ProductName: "A", Quantity: 1, UnitPrice: 700, Subtotal: 700}}},
		{ID: "s2", PaymentMethod: "Card", Items: []LineItem{{ProductName: "B", Quantity: 1, UnitPrice: 300, Subtotal: 300}}},
	}

	summary := Summarize(Transform(context.Background(), sales, Options{}, nil))

	var paymentTotal float64
	for _, pm := range summary.SalesByPayment {
		paymentTotal += pm.Amount
	}
	assert.Equal(t, summary.TotalRevenue, paymentTotal)
}
