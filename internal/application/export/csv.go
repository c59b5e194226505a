package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Ajoe62/Pharmjam-sub001/pkg/currency"
)

// csvHeader returns the base columns plus any option-gated columns, in the
// same order the row values are written.
func csvHeader(opts Options) []string {
	header := []string{
		"Date",
		"Time",
		"Receipt No",
		"Product Name",
		"Brand",
		"Category",
		"Quantity",
		"Unit Price",
		"Total Amount",
		"Payment Method",
		"Sold By",
	}
	if opts.IncludeCustomer {
		header = append(header, "Customer Name")
	}
	if opts.IncludeBatch {
		header = append(header, "Batch Number")
	}
	if opts.CalculateProfit {
		header = append(header, "Profit Margin")
	}
	return header
}

func csvRecord(row Row, opts Options) []string {
	record := []string{
		row.Date,
		row.Time,
		row.ReceiptNo,
		row.ProductName,
		row.Brand,
		row.Category,
		strconv.Itoa(row.QuantitySold),
		currency.FormatPlain(row.UnitPrice),
		currency.FormatPlain(row.TotalAmount),
		row.PaymentMethod,
		row.SoldBy,
	}
	if opts.IncludeCustomer {
		record = append(record, row.CustomerName)
	}
	if opts.IncludeBatch {
		record = append(record, row.BatchNumber)
	}
	if opts.CalculateProfit {
		margin := ""
		if row.ProfitMargin != nil {
			margin = currency.FormatPlain(*row.ProfitMargin)
		}
		record = append(record, margin)
	}
	return record
}

// MarshalCSV renders rows as UTF-8 CSV with option-gated columns
func MarshalCSV(rows []Row, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader(opts)); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(csvRecord(row, opts)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
