package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	salesSheet   = "Sales"
	summarySheet = "Summary"
)

// MarshalXLSX renders rows and summary as a two-sheet workbook
func MarshalXLSX(rows []Row, summary Summary, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), salesSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	header := csvHeader(opts)
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(salesSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := xlsxRecord(row, opts)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(salesSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := writeSummarySheet(f, summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// xlsxRecord mirrors csvRecord but keeps numbers numeric so spreadsheet
// formulas work on the exported cells.
func xlsxRecord(row Row, opts Options) []interface{} {
	values := []interface{}{
		row.Date,
		row.Time,
		row.ReceiptNo,
		row.ProductName,
		row.Brand,
		row.Category,
		row.QuantitySold,
		row.UnitPrice,
		row.TotalAmount,
		row.PaymentMethod,
		row.SoldBy,
	}
	if opts.IncludeCustomer {
		values = append(values, row.CustomerName)
	}
	if opts.IncludeBatch {
		values = append(values, row.BatchNumber)
	}
	if opts.CalculateProfit {
		var margin interface{}
		if row.ProfitMargin != nil {
			margin = *row.ProfitMargin
		} else {
			margin = ""
		}
		values = append(values, margin)
	}
	return values
}

func writeSummarySheet(f *excelize.File, summary Summary) error {
	line := 1
	set := func(values ...interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, line)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
		line++
		return nil
	}

	if err := set("Total Quantity", summary.TotalQuantity); err != nil {
		return err
	}
	if err := set("Total Revenue", summary.TotalRevenue); err != nil {
		return err
	}
	if err := set("Transactions", summary.TotalTransactions); err != nil {
		return err
	}
	if err := set("Average Sale", summary.AverageSale); err != nil {
		return err
	}

	line++
	if err := set("Top Products", "Quantity", "Revenue"); err != nil {
		return err
	}
	for _, p := range summary.TopProducts {
		if err := set(p.Name, p.Quantity, p.Revenue); err != nil {
			return err
		}
	}

	line++
	if err := set("Staff", "Quantity", "Revenue"); err != nil {
		return err
	}
	for _, st := range summary.SalesByStaff {
		if err := set(st.Name, st.Quantity, st.Revenue); err != nil {
			return err
		}
	}

	line++
	if err := set("Payment Method", "Count", "Amount"); err != nil {
		return err
	}
	for _, pm := range summary.SalesByPayment {
		if err := set(pm.Method, pm.Count, pm.Amount); err != nil {
			return err
		}
	}

	return nil
}

// MarshalPDF is a placeholder. CSV, JSON and XLSX are the supported
// on-disk formats; requesting PDF fails with a clear error instead of
// producing an empty file.
func MarshalPDF(rows []Row, summary Summary, opts Options) ([]byte, error) {
	return nil, fmt.Errorf("pdf export is not implemented, use csv, json or xlsx")
}
