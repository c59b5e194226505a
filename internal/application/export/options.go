package export

import (
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
)

// Format identifies a supported export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Valid reports whether the format is one of the supported formats
func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatPDF, FormatXLSX:
		return true
	}
	return false
}

// Ext returns the file extension for the format, without the dot
func (f Format) Ext() string {
	return string(f)
}

// Options controls a single export or preview invocation.
// The date range is inclusive on both ends.
type Options struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Format Format    `json:"format"`

	// IncludeCustomer adds the customer name to rows and CSV output
	IncludeCustomer bool `json:"include_customer"`
	// IncludeBatch adds the batch number to rows and CSV output
	IncludeBatch bool `json:"include_batch"`
	// CalculateProfit adds a per-row profit margin column
	CalculateProfit bool `json:"calculate_profit"`
}

// Validate checks the format before any data retrieval or file I/O happens
func (o Options) Validate() error {
	if !o.Format.Valid() {
		return apperror.NewBadRequestError("unsupported export format: " + string(o.Format))
	}
	if o.To.Before(o.From) {
		return apperror.NewBadRequestError("export date range end precedes start")
	}
	return nil
}
