package request

// ExportRequest represents a sales data export or preview request
type ExportRequest struct {
	From   string `json:"from" form:"from" binding:"required"` // YYYY-MM-DD
	To     string `json:"to" form:"to" binding:"required"`     // YYYY-MM-DD
	Format string `json:"format" form:"format"`

	IncludeCustomer bool `json:"include_customer" form:"include_customer"`
	IncludeBatch    bool `json:"include_batch" form:"include_batch"`
	CalculateProfit bool `json:"calculate_profit" form:"calculate_profit"`
}

// FileActionRequest identifies an exported file for share or delete
// operations. Only the bare file name is accepted, never a path.
type FileActionRequest struct {
	FileName string `json:"file_name" binding:"required"`
}
