package request

import "time"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string     `json:"name" binding:"required,min=2,max=255"`
	Brand        string     `json:"brand" binding:"omitempty,max=255"`
	Category     string     `json:"category" binding:"omitempty,max=100"`
	Code         string     `json:"code" binding:"omitempty,max=100"`
	Barcode      *string    `json:"barcode" binding:"omitempty,max=100"`
	BatchNumber  *string    `json:"batch_number" binding:"omitempty,max=100"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Quantity     int        `json:"quantity" binding:"min=0"`
	ReorderLevel int        `json:"reorder_level" binding:"min=0"`
	CostPrice    float64    `json:"cost_price" binding:"min=0"`
	SellingPrice float64    `json:"selling_price" binding:"min=0"`
	RequiresRx   bool       `json:"requires_rx"`
	Notes        *string    `json:"notes"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Brand        *string    `json:"brand" binding:"omitempty,max=255"`
	Category     *string    `json:"category" binding:"omitempty,max=100"`
	Code         *string    `json:"code" binding:"omitempty,min=1,max=100"`
	Barcode      *string    `json:"barcode" binding:"omitempty,max=100"`
	BatchNumber  *string    `json:"batch_number" binding:"omitempty,max=100"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Quantity     *int       `json:"quantity" binding:"omitempty,min=0"`
	ReorderLevel *int       `json:"reorder_level" binding:"omitempty,min=0"`
	CostPrice    *float64   `json:"cost_price" binding:"omitempty,min=0"`
	SellingPrice *float64   `json:"selling_price" binding:"omitempty,min=0"`
	RequiresRx   *bool      `json:"requires_rx"`
	Notes        *string    `json:"notes"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Limit     int    `form:"limit"` // For cursor-based pagination
}

// ImportProductRowRequest represents one row in a bulk product import
type ImportProductRowRequest struct {
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Code         string  `json:"code"`
	Barcode      string  `json:"barcode"`
	BatchNumber  string  `json:"batch_number"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	Notes        string  `json:"notes"`
}

// ImportProductsRequest represents a bulk product import request
type ImportProductsRequest struct {
	Rows []ImportProductRowRequest `json:"rows" binding:"required,min=1,dive"`
}
