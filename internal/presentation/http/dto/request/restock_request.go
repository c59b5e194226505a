package request

import "time"

// RestockItemRequest represents one product line on a restock order
type RestockItemRequest struct {
	ProductID   string     `json:"product_id" binding:"required,uuid"`
	Quantity    int        `json:"quantity" binding:"required,min=1"`
	UnitCost    float64    `json:"unit_cost" binding:"min=0"`
	BatchNumber *string    `json:"batch_number" binding:"omitempty,max=100"`
	ExpiryDate  *time.Time `json:"expiry_date"`
}

// CreateRestockRequest represents a restock order creation request
type CreateRestockRequest struct {
	SupplierName string               `json:"supplier_name" binding:"required,min=2,max=255"`
	ExpectedAt   *time.Time           `json:"expected_at"`
	Items        []RestockItemRequest `json:"items" binding:"required,min=1,dive"`
}

// RestockFilterRequest represents restock order filter parameters
type RestockFilterRequest struct {
	Search    string `form:"search"`
	Status    *int   `form:"status"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
