package request

// CheckoutItemRequest represents one line item in a checkout request
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest represents a checkout request
type CheckoutRequest struct {
	PaymentMethod string                `json:"payment_method" binding:"required,oneof=cash card transfer"`
	CustomerName  *string               `json:"customer_name" binding:"omitempty,max=255"`
	Paid          float64               `json:"paid" binding:"required,min=0"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Search        string `form:"search"`
	Status        *int   `form:"status"`
	StaffID       string `form:"staff_id"`
	PaymentMethod string `form:"payment_method"`
	StartDate     string `form:"start_date"` // YYYY-MM-DD
	EndDate       string `form:"end_date"`   // YYYY-MM-DD
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
	Limit         int    `form:"limit"` // For cursor-based pagination
}
