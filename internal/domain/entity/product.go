package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a pharmacy product in the inventory
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Brand        string         `gorm:"size:255" json:"brand"`
	Category     string         `gorm:"size:255;index" json:"category"`
	Slug         string         `gorm:"size:255;unique;not null" json:"slug"`
	Code         string         `gorm:"size:100;unique;not null" json:"code"`
	Barcode      *string        `gorm:"size:100;index" json:"barcode,omitempty"`
	BatchNumber  *string        `gorm:"size:100" json:"batch_number,omitempty"`
	ExpiryDate   *time.Time     `gorm:"type:date" json:"expiry_date,omitempty"`
	Quantity     int            `gorm:"default:0" json:"quantity"`
	ReorderLevel int            `gorm:"default:0" json:"reorder_level"`
	CostPrice    int64          `gorm:"default:0" json:"-"` // Stored in kobo, decimal in JSON
	SellingPrice int64          `gorm:"default:0" json:"-"` // Stored in kobo, decimal in JSON
	RequiresRx   bool           `gorm:"default:false" json:"requires_rx"`
	Notes        *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert kobo to decimal naira for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
		LowStock     bool    `json:"low_stock"`
	}{
		Alias:        Alias(p),
		CostPrice:    float64(p.CostPrice) / 100,
		SellingPrice: float64(p.SellingPrice) / 100,
		LowStock:     p.IsLowStock(),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product has fallen to its reorder level.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// GetCostPriceDecimal returns the cost price in naira
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// GetSellingPriceDecimal returns the selling price in naira
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetCostPriceFromDecimal sets the cost price from a naira value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = int64(price * 100)
}

// SetSellingPriceFromDecimal sets the selling price from a naira value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}
