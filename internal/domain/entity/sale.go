package entity

import (
	"encoding/json"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents one completed checkout transaction
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StaffID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"staff_id"`
	ReceiptNo     string             `gorm:"size:100;unique;not null" json:"receipt_no"`
	SoldAt        time.Time          `gorm:"not null;index" json:"sold_at"`
	Status        enum.SaleStatus    `gorm:"default:0" json:"status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	TotalItems    int                `gorm:"default:0" json:"total_items"`
	Total         int64              `gorm:"default:0" json:"-"` // Stored in kobo, excluded from JSON
	Paid          int64              `gorm:"default:0" json:"-"` // Stored in kobo, excluded from JSON
	Change        int64              `gorm:"default:0" json:"-"` // Stored in kobo, excluded from JSON
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Staff Staff      `gorm:"foreignKey:StaffID" json:"-"`
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert kobo to decimal naira for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Total  float64 `json:"total"`
		Paid   float64 `json:"paid"`
		Change float64 `json:"change"`
	}{
		Alias:  Alias(s),
		Total:  float64(s.Total) / 100,
		Paid:   float64(s.Paid) / 100,
		Change: float64(s.Change) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalDecimal returns the total in naira
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.Total) / 100
}

// SaleItem represents a line item in a sale
type SaleItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice int64          `gorm:"not null" json:"-"` // Stored in kobo, excluded from JSON
	Subtotal  int64          `gorm:"not null" json:"-"` // Stored in kobo, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert kobo to decimal naira for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
		Subtotal:  float64(si.Subtotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
