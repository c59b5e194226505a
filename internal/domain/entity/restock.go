package entity

import (
	"encoding/json"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestockOrder represents an inbound stock order raised against a supplier
type RestockOrder struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StaffID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"staff_id"`
	Reference    string             `gorm:"size:100;unique;not null" json:"reference"`
	SupplierName string             `gorm:"size:255;not null" json:"supplier_name"`
	Status       enum.RestockStatus `gorm:"default:0" json:"status"`
	OrderedAt    time.Time          `gorm:"not null" json:"ordered_at"`
	ExpectedAt   *time.Time         `gorm:"type:date" json:"expected_at,omitempty"`
	ReceivedAt   *time.Time         `json:"received_at,omitempty"`
	TotalCost    int64              `gorm:"default:0" json:"-"` // Stored in kobo, excluded from JSON
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Staff Staff         `gorm:"foreignKey:StaffID" json:"-"`
	Items []RestockItem `gorm:"foreignKey:RestockOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert kobo to decimal naira for API responses
func (r RestockOrder) MarshalJSON() ([]byte, error) {
	type Alias RestockOrder
	return json.Marshal(&struct {
		Alias
		TotalCost float64 `json:"total_cost"`
	}{
		Alias:     Alias(r),
		TotalCost: float64(r.TotalCost) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new restock order
func (r *RestockOrder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RestockOrder model
func (RestockOrder) TableName() string {
	return "restock_orders"
}

// RestockItem represents one product line on a restock order
type RestockItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestockOrderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"restock_order_id"`
	ProductID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity       int            `gorm:"not null" json:"quantity"`
	UnitCost       int64          `gorm:"not null" json:"-"` // Stored in kobo, excluded from JSON
	BatchNumber    *string        `gorm:"size:100" json:"batch_number,omitempty"`
	ExpiryDate     *time.Time     `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	RestockOrder RestockOrder `gorm:"foreignKey:RestockOrderID" json:"-"`
	Product      Product      `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert kobo to decimal naira for API responses
func (ri RestockItem) MarshalJSON() ([]byte, error) {
	type Alias RestockItem
	return json.Marshal(&struct {
		Alias
		UnitCost float64 `json:"unit_cost"`
	}{
		Alias:    Alias(ri),
		UnitCost: float64(ri.UnitCost) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new restock item
func (ri *RestockItem) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RestockItem model
func (RestockItem) TableName() string {
	return "restock_items"
}
