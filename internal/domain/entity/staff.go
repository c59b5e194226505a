package entity

import (
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff represents a pharmacy staff member who can log in and ring up sales
type Staff struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DisplayName string         `gorm:"size:255;not null" json:"display_name"`
	Email       string         `gorm:"size:255;unique;not null" json:"email"`
	Password    string         `gorm:"size:255" json:"-"`
	Role        enum.StaffRole `gorm:"size:50;default:'cashier'" json:"role"`
	Active      bool           `gorm:"default:true" json:"active"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:StaffID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new staff member
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}

// HasRole checks if the staff member has one of the given roles
func (s *Staff) HasRole(roles ...enum.StaffRole) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
