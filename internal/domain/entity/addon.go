package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// AddOn represents an extra that can be attached to a line item
// (oat milk, extra shot, pearls). Only active add-ons are offered.
type AddOn struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string            `gorm:"size:255;unique;not null" json:"name"`
	Price     int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Active    bool              `gorm:"default:true" json:"active"`
	Category  enum.MenuCategory `gorm:"size:50" json:"category"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a AddOn) MarshalJSON() ([]byte, error) {
	type Alias AddOn
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(a),
		Price: float64(a.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new add-on
func (a *AddOn) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AddOn model
func (AddOn) TableName() string {
	return "addons"
}
