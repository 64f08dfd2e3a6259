package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Restock represents an ingredient delivery from a supplier. Stock is
// credited only when a pending restock is approved.
type Restock struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID  *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Date        time.Time          `gorm:"type:date;not null" json:"date"`
	RestockNo   string             `gorm:"size:100;unique;not null" json:"restock_no"`
	Status      enum.RestockStatus `gorm:"default:0" json:"status"`
	TotalCost   int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	UpdatedBy   *uuid.UUID         `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Details  []RestockDetail `gorm:"foreignKey:RestockID" json:"details,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r Restock) MarshalJSON() ([]byte, error) {
	type Alias Restock
	return json.Marshal(&struct {
		Alias
		TotalCost float64 `json:"total_cost"`
	}{
		Alias:     Alias(r),
		TotalCost: float64(r.TotalCost) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new restock
func (r *Restock) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Restock model
func (Restock) TableName() string {
	return "restocks"
}

// RestockDetail represents one ingredient line in a restock
type RestockDetail struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestockID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"restock_id"`
	IngredientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Quantity     int64          `gorm:"not null" json:"-"` // Stored in thousandths
	UnitCost     int64          `gorm:"default:0" json:"-"` // Stored in cents
	Total        int64          `gorm:"default:0" json:"-"` // Stored in cents
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Restock    Restock    `gorm:"foreignKey:RestockID" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// MarshalJSON custom marshaler to convert fixed-point fields to decimals
func (d RestockDetail) MarshalJSON() ([]byte, error) {
	type Alias RestockDetail
	return json.Marshal(&struct {
		Alias
		Quantity float64 `json:"quantity"`
		UnitCost float64 `json:"unit_cost"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(d),
		Quantity: QtyToDecimal(d.Quantity),
		UnitCost: float64(d.UnitCost) / 100,
		Total:    float64(d.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new restock detail
func (d *RestockDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RestockDetail model
func (RestockDetail) TableName() string {
	return "restock_details"
}
