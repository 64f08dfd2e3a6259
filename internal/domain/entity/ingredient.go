package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QtyScale is the fixed-point scale for ingredient quantities.
// Quantities are stored in thousandths (3-decimal precision) so
// conditional stock decrements stay exact integer arithmetic.
const QtyScale = 1000

// QtyFromDecimal converts a decimal quantity to thousandths, rounded
// to 3 decimal places.
func QtyFromDecimal(q float64) int64 {
	return int64(math.Round(q * QtyScale))
}

// QtyToDecimal converts a thousandths quantity back to a decimal.
func QtyToDecimal(q int64) float64 {
	return float64(q) / QtyScale
}

// Ingredient represents a stocked ingredient in the inventory ledger
type Ingredient struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"size:255;unique;not null" json:"name"`
	Quantity          int64          `gorm:"default:0" json:"-"` // Stored in thousandths, excluded from JSON
	Unit              string         `gorm:"size:50;not null" json:"unit"`
	Price             int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	LowStockThreshold int64          `gorm:"default:0" json:"-"` // Stored in thousandths, excluded from JSON
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert fixed-point fields to decimals
func (i Ingredient) MarshalJSON() ([]byte, error) {
	type Alias Ingredient
	return json.Marshal(&struct {
		Alias
		Quantity          float64 `json:"quantity"`
		Price             float64 `json:"price"`
		LowStockThreshold float64 `json:"low_stock_threshold"`
	}{
		Alias:             Alias(i),
		Quantity:          QtyToDecimal(i.Quantity),
		Price:             float64(i.Price) / 100,
		LowStockThreshold: QtyToDecimal(i.LowStockThreshold),
	})
}

// BeforeCreate generates a UUID before creating a new ingredient
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ingredient model
func (Ingredient) TableName() string {
	return "ingredients"
}

// IsLowStock reports whether the ingredient is at or below its threshold
func (i *Ingredient) IsLowStock() bool {
	return i.LowStockThreshold > 0 && i.Quantity <= i.LowStockThreshold
}
