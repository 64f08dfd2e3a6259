package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Checkout is the persisted receipt aggregate. Line items, prices and
// the customer identity are snapshotted at creation time; subtotal,
// total, points and the receipt number are derived by the checkout
// engine and never accepted from callers.
type Checkout struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo     int64               `gorm:"unique;not null;index" json:"receipt_no"`
	UserID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName  *string             `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerEmail *string             `gorm:"size:255" json:"customer_email,omitempty"`
	Status        enum.CheckoutStatus `gorm:"size:50;default:'pending';index" json:"status"`
	OrderType     enum.OrderType      `gorm:"size:50;default:'dinein'" json:"order_type"`
	PaymentMethod enum.PaymentMethod  `gorm:"size:50;not null" json:"payment_method"`
	SubTotal      int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total         int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tendered      int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Change        int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ReferenceID   *string             `gorm:"size:100" json:"reference_id,omitempty"`
	PointsEarned  int                 `gorm:"default:0" json:"points_earned"`
	PointsSpent   int                 `gorm:"default:0" json:"points_spent"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []CheckoutItem `gorm:"foreignKey:CheckoutID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Checkout) MarshalJSON() ([]byte, error) {
	type Alias Checkout
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Total    float64 `json:"total"`
		Tendered float64 `json:"tendered"`
		Change   float64 `json:"change"`
	}{
		Alias:    Alias(c),
		SubTotal: float64(c.SubTotal) / 100,
		Total:    float64(c.Total) / 100,
		Tendered: float64(c.Tendered) / 100,
		Change:   float64(c.Change) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new checkout
func (c *Checkout) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Checkout model
func (Checkout) TableName() string {
	return "checkouts"
}

// GetTotalDecimal returns the total as a decimal
func (c *Checkout) GetTotalDecimal() float64 {
	return float64(c.Total) / 100
}

// CheckoutItem is a priced line-item snapshot on a receipt.
type CheckoutItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CheckoutID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"checkout_id"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name         string          `gorm:"size:255;not null" json:"name"` // Snapshot
	UnitPrice    int64           `gorm:"not null" json:"-"`             // Stored in cents
	Size         *enum.DrinkSize `gorm:"size:20" json:"size,omitempty"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	LineDiscount int64           `gorm:"default:0" json:"-"` // Per-unit discount in cents
	SubTotal     int64           `gorm:"not null" json:"-"`  // Stored in cents
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relationships
	Checkout Checkout           `gorm:"foreignKey:CheckoutID" json:"-"`
	AddOns   []CheckoutItemAddOn `gorm:"foreignKey:CheckoutItemID" json:"addons,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (ci CheckoutItem) MarshalJSON() ([]byte, error) {
	type Alias CheckoutItem
	return json.Marshal(&struct {
		Alias
		UnitPrice    float64 `json:"unit_price"`
		LineDiscount float64 `json:"line_discount"`
		SubTotal     float64 `json:"sub_total"`
	}{
		Alias:        Alias(ci),
		UnitPrice:    float64(ci.UnitPrice) / 100,
		LineDiscount: float64(ci.LineDiscount) / 100,
		SubTotal:     float64(ci.SubTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new checkout item
func (ci *CheckoutItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CheckoutItem model
func (CheckoutItem) TableName() string {
	return "checkout_items"
}

// CheckoutItemAddOn is an add-on snapshot attached to a line item.
// Later edits to the add-on catalog never touch historical receipts.
type CheckoutItemAddOn struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CheckoutItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"checkout_item_id"`
	AddOnID        uuid.UUID `gorm:"type:uuid;not null" json:"addon_id"`
	Name           string    `gorm:"size:255;not null" json:"name"` // Snapshot
	Price          int64     `gorm:"not null" json:"-"`             // Stored in cents
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	CheckoutItem CheckoutItem `gorm:"foreignKey:CheckoutItemID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a CheckoutItemAddOn) MarshalJSON() ([]byte, error) {
	type Alias CheckoutItemAddOn
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(a),
		Price: float64(a.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new add-on snapshot
func (a *CheckoutItemAddOn) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CheckoutItemAddOn model
func (CheckoutItemAddOn) TableName() string {
	return "checkout_item_addons"
}
