package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// MenuItem represents an item on the menu. Drinks carry per-size
// prices (12oz/16oz); everything else carries a flat price. Exactly
// one of the two pricing shapes is set.
type MenuItem struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name       string            `gorm:"size:255;unique;not null" json:"name"`
	Slug       string            `gorm:"size:255;unique;not null" json:"slug"`
	Category   enum.MenuCategory `gorm:"size:50;not null;index" json:"category"`
	Price      *int64            `json:"-"` // Flat price in cents (non-drinks)
	PriceOz12  *int64            `json:"-"` // 12oz price in cents (drinks)
	PriceOz16  *int64            `json:"-"` // 16oz price in cents (drinks)
	Available  bool              `gorm:"default:true" json:"available"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Recipe        []RecipeEntry `gorm:"foreignKey:MenuItemID" json:"recipe,omitempty"`
	Ingredients   []Ingredient  `gorm:"many2many:menu_item_ingredients" json:"ingredients,omitempty"`
	AllowedAddOns []AddOn       `gorm:"many2many:menu_item_addons" json:"allowed_addons,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	out := &struct {
		Alias
		Price     *float64 `json:"price,omitempty"`
		PriceOz12 *float64 `json:"price_oz12,omitempty"`
		PriceOz16 *float64 `json:"price_oz16,omitempty"`
	}{Alias: Alias(m)}

	if m.Price != nil {
		p := float64(*m.Price) / 100
		out.Price = &p
	}
	if m.PriceOz12 != nil {
		p := float64(*m.PriceOz12) / 100
		out.PriceOz12 = &p
	}
	if m.PriceOz16 != nil {
		p := float64(*m.PriceOz16) / 100
		out.PriceOz16 = &p
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// UnitPrice returns the unit price in cents for the given size.
// Non-drinks ignore size. The second return is false when the
// pricing shape does not cover the request (drink without a size,
// or a missing price column).
func (m *MenuItem) UnitPrice(size enum.DrinkSize) (int64, bool) {
	if m.Category.IsDrink() {
		switch size {
		case enum.DrinkSize12oz:
			if m.PriceOz12 != nil {
				return *m.PriceOz12, true
			}
		case enum.DrinkSize16oz:
			if m.PriceOz16 != nil {
				return *m.PriceOz16, true
			}
		}
		return 0, false
	}
	if m.Price != nil {
		return *m.Price, true
	}
	return 0, false
}

// AllowsAddOn reports whether the add-on may be attached to this item.
// An empty allowed set means every active add-on is offered.
func (m *MenuItem) AllowsAddOn(addOnID uuid.UUID) bool {
	if len(m.AllowedAddOns) == 0 {
		return true
	}
	for _, a := range m.AllowedAddOns {
		if a.ID == addOnID {
			return true
		}
	}
	return false
}

// RecipeEntry maps a menu item to one ingredient it consumes.
// QtyPerUnit is the per-unit requirement in thousandths; drinks may
// override it per size via QtyOz12/QtyOz16.
type RecipeEntry struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	IngredientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	QtyPerUnit   int64          `gorm:"default:0" json:"-"` // Thousandths
	QtyOz12      *int64         `json:"-"`                  // Thousandths, drinks only
	QtyOz16      *int64         `json:"-"`                  // Thousandths, drinks only
	Position     int            `gorm:"default:0" json:"position"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem   MenuItem   `gorm:"foreignKey:MenuItemID" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// MarshalJSON custom marshaler to convert thousandths to decimals
func (e RecipeEntry) MarshalJSON() ([]byte, error) {
	type Alias RecipeEntry
	out := &struct {
		Alias
		QtyPerUnit float64  `json:"qty_per_unit"`
		QtyOz12    *float64 `json:"qty_oz12,omitempty"`
		QtyOz16    *float64 `json:"qty_oz16,omitempty"`
	}{Alias: Alias(e), QtyPerUnit: QtyToDecimal(e.QtyPerUnit)}

	if e.QtyOz12 != nil {
		q := QtyToDecimal(*e.QtyOz12)
		out.QtyOz12 = &q
	}
	if e.QtyOz16 != nil {
		q := QtyToDecimal(*e.QtyOz16)
		out.QtyOz16 = &q
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new recipe entry
func (e *RecipeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RecipeEntry model
func (RecipeEntry) TableName() string {
	return "recipe_entries"
}

// PerUnit resolves the per-unit requirement in thousandths for the
// given size. The per-size override wins when present; otherwise the
// flat per-unit quantity applies.
func (e *RecipeEntry) PerUnit(size enum.DrinkSize) int64 {
	switch size {
	case enum.DrinkSize12oz:
		if e.QtyOz12 != nil {
			return *e.QtyOz12
		}
	case enum.DrinkSize16oz:
		if e.QtyOz16 != nil {
			return *e.QtyOz16
		}
	}
	return e.QtyPerUnit
}
