package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptAddOn represents an add-on line printed under an item.
type ReceiptAddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string         `json:"name"`
	Size      string         `json:"size,omitempty"`
	Quantity  int            `json:"quantity"`
	UnitPrice float64        `json:"unit_price"`
	Total     float64        `json:"total"`
	AddOns    []ReceiptAddOn `json:"addons,omitempty"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity; it is composed from checkout data at print time.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	ReceiptNo    int64         `json:"receipt_no"`
	Date         string        `json:"date"`
	Cashier      string        `json:"cashier,omitempty"`
	Customer     string        `json:"customer,omitempty"`
	OrderType    string        `json:"order_type"`
	Payment      string        `json:"payment"`
	ReferenceID  string        `json:"reference_id,omitempty"`
	Items        []ReceiptItem `json:"items"`
	SubTotal     float64       `json:"sub_total"`
	Discount     float64       `json:"discount"`
	Total        float64       `json:"total"`
	Tendered     float64       `json:"tendered"`
	Change       float64       `json:"change"`
	PointsEarned int           `json:"points_earned"`
	PointsSpent  int           `json:"points_spent"`
}
