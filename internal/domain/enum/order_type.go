package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// OrderType represents where the order is consumed
type OrderType string

const (
	OrderTypeDineIn  OrderType = "dinein"
	OrderTypeTakeout OrderType = "takeout"
)

// ParseOrderType parses an order type string, case-insensitively
func ParseOrderType(s string) (OrderType, bool) {
	switch OrderType(strings.ToLower(s)) {
	case OrderTypeDineIn:
		return OrderTypeDineIn, true
	case OrderTypeTakeout:
		return OrderTypeTakeout, true
	}
	return "", false
}

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = OrderType(strings.ToLower(str))
	return nil
}

func (t OrderType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *OrderType) Scan(value interface{}) error {
	if value == nil {
		*t = OrderTypeDineIn
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = OrderType(v)
	case []byte:
		*t = OrderType(string(v))
	}
	return nil
}
