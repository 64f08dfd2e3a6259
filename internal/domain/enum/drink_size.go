package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// DrinkSize represents the cup size of a drink line item
type DrinkSize string

const (
	DrinkSize12oz DrinkSize = "12oz"
	DrinkSize16oz DrinkSize = "16oz"
)

// ParseDrinkSize parses a size string, case-insensitively
func ParseDrinkSize(s string) (DrinkSize, bool) {
	switch DrinkSize(strings.ToLower(strings.TrimSpace(s))) {
	case DrinkSize12oz:
		return DrinkSize12oz, true
	case DrinkSize16oz:
		return DrinkSize16oz, true
	}
	return "", false
}

func (s DrinkSize) String() string {
	return string(s)
}

func (s DrinkSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *DrinkSize) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = DrinkSize(strings.ToLower(str))
	return nil
}

func (s DrinkSize) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *DrinkSize) Scan(value interface{}) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = DrinkSize(v)
	case []byte:
		*s = DrinkSize(string(v))
	}
	return nil
}
