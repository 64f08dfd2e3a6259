package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// CheckoutStatus represents the status of a checkout
type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
)

// ParseCheckoutStatus parses a status string, case-insensitively
func ParseCheckoutStatus(s string) (CheckoutStatus, bool) {
	switch CheckoutStatus(strings.ToLower(s)) {
	case CheckoutStatusPending:
		return CheckoutStatusPending, true
	case CheckoutStatusCompleted:
		return CheckoutStatusCompleted, true
	}
	return "", false
}

func (s CheckoutStatus) String() string {
	return string(s)
}

func (s CheckoutStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *CheckoutStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = CheckoutStatus(strings.ToLower(str))
	return nil
}

func (s CheckoutStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *CheckoutStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CheckoutStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = CheckoutStatus(v)
	case []byte:
		*s = CheckoutStatus(string(v))
	}
	return nil
}
