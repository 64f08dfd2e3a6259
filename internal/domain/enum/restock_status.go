package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RestockStatus represents the status of an ingredient restock
type RestockStatus int

const (
	RestockStatusPending   RestockStatus = 0
	RestockStatusApproved  RestockStatus = 1
	RestockStatusCancelled RestockStatus = 2
)

func (s RestockStatus) String() string {
	names := [...]string{"Pending", "Approved", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

func (s RestockStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RestockStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = RestockStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = RestockStatusPending
	case "Approved":
		*s = RestockStatusApproved
	case "Cancelled":
		*s = RestockStatusCancelled
	}
	return nil
}

func (s RestockStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *RestockStatus) Scan(value interface{}) error {
	if value == nil {
		*s = RestockStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = RestockStatus(v)
	case int:
		*s = RestockStatus(v)
	}
	return nil
}
