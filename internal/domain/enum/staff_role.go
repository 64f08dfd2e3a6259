package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// StaffRole represents the role of a staff account
type StaffRole string

const (
	StaffRoleManager StaffRole = "manager"
	StaffRoleBarista StaffRole = "barista"
)

// ParseStaffRole parses a role string, case-insensitively
func ParseStaffRole(s string) (StaffRole, bool) {
	switch StaffRole(strings.ToLower(s)) {
	case StaffRoleManager:
		return StaffRoleManager, true
	case StaffRoleBarista:
		return StaffRoleBarista, true
	}
	return "", false
}

func (r StaffRole) String() string {
	return string(r)
}

func (r StaffRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *StaffRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = StaffRole(strings.ToLower(str))
	return nil
}

func (r StaffRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *StaffRole) Scan(value interface{}) error {
	if value == nil {
		*r = StaffRoleBarista
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = StaffRole(v)
	case []byte:
		*r = StaffRole(string(v))
	}
	return nil
}
