package idea

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as JSON in a TEXT column.
type StringList []string

// StringMap is a string-to-string mapping stored as JSON in a TEXT column.
type StringMap map[string]string

// IntMap is a string-to-integer mapping stored as JSON in a TEXT column.
type IntMap map[string]int

// Value implements driver.Valuer. Nil and empty lists store as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON text from database rows.
func (l *StringList) Scan(value any) error {
	return scanJSON(value, l)
}

// Value implements driver.Valuer. Nil and empty maps store as "{}".
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON text from database rows.
func (m *StringMap) Scan(value any) error {
	return scanJSON(value, m)
}

// Value implements driver.Valuer. Nil and empty maps store as "{}".
func (m IntMap) Value() (driver.Value, error) {
	if m == nil {
		m = IntMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON text from database rows.
func (m *IntMap) Scan(value any) error {
	return scanJSON(value, m)
}

// scanJSON decodes a TEXT column into dst. SQLite drivers hand TEXT back
// as string, other engines as []byte; both are accepted.
func scanJSON(value, dst any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, dst)
	}
}
