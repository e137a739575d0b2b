package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringMap custom type for JSON storage of key/value maps (contact, social,
// settings, smtp config).
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(map[string]string)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	return json.Unmarshal(bytes, m)
}

// StringList custom type for JSON storage of string slices (technologies,
// gallery, deliverables, badges).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	return json.Unmarshal(bytes, l)
}
