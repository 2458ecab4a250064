package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings stored as a comma-separated text
// column. On the wire it accepts either a JSON array or a single
// comma-separated string ("React, Node.js"), which is split, trimmed and
// filtered of empty items. It always marshals back out as a JSON array.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*l = splitAndTrim(strings.Join(asList, ","))
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("technologies must be a string or an array of strings: %w", err)
	}
	*l = splitAndTrim(asString)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Value implements driver.Valuer so GORM persists the list as comma-joined text.
func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

// Scan implements sql.Scanner for reading the comma-joined column back.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
	case string:
		*l = splitAndTrim(v)
	case []byte:
		*l = splitAndTrim(string(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return nil
}

// GormDataType keeps the column type stable across postgres and sqlite.
func (StringList) GormDataType() string {
	return "text"
}

func splitAndTrim(s string) StringList {
	parts := strings.Split(s, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
