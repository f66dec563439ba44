package models

import (
	"database/sql/driver"
	"errors"
	"strings"
)

// DefaultCategories is the vocabulary offered to operators when tagging a
// game. The storage layer stays permissive: any comma-free label is accepted.
var DefaultCategories = []string{
	"Weather",
	"Politics",
	"Sports",
	"Technology",
	"Finance",
	"Entertainment",
	"Others",
}

// Categories is an ordered set of category labels, stored as a single
// comma-joined string column.
type Categories []string

// EncodeCategories joins labels into the storage form. Labels are expected to
// be already trimmed and comma-free; no normalization happens here.
func EncodeCategories(labels []string) string {
	return strings.Join(labels, ",")
}

// DecodeCategories splits the storage form back into labels, trimming each
// part and dropping empty ones.
func DecodeCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	var labels []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		labels = append(labels, part)
	}
	return labels
}

// CategoryPredicate returns a SQL fragment matching label as an exact
// comma-delimited element of the categories column, so filtering for
// "Sports" does not match "Sports2" or "NotSports". Works on both the
// sqlite and postgres dialects.
func CategoryPredicate(label string) (string, []any) {
	return "(',' || categories || ',') LIKE ('%,' || ? || ',%')", []any{label}
}

// Value implements driver.Valuer so the column round-trips through gorm.
func (c Categories) Value() (driver.Value, error) {
	return EncodeCategories(c), nil
}

// Scan implements sql.Scanner.
func (c *Categories) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return errors.New("unsupported type for categories column")
	}

	*c = DecodeCategories(raw)
	return nil
}
