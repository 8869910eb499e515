package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout is the on-disk format for listing timestamps.
const timeLayout = time.RFC3339Nano

func encodeTime(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(timeLayout), Valid: true}
}

func decodeTime(raw sql.NullString) (time.Time, error) {
	if !raw.Valid || raw.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timeLayout, raw.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode time %q: %w", raw.String, err)
	}
	return t, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	items := []string{}
	if raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

// nextPosition is the SQL expression giving a new row's place at the end of
// table's catalog order.
func nextPosition(table string) string {
	return "(SELECT COALESCE(MAX(position), 0) + 1 FROM " + table + ")"
}
