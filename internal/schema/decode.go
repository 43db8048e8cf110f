package schema

import (
	"strconv"
	"strings"
	"time"

	"github.com/jdalisay/pitaka/internal/service"
)

// DecodeTable produces one decoded record per data row: a map from
// canonical column key to typed value. A header-only or empty table
// decodes to an empty sequence, never an error. A cell that cannot be
// decoded becomes an explicit nil rather than aborting its row.
func DecodeTable(t *service.Table) []map[string]any {
	if t == nil || len(t.Header) == 0 || len(t.Rows) == 0 {
		return []map[string]any{}
	}

	keys := make([]string, len(t.Header))
	for i, h := range t.Header {
		keys[i] = Canonical(h)
	}

	records := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(keys))
		for i, key := range keys {
			if key == "" {
				continue
			}
			if i >= len(row) {
				rec[key] = nil
				continue
			}
			rec[key] = DecodeCell(key, row[i])
		}
		records = append(records, rec)
	}
	return records
}

// DecodeCell converts one raw cell into its typed value for the given
// canonical key.
func DecodeCell(key string, raw any) any {
	switch {
	case IsNumericKey(key):
		return ParseNumber(raw)
	case IsDateKey(key):
		return decodeDate(raw)
	default:
		return raw
	}
}

// ParseNumber coerces a raw cell into a float64 following the store's
// conventions: textual values lose thousands-separator commas and default
// to 0 when empty or malformed; date-typed cells reinterpret their
// underlying timestamp as the number.
func ParseNumber(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case time.Time:
		// Spreadsheet quirk: a date-formatted cell in a numeric column.
		return float64(v.UnixMilli())
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if cleaned == "" {
			return 0
		}
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func decodeDate(raw any) any {
	if d, ok := raw.(time.Time); ok {
		return d.Format("2006-01-02")
	}
	// Already a string (or empty); pass through unchanged.
	return raw
}

// IndexByID maps each record's ID field to its data-row index. The first
// occurrence of a duplicate id wins, matching scan order.
func IndexByID(records []map[string]any) map[string]int {
	index := make(map[string]int, len(records))
	for i, rec := range records {
		id, ok := rec["ID"].(string)
		if !ok || id == "" {
			continue
		}
		if _, seen := index[id]; !seen {
			index[id] = i
		}
	}
	return index
}
