package engine

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExportCSV renders a full table as CSV with every field quoted and
// embedded double quotes doubled, then base64-encodes the result for
// transport. A header-only table exports exactly the quoted header line.
func (e *Engine) ExportCSV(ctx context.Context, tableName string) (string, error) {
	t, err := e.store.ReadTable(ctx, tableName)
	if err != nil {
		return "", fmt.Errorf("failed to read table %s: %w", tableName, err)
	}

	lines := make([]string, 0, len(t.Rows)+1)
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	lines = append(lines, csvLine(header))
	for _, row := range t.Rows {
		lines = append(lines, csvLine(row))
	}

	csv := strings.Join(lines, "\n")
	return base64.StdEncoding.EncodeToString([]byte(csv)), nil
}

func csvLine(cells []any) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cellString(c), `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func cellString(c any) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}
