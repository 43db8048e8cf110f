package schema

// EncodeByHeader renders a record into a raw row, positioning values by
// canonicalized header name so the write lands correctly whatever order
// the table keeps its columns in. Missing fields encode as empty strings.
func EncodeByHeader(header []string, rec map[string]any) []any {
	row := make([]any, len(header))
	for i, h := range header {
		key := Canonical(h)
		v, ok := rec[key]
		if !ok || v == nil {
			row[i] = ""
			continue
		}
		if IsNumericKey(key) {
			row[i] = ParseNumber(v)
			continue
		}
		row[i] = v
	}
	return row
}
