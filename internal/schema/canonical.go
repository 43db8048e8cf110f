// Package schema describes the tables of the bookkeeping store and decodes
// their raw rows into typed records.
package schema

import (
	"regexp"
	"strings"
)

var canonicalRe = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// Canonical normalizes a column name: every character outside
// [a-zA-Z0-9_] is stripped, the rest uppercased. "Amount (₱)" → "AMOUNT".
func Canonical(name string) string {
	return strings.ToUpper(canonicalRe.ReplaceAllString(name, ""))
}

// numericKeys are the canonical columns decoded as floating-point numbers.
var numericKeys = map[string]struct{}{
	"AMOUNT":         {},
	"LIMIT":          {},
	"BALANCE":        {},
	"LASTPAYMENT":    {},
	"APR":            {},
	"TARGETAMOUNT":   {},
	"SAVEDAMOUNT":    {},
	"MONTHLYSAVINGS": {},
	"DAYSLEFT":       {},
}

// dateKeys are the canonical columns decoded as ISO date strings.
var dateKeys = map[string]struct{}{
	"DATE":            {},
	"LASTPAYMENTDATE": {},
	"DUEDATE":         {},
	"STATEMENTDATE":   {},
	"TARGETDATE":      {},
}

// IsNumericKey reports whether the canonical key carries a numeric value.
func IsNumericKey(key string) bool {
	_, ok := numericKeys[key]
	return ok
}

// IsDateKey reports whether the canonical key carries a date value.
func IsDateKey(key string) bool {
	_, ok := dateKeys[key]
	return ok
}
