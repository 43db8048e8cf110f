package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "plain word", header: "Date", want: "DATE"},
		{name: "currency suffix", header: "Amount (₱)", want: "AMOUNT"},
		{name: "spaces collapse", header: "Payment Method", want: "PAYMENTMETHOD"},
		{name: "related id", header: "Related ID", want: "RELATEDID"},
		{name: "percent sign", header: "APR (%)", want: "APR"},
		{name: "underscore survives", header: "NEXT_TRANSACTION_ID", want: "NEXT_TRANSACTION_ID"},
		{name: "already canonical", header: "BALANCE", want: "BALANCE"},
		{name: "only punctuation", header: "(₱)", want: ""},
		{name: "empty", header: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.header))
		})
	}
}

func TestCanonicalHeaderVariants(t *testing.T) {
	// Renamed headers that differ only in punctuation or case must land on
	// the same key.
	variants := []string{"Amount (₱)", "Amount (PHP)___", "amount", "A-M-O-U-N-T"}
	for _, v := range variants {
		assert.Equal(t, "AMOUNT", Canonical(v), "header %q", v)
	}
}

func TestKeyClasses(t *testing.T) {
	assert.True(t, IsNumericKey("AMOUNT"))
	assert.True(t, IsNumericKey("DAYSLEFT"))
	assert.False(t, IsNumericKey("DESCRIPTION"))

	assert.True(t, IsDateKey("DUEDATE"))
	assert.True(t, IsDateKey("LASTPAYMENTDATE"))
	assert.False(t, IsDateKey("LASTPAYMENT"))

	// LASTPAYMENT is an amount, LASTPAYMENTDATE a date; the two must never
	// share a class.
	assert.False(t, IsDateKey("LASTPAYMENT"))
	assert.False(t, IsNumericKey("LASTPAYMENTDATE"))
}
