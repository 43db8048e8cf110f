package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdalisay/pitaka/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>Info
</STATUS>
<DTSERVER>20260131120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>PHP
<BANKACCTFROM>
<BANKID>010530667
<ACCTID>0012345678
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101120000[0:GMT]
<DTEND>20260131120000[0:GMT]
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260105120000[0:GMT]
<TRNAMT>50000.00
<FITID>2026010501
<NAME>PAYROLL CREDIT
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260108120000[0:GMT]
<TRNAMT>-3500.50
<FITID>2026010801
<NAME>SM SUPERMARKET
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260112120000[0:GMT]
<TRNAMT>-1800.00
<FITID>2026011201
<MEMO>PLDT FIBER AUTOPAY
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>44699.50
<DTASOF>20260131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260131120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>PHP
<CCACCTFROM>
<ACCTID>4511111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101120000[0:GMT]
<DTEND>20260131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260110120000[0:GMT]
<TRNAMT>-2499.00
<FITID>2026011001
<NAME>LAZADA PH
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260120120000[0:GMT]
<TRNAMT>5000.00
<FITID>2026012001
<NAME>PAYMENT RECEIVED
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-2499.00
<DTASOF>20260131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFileBankStatement(t *testing.T) {
	p := NewParser()

	entries, err := p.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Positive statement amount is income at its face value.
	assert.Equal(t, "2026-01-05", entries[0].Date)
	assert.Equal(t, model.TypeIncome, entries[0].Type)
	assert.Equal(t, 50000.0, entries[0].Amount)
	assert.Equal(t, "PAYROLL CREDIT", entries[0].Description)

	// Negative statement amount becomes an expense magnitude.
	assert.Equal(t, model.TypeExpense, entries[1].Type)
	assert.Equal(t, 3500.5, entries[1].Amount)

	// NAME missing falls back to MEMO.
	assert.Equal(t, "PLDT FIBER AUTOPAY", entries[2].Description)
}

func TestParseFileCreditCardStatement(t *testing.T) {
	p := NewParser()

	entries, err := p.ParseFile(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, model.TypeExpense, entries[0].Type)
	assert.Equal(t, 2499.0, entries[0].Amount)
	assert.Equal(t, model.TypeIncome, entries[1].Type)
	assert.Equal(t, 5000.0, entries[1].Amount)
}

func TestParseFileInvalid(t *testing.T) {
	p := NewParser()

	_, err := p.ParseFile(context.Background(), strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	p := NewParser()

	// Mixed-case severity values are uppercased.
	out := p.preprocess("<SEVERITY>Info</SEVERITY>")
	assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", out)

	// Leading whitespace before the header is stripped.
	out = p.preprocess("\n\n  OFXHEADER:100")
	assert.Equal(t, "OFXHEADER:100", out)
}

func TestEntryForm(t *testing.T) {
	entry := Entry{
		Date:        "2026-01-10",
		Type:        model.TypeExpense,
		Description: "LAZADA PH",
		Amount:      2499.0,
	}

	form := entry.Form("")
	assert.Equal(t, "Imported", form["CATEGORY"])
	assert.Equal(t, "2499.00", form["AMOUNT"])
	assert.NotContains(t, form, "ACCOUNT")

	// A card import wires the account so the balance side effect fires.
	form = entry.Form("CARD-2000")
	assert.Equal(t, "CARD-2000", form["ACCOUNT"])
	assert.Equal(t, model.PaymentMethodCreditCard, form["PAYMENTMETHOD"])
}
