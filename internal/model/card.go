package model

// CreditCard represents a credit card account. Balance is derived from the
// transaction log and can drift between recalculation runs.
type CreditCard struct {
	ID              string
	Name            string
	LastPaymentDate string
	Limit           float64
	Balance         float64
	LastPayment     float64
	APR             float64
}

// Usage returns the balance-to-limit ratio, or 0 for a zero limit.
func (c CreditCard) Usage() float64 {
	if c.Limit <= 0 {
		return 0
	}
	return c.Balance / c.Limit
}

// CreditCardFromRecord builds a CreditCard from a decoded row.
func CreditCardFromRecord(r map[string]any) CreditCard {
	return CreditCard{
		ID:              fieldStr(r, "ID"),
		Name:            fieldStr(r, "NAME"),
		Limit:           fieldNum(r, "LIMIT"),
		Balance:         fieldNum(r, "BALANCE"),
		LastPayment:     fieldNum(r, "LASTPAYMENT"),
		LastPaymentDate: fieldStr(r, "LASTPAYMENTDATE"),
		APR:             fieldNum(r, "APR"),
	}
}
