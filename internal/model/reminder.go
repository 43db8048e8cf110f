package model

// Reminder statuses.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// RecurringYes marks a reminder that advances by one month when paid.
const RecurringYes = "Yes"

// Reminder represents a bill reminder. DaysLeft is computed once at
// creation time and never recomputed.
type Reminder struct {
	ID             string
	Description    string
	Category       string
	DueDate        string
	Recurring      string
	PaymentChannel string
	Status         string
	Amount         float64
	DaysLeft       float64
}

// ReminderFromRecord builds a Reminder from a decoded row.
func ReminderFromRecord(r map[string]any) Reminder {
	return Reminder{
		ID:             fieldStr(r, "ID"),
		Description:    fieldStr(r, "DESCRIPTION"),
		Category:       fieldStr(r, "CATEGORY"),
		Amount:         fieldNum(r, "AMOUNT"),
		DueDate:        fieldStr(r, "DUEDATE"),
		Recurring:      fieldStr(r, "RECURRING"),
		PaymentChannel: fieldStr(r, "PAYMENTCHANNEL"),
		Status:         fieldStr(r, "STATUS"),
		DaysLeft:       fieldNum(r, "DAYSLEFT"),
	}
}
