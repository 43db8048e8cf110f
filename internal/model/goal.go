package model

// Goal represents a savings goal. SavedAmount only grows, through
// "Savings Deposit" transactions referencing the goal.
type Goal struct {
	ID            string
	Name          string
	PriorityLevel string
	TargetDate    string
	TargetAmount  float64
	SavedAmount   float64
}

// Progress returns the saved-to-target ratio, or 0 for a zero target.
// Over-saving is representable: the ratio is not clamped at 1.
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.SavedAmount / g.TargetAmount
}

// GoalFromRecord builds a Goal from a decoded row.
func GoalFromRecord(r map[string]any) Goal {
	return Goal{
		ID:            fieldStr(r, "ID"),
		Name:          fieldStr(r, "NAME"),
		TargetAmount:  fieldNum(r, "TARGETAMOUNT"),
		SavedAmount:   fieldNum(r, "SAVEDAMOUNT"),
		PriorityLevel: fieldStr(r, "PRIORITYLEVEL"),
		TargetDate:    fieldStr(r, "TARGETDATE"),
	}
}
