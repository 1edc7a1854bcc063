// Package debt contains the debt record shared by the heap engine and its callers.
package debt

import "fmt"

// Debt is a single repayment obligation.
type Debt struct {
	Description  string  // Free text, at most MaxDescriptionLength runes
	InterestRate float64 // Percent, 0..100
	AmountDue    float64 // Must be positive
	ID           int     // Caller supplied, not required to be unique
}

// New builds a validated Debt. The description is truncated rather than rejected.
func New(description string, interestRate, amountDue float64, id int) (Debt, error) {
	if err := ValidateRate(interestRate); err != nil {
		return Debt{}, err
	}
	if err := ValidateAmount(amountDue); err != nil {
		return Debt{}, err
	}

	return Debt{
		Description:  TruncateDescription(description),
		InterestRate: interestRate,
		AmountDue:    amountDue,
		ID:           id,
	}, nil
}

// Compare orders two debts by repayment priority.
// Returns a positive value when a outranks b, negative when b outranks a,
// and 0 when both interest rate and amount due are equal.
func Compare(a, b Debt) int {
	switch {
	case a.InterestRate > b.InterestRate:
		return 1
	case a.InterestRate < b.InterestRate:
		return -1
	case a.AmountDue > b.AmountDue:
		return 1
	case a.AmountDue < b.AmountDue:
		return -1
	default:
		return 0
	}
}

// Outranks reports whether a has strictly higher priority than b.
func Outranks(a, b Debt) bool {
	return Compare(a, b) > 0
}

// String renders the debt the way the console reports it.
func (d Debt) String() string {
	return fmt.Sprintf("#%d '%s' (%.2f%%, %.2f)", d.ID, d.Description, d.InterestRate, d.AmountDue)
}
