package debt

import (
	"errors"
	"fmt"
	"math"
)

// Bounds accepted for debt fields.
const (
	MinInterestRate = 0.0
	MaxInterestRate = 100.0
)

var (
	// ErrInvalidRate is returned for interest rates outside [0,100] or not finite.
	ErrInvalidRate = errors.New("interest rate must be between 0 and 100")

	// ErrInvalidAmount is returned for amounts that are not finite and positive.
	ErrInvalidAmount = errors.New("amount due must be greater than zero")
)

// FieldError names the debt field that failed validation.
type FieldError struct {
	Field string
	Value float64
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidateRate checks an interest rate is a finite number in [0,100].
func ValidateRate(rate float64) error {
	if math.IsNaN(rate) || rate < MinInterestRate || rate > MaxInterestRate {
		return &FieldError{Field: "interest_rate", Value: rate, Err: ErrInvalidRate}
	}
	return nil
}

// ValidateAmount checks an amount due is finite and strictly positive.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return &FieldError{Field: "amount_due", Value: amount, Err: ErrInvalidAmount}
	}
	return nil
}
