package valueobject

import "math"

// ---------------------------------------------------------------------------
// CreditScore - immutable value object
// ---------------------------------------------------------------------------

// CreditScore is a score in [0, 100] rounded to two decimals.
type CreditScore struct {
	value float64
}

// NewCreditScore clamps the raw value to [0, 100] and rounds it to two
// decimals (half away from zero).
func NewCreditScore(raw float64) CreditScore {
	v := math.Max(0, math.Min(100, raw))
	return CreditScore{value: math.Round(v*100) / 100}
}

// Value returns the numeric score.
func (s CreditScore) Value() float64 { return s.value }

// IsZero reports whether the score is exactly zero.
func (s CreditScore) IsZero() bool { return s.value == 0 }
