package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Installment math
// ---------------------------------------------------------------------------

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Installment computes the equated monthly installment for a principal at
// an annual percentage rate over a tenure in months.
//
// The calculation uses:
//
//	monthlyRate = annualRatePercent / 100 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A non-positive tenure yields zero; a zero rate yields an even split of
// the principal. The power term is computed in float64 (precision loss is
// far below a cent for realistic tenures) and the result is rounded to two
// decimals, half away from zero.
func Installment(principal decimal.Decimal, annualRatePercent decimal.Decimal, tenureMonths int) decimal.Decimal {
	if tenureMonths <= 0 {
		return decimal.Zero
	}

	monthlyRate := annualRatePercent.Div(hundred).Div(twelve)
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))).Round(2)
	}

	r := monthlyRate.InexactFloat64()
	factor := math.Pow(1+r, float64(tenureMonths))
	payment := principal.InexactFloat64() * r * factor / (factor - 1)

	return decimal.NewFromFloat(payment).Round(2)
}

// MonthsBetween returns the number of whole months remaining between today
// and a future end date. It is zero when the end date has passed, and the
// naive month count is reduced by one when the end date's day-of-month is
// earlier than today's (a partial month does not count).
func MonthsBetween(today, end time.Time) int {
	if end.Before(today) {
		return 0
	}
	months := (end.Year()-today.Year())*12 + int(end.Month()) - int(today.Month())
	if end.Day() < today.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// ApproximateEndDate derives a loan's end date from its start date and
// tenure: the first of the start month plus tenure*30 days. This is a
// deliberate approximation, not calendar-accurate month addition.
func ApproximateEndDate(start time.Time, tenureMonths int) time.Time {
	firstOfMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	return firstOfMonth.AddDate(0, 0, tenureMonths*30)
}
