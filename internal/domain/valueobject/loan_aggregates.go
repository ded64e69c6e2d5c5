package valueobject

import "github.com/shopspring/decimal"

// LoanAggregates is an ephemeral summary of a customer's loan history,
// computed fresh for every evaluation and never persisted.
type LoanAggregates struct {
	// Over all loans, active and closed.
	LoanCount       int
	OnTimePaidTotal int
	TenureTotal     int

	// Over active loans only; zero when the customer has none.
	ActivePrincipalTotal   decimal.Decimal
	ActiveInstallmentTotal decimal.Decimal

	// Loans whose start date falls within the calendar year of "today".
	CurrentYearLoanCount int
}

// EmptyLoanAggregates returns aggregates for a customer with no history.
func EmptyLoanAggregates() LoanAggregates {
	return LoanAggregates{
		ActivePrincipalTotal:   decimal.Zero,
		ActiveInstallmentTotal: decimal.Zero,
	}
}
