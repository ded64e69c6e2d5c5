package service

import (
	"time"

	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// HistoryAggregator - pure read+reduce over a customer's loan records
// ---------------------------------------------------------------------------

// HistoryAggregator reduces a customer's loan history into the summary
// statistics the scoring engine consumes. It has no dependencies and no
// side effects; the caller supplies the records and "today".
type HistoryAggregator struct{}

// NewHistoryAggregator returns a new aggregator instance.
func NewHistoryAggregator() *HistoryAggregator {
	return &HistoryAggregator{}
}

// Aggregate folds the given loans into LoanAggregates. Counts and sums of
// paid installments and tenures cover all loans; principal and installment
// totals cover only loans flagged active. The current-year count covers
// loans whose start date lies in the calendar year containing today, from
// January 1 through today.
func (a *HistoryAggregator) Aggregate(loans []model.Loan, today time.Time) valueobject.LoanAggregates {
	agg := valueobject.EmptyLoanAggregates()
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())

	for _, loan := range loans {
		agg.LoanCount++
		agg.OnTimePaidTotal += loan.PaidOnTime()
		agg.TenureTotal += loan.TenureMonths()

		if loan.Active() {
			agg.ActivePrincipalTotal = agg.ActivePrincipalTotal.Add(loan.Principal())
			agg.ActiveInstallmentTotal = agg.ActiveInstallmentTotal.Add(loan.MonthlyInstallment())
		}

		if !loan.StartDate().Before(yearStart) && !loan.StartDate().After(today) {
			agg.CurrentYearLoanCount++
		}
	}

	return agg
}
