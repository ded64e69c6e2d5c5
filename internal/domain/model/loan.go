package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable record of a granted loan. The decision engine only
// ever reads loans; it never mutates an existing one. The identifier is
// allocated by the store on insert.
type Loan struct {
	id                 int64
	customerID         int64
	principal          decimal.Decimal
	tenureMonths       int
	annualRatePercent  decimal.Decimal
	monthlyInstallment decimal.Decimal
	paidOnTime         int
	startDate          time.Time
	endDate            time.Time
	active             bool
}

// NewLoan creates a loan record for a freshly approved application.
// The on-time counter starts at zero and the loan starts active.
func NewLoan(
	customerID int64,
	principal decimal.Decimal,
	tenureMonths int,
	annualRatePercent decimal.Decimal,
	monthlyInstallment decimal.Decimal,
	startDate, endDate time.Time,
) (Loan, error) {
	if customerID <= 0 {
		return Loan{}, errors.New("customer ID is required")
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("principal must be positive")
	}
	if tenureMonths <= 0 {
		return Loan{}, errors.New("tenure months must be positive")
	}
	if annualRatePercent.IsNegative() {
		return Loan{}, errors.New("interest rate must not be negative")
	}
	if endDate.Before(startDate) {
		return Loan{}, errors.New("end date must not precede start date")
	}

	return Loan{
		customerID:         customerID,
		principal:          principal,
		tenureMonths:       tenureMonths,
		annualRatePercent:  annualRatePercent,
		monthlyInstallment: monthlyInstallment,
		paidOnTime:         0,
		startDate:          startDate,
		endDate:            endDate,
		active:             true,
	}, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, customerID int64,
	principal decimal.Decimal,
	tenureMonths int,
	annualRatePercent decimal.Decimal,
	monthlyInstallment decimal.Decimal,
	paidOnTime int,
	startDate, endDate time.Time,
	active bool,
) Loan {
	return Loan{
		id:                 id,
		customerID:         customerID,
		principal:          principal,
		tenureMonths:       tenureMonths,
		annualRatePercent:  annualRatePercent,
		monthlyInstallment: monthlyInstallment,
		paidOnTime:         paidOnTime,
		startDate:          startDate,
		endDate:            endDate,
		active:             active,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() int64                           { return l.id }
func (l Loan) CustomerID() int64                   { return l.customerID }
func (l Loan) Principal() decimal.Decimal          { return l.principal }
func (l Loan) TenureMonths() int                   { return l.tenureMonths }
func (l Loan) AnnualRatePercent() decimal.Decimal  { return l.annualRatePercent }
func (l Loan) MonthlyInstallment() decimal.Decimal { return l.monthlyInstallment }
func (l Loan) PaidOnTime() int                     { return l.paidOnTime }
func (l Loan) StartDate() time.Time                { return l.startDate }
func (l Loan) EndDate() time.Time                  { return l.endDate }
func (l Loan) Active() bool                        { return l.active }
