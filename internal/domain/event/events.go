package event

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/crednova/credit-approval-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Customer events
// ---------------------------------------------------------------------------

// CustomerRegistered is raised when a new customer profile is created.
type CustomerRegistered struct {
	events.BaseEvent
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
}

func NewCustomerRegistered(customerID int64, firstName, lastName string, monthlyIncome, approvedLimit decimal.Decimal) CustomerRegistered {
	return CustomerRegistered{
		BaseEvent:     events.NewBaseEvent("credit.customer.registered", formatID(customerID), "Customer"),
		FirstName:     firstName,
		LastName:      lastName,
		MonthlyIncome: monthlyIncome,
		ApprovedLimit: approvedLimit,
	}
}

// ---------------------------------------------------------------------------
// Decision events
// ---------------------------------------------------------------------------

// LoanDecisionEvaluated is raised for every completed eligibility decision,
// approved or not.
type LoanDecisionEvaluated struct {
	events.BaseEvent
	Approved        bool            `json:"approved"`
	CreditScore     float64         `json:"credit_score"`
	ProposedAmount  decimal.Decimal `json:"proposed_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	TenureMonths    int             `json:"tenure_months"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
}

func NewLoanDecisionEvaluated(
	customerID int64,
	approved bool,
	creditScore float64,
	amount, rate decimal.Decimal,
	tenureMonths int,
	rejectionReason string,
) LoanDecisionEvaluated {
	return LoanDecisionEvaluated{
		BaseEvent:       events.NewBaseEvent("credit.decision.evaluated", formatID(customerID), "Customer"),
		Approved:        approved,
		CreditScore:     creditScore,
		ProposedAmount:  amount,
		InterestRate:    rate,
		TenureMonths:    tenureMonths,
		RejectionReason: rejectionReason,
	}
}

// LoanCreated is raised when an approved decision results in a persisted
// loan record.
type LoanCreated struct {
	events.BaseEvent
	CustomerID         int64           `json:"customer_id"`
	Principal          decimal.Decimal `json:"principal"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TenureMonths       int             `json:"tenure_months"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

func NewLoanCreated(
	loanID, customerID int64,
	principal, rate decimal.Decimal,
	tenureMonths int,
	installment decimal.Decimal,
) LoanCreated {
	return LoanCreated{
		BaseEvent:          events.NewBaseEvent("credit.loan.created", formatID(loanID), "Loan"),
		CustomerID:         customerID,
		Principal:          principal,
		InterestRate:       rate,
		TenureMonths:       tenureMonths,
		MonthlyInstallment: installment,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
