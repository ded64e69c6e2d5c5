package dto

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RegisterCustomerRequest carries the data needed to register a customer.
type RegisterCustomerRequest struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Age           int             `json:"age"`
	PhoneNumber   string          `json:"phone_number"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
}

// EvaluateLoanRequest carries a proposed loan for an eligibility decision.
// The same shape drives both the read-only check and loan creation.
type EvaluateLoanRequest struct {
	CustomerID   int64           `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TenureMonths int             `json:"tenure"`
}

// ComputeInstallmentRequest carries the inputs for a standalone
// installment computation.
type ComputeInstallmentRequest struct {
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TenureMonths int             `json:"tenure"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// CustomerResponse is the external representation of a customer profile.
type CustomerResponse struct {
	CustomerID    int64           `json:"customer_id"`
	Name          string          `json:"name"`
	Age           int             `json:"age"`
	PhoneNumber   string          `json:"phone_number"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
}

// LoanDecisionResponse is the structured outcome of one evaluation.
// InterestRate always echoes the proposed rate; CorrectedInterestRate is
// present only when the slab policy rejected that rate but could suggest a
// minimum, and the installment is then computed at the suggested minimum.
// LoanID is present only when an approved decision also created a loan.
type LoanDecisionResponse struct {
	CustomerID            int64            `json:"customer_id"`
	Approved              bool             `json:"approval"`
	CreditScore           float64          `json:"credit_score"`
	InterestRate          decimal.Decimal  `json:"interest_rate"`
	CorrectedInterestRate *decimal.Decimal `json:"corrected_interest_rate,omitempty"`
	TenureMonths          int              `json:"tenure"`
	MonthlyInstallment    decimal.Decimal  `json:"monthly_installment"`
	RejectionReason       string           `json:"reason,omitempty"`
	LoanID                *int64           `json:"loan_id,omitempty"`
}

// InstallmentResponse is the result of a standalone installment computation.
type InstallmentResponse struct {
	Principal          decimal.Decimal `json:"principal"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TenureMonths       int             `json:"tenure"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

// LoanCustomerSummary is the customer block embedded in a loan detail view.
type LoanCustomerSummary struct {
	CustomerID  int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

// LoanDetailResponse is the external representation of a single loan.
type LoanDetailResponse struct {
	LoanID             int64               `json:"loan_id"`
	Customer           LoanCustomerSummary `json:"customer"`
	LoanAmount         decimal.Decimal     `json:"loan_amount"`
	InterestRate       decimal.Decimal     `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal     `json:"monthly_installment"`
	TenureMonths       int                 `json:"tenure"`
}

// CustomerLoanResponse is one row in a customer's active-loan listing.
type CustomerLoanResponse struct {
	LoanID             int64           `json:"loan_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	RepaymentsLeft     int             `json:"repayments_left"`
}
