package usecase

import (
	"context"
	"fmt"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	"github.com/crednova/credit-approval-service/internal/domain/service"
)

// ListCustomerLoansUseCase lists a customer's active loans with the number
// of whole-month repayments left on each.
type ListCustomerLoansUseCase struct {
	customers port.CustomerRepository
	loans     port.LoanRepository
	now       Clock
}

// NewListCustomerLoansUseCase wires dependencies.
func NewListCustomerLoansUseCase(customers port.CustomerRepository, loans port.LoanRepository, now Clock) *ListCustomerLoansUseCase {
	return &ListCustomerLoansUseCase{customers: customers, loans: loans, now: now}
}

// Execute resolves the customer and lists their active loans.
func (uc *ListCustomerLoansUseCase) Execute(ctx context.Context, customerRef int64) ([]dto.CustomerLoanResponse, error) {
	customer, err := uc.customers.FindByIdentifier(ctx, customerRef)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	loans, err := uc.loans.FindActiveByCustomerID(ctx, customer.ID())
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	today := uc.now()
	result := make([]dto.CustomerLoanResponse, 0, len(loans))
	for _, loan := range loans {
		result = append(result, dto.CustomerLoanResponse{
			LoanID:             loan.ID(),
			LoanAmount:         loan.Principal(),
			InterestRate:       loan.AnnualRatePercent(),
			MonthlyInstallment: loan.MonthlyInstallment(),
			RepaymentsLeft:     service.MonthsBetween(today, loan.EndDate()),
		})
	}
	return result, nil
}
