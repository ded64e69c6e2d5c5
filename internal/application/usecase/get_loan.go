package usecase

import (
	"context"
	"fmt"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/domain/port"
)

// GetLoanUseCase retrieves a single loan with its customer summary.
type GetLoanUseCase struct {
	loans     port.LoanRepository
	customers port.CustomerRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loans port.LoanRepository, customers port.CustomerRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loans: loans, customers: customers}
}

// Execute fetches the loan and the owning customer.
func (uc *GetLoanUseCase) Execute(ctx context.Context, loanID int64) (dto.LoanDetailResponse, error) {
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.LoanDetailResponse{}, fmt.Errorf("find loan: %w", err)
	}

	customer, err := uc.customers.FindByIdentifier(ctx, loan.CustomerID())
	if err != nil {
		return dto.LoanDetailResponse{}, fmt.Errorf("find loan customer: %w", err)
	}

	return dto.LoanDetailResponse{
		LoanID: loan.ID(),
		Customer: dto.LoanCustomerSummary{
			CustomerID:  customer.ID(),
			FirstName:   customer.FirstName(),
			LastName:    customer.LastName(),
			PhoneNumber: customer.PhoneNumber(),
			Age:         customer.Age(),
		},
		LoanAmount:         loan.Principal(),
		InterestRate:       loan.AnnualRatePercent(),
		MonthlyInstallment: loan.MonthlyInstallment(),
		TenureMonths:       loan.TenureMonths(),
	}, nil
}
