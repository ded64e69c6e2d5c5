package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crednova/credit-approval-service/internal/application/usecase"
	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/port"
)

func TestGetLoan_Success(t *testing.T) {
	loan := model.ReconstructLoan(
		5001, 1001,
		decimal.NewFromInt(300_000), 24, decimal.NewFromFloat(10.5),
		decimal.NewFromFloat(13_912.25),
		6, testToday.AddDate(0, -6, 0), testToday.AddDate(1, 6, 0), true,
	)

	loans := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, id int64) (model.Loan, error) {
			assert.Equal(t, int64(5001), id)
			return loan, nil
		},
	}
	customers := customersReturning(testCustomer(50_000))

	uc := usecase.NewGetLoanUseCase(loans, customers)
	resp, err := uc.Execute(context.Background(), 5001)
	require.NoError(t, err)

	assert.Equal(t, int64(5001), resp.LoanID)
	assert.Equal(t, int64(1001), resp.Customer.CustomerID)
	assert.Equal(t, "Asha", resp.Customer.FirstName)
	assert.Equal(t, "Rao", resp.Customer.LastName)
	assert.True(t, decimal.NewFromInt(300_000).Equal(resp.LoanAmount))
	assert.True(t, decimal.NewFromFloat(10.5).Equal(resp.InterestRate))
	assert.Equal(t, 24, resp.TenureMonths)
}

func TestGetLoan_NotFound(t *testing.T) {
	loans := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, _ int64) (model.Loan, error) {
			return model.Loan{}, port.ErrLoanNotFound
		},
	}

	uc := usecase.NewGetLoanUseCase(loans, &mockCustomerRepository{})
	_, err := uc.Execute(context.Background(), 9999)
	assert.ErrorIs(t, err, port.ErrLoanNotFound)
}
