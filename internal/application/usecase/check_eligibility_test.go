package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/application/usecase"
	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	"github.com/crednova/credit-approval-service/internal/domain/service"
	"github.com/crednova/credit-approval-service/pkg/testutil"
)

var testToday = testutil.TestToday

func newEligibilityUseCase(
	customers *mockCustomerRepository,
	loans *mockLoanRepository,
	publisher *mockEventPublisher,
) *usecase.CheckEligibilityUseCase {
	return usecase.NewCheckEligibilityUseCase(
		customers, loans,
		service.NewHistoryAggregator(),
		service.NewScoringEngine(),
		service.NewSlabPolicy(),
		publisher,
		discardLogger(),
		fixedClock(testToday),
	)
}

func testCustomer(income int64) model.Customer {
	return model.ReconstructCustomer(
		testutil.TestCustomerID, "Asha", "Rao", 32, "9000000001",
		decimal.NewFromInt(income),
		model.ApprovedLimitForIncome(decimal.NewFromInt(income)),
		testToday.AddDate(-1, 0, 0),
	)
}

func customersReturning(c model.Customer) *mockCustomerRepository {
	return &mockCustomerRepository{
		findByIdentifierFunc: func(_ context.Context, ref int64) (model.Customer, error) {
			return c, nil
		},
	}
}

func loansReturning(history []model.Loan) *mockLoanRepository {
	return &mockLoanRepository{
		findByCustomerIDFunc: func(_ context.Context, _ int64) ([]model.Loan, error) {
			return history, nil
		},
	}
}

func TestCheckEligibility_InvalidInput(t *testing.T) {
	uc := newEligibilityUseCase(
		&mockCustomerRepository{},
		&mockLoanRepository{},
		&mockEventPublisher{},
	)

	cases := []struct {
		name string
		req  dto.EvaluateLoanRequest
	}{
		{"zero amount", dto.EvaluateLoanRequest{CustomerID: 1001, LoanAmount: decimal.Zero, InterestRate: decimal.NewFromInt(10), TenureMonths: 12}},
		{"negative amount", dto.EvaluateLoanRequest{CustomerID: 1001, LoanAmount: decimal.NewFromInt(-1), InterestRate: decimal.NewFromInt(10), TenureMonths: 12}},
		{"negative rate", dto.EvaluateLoanRequest{CustomerID: 1001, LoanAmount: decimal.NewFromInt(100000), InterestRate: decimal.NewFromInt(-1), TenureMonths: 12}},
		{"zero tenure", dto.EvaluateLoanRequest{CustomerID: 1001, LoanAmount: decimal.NewFromInt(100000), InterestRate: decimal.NewFromInt(10), TenureMonths: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, usecase.ErrInvalidInput)
		})
	}
}

func TestCheckEligibility_CustomerNotFound(t *testing.T) {
	customers := &mockCustomerRepository{
		findByIdentifierFunc: func(_ context.Context, _ int64) (model.Customer, error) {
			return model.Customer{}, port.ErrCustomerNotFound
		},
	}
	uc := newEligibilityUseCase(customers, &mockLoanRepository{}, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   9999,
		LoanAmount:   decimal.NewFromInt(100000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
	})
	assert.ErrorIs(t, err, port.ErrCustomerNotFound)
}

func TestCheckEligibility_CleanHistoryApproved(t *testing.T) {
	publisher := &mockEventPublisher{}
	uc := newEligibilityUseCase(
		customersReturning(testCustomer(50_000)),
		loansReturning(nil),
		publisher,
	)

	resp, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   1001,
		LoanAmount:   decimal.NewFromInt(200_000),
		InterestRate: decimal.NewFromFloat(10.5),
		TenureMonths: 24,
	})
	require.NoError(t, err)

	assert.True(t, resp.Approved)
	assert.InDelta(t, 100.0, resp.CreditScore, 0.001)
	assert.True(t, decimal.NewFromFloat(10.5).Equal(resp.InterestRate))
	assert.Nil(t, resp.CorrectedInterestRate)
	assert.Empty(t, resp.RejectionReason)
	assert.Equal(t, 24, resp.TenureMonths)
	assert.True(t, resp.MonthlyInstallment.GreaterThan(decimal.Zero))

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "credit.decision.evaluated", publisher.published[0].EventType())
}

func TestCheckEligibility_IncomeOverride(t *testing.T) {
	// One active loan whose installment alone exceeds half the income.
	customer := testCustomer(50_000)
	history := []model.Loan{
		model.ReconstructLoan(
			1, customer.ID(),
			decimal.NewFromInt(500_000), 36, decimal.NewFromInt(11),
			decimal.NewFromInt(26_000), // > 25,000 = half the income
			12, testToday.AddDate(-1, 0, 0), testToday.AddDate(2, 0, 0), true,
		),
	}

	uc := newEligibilityUseCase(customersReturning(customer), loansReturning(history), &mockEventPublisher{})

	resp, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   1001,
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: decimal.NewFromInt(14),
		TenureMonths: 12,
	})
	require.NoError(t, err)

	assert.False(t, resp.Approved)
	assert.Equal(t, usecase.RejectionExistingEMIs, resp.RejectionReason)
	assert.Nil(t, resp.CorrectedInterestRate)
	// The installment for the proposed loan is still reported, at the
	// proposed rate.
	assert.True(t, decimal.NewFromInt(14).Equal(resp.InterestRate))
	assert.True(t, resp.MonthlyInstallment.GreaterThan(decimal.Zero))
}

// midTierHistory produces aggregates that land the score between 30 and 50:
// zero on-time payments over one active loan drawn to the full limit.
func midTierHistory(customer model.Customer) []model.Loan {
	return []model.Loan{
		model.ReconstructLoan(
			1, customer.ID(),
			customer.ApprovedLimit(), 12, decimal.NewFromInt(11),
			decimal.NewFromInt(1_000),
			0, testToday.AddDate(0, -3, 0), testToday.AddDate(0, 9, 0), true,
		),
	}
}

func TestCheckEligibility_RateAtFloorRejectedWithSuggestion(t *testing.T) {
	customer := testCustomer(50_000)
	uc := newEligibilityUseCase(customersReturning(customer), loansReturning(midTierHistory(customer)), &mockEventPublisher{})

	// Exactly the 12% floor: strict comparison rejects it.
	resp, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   1001,
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: decimal.NewFromInt(12),
		TenureMonths: 12,
	})
	require.NoError(t, err)

	assert.False(t, resp.Approved)
	require.NotNil(t, resp.CorrectedInterestRate)
	assert.True(t, decimal.NewFromInt(12).Equal(*resp.CorrectedInterestRate))
	assert.NotEmpty(t, resp.RejectionReason)
	// The reported installment uses the suggested floor rate.
	expected := service.Installment(decimal.NewFromInt(100_000), decimal.NewFromInt(12), 12)
	assert.True(t, expected.Equal(resp.MonthlyInstallment))
}

func TestCheckEligibility_ProposedRateEchoedOnSuggestion(t *testing.T) {
	customer := testCustomer(50_000)
	uc := newEligibilityUseCase(customersReturning(customer), loansReturning(midTierHistory(customer)), &mockEventPublisher{})

	resp, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   1001,
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
	})
	require.NoError(t, err)

	assert.False(t, resp.Approved)
	// interest_rate keeps the requested rate; the floor travels only in
	// corrected_interest_rate, while the installment reflects the floor.
	assert.True(t, decimal.NewFromInt(10).Equal(resp.InterestRate))
	require.NotNil(t, resp.CorrectedInterestRate)
	assert.True(t, decimal.NewFromInt(12).Equal(*resp.CorrectedInterestRate))
	expected := service.Installment(decimal.NewFromInt(100_000), decimal.NewFromInt(12), 12)
	assert.True(t, expected.Equal(resp.MonthlyInstallment))
}

func TestCheckEligibility_RateAboveFloorApproved(t *testing.T) {
	customer := testCustomer(50_000)
	uc := newEligibilityUseCase(customersReturning(customer), loansReturning(midTierHistory(customer)), &mockEventPublisher{})

	resp, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   1001,
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: decimal.NewFromFloat(12.01),
		TenureMonths: 12,
	})
	require.NoError(t, err)

	assert.True(t, resp.Approved)
	assert.Nil(t, resp.CorrectedInterestRate)
	assert.True(t, decimal.NewFromFloat(12.01).Equal(resp.InterestRate))
}

func TestCheckEligibility_OverLimitRejectedOutright(t *testing.T) {
	// Active principal above the approved limit forces a zero score.
	customer := testCustomer(50_000)
	history := []model.Loan{
		model.ReconstructLoan(
			1, customer.ID(),
			customer.ApprovedLimit().Add(decimal.NewFromInt(100_000)), 36, decimal.NewFromInt(11),
			decimal.NewFromInt(1_000),
			30, testToday.AddDate(-1, 0, 0), testToday.AddDate(2, 0, 0), true,
		),
	}

	uc := newEligibilityUseCase(customersReturning(customer), loansReturning(history), &mockEventPublisher{})

	resp, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   1001,
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: decimal.NewFromInt(18),
		TenureMonths: 12,
	})
	require.NoError(t, err)

	assert.False(t, resp.Approved)
	assert.Zero(t, resp.CreditScore)
	assert.Nil(t, resp.CorrectedInterestRate)
	assert.NotEmpty(t, resp.RejectionReason)
}

func TestCheckEligibility_PublisherFailureDoesNotFailDecision(t *testing.T) {
	publisher := &mockEventPublisher{failWith: assert.AnError}
	uc := newEligibilityUseCase(
		customersReturning(testCustomer(50_000)),
		loansReturning(nil),
		publisher,
	)

	resp, err := uc.Execute(context.Background(), dto.EvaluateLoanRequest{
		CustomerID:   1001,
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: decimal.NewFromInt(11),
		TenureMonths: 12,
	})
	require.NoError(t, err)
	assert.True(t, resp.Approved)
}
