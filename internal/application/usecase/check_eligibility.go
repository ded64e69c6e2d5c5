package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/domain/event"
	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	"github.com/crednova/credit-approval-service/internal/domain/service"
)

// ErrInvalidInput marks malformed request data, rejected before any
// computation or store access.
var ErrInvalidInput = errors.New("invalid input")

// RejectionExistingEMIs is the rejection reason for the income override.
const RejectionExistingEMIs = "existing EMIs exceed 50% of monthly income"

// Clock supplies "today" so that every date-dependent rule is
// deterministic under test.
type Clock func() time.Time

// decision is the internal result of one evaluation, before it is turned
// into a response or a loan record.
type decision struct {
	customer    model.Customer
	approved    bool
	creditScore float64
	// proposedRate is what the caller asked for and is always echoed back;
	// effectiveRate is the rate the installment is computed at, which
	// differs only when the slab suggests a correction.
	proposedRate  decimal.Decimal
	effectiveRate decimal.Decimal
	correctedRate *decimal.Decimal
	installment   decimal.Decimal
	reason        string
}

// evaluator runs the decision pipeline shared by the eligibility check and
// loan creation: resolve customer, aggregate history, score, apply the
// income override, apply the slab policy, compute the installment.
type evaluator struct {
	customers  port.CustomerRepository
	loans      port.LoanRepository
	aggregator *service.HistoryAggregator
	scorer     *service.ScoringEngine
	slab       *service.SlabPolicy
}

var half = decimal.NewFromFloat(0.5)

func (e *evaluator) evaluate(ctx context.Context, req dto.EvaluateLoanRequest, today time.Time) (decision, error) {
	if err := validateProposal(req.LoanAmount, req.InterestRate, req.TenureMonths); err != nil {
		return decision{}, err
	}

	customer, err := e.customers.FindByIdentifier(ctx, req.CustomerID)
	if err != nil {
		return decision{}, fmt.Errorf("resolve customer: %w", err)
	}

	history, err := e.loans.FindByCustomerID(ctx, customer.ID())
	if err != nil {
		return decision{}, fmt.Errorf("load loan history: %w", err)
	}

	agg := e.aggregator.Aggregate(history, today)
	score := e.scorer.Score(customer, agg)

	d := decision{
		customer:     customer,
		creditScore:  score.Score.Value(),
		proposedRate: req.InterestRate,
	}

	// Income override: existing obligations above half the monthly income
	// end the evaluation before the slab policy. The installment for the
	// proposed loan is still computed, at the proposed rate, so the caller
	// sees what they asked about.
	if agg.ActiveInstallmentTotal.GreaterThan(customer.MonthlyIncome().Mul(half)) {
		d.approved = false
		d.reason = RejectionExistingEMIs
		d.effectiveRate = req.InterestRate
		d.installment = service.Installment(req.LoanAmount, req.InterestRate, req.TenureMonths)
		return d, nil
	}

	outcome := e.slab.Apply(score.Score, req.InterestRate)

	d.approved = outcome.Approved()
	d.effectiveRate = req.InterestRate
	if rate, ok := outcome.EffectiveRate(); ok && !outcome.Approved() {
		// The slab suggested a minimum; use it for the displayable
		// installment even though the loan is not approved.
		d.effectiveRate = rate
	}
	if floor, ok := outcome.SlabMinimum(); ok {
		corrected := floor
		d.correctedRate = &corrected
		d.reason = fmt.Sprintf("interest rate must exceed %s%% for credit score %.2f", floor, d.creditScore)
	}
	if !outcome.Approved() && d.correctedRate == nil {
		d.reason = fmt.Sprintf("credit score %.2f is below the approvable threshold", d.creditScore)
	}

	d.installment = service.Installment(req.LoanAmount, d.effectiveRate, req.TenureMonths)
	return d, nil
}

func validateProposal(amount, rate decimal.Decimal, tenureMonths int) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: loan amount must be positive", ErrInvalidInput)
	}
	if rate.IsNegative() {
		return fmt.Errorf("%w: interest rate must not be negative", ErrInvalidInput)
	}
	if tenureMonths <= 0 {
		return fmt.Errorf("%w: tenure must be positive", ErrInvalidInput)
	}
	return nil
}

func (d decision) toResponse() dto.LoanDecisionResponse {
	return dto.LoanDecisionResponse{
		CustomerID:            d.customer.ID(),
		Approved:              d.approved,
		CreditScore:           d.creditScore,
		InterestRate:          d.proposedRate,
		CorrectedInterestRate: d.correctedRate,
		MonthlyInstallment:    d.installment,
		RejectionReason:       d.reason,
	}
}

// ---------------------------------------------------------------------------
// CheckEligibilityUseCase
// ---------------------------------------------------------------------------

// CheckEligibilityUseCase runs a read-only loan decision for a customer and
// a proposed loan. It never writes to the store.
type CheckEligibilityUseCase struct {
	eval      evaluator
	publisher port.EventPublisher
	logger    *slog.Logger
	now       Clock
}

// NewCheckEligibilityUseCase wires dependencies.
func NewCheckEligibilityUseCase(
	customers port.CustomerRepository,
	loans port.LoanRepository,
	aggregator *service.HistoryAggregator,
	scorer *service.ScoringEngine,
	slab *service.SlabPolicy,
	publisher port.EventPublisher,
	logger *slog.Logger,
	now Clock,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		eval: evaluator{
			customers:  customers,
			loans:      loans,
			aggregator: aggregator,
			scorer:     scorer,
			slab:       slab,
		},
		publisher: publisher,
		logger:    logger,
		now:       now,
	}
}

// Execute evaluates the proposed loan and returns the structured decision.
func (uc *CheckEligibilityUseCase) Execute(ctx context.Context, req dto.EvaluateLoanRequest) (dto.LoanDecisionResponse, error) {
	today := uc.now()

	d, err := uc.eval.evaluate(ctx, req, today)
	if err != nil {
		return dto.LoanDecisionResponse{}, err
	}

	resp := d.toResponse()
	resp.TenureMonths = req.TenureMonths

	// The decision stands whether or not the event reaches the broker.
	evt := event.NewLoanDecisionEvaluated(
		d.customer.ID(), d.approved, d.creditScore,
		req.LoanAmount, req.InterestRate, req.TenureMonths, d.reason,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish decision event",
			"customer_id", d.customer.ID(), "error", err)
	}

	return resp, nil
}
