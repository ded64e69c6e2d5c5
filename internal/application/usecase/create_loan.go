package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/domain/event"
	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	"github.com/crednova/credit-approval-service/internal/domain/service"
)

// CreateLoanUseCase runs the same decision pipeline as the eligibility
// check and, when the decision is an approval, persists a new loan record.
// Identifier allocation happens inside the repository's insert transaction,
// so concurrent approvals cannot claim the same identifier.
type CreateLoanUseCase struct {
	eval      evaluator
	loans     port.LoanRepository
	publisher port.EventPublisher
	logger    *slog.Logger
	now       Clock
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	customers port.CustomerRepository,
	loans port.LoanRepository,
	aggregator *service.HistoryAggregator,
	scorer *service.ScoringEngine,
	slab *service.SlabPolicy,
	publisher port.EventPublisher,
	logger *slog.Logger,
	now Clock,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		eval: evaluator{
			customers:  customers,
			loans:      loans,
			aggregator: aggregator,
			scorer:     scorer,
			slab:       slab,
		},
		loans:     loans,
		publisher: publisher,
		logger:    logger,
		now:       now,
	}
}

// Execute evaluates the proposed loan and creates it on approval.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, req dto.EvaluateLoanRequest) (dto.LoanDecisionResponse, error) {
	today := uc.now()

	d, err := uc.eval.evaluate(ctx, req, today)
	if err != nil {
		return dto.LoanDecisionResponse{}, err
	}

	resp := d.toResponse()
	resp.TenureMonths = req.TenureMonths

	evts := []event.DomainEvent{event.NewLoanDecisionEvaluated(
		d.customer.ID(), d.approved, d.creditScore,
		req.LoanAmount, req.InterestRate, req.TenureMonths, d.reason,
	)}

	if d.approved {
		startDate := today
		endDate := service.ApproximateEndDate(today, req.TenureMonths)

		loan, err := model.NewLoan(
			d.customer.ID(), req.LoanAmount, req.TenureMonths,
			d.effectiveRate, d.installment, startDate, endDate,
		)
		if err != nil {
			return dto.LoanDecisionResponse{}, fmt.Errorf("create loan: %w", err)
		}

		loan, err = uc.loans.Create(ctx, loan)
		if err != nil {
			return dto.LoanDecisionResponse{}, fmt.Errorf("save loan: %w", err)
		}

		loanID := loan.ID()
		resp.LoanID = &loanID

		evts = append(evts, event.NewLoanCreated(
			loan.ID(), d.customer.ID(),
			loan.Principal(), loan.AnnualRatePercent(),
			loan.TenureMonths(), loan.MonthlyInstallment(),
		))
	}

	// The loan, if any, is already committed; event delivery is
	// best-effort.
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish decision events",
			"customer_id", d.customer.ID(), "error", err)
	}

	return resp, nil
}
