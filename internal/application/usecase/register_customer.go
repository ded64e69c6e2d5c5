package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/domain/event"
	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/port"
)

// RegisterCustomerUseCase creates a customer profile, deriving the
// approved credit limit from the declared monthly income.
type RegisterCustomerUseCase struct {
	customers port.CustomerRepository
	publisher port.EventPublisher
	logger    *slog.Logger
	now       Clock
}

// NewRegisterCustomerUseCase wires dependencies.
func NewRegisterCustomerUseCase(
	customers port.CustomerRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
	now Clock,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customers: customers,
		publisher: publisher,
		logger:    logger,
		now:       now,
	}
}

// Execute validates and persists the new customer.
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, req dto.RegisterCustomerRequest) (dto.CustomerResponse, error) {
	customer, err := model.NewCustomer(
		req.FirstName, req.LastName, req.Age,
		req.PhoneNumber, req.MonthlyIncome, uc.now(),
	)
	if err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	customer, err = uc.customers.Create(ctx, customer)
	if err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("save customer: %w", err)
	}

	evt := event.NewCustomerRegistered(
		customer.ID(), customer.FirstName(), customer.LastName(),
		customer.MonthlyIncome(), customer.ApprovedLimit(),
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish registration event",
			"customer_id", customer.ID(), "error", err)
	}

	return dto.CustomerResponse{
		CustomerID:    customer.ID(),
		Name:          customer.FullName(),
		Age:           customer.Age(),
		PhoneNumber:   customer.PhoneNumber(),
		MonthlyIncome: customer.MonthlyIncome(),
		ApprovedLimit: customer.ApprovedLimit(),
	}, nil
}
