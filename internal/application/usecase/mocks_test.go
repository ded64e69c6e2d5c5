package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crednova/credit-approval-service/internal/domain/event"
	"github.com/crednova/credit-approval-service/internal/domain/model"
)

// discardLogger silences use case logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock pins "today" for date-dependent rules.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type mockCustomerRepository struct {
	createFunc           func(ctx context.Context, c model.Customer) (model.Customer, error)
	findByIdentifierFunc func(ctx context.Context, ref int64) (model.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	return m.createFunc(ctx, c)
}

func (m *mockCustomerRepository) FindByIdentifier(ctx context.Context, ref int64) (model.Customer, error) {
	return m.findByIdentifierFunc(ctx, ref)
}

type mockLoanRepository struct {
	createFunc                 func(ctx context.Context, l model.Loan) (model.Loan, error)
	findByIDFunc               func(ctx context.Context, id int64) (model.Loan, error)
	findByCustomerIDFunc       func(ctx context.Context, customerID int64) ([]model.Loan, error)
	findActiveByCustomerIDFunc func(ctx context.Context, customerID int64) ([]model.Loan, error)
}

func (m *mockLoanRepository) Create(ctx context.Context, l model.Loan) (model.Loan, error) {
	return m.createFunc(ctx, l)
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id int64) (model.Loan, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockLoanRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error) {
	return m.findByCustomerIDFunc(ctx, customerID)
}

func (m *mockLoanRepository) FindActiveByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error) {
	return m.findActiveByCustomerIDFunc(ctx, customerID)
}

// mockEventPublisher records every published event. When failWith is set,
// Publish returns it.
type mockEventPublisher struct {
	published []event.DomainEvent
	failWith  error
}

func (m *mockEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.published = append(m.published, events...)
	return nil
}

type mockInstallmentCache struct {
	getFunc func(ctx context.Context, key string) (decimal.Decimal, bool)
	setFunc func(ctx context.Context, key string, amount decimal.Decimal) error
}

func (m *mockInstallmentCache) Get(ctx context.Context, key string) (decimal.Decimal, bool) {
	return m.getFunc(ctx, key)
}

func (m *mockInstallmentCache) Set(ctx context.Context, key string, amount decimal.Decimal) error {
	return m.setFunc(ctx, key, amount)
}
