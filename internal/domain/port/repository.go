package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/crednova/credit-approval-service/internal/domain/event"
	"github.com/crednova/credit-approval-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ErrCustomerNotFound is returned when a customer reference does not resolve.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrLoanNotFound is returned when a loan reference does not resolve.
var ErrLoanNotFound = errors.New("loan not found")

// CustomerRepository persists and retrieves customer profiles.
type CustomerRepository interface {
	// Create inserts the customer, allocating its identifier atomically,
	// and returns the persisted aggregate.
	Create(ctx context.Context, c model.Customer) (model.Customer, error)

	// FindByIdentifier resolves a customer by internal ID or by the
	// external reference carried over from bulk ingestion. Returns
	// ErrCustomerNotFound when neither matches.
	FindByIdentifier(ctx context.Context, ref int64) (model.Customer, error)
}

// LoanRepository persists and retrieves loan records.
type LoanRepository interface {
	// Create inserts the loan inside a single transaction; identifier
	// allocation and insert are atomic with respect to concurrent
	// approvals. Returns the persisted aggregate.
	Create(ctx context.Context, l model.Loan) (model.Loan, error)

	FindByID(ctx context.Context, id int64) (model.Loan, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error)
	FindActiveByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Caching port
// ---------------------------------------------------------------------------

// InstallmentCache memoizes standalone installment computations. The
// computation is a pure function of its inputs, so entries never need
// invalidation. A cache miss is not an error.
type InstallmentCache interface {
	Get(ctx context.Context, key string) (decimal.Decimal, bool)
	Set(ctx context.Context, key string, amount decimal.Decimal) error
}
