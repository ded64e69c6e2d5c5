package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	pkgpostgres "github.com/crednova/credit-approval-service/pkg/postgres"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Create inserts the loan inside a transaction. The identifier comes from
// the table's identity sequence, so two concurrent approvals can never
// claim the same loan ID.
func (r *LoanRepo) Create(ctx context.Context, l model.Loan) (model.Loan, error) {
	var id int64
	err := pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO loans (
				customer_id, principal, tenure_months, interest_rate,
				monthly_installment, paid_on_time, start_date, end_date, active
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			RETURNING id
		`
		return tx.QueryRow(ctx, query,
			l.CustomerID(), l.Principal(), l.TenureMonths(), l.AnnualRatePercent(),
			l.MonthlyInstallment(), l.PaidOnTime(), l.StartDate(), l.EndDate(), l.Active(),
		).Scan(&id)
	})
	if err != nil {
		return model.Loan{}, fmt.Errorf("insert loan: %w", err)
	}

	return model.ReconstructLoan(
		id, l.CustomerID(), l.Principal(), l.TenureMonths(),
		l.AnnualRatePercent(), l.MonthlyInstallment(), l.PaidOnTime(),
		l.StartDate(), l.EndDate(), l.Active(),
	), nil
}

// FindByID retrieves a single loan.
func (r *LoanRepo) FindByID(ctx context.Context, id int64) (model.Loan, error) {
	query := selectLoans + ` WHERE id = $1`
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, port.ErrLoanNotFound
	}
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// FindByCustomerID retrieves all loans for a customer, active and closed.
func (r *LoanRepo) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error) {
	query := selectLoans + ` WHERE customer_id = $1 ORDER BY start_date, id`
	return r.scanMany(ctx, query, customerID)
}

// FindActiveByCustomerID retrieves a customer's currently active loans.
func (r *LoanRepo) FindActiveByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error) {
	query := selectLoans + ` WHERE customer_id = $1 AND active ORDER BY start_date, id`
	return r.scanMany(ctx, query, customerID)
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

const selectLoans = `
	SELECT id, customer_id, principal, tenure_months, interest_rate,
	       monthly_installment, paid_on_time, start_date, end_date, active
	FROM loans`

type scannable interface {
	Scan(dest ...any) error
}

func (r *LoanRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, customerID                 int64
		principal                      decimal.Decimal
		tenureMonths                   int
		interestRate                   decimal.Decimal
		monthlyInstallment             decimal.Decimal
		paidOnTime                     int
		startDate, endDate             time.Time
		active                         bool
	)

	err := s.Scan(
		&id, &customerID, &principal, &tenureMonths, &interestRate,
		&monthlyInstallment, &paidOnTime, &startDate, &endDate, &active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, err
		}
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	return model.ReconstructLoan(
		id, customerID, principal, tenureMonths, interestRate,
		monthlyInstallment, paidOnTime, startDate, endDate, active,
	), nil
}
