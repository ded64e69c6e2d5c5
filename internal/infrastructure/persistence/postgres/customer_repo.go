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
)

// CustomerRepo implements port.CustomerRepository.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepo creates a new PostgreSQL-backed customer repository.
func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create inserts the customer. The identifier comes from the table's
// identity sequence, so allocation and insert are a single atomic
// statement.
func (r *CustomerRepo) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	query := `
		INSERT INTO customers (
			first_name, last_name, age, phone_number,
			monthly_income, approved_limit, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		c.FirstName(), c.LastName(), c.Age(), c.PhoneNumber(),
		c.MonthlyIncome(), c.ApprovedLimit(), c.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return model.Customer{}, fmt.Errorf("insert customer: %w", err)
	}

	return model.ReconstructCustomer(
		id, c.FirstName(), c.LastName(), c.Age(), c.PhoneNumber(),
		c.MonthlyIncome(), c.ApprovedLimit(), c.CreatedAt(),
	), nil
}

// FindByIdentifier resolves a customer by internal ID, falling back to the
// external reference assigned during bulk ingestion.
func (r *CustomerRepo) FindByIdentifier(ctx context.Context, ref int64) (model.Customer, error) {
	query := `
		SELECT id, first_name, last_name, age, phone_number,
		       monthly_income, approved_limit, created_at
		FROM customers
		WHERE id = $1 OR external_ref = $1
		ORDER BY (id = $1) DESC
		LIMIT 1
	`
	row := r.pool.QueryRow(ctx, query, ref)

	var (
		id                           int64
		firstName, lastName          string
		age                          int
		phoneNumber                  string
		monthlyIncome, approvedLimit decimal.Decimal
		createdAt                    time.Time
	)
	err := row.Scan(&id, &firstName, &lastName, &age, &phoneNumber,
		&monthlyIncome, &approvedLimit, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, port.ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}

	return model.ReconstructCustomer(
		id, firstName, lastName, age, phoneNumber,
		monthlyIncome, approvedLimit, createdAt,
	), nil
}
