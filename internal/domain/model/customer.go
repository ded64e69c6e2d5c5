package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Customer aggregate root
// ---------------------------------------------------------------------------

// Customer is an immutable aggregate describing a credit applicant.
// The identifier is allocated by the store on first insert; a Customer
// built by NewCustomer carries a zero ID until persisted.
type Customer struct {
	id            int64
	firstName     string
	lastName      string
	age           int
	phoneNumber   string
	monthlyIncome decimal.Decimal
	approvedLimit decimal.Decimal
	createdAt     time.Time
}

var lakh = decimal.NewFromInt(100_000)

// ApprovedLimitForIncome derives the approved credit limit from a monthly
// income: 36 times the income, rounded half-up to the nearest 100,000.
func ApprovedLimitForIncome(monthlyIncome decimal.Decimal) decimal.Decimal {
	return monthlyIncome.Mul(decimal.NewFromInt(36)).Div(lakh).Round(0).Mul(lakh)
}

// NewCustomer creates a customer and derives the approved limit from the
// monthly income.
func NewCustomer(firstName, lastName string, age int, phoneNumber string, monthlyIncome decimal.Decimal, now time.Time) (Customer, error) {
	if firstName == "" {
		return Customer{}, errors.New("first name is required")
	}
	if lastName == "" {
		return Customer{}, errors.New("last name is required")
	}
	if age <= 0 {
		return Customer{}, errors.New("age must be positive")
	}
	if phoneNumber == "" {
		return Customer{}, errors.New("phone number is required")
	}
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return Customer{}, errors.New("monthly income must be positive")
	}

	return Customer{
		firstName:     firstName,
		lastName:      lastName,
		age:           age,
		phoneNumber:   phoneNumber,
		monthlyIncome: monthlyIncome,
		approvedLimit: ApprovedLimitForIncome(monthlyIncome),
		createdAt:     now,
	}, nil
}

// ReconstructCustomer rebuilds a Customer aggregate from persistence.
func ReconstructCustomer(
	id int64,
	firstName, lastName string,
	age int,
	phoneNumber string,
	monthlyIncome, approvedLimit decimal.Decimal,
	createdAt time.Time,
) Customer {
	return Customer{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		age:           age,
		phoneNumber:   phoneNumber,
		monthlyIncome: monthlyIncome,
		approvedLimit: approvedLimit,
		createdAt:     createdAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Customer) ID() int64                      { return c.id }
func (c Customer) FirstName() string              { return c.firstName }
func (c Customer) LastName() string               { return c.lastName }
func (c Customer) FullName() string               { return c.firstName + " " + c.lastName }
func (c Customer) Age() int                       { return c.age }
func (c Customer) PhoneNumber() string            { return c.phoneNumber }
func (c Customer) MonthlyIncome() decimal.Decimal { return c.monthlyIncome }
func (c Customer) ApprovedLimit() decimal.Decimal { return c.approvedLimit }
func (c Customer) CreatedAt() time.Time           { return c.createdAt }
