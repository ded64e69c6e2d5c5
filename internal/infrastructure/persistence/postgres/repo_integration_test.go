package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	pgrepo "github.com/crednova/credit-approval-service/internal/infrastructure/persistence/postgres"
	"github.com/crednova/credit-approval-service/pkg/testutil"
)

// Container-backed tests run only when explicitly requested.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("set RUN_INTEGRATION_TESTS=1 to run container-backed tests")
	}
}

func setupRepos(t *testing.T) (*pgrepo.CustomerRepo, *pgrepo.LoanRepo) {
	t.Helper()
	ctx := context.Background()

	pc := testutil.NewPostgresContainer(ctx, t)
	t.Cleanup(func() { pc.Cleanup(t) })
	pc.RunMigrations(t, "migrations")

	return pgrepo.NewCustomerRepo(pc.Pool), pgrepo.NewLoanRepo(pc.Pool)
}

func TestCustomerRepo_CreateAndFind(t *testing.T) {
	requireIntegration(t)
	customers, _ := setupRepos(t)
	ctx := context.Background()

	customer, err := model.NewCustomer(
		"Asha", "Rao", 32, "9000000001",
		decimal.NewFromInt(50_000), time.Now().UTC(),
	)
	require.NoError(t, err)

	created, err := customers.Create(ctx, customer)
	require.NoError(t, err)
	assert.Positive(t, created.ID())

	found, err := customers.FindByIdentifier(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, "Asha", found.FirstName())
	assert.True(t, decimal.NewFromInt(1_800_000).Equal(found.ApprovedLimit()))
}

func TestCustomerRepo_NotFound(t *testing.T) {
	requireIntegration(t)
	customers, _ := setupRepos(t)

	_, err := customers.FindByIdentifier(context.Background(), 424242)
	assert.ErrorIs(t, err, port.ErrCustomerNotFound)
}

func TestLoanRepo_CreateAndQuery(t *testing.T) {
	requireIntegration(t)
	customers, loans := setupRepos(t)
	ctx := context.Background()

	owner, err := model.NewCustomer(
		"Dev", "Iyer", 41, "9000000002",
		decimal.NewFromInt(75_000), time.Now().UTC(),
	)
	require.NoError(t, err)
	owner, err = customers.Create(ctx, owner)
	require.NoError(t, err)

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	loan, err := model.NewLoan(
		owner.ID(), decimal.NewFromInt(300_000), 24,
		decimal.NewFromFloat(10.5), decimal.NewFromFloat(13_912.25),
		start, start.AddDate(0, 0, 24*30),
	)
	require.NoError(t, err)

	created, err := loans.Create(ctx, loan)
	require.NoError(t, err)
	assert.Positive(t, created.ID())

	byID, err := loans.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, owner.ID(), byID.CustomerID())
	assert.True(t, decimal.NewFromInt(300_000).Equal(byID.Principal()))
	assert.True(t, byID.Active())

	history, err := loans.FindByCustomerID(ctx, owner.ID())
	require.NoError(t, err)
	require.Len(t, history, 1)

	active, err := loans.FindActiveByCustomerID(ctx, owner.ID())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, created.ID(), active[0].ID())
}

func TestLoanRepo_NotFound(t *testing.T) {
	requireIntegration(t)
	_, loans := setupRepos(t)

	_, err := loans.FindByID(context.Background(), 424242)
	assert.ErrorIs(t, err, port.ErrLoanNotFound)
}
