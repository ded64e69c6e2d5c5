package testutil

import "time"

// Fixed identifiers and timestamps for deterministic testing.
var (
	TestCustomerID int64 = 1001
	TestLoanID     int64 = 5001

	// TestToday is a stable reference date for clock-injected tests.
	TestToday = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
)
