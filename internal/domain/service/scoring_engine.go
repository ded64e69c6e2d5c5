package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/crednova/credit-approval-service/internal/domain/model"
	"github.com/crednova/credit-approval-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoringEngine - domain service for credit score computation
// ---------------------------------------------------------------------------

// ScoringFactor is a single weighted component of the credit score.
type ScoringFactor struct {
	Name   string
	Weight float64
	Score  float64
}

// ScoreResult holds the computed credit score with its factor breakdown.
// OverLimit is set when the hard override fired and the factors are empty.
type ScoreResult struct {
	Score     valueobject.CreditScore
	Factors   []ScoringFactor
	OverLimit bool
}

// ScoringEngine computes a deterministic credit score in [0, 100] from a
// customer's profile and loan-history aggregates.
//
// Scoring model weights:
//   - On-time payment ratio: 40%
//   - Historical loan count: 15% (fewer is better)
//   - Current-year activity: 20% (fewer is better)
//   - Limit utilization:     25% (lower is better)
type ScoringEngine struct {
	// LoanCountCap is the loan count at which the count factor reaches zero.
	LoanCountCap int
	// ActivityCap is the current-year count at which the activity factor
	// reaches zero.
	ActivityCap int
}

// NewScoringEngine returns an engine with the standard caps.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{
		LoanCountCap: 20,
		ActivityCap:  5,
	}
}

// Score evaluates the customer against their aggregates.
//
// Hard override: a customer whose active principal exceeds a positive
// approved limit scores exactly zero, regardless of everything else.
func (e *ScoringEngine) Score(customer model.Customer, agg valueobject.LoanAggregates) ScoreResult {
	limit := customer.ApprovedLimit()
	if limit.GreaterThan(decimal.Zero) && agg.ActivePrincipalTotal.GreaterThan(limit) {
		return ScoreResult{Score: valueobject.NewCreditScore(0), OverLimit: true}
	}

	factors := []ScoringFactor{
		{Name: "on_time_ratio", Weight: 0.40, Score: e.scoreOnTimeRatio(agg)},
		{Name: "loan_count", Weight: 0.15, Score: e.scoreLoanCount(agg)},
		{Name: "current_year_activity", Weight: 0.20, Score: e.scoreActivity(agg)},
		{Name: "limit_utilization", Weight: 0.25, Score: e.scoreUtilization(customer, agg)},
	}

	var total float64
	for _, f := range factors {
		total += f.Weight * f.Score
	}

	return ScoreResult{
		Score:   valueobject.NewCreditScore(total),
		Factors: factors,
	}
}

// scoreOnTimeRatio maps the on-time installment ratio onto [0, 100].
// A customer with no tenure history has nothing to penalize and gets a
// perfect ratio.
func (e *ScoringEngine) scoreOnTimeRatio(agg valueobject.LoanAggregates) float64 {
	if agg.TenureTotal == 0 {
		return 100
	}
	ratio := float64(agg.OnTimePaidTotal) / float64(agg.TenureTotal)
	return clamp01(ratio) * 100
}

// scoreLoanCount maps the historical loan count linearly: 0 loans scores
// 100, LoanCountCap or more scores 0.
func (e *ScoringEngine) scoreLoanCount(agg valueobject.LoanAggregates) float64 {
	capped := math.Min(float64(agg.LoanCount), float64(e.LoanCountCap))
	return 100 * (1 - capped/float64(e.LoanCountCap))
}

// scoreActivity maps the current-year loan count linearly: 0 scores 100,
// ActivityCap or more scores 0.
func (e *ScoringEngine) scoreActivity(agg valueobject.LoanAggregates) float64 {
	capped := math.Min(float64(agg.CurrentYearLoanCount), float64(e.ActivityCap))
	return 100 * (1 - capped/float64(e.ActivityCap))
}

// scoreUtilization rewards a low fraction of the approved limit drawn as
// active principal. Without a positive limit the factor scores zero: low
// utilization of an undefined limit is not a signal.
func (e *ScoringEngine) scoreUtilization(customer model.Customer, agg valueobject.LoanAggregates) float64 {
	limit := customer.ApprovedLimit()
	if limit.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	frac := agg.ActivePrincipalTotal.Div(limit).InexactFloat64()
	return (1 - clamp01(frac)) * 100
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
