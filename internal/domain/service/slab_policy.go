package service

import (
	"github.com/shopspring/decimal"

	"github.com/crednova/credit-approval-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SlabPolicy - credit-score tiers and their interest rate floors
// ---------------------------------------------------------------------------

var (
	midTierFloor = decimal.NewFromInt(12)
	lowTierFloor = decimal.NewFromInt(16)
)

// SlabPolicy maps a credit score and a proposed annual rate to a slab
// outcome.
//
// Tiers:
//
//	score > 50        -> approved at the proposed rate, no floor applies
//	30 < score <= 50  -> floor 12%; proposed rate must STRICTLY exceed it
//	10 < score <= 30  -> floor 16%; same strict rule
//	score <= 10       -> rejected outright, no rate this policy supports
//
// A rate exactly equal to a floor is rejected; the floor is returned as
// the suggested correction.
type SlabPolicy struct{}

// NewSlabPolicy returns a new policy instance.
func NewSlabPolicy() *SlabPolicy {
	return &SlabPolicy{}
}

// Apply evaluates the proposed rate against the tier for the given score.
func (p *SlabPolicy) Apply(score valueobject.CreditScore, proposedRate decimal.Decimal) valueobject.SlabOutcome {
	s := score.Value()

	switch {
	case s > 50:
		return valueobject.SlabApproved(proposedRate)
	case s > 30:
		return applyFloor(proposedRate, midTierFloor)
	case s > 10:
		return applyFloor(proposedRate, lowTierFloor)
	default:
		return valueobject.SlabRejectedOutright()
	}
}

func applyFloor(proposedRate, floor decimal.Decimal) valueobject.SlabOutcome {
	if proposedRate.GreaterThan(floor) {
		return valueobject.SlabApproved(proposedRate)
	}
	return valueobject.SlabRejectedWithSuggestion(floor)
}
