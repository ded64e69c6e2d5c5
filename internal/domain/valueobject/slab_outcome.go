package valueobject

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// SlabOutcome - immutable value object
// ---------------------------------------------------------------------------

type slabOutcomeKind int

const (
	slabApproved slabOutcomeKind = iota
	slabRejectedWithSuggestion
	slabRejectedOutright
)

// SlabOutcome is the tagged result of applying the interest slab policy.
// It is one of three shapes: approved at the proposed rate, rejected with
// a suggested minimum rate, or rejected outright with no rate at all.
type SlabOutcome struct {
	kind slabOutcomeKind
	rate decimal.Decimal
	min  decimal.Decimal
}

// SlabApproved builds an approval at the given effective rate.
func SlabApproved(rate decimal.Decimal) SlabOutcome {
	return SlabOutcome{kind: slabApproved, rate: rate}
}

// SlabRejectedWithSuggestion builds a rejection carrying the slab minimum
// as both the suggested effective rate and the floor that was not met.
func SlabRejectedWithSuggestion(minRate decimal.Decimal) SlabOutcome {
	return SlabOutcome{kind: slabRejectedWithSuggestion, rate: minRate, min: minRate}
}

// SlabRejectedOutright builds a rejection with no rate the policy supports.
func SlabRejectedOutright() SlabOutcome {
	return SlabOutcome{kind: slabRejectedOutright}
}

// Approved reports whether the slab policy approved the proposed rate.
func (o SlabOutcome) Approved() bool { return o.kind == slabApproved }

// EffectiveRate returns the rate to present to the caller: the proposed
// rate on approval, or the suggested minimum on a correctable rejection.
// The boolean is false for an outright rejection.
func (o SlabOutcome) EffectiveRate() (decimal.Decimal, bool) {
	if o.kind == slabRejectedOutright {
		return decimal.Decimal{}, false
	}
	return o.rate, true
}

// SlabMinimum returns the tier floor, when one applies.
func (o SlabOutcome) SlabMinimum() (decimal.Decimal, bool) {
	if o.kind != slabRejectedWithSuggestion {
		return decimal.Decimal{}, false
	}
	return o.min, true
}
