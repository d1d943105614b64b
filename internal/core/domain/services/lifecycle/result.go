package lifecycle

import (
	"slices"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
)

// Outcome distinguishes the two results of an advance request.
type Outcome int

const (
	// Advanced means the order moved to Status.
	Advanced Outcome = iota + 1
	// NeedsDeliveryAssignment means the order is READY and stays READY until
	// a delivery staff member is picked from Candidates.
	NeedsDeliveryAssignment
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "ADVANCED"
	case NeedsDeliveryAssignment:
		return "NEEDS_DELIVERY_ASSIGNMENT"
	default:
		return "UNKNOWN"
	}
}

type AdvanceResult struct {
	outcome    Outcome
	from       order.Status
	status     order.Status
	candidates []*actor.Actor
}

func advanced(from, to order.Status) AdvanceResult {
	return AdvanceResult{outcome: Advanced, from: from, status: to}
}

func needsAssignment(current order.Status, candidates []*actor.Actor) AdvanceResult {
	if candidates == nil {
		candidates = []*actor.Actor{}
	}
	return AdvanceResult{
		outcome:    NeedsDeliveryAssignment,
		from:       current,
		status:     current,
		candidates: candidates,
	}
}

func (r AdvanceResult) Outcome() Outcome {
	return r.outcome
}

// From is the status before the request.
func (r AdvanceResult) From() order.Status {
	return r.from
}

// Status is the order's status after the request.
func (r AdvanceResult) Status() order.Status {
	return r.status
}

// Candidates lists the branch's delivery staff. Empty, never nil, for
// NeedsDeliveryAssignment; nil for Advanced.
func (r AdvanceResult) Candidates() []*actor.Actor {
	return slices.Clone(r.candidates)
}
