package access

import (
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// Option configures a Policy.
type Option func(*Policy)

// WithDeliverySelfAdvance lets DELIVERY staff advance the orders they carry
// (OUT_FOR_DELIVERY -> DELIVERING -> DELIVERED). Off by default.
func WithDeliverySelfAdvance() Option {
	return func(p *Policy) {
		p.deliverySelfAdvance = true
	}
}

// Policy is the role-based access matrix of the storefront. It is stateless
// apart from its options and safe for concurrent use.
type Policy struct {
	deliverySelfAdvance bool
}

func NewPolicy(opts ...Option) *Policy {
	p := &Policy{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate decides whether a may perform act on r. It never fails: malformed
// input yields ReasonUnknownRoleOrScope.
//
// Rules applied in order:
//   - USER records can never be deleted
//   - OWNER may do anything except act on another OWNER record
//   - staff are limited to their own branch before their role is considered
//   - each role then has its own allow-list
func (p *Policy) Evaluate(a *actor.Actor, r Resource, act Action) Decision {
	if a.Validate() != nil || a.Role().Validate() != nil || !act.isValid() || !r.wellFormed() {
		return forbid(ReasonUnknownRoleOrScope)
	}

	if r.kind == KindUser && act == Delete && r.user.Role() == actor.User {
		return forbid(ReasonProtectedRecord)
	}

	role := a.Role()
	if role == actor.Owner {
		return p.owner(a, r, act)
	}

	if role.IsStaff() {
		if r.kind == KindGlobal {
			return forbid(ReasonOutOfScope)
		}
		scope := r.scope()
		if scope == nil || !a.BelongsTo(*scope) {
			return forbid(ReasonOutOfScope)
		}
	}

	switch role {
	case actor.BranchAdmin:
		return p.branchAdmin(a, r, act)
	case actor.Cashier:
		return p.cashier(r, act)
	case actor.Delivery:
		return p.delivery(a, r, act)
	case actor.User:
		return p.customer(a, r, act)
	default:
		return forbid(ReasonUnknownRoleOrScope)
	}
}

// Allowed is Evaluate reduced to its verdict.
func (p *Policy) Allowed(a *actor.Actor, r Resource, act Action) bool {
	return p.Evaluate(a, r, act).Allowed
}

// Visible filters orders down to those a may view, keeping their order.
func (p *Policy) Visible(a *actor.Actor, orders []*order.Order) []*order.Order {
	result := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if p.Allowed(a, OrderResource(o), View) {
			result = append(result, o)
		}
	}
	return result
}

func (p *Policy) owner(a *actor.Actor, r Resource, _ Action) Decision {
	if r.kind == KindUser && r.user.Role() == actor.Owner && !r.user.IsEqual(a) {
		return forbid(ReasonProtectedRecord)
	}
	return allowed()
}

func (p *Policy) branchAdmin(a *actor.Actor, r Resource, act Action) Decision {
	switch r.kind {
	case KindBranch:
		return allowIf(act, View, Edit, Delete)
	case KindOrder:
		return allowed()
	case KindUser:
		target := r.user.Role()
		if target == actor.Owner || (target == actor.BranchAdmin && !r.user.IsEqual(a)) {
			return forbid(ReasonProtectedRecord)
		}
		return allowIf(act, View, Create, Edit, Delete)
	case KindCatalog:
		return allowIf(act, View, Create, Edit, Delete)
	case KindReport:
		return allowIf(act, View)
	default:
		return forbid(ReasonRoleNotPermitted)
	}
}

func (p *Policy) cashier(r Resource, act Action) Decision {
	switch r.kind {
	case KindBranch, KindCatalog:
		return allowIf(act, View)
	case KindOrder:
		return allowIf(act, View, Create)
	default:
		return forbid(ReasonRoleNotPermitted)
	}
}

func (p *Policy) delivery(a *actor.Actor, r Resource, act Action) Decision {
	switch r.kind {
	case KindCatalog:
		return allowIf(act, View)
	case KindOrder:
		switch {
		case act == View:
		case act == Advance && p.deliverySelfAdvance:
		default:
			return forbid(ReasonRoleNotPermitted)
		}
		if !carries(a, r.order) {
			return forbid(ReasonOutOfScope)
		}
		return allowed()
	default:
		return forbid(ReasonRoleNotPermitted)
	}
}

func (p *Policy) customer(a *actor.Actor, r Resource, act Action) Decision {
	switch r.kind {
	case KindGlobal:
		return forbid(ReasonOutOfScope)
	case KindCatalog:
		return allowIf(act, View)
	case KindOrder:
		if d := allowIf(act, View, Create); !d.Allowed {
			return d
		}
		if !r.order.CustomerID().IsEqual(a.ID()) {
			return forbid(ReasonOutOfScope)
		}
		return allowed()
	case KindUser:
		if d := allowIf(act, View, Edit); !d.Allowed {
			return d
		}
		if !r.user.IsEqual(a) {
			return forbid(ReasonOutOfScope)
		}
		return allowed()
	default:
		return forbid(ReasonRoleNotPermitted)
	}
}

// carries reports whether the delivery actor is on the road with o.
func carries(a *actor.Actor, o *order.Order) bool {
	return kernel.IsEqualPtr(o.DeliveryStaffID(), ptr(a.ID())) && o.Status().IsOnTheRoad()
}

func allowIf(act Action, permitted ...Action) Decision {
	for _, p := range permitted {
		if act == p {
			return allowed()
		}
	}
	return forbid(ReasonRoleNotPermitted)
}

func ptr(id kernel.UUID) *kernel.UUID {
	return &id
}
