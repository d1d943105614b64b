package access

import (
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// Action is what an actor wants to do with a resource.
type Action int

const (
	UnknownAction Action = iota
	View
	Create
	Edit
	Delete
	Advance
	Cancel
)

var actionStrings = map[Action]string{
	View:    "VIEW",
	Create:  "CREATE",
	Edit:    "EDIT",
	Delete:  "DELETE",
	Advance: "ADVANCE",
	Cancel:  "CANCEL",
}

func (a Action) String() string {
	if s, ok := actionStrings[a]; ok {
		return s
	}
	return "UNKNOWN"
}

func (a Action) isValid() bool {
	_, ok := actionStrings[a]
	return ok
}

// Kind tells which part of the storefront a Resource points at.
type Kind int

const (
	KindUnknown Kind = iota
	KindGlobal
	KindBranch
	KindOrder
	KindUser
	KindCatalog
	KindReport
)

var kindStrings = map[Kind]string{
	KindGlobal:  "GLOBAL",
	KindBranch:  "BRANCH",
	KindOrder:   "ORDER",
	KindUser:    "USER",
	KindCatalog: "CATALOG",
	KindReport:  "REPORT",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Resource is the target of an access check. Build one with Global, Branch,
// Catalog, Report, OrderResource or UserResource; the zero value is malformed.
type Resource struct {
	kind     Kind
	branchID *kernel.UUID
	order    *order.Order
	user     *actor.Actor
}

// Global addresses storefront-wide data (all branches, branch creation).
func Global() Resource {
	return Resource{kind: KindGlobal}
}

func Branch(branchID kernel.UUID) Resource {
	return Resource{kind: KindBranch, branchID: &branchID}
}

// Catalog addresses the categories and products of a branch.
func Catalog(branchID kernel.UUID) Resource {
	return Resource{kind: KindCatalog, branchID: &branchID}
}

// Report addresses the sales summary of a branch.
func Report(branchID kernel.UUID) Resource {
	return Resource{kind: KindReport, branchID: &branchID}
}

func OrderResource(o *order.Order) Resource {
	return Resource{kind: KindOrder, order: o}
}

// UserResource addresses an actor record. For Create it is the record about
// to be stored.
func UserResource(target *actor.Actor) Resource {
	return Resource{kind: KindUser, user: target}
}

func (r Resource) Kind() Kind {
	return r.kind
}

// scope returns the branch the resource lives in, nil for branchless
// resources (global data, OWNER and USER records).
func (r Resource) scope() *kernel.UUID {
	switch r.kind {
	case KindOrder:
		id := r.order.BranchID()
		return &id
	case KindUser:
		return r.user.BranchID()
	default:
		return r.branchID
	}
}

func (r Resource) wellFormed() bool {
	switch r.kind {
	case KindGlobal:
		return true
	case KindBranch, KindCatalog, KindReport:
		return r.branchID != nil && r.branchID.Validate() == nil
	case KindOrder:
		return r.order.Validate() == nil
	case KindUser:
		return r.user.Validate() == nil
	default:
		return false
	}
}
