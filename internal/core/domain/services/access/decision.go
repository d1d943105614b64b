package access

// Reason explains a Decision.
type Reason int

const (
	ReasonGranted Reason = iota
	ReasonRoleNotPermitted
	ReasonOutOfScope
	ReasonProtectedRecord
	ReasonUnknownRoleOrScope
)

var reasonStrings = map[Reason]string{
	ReasonGranted:            "GRANTED",
	ReasonRoleNotPermitted:   "ROLE_NOT_PERMITTED",
	ReasonOutOfScope:         "OUT_OF_SCOPE",
	ReasonProtectedRecord:    "PROTECTED_RECORD",
	ReasonUnknownRoleOrScope: "UNKNOWN_ROLE_OR_SCOPE",
}

func (r Reason) String() string {
	if s, ok := reasonStrings[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Decision is the outcome of Policy.Evaluate. It is never persisted.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allowed() Decision        { return Decision{Allowed: true, Reason: ReasonGranted} }
func forbid(r Reason) Decision { return Decision{Allowed: false, Reason: r} }
