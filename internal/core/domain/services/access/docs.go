// Package access holds the storefront's role-based access matrix.
//
// Policy.Evaluate answers "may this actor perform this action on this
// resource" with a Decision and a Reason. It is pure: no I/O, no errors,
// no panics. Callers turn a denied Decision into their own error.
package access
