// Package lifecycle drives an order through its status table on behalf of
// an actor. Every request is first checked against the access policy; the
// READY -> OUT_FOR_DELIVERY step is split in two so the caller can pick a
// delivery staff member between them.
package lifecycle
