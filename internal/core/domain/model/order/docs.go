// Package order provides the Order aggregate of the storefront and the
// status transition table that drives its lifecycle.
//
// The package includes:
//   - Order: aggregate root holding identity, branch, items, total and status
//   - Item: immutable order line with quantity and unit price
//   - Status: the nine lifecycle states and the forward transition table
//   - StatusChange: an entry of the append-only status history
//
// Key business rules:
//   - Status moves PENDING -> CONFIRMED -> PREPARING -> READY -> OUT_FOR_DELIVERY
//     -> DELIVERING -> DELIVERED -> COMPLETED, one step at a time
//   - only PENDING, CONFIRMED, PREPARING and READY orders can be cancelled
//   - leaving READY requires a delivery staff member, attached in the same step
//   - COMPLETED and CANCELLED are terminal
//
// Authorization is not decided here; see the access and lifecycle services.
package order
