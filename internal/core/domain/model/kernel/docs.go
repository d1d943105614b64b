// Package kernel provides the value objects shared by every storefront
// aggregate:
//   - UUID: identifier for orders, actors, branches and products
//   - Money: non-negative decimal amount used for prices and order totals
//
// Both are immutable and their zero values are invalid, so Validate must pass
// before a value is stored on an aggregate.
package kernel
