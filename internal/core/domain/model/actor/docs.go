// Package actor models the people who act on the storefront and their roles.
//
// OWNER runs every branch. BRANCH_ADMIN, CASHIER and DELIVERY are staff of a
// single branch. USER is a customer. What each role may do is decided by the
// access policy, not here.
package actor
