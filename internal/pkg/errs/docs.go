// Package errs provides the validation and lookup error types shared by the
// storefront domain, application and adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel error (ErrValueIsRequired, ErrObjectNotFound, ...)
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel, so callers match with errors.Is
//
// Adapters translate these into transport responses (HTTP 400/404), while the
// lifecycle sentinels in package lifecycle cover the order workflow itself.
package errs
