// Package errs defines the error types shared across the application.
//
// Each error class pairs a sentinel (e.g. ErrValueIsRequired) with a
// struct carrying the details, so callers can classify with errors.Is
// and recover fields with errors.As. Constructors exist with and
// without an underlying cause.
//
// SchemaMissingError is the one domain-specific class: it marks the
// "relation does not exist" condition that the booking flow treats as
// a degraded mode rather than a failure.
package errs
