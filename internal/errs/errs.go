// Package errs define custom error types and utilities.
//
// Its purpose is to give every failure a consistent JSON shape:
// field-level errors for the contact form, HTTPError for generic
// API failures and ResponseError for endpoints that answer with their
// own body while the real cause is only logged.
package errs
