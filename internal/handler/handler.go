// Package handler is the HTTP layer between the router and the services.
//
// Typed endpoints are wrapped by Handle/HandleFile, which bind, sanitize
// and validate the request through the validation package before the
// endpoint runs, then write the result as JSON or as a file.
package handler
