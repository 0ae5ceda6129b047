// Package model holds the request, response and domain values that flow
// between the handler, service and notification layers.
//
// None of these values are persisted: they live for a single request.
package model
