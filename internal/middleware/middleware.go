// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as the CORS allowlist, request logging, tracing,
// request IDs and panic recovery
package middleware
