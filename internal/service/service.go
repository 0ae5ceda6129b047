// Package service contains the business logic.
//
// It sits between the handler layer and the outbound integrations.
// It receives validated data from the handler, performs the
// business operation (relaying a contact submission, loading the
// resume) and reports the outcome.
package service
