// Package api implements the HTTP handlers for the tracker: record CRUD
// under /api/{cycles,pregnancies,weights,postpartum}, the calculators
// under /api/predictions, and the health check.
//
// Handlers decode JSON, call a service, and map errors with
// MapErrorToStatusCode and GetSafeErrorMessage. Validation failures become
// 400 with the offending field's message, unknown ids 404, and anything
// else a generic 500 whose detail is only logged, after redaction.
package api
