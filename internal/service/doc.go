// Package service holds the application use cases: RecordService validates
// and persists tracker records, and PredictionService turns a single anchor
// date into calendar predictions. Both depend only on interfaces from
// internal/store and on the validation gate; no infrastructure leaks in.
//
// Error handling follows one rule: validation failures come back as
// *domain.ValidationError, unknown cycle ids as store.ErrCycleNotFound, and
// anything else is wrapped in *RecordServiceError for the API layer to turn
// into a 500.
package service
