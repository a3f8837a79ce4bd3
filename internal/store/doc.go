// Package store defines the persistence contracts for tracked records.
// Implementations live in internal/platform/sqlstore; the service layer
// depends only on these interfaces.
package store
