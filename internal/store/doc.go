// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Implementations report failures using the error kinds from the domain
// package, so nothing above this layer ever sees a driver error type.
package store
