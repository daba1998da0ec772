// Package service contains the application use cases. It orchestrates the
// domain model and the repository interfaces defined in internal/store, and
// never depends on a concrete storage implementation.
//
// Services are thin: they delegate to a store, log the outcome with a
// "component" attribute, and return store errors exactly as received.
// Classifying those errors into HTTP responses is the API layer's job.
package service
