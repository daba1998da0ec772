// Package api handles incoming HTTP requests, request validation and response
// formatting. It is the adapter between HTTP clients and the services in
// internal/service.
//
// Every response is a JSON envelope built by the shared package. Handlers
// hold no business logic: they decode, validate, call a service, and hand
// any error to HandleAPIError, which is the only place domain errors become
// HTTP status codes.
package api
