// Package domain contains the core business entities and the closed set of
// error kinds the application reports. It is independent of any specific
// storage technology or delivery mechanism.
package domain
