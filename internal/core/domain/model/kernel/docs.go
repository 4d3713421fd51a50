// Package kernel provides shared value objects used across the domain model.
//
// It contains:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - Money: fixed-point monetary amounts stored as integer cents
//
// Kernel types are value objects: immutable, comparable by value, and safe
// for concurrent use. The zero value of UUID is invalid and must be created
// through one of the constructor functions; Money's zero value is a valid
// zero amount.
package kernel
