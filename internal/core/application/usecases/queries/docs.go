// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain repositories and read projections straight
// from the database with raw SQL, returning plain response structs shaped for
// the API boundary. Queries never modify state.
package queries
