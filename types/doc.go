// Package types contains the core types and interfaces shared across the
// flightops library.
//
// Keeping these definitions in a leaf package lets internal packages depend
// on them without importing the root flightops package, avoiding import
// cycles. The root package re-exports the commonly used names via type
// aliases for user convenience.
package types
