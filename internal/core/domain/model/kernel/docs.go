// Package kernel provides core domain primitives and utilities for the albaran
// management system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - Money: A value object for exact decimal monetary amounts with controlled rounding
//   - Entity code formats: the sequential CLI/BEB/EMP codes and ALB order numbers
//     assigned by the two-phase create protocol
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
