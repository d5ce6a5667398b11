// Package kernel contains shared value objects used across all domain
// aggregates: UUID identifiers and geographic locations. These types are
// immutable, validated at construction, and safe for concurrent use.
package kernel
