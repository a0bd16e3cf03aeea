// Package kernel contains shared value objects used across the domain model:
// UUID identities, Money amounts, and actor Roles.
//
// Value objects in this package are immutable, validate themselves, and are
// only created through constructor functions. Aggregates in the order, partner,
// and table packages build on them.
package kernel
