// Package queries contains read operations for the CQRS architecture.
// Query handlers read through GORM directly with raw SQL, bypassing the
// domain aggregates, and return flat read models shaped for the role that
// polls them: the kitchen queue, the pickup queue, order tracking, and the
// admin boards.
package queries
