// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - PickupDispatcher: pairs ready delivery orders with free delivery
//     partners and releases partners when deliveries terminate
package services
