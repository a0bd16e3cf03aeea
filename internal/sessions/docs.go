// Package sessions scopes kitchen alert state to an explicit session
// lifetime instead of a process-wide singleton.
//
// A KitchenSession pairs one branch-bound status poller with one alert
// controller, started on Open and torn down on Close. Manager enforces at
// most one open session per branch.
package sessions
