// Package order contains the Order aggregate and its status state machine.
//
// The lifecycle forms the core of the fulfillment coordinator: orders enter
// in pending, the kitchen drives them through confirmed/preparing/ready, and
// they terminate in completed (delivery orders via picked_up/on_the_way) or
// cancelled. The legal-edge table, including which roles may drive which
// edge for which order type, is data in status.go rather than branching
// logic, so extending the lifecycle is a table change.
package order
