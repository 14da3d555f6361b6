// Package order contains the Order aggregate and its lifecycle state
// machine. An order moves from PENDING through vendor acceptance,
// preparation, and courier transit to DELIVERED; REJECTED and DELIVERED
// are terminal. Every transition is explicitly enumerated - nothing is
// inferred from the ordering of the states.
package order
