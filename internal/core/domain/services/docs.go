// Package services contains stateless domain services operating over
// aggregate slices: resolving a courier's vendor affinity and filtering
// the orders a courier is currently allowed to take. Repositories load
// the aggregates; the services hold the decision logic.
package services
