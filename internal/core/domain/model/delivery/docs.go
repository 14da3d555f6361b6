// Package delivery contains the Delivery aggregate: the fulfillment record
// wrapping exactly one order together with its courier binding, rating,
// issue report, and lifecycle timestamps. Courier assignment is one-way -
// once a courier is bound it is never cleared - and a rating may be set at
// most once, only after the order reached DELIVERED.
package delivery
