// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Narrow variants exist so a handler only sees the repositories
// it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository
	// within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a
	// transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// VendorUoW manages transactions for vendor-only operations.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates new vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// UoW manages transactions across both delivery and vendor aggregates.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		VendorRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
