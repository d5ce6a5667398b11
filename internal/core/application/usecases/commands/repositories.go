// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courierops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the repositories it
// touches, so tests mock exactly what a command needs and nothing more.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ApplicationRepoFactory provides access to the application repository within a transaction.
	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ApplicationUoW manages transactions for application-only operations.
	ApplicationUoW interface {
		TxManager
		ApplicationRepoFactory
	}

	// ApplicationUoWFactory creates new application unit of work instances.
	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ReviewUoW manages transactions for application review. Approval spans
	// three aggregates: the application itself, the created driver profile,
	// and the applicant's account role.
	ReviewUoW interface {
		TxManager
		ApplicationRepoFactory
		DriverRepoFactory
		UserRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// RemoveDriverUoW manages transactions for driver removal, which checks
	// parcels in flight and reverts the owning user's role.
	RemoveDriverUoW interface {
		TxManager
		DriverRepoFactory
		ParcelRepoFactory
		UserRepoFactory
	}

	// RemoveDriverUoWFactory creates new driver removal unit of work instances.
	RemoveDriverUoWFactory interface {
		Create() RemoveDriverUoW
	}

	// DeliveryUoW manages transactions for parcel lifecycle transitions that
	// also touch the assigned driver (acceptance checks, delivery credits,
	// rating updates).
	DeliveryUoW interface {
		TxManager
		ParcelRepoFactory
		DriverRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PayoutUoW manages transactions for payment operations that settle or
	// generate driver earnings.
	PayoutUoW interface {
		TxManager
		PaymentRepoFactory
		DriverRepoFactory
	}

	// PayoutUoWFactory creates new payout unit of work instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}
)
