// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load and mutate aggregates, persist explicitly, commit, then publish
// events for what was committed.
package commands

import (
	"context"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	EarningsRepoFactory interface {
		EarningsRepository() ports.EarningsRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// CourierUoW manages transactions for courier profile operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OfferUoW manages transactions for offer lifecycle operations.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// PaymentUoW reads the offer a payment belongs to and writes the payment.
	PaymentUoW interface {
		TxManager
		OfferRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// EarningsUoW manages transactions that amend existing ledger entries.
	EarningsUoW interface {
		TxManager
		EarningsRepoFactory
	}

	EarningsUoWFactory interface {
		Create() EarningsUoW
	}

	// LedgerUoW spans everything ledger creation reads and writes: the offer,
	// its payment, tracked telemetry and the new ledger entry.
	LedgerUoW interface {
		TxManager
		OfferRepoFactory
		PaymentRepoFactory
		EarningsRepoFactory
		LocationRepoFactory
	}

	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	LocationUoWFactory interface {
		Create() LocationUoW
	}
)

// Observers receive outcomes for metrics. A nil observer is allowed.
type (
	LedgerObserver interface {
		EarningsCreated(outcome earnings.Outcome)
	}

	LocationObserver interface {
		LocationRecorded(trackingType string)
		LocationsPurged(count int64)
	}
)
