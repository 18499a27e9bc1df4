package postgres

import (
	"fmt"

	"courierledger/internal/adapters/out/postgres/courierrepo"
	"courierledger/internal/adapters/out/postgres/earningsrepo"
	"courierledger/internal/adapters/out/postgres/locationrepo"
	"courierledger/internal/adapters/out/postgres/offerrepo"
	"courierledger/internal/adapters/out/postgres/paymentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&offerrepo.OfferDTO{},
		&offerrepo.StatusChangeDTO{},
		&paymentrepo.PaymentDTO{},
		&earningsrepo.EarningsDTO{},
		&earningsrepo.AdjustmentDTO{},
		&locationrepo.LocationRecordDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
