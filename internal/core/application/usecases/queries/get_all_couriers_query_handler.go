package queries

import (
	"context"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler reads couriers with plain SQL, bypassing the aggregate.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_class
		FROM couriers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			className string
		)
		if err = rows.Scan(&id, &name, &className); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		class, classErr := vehicle.Parse(className)
		if classErr != nil {
			return nil, classErr
		}

		couriers = append(couriers, GetAllCouriersQueryResponse{
			ID:           courierID,
			Name:         name,
			VehicleClass: class,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
