// Package courierrepo persists courier profiles.
package courierrepo

import (
	"time"

	"courierledger/internal/core/domain/model/courier"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// CourierDTO is the row of the couriers table. Display names are read by the
// top earners query.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	VehicleClass string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		VehicleClass: c.VehicleClass().String(),
		CreatedAt:    c.CreatedAt(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	class, err := vehicle.Parse(dto.VehicleClass)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, class, dto.CreatedAt)
}
