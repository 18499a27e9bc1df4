package locationrepo

import (
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"

	"github.com/google/uuid"
)

type LocationRecordDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_location_courier_time,priority:1"`
	OfferID      *uuid.UUID `gorm:"type:uuid;index"`
	Lng          float64    `gorm:"not null"`
	Lat          float64    `gorm:"not null"`
	Accuracy     *float64
	Altitude     *float64
	Heading      *float64
	Speed        *float64
	BatteryLevel *float64
	Platform     string    `gorm:"column:device_platform;type:varchar(32)"`
	AppVersion   string    `gorm:"column:device_app_version;type:varchar(32)"`
	DeviceID     string    `gorm:"column:device_id;type:varchar(128)"`
	TrackingType string    `gorm:"type:varchar(32);not null"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	Timestamp    time.Time `gorm:"not null;index:idx_location_courier_time,priority:2;index"`
}

func (LocationRecordDTO) TableName() string {
	return "location_records"
}

func fromDomain(r *location.Record) LocationRecordDTO {
	device := r.Device()
	return LocationRecordDTO{
		ID:           r.ID().Bytes(),
		CourierID:    r.CourierID().Bytes(),
		OfferID:      kernel.OptionalBytes(r.OfferID()),
		Lng:          r.Coordinates().Lng(),
		Lat:          r.Coordinates().Lat(),
		Accuracy:     r.Accuracy(),
		Altitude:     r.Altitude(),
		Heading:      r.Heading(),
		Speed:        r.Speed(),
		BatteryLevel: r.BatteryLevel(),
		Platform:     device.Platform,
		AppVersion:   device.AppVersion,
		DeviceID:     device.DeviceID,
		TrackingType: r.TrackingType().String(),
		IsActive:     r.IsActive(),
		Timestamp:    r.Timestamp(),
	}
}

func toDomain(dto LocationRecordDTO) (*location.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	offerID, err := kernel.OptionalUUIDFromBytes(dto.OfferID)
	if err != nil {
		return nil, err
	}
	coordinates, err := kernel.NewCoordinates(dto.Lng, dto.Lat)
	if err != nil {
		return nil, err
	}
	trackingType, err := location.ParseTrackingType(dto.TrackingType)
	if err != nil {
		return nil, err
	}

	ts := dto.Timestamp.UTC()
	return location.RestoreRecord(id, courierID, location.Sample{
		Coordinates:  coordinates,
		OfferID:      offerID,
		Accuracy:     dto.Accuracy,
		Altitude:     dto.Altitude,
		Heading:      dto.Heading,
		Speed:        dto.Speed,
		BatteryLevel: dto.BatteryLevel,
		Device: location.Device{
			Platform:   dto.Platform,
			AppVersion: dto.AppVersion,
			DeviceID:   dto.DeviceID,
		},
		TrackingType: trackingType,
		Timestamp:    &ts,
	}, dto.IsActive)
}

func toDomainList(dtos []LocationRecordDTO) ([]*location.Record, error) {
	out := make([]*location.Record, 0, len(dtos))
	for _, dto := range dtos {
		r, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
