// Package offerrepo persists delivery offers together with their status audit trail.
package offerrepo

import (
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// OfferDTO is the row of the offers table. Pickup and delivery points are kept
// as nullable lng/lat column pairs.
type OfferDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Package     PackageDTO `gorm:"embedded;embeddedPrefix:package_"`
	Pickup      PickupDTO  `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery    DropoffDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	PaymentAmountCents int64  `gorm:"not null"`
	PaymentCurrency    string `gorm:"type:char(3);not null"`
	PaymentMethod      string `gorm:"type:varchar(32);not null"`

	VehicleClass string     `gorm:"type:varchar(16);not null"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	AcceptedBy   *uuid.UUID `gorm:"type:uuid;index"`

	EstimatedDistance *float64
	EstimatedDuration *float64
	ActualDistance    *float64
	ActualDuration    *float64

	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	History []StatusChangeDTO `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

func (OfferDTO) TableName() string {
	return "offers"
}

type PackageDTO struct {
	WeightKg            float64
	LengthCm            float64
	WidthCm             float64
	HeightCm            float64
	Fragile             bool
	SpecialInstructions string `gorm:"type:text"`
}

type PickupDTO struct {
	Address        string `gorm:"type:text;not null"`
	Lng            *float64
	Lat            *float64
	ContactName    string `gorm:"type:varchar(255)"`
	ContactPhone   string `gorm:"type:varchar(64)"`
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
	Instructions   string `gorm:"type:text"`
}

type DropoffDTO struct {
	Address      string `gorm:"type:text;not null"`
	Lng          *float64
	Lat          *float64
	ContactName  string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(64)"`
	Deadline     *time.Time
	Instructions string `gorm:"type:text"`
}

// StatusChangeDTO is one row of the append-only offer_status_changes table.
type StatusChangeDTO struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	OfferID uuid.UUID `gorm:"type:uuid;not null;index:idx_offer_status_changes_offer_seq,priority:1"`
	Seq     int       `gorm:"not null;index:idx_offer_status_changes_offer_seq,priority:2"`
	From    string    `gorm:"column:from_status;type:varchar(16);not null"`
	To      string    `gorm:"column:to_status;type:varchar(16);not null"`
	ActorID uuid.UUID `gorm:"type:uuid;not null"`
	Role    string    `gorm:"type:varchar(16);not null"`
	At      time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "offer_status_changes"
}

func fromDomain(o *offer.Offer) OfferDTO {
	d := o.Details()
	pickupLng, pickupLat := splitCoordinates(d.Pickup.Coordinates)
	deliveryLng, deliveryLat := splitCoordinates(d.Delivery.Coordinates)

	dto := OfferDTO{
		ID:          o.ID().Bytes(),
		RequesterID: o.RequesterID().Bytes(),
		Title:       d.Title,
		Description: d.Description,
		Package: PackageDTO{
			WeightKg:            d.Package.WeightKg,
			LengthCm:            d.Package.Dimensions.LengthCm,
			WidthCm:             d.Package.Dimensions.WidthCm,
			HeightCm:            d.Package.Dimensions.HeightCm,
			Fragile:             d.Package.Fragile,
			SpecialInstructions: d.Package.SpecialInstructions,
		},
		Pickup: PickupDTO{
			Address:        d.Pickup.Address,
			Lng:            pickupLng,
			Lat:            pickupLat,
			ContactName:    d.Pickup.ContactName,
			ContactPhone:   d.Pickup.ContactPhone,
			AvailableFrom:  d.Pickup.AvailableFrom,
			AvailableUntil: d.Pickup.AvailableUntil,
			Instructions:   d.Pickup.Instructions,
		},
		Delivery: DropoffDTO{
			Address:      d.Delivery.Address,
			Lng:          deliveryLng,
			Lat:          deliveryLat,
			ContactName:  d.Delivery.ContactName,
			ContactPhone: d.Delivery.ContactPhone,
			Deadline:     d.Delivery.Deadline,
			Instructions: d.Delivery.Instructions,
		},
		PaymentAmountCents: d.Payment.Amount.Cents(),
		PaymentCurrency:    d.Payment.Currency,
		PaymentMethod:      d.Payment.Method.String(),
		VehicleClass:       d.VehicleClass.String(),
		Status:             o.Status().String(),
		AcceptedBy:         kernel.OptionalBytes(o.AcceptedBy()),
		EstimatedDistance:  o.EstimatedDistance(),
		EstimatedDuration:  o.EstimatedDuration(),
		ActualDistance:     o.ActualDistance(),
		ActualDuration:     o.ActualDuration(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		AcceptedAt:         o.AcceptedAt(),
		PickedUpAt:         o.PickedUpAt(),
		DeliveredAt:        o.DeliveredAt(),
		CompletedAt:        o.CompletedAt(),
		CancelledAt:        o.CancelledAt(),
	}

	for i, change := range o.History() {
		dto.History = append(dto.History, StatusChangeDTO{
			OfferID: dto.ID,
			Seq:     i,
			From:    change.From.String(),
			To:      change.To.String(),
			ActorID: change.ActorID.Bytes(),
			Role:    change.Role.String(),
			At:      change.At,
		})
	}

	return dto
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}
	acceptedBy, err := kernel.OptionalUUIDFromBytes(dto.AcceptedBy)
	if err != nil {
		return nil, err
	}
	pickup, err := joinCoordinates(dto.Pickup.Lng, dto.Pickup.Lat)
	if err != nil {
		return nil, err
	}
	dropoff, err := joinCoordinates(dto.Delivery.Lng, dto.Delivery.Lat)
	if err != nil {
		return nil, err
	}
	status, err := offer.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	class, err := vehicle.Parse(dto.VehicleClass)
	if err != nil {
		return nil, err
	}
	method, err := payment.ParseMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(offer.State{
		ID:          id,
		RequesterID: requesterID,
		Details: offer.Details{
			Title:       dto.Title,
			Description: dto.Description,
			Package: offer.Package{
				WeightKg: dto.Package.WeightKg,
				Dimensions: offer.Dimensions{
					LengthCm: dto.Package.LengthCm,
					WidthCm:  dto.Package.WidthCm,
					HeightCm: dto.Package.HeightCm,
				},
				Fragile:             dto.Package.Fragile,
				SpecialInstructions: dto.Package.SpecialInstructions,
			},
			Pickup: offer.Pickup{
				Address:        dto.Pickup.Address,
				Coordinates:    pickup,
				ContactName:    dto.Pickup.ContactName,
				ContactPhone:   dto.Pickup.ContactPhone,
				AvailableFrom:  utc(dto.Pickup.AvailableFrom),
				AvailableUntil: utc(dto.Pickup.AvailableUntil),
				Instructions:   dto.Pickup.Instructions,
			},
			Delivery: offer.Delivery{
				Address:      dto.Delivery.Address,
				Coordinates:  dropoff,
				ContactName:  dto.Delivery.ContactName,
				ContactPhone: dto.Delivery.ContactPhone,
				Deadline:     utc(dto.Delivery.Deadline),
				Instructions: dto.Delivery.Instructions,
			},
			Payment: offer.PaymentTerms{
				Amount:   kernel.Money(dto.PaymentAmountCents),
				Currency: dto.PaymentCurrency,
				Method:   method,
			},
			VehicleClass: class,
		},
		Status:            status,
		AcceptedBy:        acceptedBy,
		EstimatedDistance: dto.EstimatedDistance,
		EstimatedDuration: dto.EstimatedDuration,
		ActualDistance:    dto.ActualDistance,
		ActualDuration:    dto.ActualDuration,
		CreatedAt:         dto.CreatedAt.UTC(),
		UpdatedAt:         dto.UpdatedAt.UTC(),
		AcceptedAt:        utc(dto.AcceptedAt),
		PickedUpAt:        utc(dto.PickedUpAt),
		DeliveredAt:       utc(dto.DeliveredAt),
		CompletedAt:       utc(dto.CompletedAt),
		CancelledAt:       utc(dto.CancelledAt),
		History:           history,
	})
}

func historyToDomain(rows []StatusChangeDTO) ([]offer.StatusChange, error) {
	history := make([]offer.StatusChange, 0, len(rows))
	for _, row := range rows {
		from, err := offer.ParseStatus(row.From)
		if err != nil {
			return nil, err
		}
		to, err := offer.ParseStatus(row.To)
		if err != nil {
			return nil, err
		}
		actorID, err := kernel.UUIDFromBytes(row.ActorID[:])
		if err != nil {
			return nil, err
		}
		role, err := offer.ParseRole(row.Role)
		if err != nil {
			return nil, err
		}
		history = append(history, offer.StatusChange{
			From:    from,
			To:      to,
			ActorID: actorID,
			Role:    role,
			At:      row.At.UTC(),
		})
	}
	return history, nil
}

func splitCoordinates(c *kernel.Coordinates) (*float64, *float64) {
	if c == nil {
		return nil, nil
	}
	lng, lat := c.Lng(), c.Lat()
	return &lng, &lat
}

func joinCoordinates(lng, lat *float64) (*kernel.Coordinates, error) {
	if lng == nil || lat == nil {
		return nil, nil
	}
	c, err := kernel.NewCoordinates(*lng, *lat)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
