package http

import (
	"courierledger/internal/core/application/usecases/queries"
	"courierledger/internal/core/domain/model/courier"
	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/domain/model/offer"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/core/ports"
	"courierledger/internal/generated/servers"
	"courierledger/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Amounts cross the wire in major units with two decimals; the core keeps cents.

func courierFromDomain(c *courier.Courier) servers.Courier {
	createdAt := c.CreatedAt()
	return servers.Courier{
		Id:           c.ID().Bytes(),
		Name:         c.Name(),
		VehicleClass: servers.VehicleClass(c.VehicleClass().String()),
		CreatedAt:    &createdAt,
	}
}

func courierFromQuery(r queries.GetAllCouriersQueryResponse) servers.Courier {
	return servers.Courier{
		Id:           r.ID.Bytes(),
		Name:         r.Name,
		VehicleClass: servers.VehicleClass(r.VehicleClass.String()),
	}
}

func offerDetailsToDomain(n servers.NewOffer) (kernel.UUID, offer.Details, error) {
	requesterID, err := idToDomain("requesterId", n.RequesterId)
	if err != nil {
		return kernel.UUID{}, offer.Details{}, err
	}
	pickupCoords, err := optionalCoordinates(n.Pickup.Coordinates)
	if err != nil {
		return kernel.UUID{}, offer.Details{}, err
	}
	deliveryCoords, err := optionalCoordinates(n.Delivery.Coordinates)
	if err != nil {
		return kernel.UUID{}, offer.Details{}, err
	}
	method, err := payment.ParseMethod(string(n.Payment.Method))
	if err != nil {
		return kernel.UUID{}, offer.Details{}, err
	}
	class, err := vehicleClass(n.VehicleClass)
	if err != nil {
		return kernel.UUID{}, offer.Details{}, err
	}

	return requesterID, offer.Details{
		Title:       n.Title,
		Description: value(n.Description),
		Package: offer.Package{
			WeightKg: n.Package.WeightKg,
			Dimensions: offer.Dimensions{
				LengthCm: value(n.Package.LengthCm),
				WidthCm:  value(n.Package.WidthCm),
				HeightCm: value(n.Package.HeightCm),
			},
			Fragile:             value(n.Package.Fragile),
			SpecialInstructions: value(n.Package.SpecialInstructions),
		},
		Pickup: offer.Pickup{
			Address:        n.Pickup.Address,
			Coordinates:    pickupCoords,
			ContactName:    value(n.Pickup.ContactName),
			ContactPhone:   value(n.Pickup.ContactPhone),
			AvailableFrom:  n.Pickup.AvailableFrom,
			AvailableUntil: n.Pickup.AvailableUntil,
			Instructions:   value(n.Pickup.Instructions),
		},
		Delivery: offer.Delivery{
			Address:      n.Delivery.Address,
			Coordinates:  deliveryCoords,
			ContactName:  value(n.Delivery.ContactName),
			ContactPhone: value(n.Delivery.ContactPhone),
			Deadline:     n.Delivery.Deadline,
			Instructions: value(n.Delivery.Instructions),
		},
		Payment: offer.PaymentTerms{
			Amount:   kernel.MoneyFromMajor(n.Payment.Amount),
			Currency: value(n.Payment.Currency),
			Method:   method,
		},
		VehicleClass: class,
	}, nil
}

func offerFromDomain(o *offer.Offer) servers.Offer {
	d := o.Details()
	currency := d.Payment.Currency
	out := servers.Offer{
		Id:          o.ID().Bytes(),
		RequesterId: o.RequesterID().Bytes(),
		Title:       d.Title,
		Description: optional(d.Description),
		Package: servers.Package{
			WeightKg:            d.Package.WeightKg,
			LengthCm:            optional(d.Package.Dimensions.LengthCm),
			WidthCm:             optional(d.Package.Dimensions.WidthCm),
			HeightCm:            optional(d.Package.Dimensions.HeightCm),
			Fragile:             &d.Package.Fragile,
			SpecialInstructions: optional(d.Package.SpecialInstructions),
		},
		Pickup: servers.Pickup{
			Address:        d.Pickup.Address,
			Coordinates:    pair(d.Pickup.Coordinates),
			ContactName:    optional(d.Pickup.ContactName),
			ContactPhone:   optional(d.Pickup.ContactPhone),
			AvailableFrom:  d.Pickup.AvailableFrom,
			AvailableUntil: d.Pickup.AvailableUntil,
			Instructions:   optional(d.Pickup.Instructions),
		},
		Delivery: servers.Delivery{
			Address:      d.Delivery.Address,
			Coordinates:  pair(d.Delivery.Coordinates),
			ContactName:  optional(d.Delivery.ContactName),
			ContactPhone: optional(d.Delivery.ContactPhone),
			Deadline:     d.Delivery.Deadline,
			Instructions: optional(d.Delivery.Instructions),
		},
		Payment: servers.PaymentTerms{
			Amount:   d.Payment.Amount.Major(),
			Currency: &currency,
			Method:   servers.PaymentMethod(d.Payment.Method.String()),
		},
		VehicleClass:      servers.VehicleClass(d.VehicleClass.String()),
		Status:            servers.OfferStatus(o.Status().String()),
		AcceptedBy:        kernel.OptionalBytes(o.AcceptedBy()),
		EstimatedDistance: o.EstimatedDistance(),
		EstimatedDuration: o.EstimatedDuration(),
		ActualDistance:    o.ActualDistance(),
		ActualDuration:    o.ActualDuration(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		CompletedAt:       o.CompletedAt(),
		CancelledAt:       o.CancelledAt(),
		History:           []servers.StatusChange{},
	}
	for _, h := range o.History() {
		out.History = append(out.History, servers.StatusChange{
			From:    servers.OfferStatus(h.From.String()),
			To:      servers.OfferStatus(h.To.String()),
			ActorId: h.ActorID.Bytes(),
			Role:    servers.ActorRole(h.Role.String()),
			At:      h.At,
		})
	}
	return out
}

func paymentFromDomain(p *payment.Payment) servers.Payment {
	return servers.Payment{
		Id:            p.ID().Bytes(),
		OfferId:       p.OfferID().Bytes(),
		PayerId:       p.PayerID().Bytes(),
		PayeeId:       p.PayeeID().Bytes(),
		TotalAmount:   p.TotalAmount().Major(),
		PlatformFee:   p.PlatformFee().Major(),
		PayeeEarnings: p.PayeeEarnings().Major(),
		Currency:      p.Currency(),
		Method:        servers.PaymentMethod(p.Method().String()),
		Status:        servers.PaymentStatus(p.Status().String()),
		ProcessedAt:   p.ProcessedAt(),
		CreatedAt:     p.CreatedAt(),
	}
}

func earningsFromDomain(e *earnings.Earnings) servers.Earnings {
	out := servers.Earnings{
		Id:            e.ID().Bytes(),
		CourierId:     e.CourierID().Bytes(),
		OfferId:       e.OfferID().Bytes(),
		PaymentId:     e.PaymentID().Bytes(),
		PaymentMethod: servers.PaymentMethod(e.PaymentMethod().String()),
		GrossAmount:   e.GrossAmount().Major(),
		PlatformFee:   e.PlatformFee().Major(),
		NetAmount:     e.NetAmount().Major(),
		BonusAmount:   e.BonusAmount().Major(),
		BonusReason:   optional(e.BonusReason()),
		Adjustments:   []servers.Adjustment{},
		FinalAmount:   e.FinalAmount().Major(),
		PaymentStatus: servers.EarningsPaymentStatus(e.PaymentStatus().String()),
		PaidAt:        e.PaidAt(),
		Distance:      e.Distance(),
		Duration:      e.Duration(),
		EarnedAt:      e.EarnedAt(),
	}
	for _, a := range e.Adjustments() {
		out.Adjustments = append(out.Adjustments, servers.Adjustment{
			Amount:    a.Amount().Major(),
			Reason:    a.Reason(),
			AppliedBy: kernel.OptionalBytes(a.AppliedBy()),
			AppliedAt: a.AppliedAt(),
		})
	}
	return out
}

func totalsFromDomain(t earnings.Totals) servers.Totals {
	return servers.Totals{
		TotalEarnings:   t.Gross.Major(),
		PlatformFees:    t.Fees.Major(),
		NetEarnings:     t.Net.Major(),
		FinalEarnings:   t.Final.Major(),
		TotalDeliveries: t.Deliveries,
		TotalDistance:   t.Distance,
		TotalDuration:   t.Duration,
	}
}

func summaryFromDomain(s earnings.Summary) servers.Summary {
	out := servers.Summary{
		Totals:          totalsFromDomain(s.Totals),
		PaidEarnings:    s.Paid.Major(),
		PendingEarnings: s.Pending.Major(),
		ByPaymentMethod: []servers.MethodTotals{},
		ByDay:           []servers.DayTotals{},
	}
	for _, m := range s.ByMethod {
		out.ByPaymentMethod = append(out.ByPaymentMethod, servers.MethodTotals{
			Method: servers.PaymentMethod(m.Method.String()),
			Totals: totalsFromDomain(m.Totals),
		})
	}
	for _, d := range s.ByDay {
		out.ByDay = append(out.ByDay, servers.DayTotals{Day: d.Day, Totals: totalsFromDomain(d.Totals)})
	}
	return out
}

func sampleToDomain(n servers.NewLocation) (location.Sample, error) {
	coords, err := kernel.CoordinatesFromPair(n.Coordinates)
	if err != nil {
		return location.Sample{}, err
	}
	offerID, err := optionalIDToDomain("offerId", n.OfferId)
	if err != nil {
		return location.Sample{}, err
	}
	var tracking location.TrackingType
	if n.TrackingType != nil {
		if tracking, err = location.ParseTrackingType(string(*n.TrackingType)); err != nil {
			return location.Sample{}, err
		}
	}
	var device location.Device
	if n.DeviceInfo != nil {
		device = location.Device{
			Platform:   value(n.DeviceInfo.Platform),
			AppVersion: value(n.DeviceInfo.AppVersion),
			DeviceID:   value(n.DeviceInfo.DeviceId),
		}
	}
	return location.Sample{
		Coordinates:  coords,
		OfferID:      offerID,
		Accuracy:     n.Accuracy,
		Altitude:     n.Altitude,
		Heading:      n.Heading,
		Speed:        n.Speed,
		BatteryLevel: n.BatteryLevel,
		Device:       device,
		TrackingType: tracking,
		Timestamp:    n.Timestamp,
	}, nil
}

func locationFromDomain(r *location.Record) servers.Location {
	d := r.Device()
	return servers.Location{
		Id:           r.ID().Bytes(),
		CourierId:    r.CourierID().Bytes(),
		OfferId:      kernel.OptionalBytes(r.OfferID()),
		Coordinates:  r.Coordinates().Pair(),
		Accuracy:     r.Accuracy(),
		Altitude:     r.Altitude(),
		Heading:      r.Heading(),
		Speed:        r.Speed(),
		BatteryLevel: r.BatteryLevel(),
		DeviceInfo: servers.Device{
			Platform:   optional(d.Platform),
			AppVersion: optional(d.AppVersion),
			DeviceId:   optional(d.DeviceID),
		},
		TrackingType: servers.TrackingType(r.TrackingType().String()),
		IsActive:     r.IsActive(),
		Timestamp:    r.Timestamp(),
	}
}

func componentsFromPort(c ports.AddressComponents) servers.AddressComponents {
	return servers.AddressComponents{
		StreetNumber: optional(c.StreetNumber),
		Street:       optional(c.Street),
		City:         optional(c.City),
		State:        optional(c.State),
		PostalCode:   optional(c.PostalCode),
		Country:      optional(c.Country),
		CountryCode:  optional(c.CountryCode),
	}
}

func geocodeFromPort(r ports.GeocodeResult) servers.GeocodeResult {
	return servers.GeocodeResult{
		Coordinates:      r.Coordinates.Pair(),
		FormattedAddress: r.FormattedAddress,
		Confidence:       servers.GeocodeResultConfidence(r.Confidence),
		Components:       componentsFromPort(r.Components),
		Provider:         r.Provider,
	}
}

func idToDomain(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}

func optionalIDToDomain(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := idToDomain(name, *id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func optionalCoordinates(c *servers.Coordinates) (*kernel.Coordinates, error) {
	if c == nil {
		return nil, nil
	}
	return kernel.OptionalCoordinatesFromPair(*c)
}

func pair(c *kernel.Coordinates) *servers.Coordinates {
	if c == nil {
		return nil
	}
	p := servers.Coordinates(c.Pair())
	return &p
}

// optional maps a zero value to an absent field.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
