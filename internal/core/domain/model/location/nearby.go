package location

import (
	"sort"
	"time"

	"courierledger/internal/core/domain/model/kernel"
)

// NearbyCourier is one hit of a proximity search.
type NearbyCourier struct {
	CourierID      kernel.UUID
	Coordinates    kernel.Coordinates
	DistanceMeters float64
	LastSeen       time.Time
}

// NearestFirst keeps each courier's most recent active fix within radius of
// center, ordered by ascending distance.
func NearestFirst(center kernel.Coordinates, radiusMeters float64, latest []*Record) ([]NearbyCourier, error) {
	byCourier := map[kernel.UUID]*Record{}
	for _, r := range latest {
		if !r.isActive {
			continue
		}
		if prev, ok := byCourier[r.courierID]; !ok || r.timestamp.After(prev.timestamp) {
			byCourier[r.courierID] = r
		}
	}

	out := make([]NearbyCourier, 0, len(byCourier))
	for _, r := range byCourier {
		d, err := kernel.Distance(center, r.coordinates)
		if err != nil {
			return nil, err
		}
		if d > radiusMeters {
			continue
		}
		out = append(out, NearbyCourier{
			CourierID:      r.courierID,
			Coordinates:    r.coordinates,
			DistanceMeters: d,
			LastSeen:       r.timestamp,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DistanceMeters < out[j].DistanceMeters })
	return out, nil
}
