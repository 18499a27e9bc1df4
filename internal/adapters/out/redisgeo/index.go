// Package redisgeo keeps the latest position of every active courier in a
// Redis GEO set so proximity searches do not scan the location history.
//
// Two keys are used: the GEO set itself and a sorted set holding each
// courier's last fix time in unix milliseconds. A courier is nearby only when
// its last fix is inside the radius and newer than the freshness bound.
package redisgeo

import (
	"context"
	"fmt"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "couriers:geo"

type Index struct {
	client  redis.Cmdable
	geoKey  string
	seenKey string
}

func NewIndex(client redis.Cmdable, key string) *Index {
	if key == "" {
		key = DefaultKey
	}
	return &Index{client: client, geoKey: key, seenKey: key + ":seen"}
}

// NewClient opens a client for addr. The caller owns Close.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Upsert moves the courier to the record's position. Inactive records remove
// the courier, and fixes older than the stored one are ignored.
func (i *Index) Upsert(ctx context.Context, record *location.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	member := record.CourierID().String()
	if !record.IsActive() {
		return i.Remove(ctx, record.CourierID())
	}

	changed, err := i.client.ZAddArgs(ctx, i.seenKey, redis.ZAddArgs{
		GT:      true,
		Ch:      true,
		Members: []redis.Z{{Score: float64(record.Timestamp().UnixMilli()), Member: member}},
	}).Result()
	if err != nil {
		return fmt.Errorf("record last seen for %s: %w", member, err)
	}
	if changed == 0 {
		return nil
	}

	c := record.Coordinates()
	if err = i.client.GeoAdd(ctx, i.geoKey, &redis.GeoLocation{
		Name:      member,
		Longitude: c.Lng(),
		Latitude:  c.Lat(),
	}).Err(); err != nil {
		return fmt.Errorf("geoadd %s: %w", member, err)
	}
	return nil
}

func (i *Index) Remove(ctx context.Context, courierID kernel.UUID) error {
	member := courierID.String()
	_, err := i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, i.geoKey, member)
		pipe.ZRem(ctx, i.seenKey, member)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove %s from index: %w", member, err)
	}
	return nil
}

// FindNearby returns couriers within radiusMeters of center whose last fix is
// at or after since, nearest first.
func (i *Index) FindNearby(
	ctx context.Context,
	center kernel.Coordinates,
	radiusMeters float64,
	since time.Time,
) ([]location.NearbyCourier, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	hits, err := i.client.GeoSearchLocation(ctx, i.geoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  center.Lng(),
			Latitude:   center.Lat(),
			Radius:     radiusMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
		},
		WithCoord: true,
		WithDist:  true,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("geosearch: %w", err)
	}
	if len(hits) == 0 {
		return []location.NearbyCourier{}, nil
	}

	members := make([]string, len(hits))
	for n, h := range hits {
		members[n] = h.Name
	}
	seen, err := i.client.ZMScore(ctx, i.seenKey, members...).Result()
	if err != nil {
		return nil, fmt.Errorf("read last seen: %w", err)
	}

	cutoff := since.UnixMilli()
	out := make([]location.NearbyCourier, 0, len(hits))
	for n, h := range hits {
		// ZMSCORE reports missing members as 0.
		lastSeen := int64(seen[n])
		if lastSeen == 0 || lastSeen < cutoff {
			continue
		}
		courierID, err := kernel.UUIDFromString(h.Name)
		if err != nil {
			return nil, fmt.Errorf("index member %q: %w", h.Name, err)
		}
		coords, err := kernel.NewCoordinates(h.Longitude, h.Latitude)
		if err != nil {
			return nil, err
		}
		out = append(out, location.NearbyCourier{
			CourierID:      courierID,
			Coordinates:    coords,
			DistanceMeters: h.Dist,
			LastSeen:       time.UnixMilli(lastSeen).UTC(),
		})
	}
	return out, nil
}

// PruneBefore drops couriers whose last fix is older than cutoff and reports
// how many were removed.
func (i *Index) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	stale, err := i.client.ZRangeByScore(ctx, i.seenKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("(%d", cutoff.UnixMilli()),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("read stale couriers: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	members := make([]any, len(stale))
	for n, s := range stale {
		members[n] = s
	}
	_, err = i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, i.geoKey, members...)
		pipe.ZRem(ctx, i.seenKey, members...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("prune index: %w", err)
	}
	return int64(len(stale)), nil
}
