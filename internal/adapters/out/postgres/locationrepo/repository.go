// Package locationrepo stores courier telemetry in location_records.
package locationrepo

import (
	"context"
	"errors"
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/location"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{db: db, tracker: tracker}
}

func (r *GormLocationRepository) Add(ctx context.Context, record *location.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

func (r *GormLocationRepository) History(
	ctx context.Context,
	courierID kernel.UUID,
	filter ports.HistoryFilter,
) ([]*location.Record, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("courier_id = ?", courierID.Bytes())
	if filter.Start != nil {
		query = query.Where("timestamp >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("timestamp <= ?", *filter.End)
	}
	if filter.OfferID != nil {
		query = query.Where("offer_id = ?", filter.OfferID.Bytes())
	}

	var dtos []LocationRecordDTO
	err := query.
		Order("timestamp DESC").
		Limit(location.ClampHistoryLimit(filter.Limit)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Path includes inactive records so that a finished delivery can still be measured.
func (r *GormLocationRepository) Path(
	ctx context.Context,
	courierID kernel.UUID,
	offerID *kernel.UUID,
	start *time.Time,
) ([]*location.Record, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("courier_id = ?", courierID.Bytes())
	if offerID != nil {
		query = query.Where("offer_id = ?", offerID.Bytes())
	}
	if start != nil {
		query = query.Where("timestamp >= ?", *start)
	}

	var dtos []LocationRecordDTO
	if err := query.Order("timestamp ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormLocationRepository) Latest(ctx context.Context, courierID kernel.UUID) (*location.Record, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto LocationRecordDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("timestamp DESC").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location record for courier", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) Deactivate(ctx context.Context, courierID kernel.UUID, offerID *kernel.UUID) (int64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).
		Model(&LocationRecordDTO{}).
		Where("courier_id = ? AND is_active", courierID.Bytes())
	if offerID != nil {
		query = query.Where("offer_id = ?", offerID.Bytes())
	}

	result := query.Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *GormLocationRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&LocationRecordDTO{})
	return result.RowsAffected, result.Error
}

// FindNearby is the database fallback for the proximity search. A courier is
// placed by its latest fix newer than since and only counts while that fix is
// still active, which is the rule the Redis index follows too. Distance is
// filtered in memory.
func (r *GormLocationRepository) FindNearby(
	ctx context.Context,
	center kernel.Coordinates,
	radiusMeters float64,
	since time.Time,
) ([]location.NearbyCourier, error) {
	var dtos []LocationRecordDTO
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM (
				SELECT DISTINCT ON (courier_id) *
				FROM location_records
				WHERE timestamp >= ?
				ORDER BY courier_id, timestamp DESC
			) latest
			WHERE is_active`, since).
		Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	latest, err := toDomainList(dtos)
	if err != nil {
		return nil, err
	}

	return location.NearestFirst(center, radiusMeters, latest)
}
