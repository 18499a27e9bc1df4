package earningsrepo

import (
	"context"
	"errors"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEarningsRepository implements ports.EarningsRepository using GORM.
type GormEarningsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEarningsRepository(db *gorm.DB, tracker aggregateTracker) *GormEarningsRepository {
	return &GormEarningsRepository{db: db, tracker: tracker}
}

// Add inserts a ledger entry. The insert runs in a savepoint so that a
// duplicate offer_id leaves the surrounding transaction usable.
func (r *GormEarningsRepository) Add(ctx context.Context, aggregate *earnings.Earnings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("earnings for offer", aggregate.OfferID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update stores the mutable part of a ledger entry and appends new adjustments.
func (r *GormEarningsRepository) Update(ctx context.Context, aggregate *earnings.Earnings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&EarningsDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"bonus_amount_cents": dto.BonusAmountCents,
		"bonus_reason":       dto.BonusReason,
		"payment_status":     dto.PaymentStatus,
		"paid_at":            dto.PaidAt,
		"updated_at":         dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("earnings", aggregate.ID().String())
	}

	var stored int64
	if err := db.Model(&AdjustmentDTO{}).Where("earnings_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if int(stored) < len(dto.Adjustments) {
		fresh := dto.Adjustments[stored:]
		if err := db.Create(&fresh).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEarningsRepository) Get(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "earnings", id.String(), "id = ?", id.Bytes())
}

// GetForUpdate is Get with the entry row locked until the surrounding
// transaction ends. Amendments read through it so none of them is lost.
func (r *GormEarningsRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*earnings.Earnings, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(db, "earnings", id.String(), "id = ?", id.Bytes())
}

func (r *GormEarningsRepository) GetByOfferID(ctx context.Context, offerID kernel.UUID) (*earnings.Earnings, error) {
	if err := offerID.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "earnings for offer", offerID.String(), "offer_id = ?", offerID.Bytes())
}

// FindByCourier returns a courier's entries oldest first, narrowed by the
// filter bounds and payment status.
func (r *GormEarningsRepository) FindByCourier(
	ctx context.Context,
	courierID kernel.UUID,
	filter earnings.Filter,
) ([]*earnings.Earnings, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("Adjustments", orderBySeq).
		Where("courier_id = ?", courierID.Bytes())
	if filter.Start != nil {
		query = query.Where("earned_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("earned_at <= ?", *filter.End)
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", filter.PaymentStatus.String())
	}

	var dtos []EarningsDTO
	if err := query.Order("earned_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*earnings.Earnings, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}

	return result, nil
}

func (r *GormEarningsRepository) first(db *gorm.DB, name, key string, query string, args ...any) (*earnings.Earnings, error) {
	var dto EarningsDTO
	if err := db.Preload("Adjustments", orderBySeq).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(name, key)
		}
		return nil, err
	}

	return toDomain(dto)
}

func orderBySeq(tx *gorm.DB) *gorm.DB {
	return tx.Order("seq")
}
