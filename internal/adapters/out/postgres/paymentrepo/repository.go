package paymentrepo

import (
	"context"
	"errors"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"
	"courierledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{db: db, tracker: tracker}
}

// Add saves a new payment. A second payment for the same offer is reported as
// errs.ErrObjectAlreadyExists.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("payment", aggregate.OfferID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update stores the status and settlement time of a payment.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "processed_at": dto.ProcessedAt})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "payment", id.String(), "id = ?", id.Bytes())
}

// GetForUpdate is Get with the payment row locked until the surrounding
// transaction ends.
func (r *GormPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(db, "payment", id.String(), "id = ?", id.Bytes())
}

func (r *GormPaymentRepository) GetByOfferID(ctx context.Context, offerID kernel.UUID) (*payment.Payment, error) {
	if err := offerID.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "payment for offer", offerID.String(), "offer_id = ?", offerID.Bytes())
}

func (r *GormPaymentRepository) first(db *gorm.DB, name, key string, query string, args ...any) (*payment.Payment, error) {
	var dto PaymentDTO
	if err := db.Where(query, args...).Order("created_at DESC").Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(name, key)
		}
		return nil, err
	}

	return toDomain(dto)
}
