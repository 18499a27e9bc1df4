// Package earningsrepo persists ledger entries and their adjustments.
//
// The unique index on earnings.offer_id is what makes ledger creation
// idempotent under concurrency: the losing insert fails with a duplicate key,
// reported as errs.ErrObjectAlreadyExists.
package earningsrepo

import (
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type EarningsDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID        uuid.UUID `gorm:"type:uuid;not null;index:idx_earnings_courier_earned,priority:1"`
	OfferID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PaymentID        uuid.UUID `gorm:"type:uuid;not null"`
	PaymentMethod    string    `gorm:"type:varchar(32);not null"`
	GrossAmountCents int64     `gorm:"not null"`
	PlatformFeeCents int64     `gorm:"not null"`
	NetAmountCents   int64     `gorm:"not null"`
	BonusAmountCents int64     `gorm:"not null;default:0"`
	BonusReason      string    `gorm:"type:text"`
	PaymentStatus    string    `gorm:"type:varchar(16);not null;index"`
	PaidAt           *time.Time
	Distance         *float64
	Duration         *float64
	EarnedAt         time.Time `gorm:"not null;index:idx_earnings_courier_earned,priority:2;index"`
	UpdatedAt        time.Time `gorm:"not null"`

	Adjustments []AdjustmentDTO `gorm:"foreignKey:EarningsID;constraint:OnDelete:CASCADE"`
}

func (EarningsDTO) TableName() string {
	return "earnings"
}

// AdjustmentDTO is one append-only row of earnings_adjustments.
type AdjustmentDTO struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	EarningsID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_earnings_adjustments_seq,priority:1"`
	Seq         int        `gorm:"not null;index:idx_earnings_adjustments_seq,priority:2"`
	AmountCents int64      `gorm:"not null"`
	Reason      string     `gorm:"type:text;not null"`
	AppliedBy   *uuid.UUID `gorm:"type:uuid"`
	AppliedAt   time.Time  `gorm:"not null"`
}

func (AdjustmentDTO) TableName() string {
	return "earnings_adjustments"
}

func fromDomain(e *earnings.Earnings) EarningsDTO {
	dto := EarningsDTO{
		ID:               e.ID().Bytes(),
		CourierID:        e.CourierID().Bytes(),
		OfferID:          e.OfferID().Bytes(),
		PaymentID:        e.PaymentID().Bytes(),
		PaymentMethod:    e.PaymentMethod().String(),
		GrossAmountCents: e.GrossAmount().Cents(),
		PlatformFeeCents: e.PlatformFee().Cents(),
		NetAmountCents:   e.NetAmount().Cents(),
		BonusAmountCents: e.BonusAmount().Cents(),
		BonusReason:      e.BonusReason(),
		PaymentStatus:    e.PaymentStatus().String(),
		PaidAt:           e.PaidAt(),
		Distance:         e.Distance(),
		Duration:         e.Duration(),
		EarnedAt:         e.EarnedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}

	for i, adj := range e.Adjustments() {
		dto.Adjustments = append(dto.Adjustments, AdjustmentDTO{
			EarningsID:  dto.ID,
			Seq:         i,
			AmountCents: adj.Amount().Cents(),
			Reason:      adj.Reason(),
			AppliedBy:   kernel.OptionalBytes(adj.AppliedBy()),
			AppliedAt:   adj.AppliedAt(),
		})
	}

	return dto
}

func toDomain(dto EarningsDTO) (*earnings.Earnings, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.CourierID, dto.OfferID, dto.PaymentID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	method, err := payment.ParseMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := earnings.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	adjustments := make([]earnings.Adjustment, 0, len(dto.Adjustments))
	for _, row := range dto.Adjustments {
		appliedBy, idErr := kernel.OptionalUUIDFromBytes(row.AppliedBy)
		if idErr != nil {
			return nil, idErr
		}
		adj, adjErr := earnings.NewAdjustment(kernel.Money(row.AmountCents), row.Reason, appliedBy, row.AppliedAt)
		if adjErr != nil {
			return nil, adjErr
		}
		adjustments = append(adjustments, adj)
	}

	var paidAt *time.Time
	if dto.PaidAt != nil {
		at := dto.PaidAt.UTC()
		paidAt = &at
	}

	return earnings.RestoreEarnings(earnings.State{
		ID:            ids[0],
		CourierID:     ids[1],
		OfferID:       ids[2],
		PaymentID:     ids[3],
		PaymentMethod: method,
		GrossAmount:   kernel.Money(dto.GrossAmountCents),
		PlatformFee:   kernel.Money(dto.PlatformFeeCents),
		NetAmount:     kernel.Money(dto.NetAmountCents),
		BonusAmount:   kernel.Money(dto.BonusAmountCents),
		BonusReason:   dto.BonusReason,
		Adjustments:   adjustments,
		PaymentStatus: status,
		PaidAt:        paidAt,
		Distance:      dto.Distance,
		Duration:      dto.Duration,
		EarnedAt:      dto.EarnedAt.UTC(),
		UpdatedAt:     dto.UpdatedAt.UTC(),
	})
}
