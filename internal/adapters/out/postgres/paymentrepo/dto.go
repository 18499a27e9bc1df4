// Package paymentrepo persists payments. Each offer has at most one payment,
// enforced by a unique index on offer_id.
package paymentrepo

import (
	"time"

	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type PaymentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfferID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PayerID          uuid.UUID `gorm:"type:uuid;not null"`
	PayeeID          uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalAmountCents int64     `gorm:"not null"`
	PlatformFeeCents int64     `gorm:"not null"`
	Currency         string    `gorm:"type:char(3);not null"`
	Method           string    `gorm:"type:varchar(32);not null"`
	Status           string    `gorm:"type:varchar(16);not null"`
	ProcessedAt      *time.Time
	CreatedAt        time.Time `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:               p.ID().Bytes(),
		OfferID:          p.OfferID().Bytes(),
		PayerID:          p.PayerID().Bytes(),
		PayeeID:          p.PayeeID().Bytes(),
		TotalAmountCents: p.TotalAmount().Cents(),
		PlatformFeeCents: p.PlatformFee().Cents(),
		Currency:         p.Currency(),
		Method:           p.Method().String(),
		Status:           p.Status().String(),
		ProcessedAt:      p.ProcessedAt(),
		CreatedAt:        p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OfferID, dto.PayerID, dto.PayeeID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var processedAt *time.Time
	if dto.ProcessedAt != nil {
		at := dto.ProcessedAt.UTC()
		processedAt = &at
	}

	return payment.RestorePayment(
		ids[0], ids[1], ids[2], ids[3],
		kernel.Money(dto.TotalAmountCents),
		kernel.Money(dto.PlatformFeeCents),
		dto.Currency,
		method,
		status,
		processedAt,
		dto.CreatedAt.UTC(),
	)
}
