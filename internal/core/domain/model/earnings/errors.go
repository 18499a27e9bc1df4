package earnings

import "errors"

var (
	ErrOfferNotCompleted        = errors.New("offer is not completed")
	ErrNoAssignedCourier        = errors.New("offer has no assigned courier")
	ErrPaymentRequired          = errors.New("payment is required")
	ErrPaymentOfferMismatch     = errors.New("payment does not belong to the offer")
	ErrInvalidBonusAmount       = errors.New("bonus amount must be greater than zero")
	ErrMissingAdjustmentAmount  = errors.New("adjustment amount is required")
	ErrMissingAdjustmentReason  = errors.New("adjustment reason is required")
	ErrInvalidPaymentStatus     = errors.New("invalid earnings payment status")
	ErrEarningsIsNotConstructed = errors.New("Earnings must be created via NewFromOffer or RestoreEarnings")
)
