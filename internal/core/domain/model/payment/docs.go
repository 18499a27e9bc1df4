// Package payment models the payment attached to an offer: the amount charged to
// the requester, the platform fee and the courier's share, plus its processing
// status. Earnings are derived from a payment once the offer completes.
package payment
