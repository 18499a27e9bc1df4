// Package earnings is the courier ledger: one Earnings record per completed
// offer, derived from the offer and its payment, then amended by bonuses,
// signed adjustments and payout status changes.
//
// All money is kernel.Money (integer cents). Summaries and period windows are
// computed here so the same rules apply whatever store the records come from.
package earnings
