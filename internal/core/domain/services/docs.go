// Package services holds domain logic that does not belong to a single aggregate.
//
// DistanceTimeEstimator combines kernel.Distance with the vehicle speed table to
// produce the estimated distance and duration stored on offers and used as the
// ledger's fallback when no actual telemetry exists.
package services
