// Package courier provides the courier profile aggregate.
//
// The package includes:
//   - Courier: identity, display name and vehicle class of a rider
//
// Key business rules:
//   - Couriers must have a valid unique identifier and a non-empty name
//   - The vehicle class must be one of bike, scooter, car or van
//
// Deliveries, earnings and telemetry refer to a courier by ID only.
package courier
