// Package kernel holds the value objects every other domain package builds on:
//   - UUID: entity identifiers
//   - Coordinates: validated [longitude, latitude] pairs and Haversine distance
//   - Money: integer minor-unit amounts used by payments and the earnings ledger
package kernel
