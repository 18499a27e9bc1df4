// Package location holds courier telemetry: append-only position records,
// trajectory distance over a recorded path, and proximity ranking.
package location
