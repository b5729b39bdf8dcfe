// Package kernel provides the domain primitives shared by the order and
// vehicle aggregates.
//
// The package includes:
//   - Coordinates: a validated latitude/longitude value object with
//     haversine great-circle distance
//   - ID: a non-empty opaque identifier, generated from a random UUID
//
// Values are immutable and safe for concurrent use.
package kernel
