// Package vehicle provides the Vehicle aggregate root: a delivery unit
// identified by plate that keeps the weight budget for the orders assigned
// to it.
//
// Key business rules:
//   - Vehicles have a non-empty plate and a positive maximum weight capacity
//   - A reservation succeeds only when available weight >= requested weight
//   - Releases are credited unconditionally
//   - The favourite flag toggles independently of capacity
//
// Vehicles form a fixed fleet: they are seeded once and never created or
// removed by the application layer.
package vehicle
