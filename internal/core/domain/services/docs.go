// Package services provides domain services that work across the order and
// vehicle aggregates.
//
// The package includes:
//   - AssignmentService: assign, unassign and complete an order/vehicle pair
//     so that the vehicle reference and the weight budget move together
//   - DistanceRanker: sorts orders by haversine distance from a fixed origin
//   - OrderQuery: composable filters (unassigned-only, city/country search)
//     and a stable, locale-aware sort over order collections
//   - FavouritesFirst: fleet ordering for vehicle lists
//
// All services are pure: they mutate only the aggregates passed in and never
// touch persistence.
package services
