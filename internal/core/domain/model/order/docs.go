// Package order provides the Order aggregate root and its Destination value
// object.
//
// The package includes:
//   - Order: identity, weight, destination, date, observations, the plate of
//     the assigned vehicle and the completion flag
//   - Destination: address, city, country, postal code and coordinates
//   - Status: the lifecycle stage derived from assignment and completion
//
// Key business rules:
//   - Orders must have an identifier, a positive weight, a destination and a date
//   - An order keeps only the plate of its vehicle; the live vehicle is
//     resolved by whoever reads it
//   - Only assigned orders can be completed
//
// Capacity accounting is not handled here. See services.AssignmentService.
package order
