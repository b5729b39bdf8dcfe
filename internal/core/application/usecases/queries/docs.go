// Package queries contains read-only use cases. Handlers read snapshots
// through ports.OrderReader and ports.VehicleReader, apply the domain query
// services, and return read models.
//
// Orders reference vehicles by plate only. Read models resolve the live
// vehicle at read time, so favourite flags and capacities shown next to an
// order are always current.
package queries

import "context"

// Latency pauses a handler before it reads. latency.Simulator satisfies it.
type Latency interface {
	Wait(ctx context.Context) error
}
