package order

// Status is the lifecycle stage of an order, derived from its vehicle
// reference and completion flag. It is never stored.
//
//	Pending ──> Assigned ──> Completed
//	   ^           │
//	   └───────────┘
//	    (unassign)
//
// A completed order stays Completed even if it is later unassigned.
type Status int

const (
	// Pending orders have no vehicle and are not completed.
	Pending Status = iota + 1
	// Assigned orders reference a vehicle and are not completed.
	Assigned
	// Completed orders have been delivered.
	Completed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Assigned:
		return "Assigned"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}
