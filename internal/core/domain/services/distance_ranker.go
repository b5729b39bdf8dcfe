package services

import (
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// DistanceRanker orders deliveries by great-circle distance from a fixed
// origin, typically the depot.
type DistanceRanker struct {
	origin kernel.Coordinates
}

// NewDistanceRanker creates a ranker around origin.
func NewDistanceRanker(origin kernel.Coordinates) (DistanceRanker, error) {
	if err := origin.Validate(); err != nil {
		return DistanceRanker{}, err
	}
	return DistanceRanker{origin: origin}, nil
}

// Origin returns the point distances are measured from.
func (r DistanceRanker) Origin() kernel.Coordinates {
	return r.origin
}

// Rank returns a new slice with orders sorted ascending by haversine
// distance from the origin. Orders at equal distance keep their input order.
// The input slice is not modified.
func (r DistanceRanker) Rank(orders []*order.Order) ([]*order.Order, error) {
	type ranked struct {
		order    *order.Order
		distance float64
	}

	items := make([]ranked, 0, len(orders))
	for _, o := range orders {
		d, err := r.origin.DistanceTo(o.Destination().Coordinates())
		if err != nil {
			return nil, err
		}
		items = append(items, ranked{order: o, distance: d})
	}

	slices.SortStableFunc(items, func(a, b ranked) int {
		switch {
		case a.distance < b.distance:
			return -1
		case a.distance > b.distance:
			return 1
		default:
			return 0
		}
	})

	result := make([]*order.Order, len(items))
	for i, item := range items {
		result[i] = item.order
	}
	return result, nil
}
