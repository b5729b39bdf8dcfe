package services

import (
	"slices"

	"logistics/internal/core/domain/model/vehicle"
)

// FavouritesFirst returns a new slice with favourite vehicles ahead of the
// rest. Relative order inside each group is preserved.
func FavouritesFirst(vehicles []*vehicle.Vehicle) []*vehicle.Vehicle {
	result := slices.Clone(vehicles)
	slices.SortStableFunc(result, func(a, b *vehicle.Vehicle) int {
		switch {
		case a.IsFavourite() == b.IsFavourite():
			return 0
		case a.IsFavourite():
			return -1
		default:
			return 1
		}
	})
	return result
}
