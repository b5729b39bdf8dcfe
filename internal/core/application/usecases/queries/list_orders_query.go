package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	// ErrSortColumnIsRequired is returned when a direction is given without a column.
	ErrSortColumnIsRequired = errs.NewValueIsRequiredError("sort column")
)

// ListOrdersQuery lists orders with optional, composable criteria.
//
// Example:
//
//	query, err := NewListOrdersQuery(true, "portugal", "weight", "DESC")
//	if err != nil {
//	    return err // unknown column or direction
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter services.OrderFilter
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. An empty sortColumn disables sorting;
// an empty direction defaults to ASC.
func NewListOrdersQuery(unassignedOnly bool, searchText, sortColumn, sortDirection string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		filter: services.OrderFilter{
			UnassignedOnly: unassignedOnly,
			SearchText:     strings.TrimSpace(searchText),
		},
		guard: guard.NewConstructorGuard(),
	}

	sortColumn = strings.TrimSpace(sortColumn)
	sortDirection = strings.TrimSpace(sortDirection)

	switch {
	case sortColumn == "" && sortDirection == "":
		return q, nil
	case sortColumn == "":
		return ListOrdersQuery{}, ErrSortColumnIsRequired
	case sortDirection == "":
		sortDirection = string(services.Ascending)
	}

	column, colErr := services.ParseSortColumn(sortColumn)
	direction, dirErr := services.ParseSortDirection(sortDirection)
	if err := errors.Join(colErr, dirErr); err != nil {
		return ListOrdersQuery{}, err
	}

	q.filter.Sort = &services.SortSpec{Column: column, Direction: direction}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the criteria.
func (q ListOrdersQuery) Filter() services.OrderFilter {
	return q.filter
}
