package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// SortColumn names an order attribute the list can be sorted by.
type SortColumn string

const (
	SortByID           SortColumn = "id"
	SortByWeight       SortColumn = "weight"
	SortByDestination  SortColumn = "destination"
	SortByDate         SortColumn = "date"
	SortByObservations SortColumn = "observations"
	SortByVehicle      SortColumn = "vehicle"
	SortByCompleted    SortColumn = "completed"
)

// SortDirection is ASC or DESC.
type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// SortColumns lists every sortable column.
func SortColumns() []SortColumn {
	return []SortColumn{
		SortByID, SortByWeight, SortByDestination, SortByDate,
		SortByObservations, SortByVehicle, SortByCompleted,
	}
}

// ParseSortColumn maps a column name to a SortColumn.
func ParseSortColumn(s string) (SortColumn, error) {
	c := SortColumn(strings.TrimSpace(s))
	if !slices.Contains(SortColumns(), c) {
		return "", errs.NewValueIsInvalidErrorWithCause("sort column", fmt.Errorf("%q is not sortable", s))
	}
	return c, nil
}

// ParseSortDirection accepts "ASC" or "DESC" in any case.
func ParseSortDirection(s string) (SortDirection, error) {
	d := SortDirection(strings.ToUpper(strings.TrimSpace(s)))
	if d != Ascending && d != Descending {
		return "", errs.NewValueIsInvalidErrorWithCause("sort direction", fmt.Errorf("%q is not ASC or DESC", s))
	}
	return d, nil
}

// SortSpec is a column plus direction.
type SortSpec struct {
	Column    SortColumn
	Direction SortDirection
}

// Validate checks both fields.
func (s SortSpec) Validate() error {
	if _, err := ParseSortColumn(string(s.Column)); err != nil {
		return err
	}
	if _, err := ParseSortDirection(string(s.Direction)); err != nil {
		return err
	}
	return nil
}

// OrderFilter holds the composable list criteria. The zero value matches
// everything and keeps insertion order.
type OrderFilter struct {
	// UnassignedOnly keeps orders without a vehicle.
	UnassignedOnly bool
	// SearchText is matched case-insensitively against city or country.
	// Empty disables the search.
	SearchText string
	// Sort is optional.
	Sort *SortSpec
}

// OrderQuery filters and sorts order collections.
//
// Comparator rules:
//   - absent values (observations, vehicle) sort after present ones in both directions
//   - destination compares "city, country"
//   - strings use English collation, numbers compare numerically, dates by instant
//   - vehicle references and the completed flag compare equal
//
// The sort is stable, so equal keys keep insertion order.
type OrderQuery struct {
	locale language.Tag
}

// NewOrderQuery creates an OrderQuery that collates strings in English.
func NewOrderQuery() OrderQuery {
	return OrderQuery{locale: language.English}
}

// Apply returns a new slice with the orders that pass filter, sorted when
// filter.Sort is set. A nil filter returns a copy of orders.
func (q OrderQuery) Apply(orders []*order.Order, filter *OrderFilter) ([]*order.Order, error) {
	result := slices.Clone(orders)
	if result == nil {
		result = []*order.Order{}
	}
	if filter == nil {
		return result, nil
	}

	if filter.UnassignedOnly {
		result = slices.DeleteFunc(result, func(o *order.Order) bool { return o.IsAssigned() })
	}

	if filter.SearchText != "" {
		result = slices.DeleteFunc(result, func(o *order.Order) bool {
			return !o.Destination().Matches(filter.SearchText)
		})
	}

	if filter.Sort != nil {
		if err := filter.Sort.Validate(); err != nil {
			return nil, err
		}
		q.sort(result, *filter.Sort)
	}

	return result, nil
}

func (q OrderQuery) sort(orders []*order.Order, spec SortSpec) {
	// Collator keeps internal buffers and is not safe for concurrent use.
	collator := collate.New(q.locale)
	column := SortColumn(strings.TrimSpace(string(spec.Column)))
	descending := strings.EqualFold(strings.TrimSpace(string(spec.Direction)), string(Descending))

	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		va, vb := sortKey(a, column), sortKey(b, column)

		switch {
		case !va.present && !vb.present:
			return 0
		case !va.present:
			return 1
		case !vb.present:
			return -1
		}

		c := va.compare(vb, collator)
		if descending {
			return -c
		}
		return c
	})
}

type keyKind int

const (
	kindOpaque keyKind = iota
	kindString
	kindNumber
	kindTime
)

type key struct {
	present bool
	kind    keyKind
	text    string
	number  float64
	instant time.Time
}

func (k key) compare(other key, collator *collate.Collator) int {
	if k.kind != other.kind {
		return 0
	}

	switch k.kind {
	case kindString:
		return collator.CompareString(k.text, other.text)
	case kindNumber:
		return cmp.Compare(k.number, other.number)
	case kindTime:
		return k.instant.Compare(other.instant)
	default:
		return 0
	}
}

func sortKey(o *order.Order, column SortColumn) key {
	switch column {
	case SortByID:
		return key{present: true, kind: kindString, text: o.ID().String()}
	case SortByWeight:
		return key{present: true, kind: kindNumber, number: o.Weight()}
	case SortByDestination:
		return key{present: true, kind: kindString, text: o.Destination().Label()}
	case SortByDate:
		return key{present: true, kind: kindTime, instant: o.Date()}
	case SortByObservations:
		if obs := o.Observations(); obs != nil {
			return key{present: true, kind: kindString, text: *obs}
		}
		return key{}
	case SortByVehicle:
		return key{present: o.IsAssigned(), kind: kindOpaque}
	case SortByCompleted:
		return key{present: true, kind: kindOpaque}
	default:
		return key{present: true, kind: kindOpaque}
	}
}
