// Package search narrows and orders the catalog for the results page.
// Every call filters the complete inventory against the complete
// constraint set, so relaxing one constraint re-admits vehicles a
// previous pass excluded.
package search

import (
	"sort"

	"github.com/celsinho/rental-hub/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Any disables a constraint the same way the UI sends it.
const Any = "all"

type Order string

const (
	OrderPriceAsc  Order = "price-asc"
	OrderPriceDesc Order = "price-desc"
	OrderName      Order = "name"
)

// Constraints compose with logical AND. A nil pointer or an empty/"all"
// string imposes no restriction on that axis.
type Constraints struct {
	Category        string
	Transmission    string
	MinPrice        *float64
	MaxPrice        *float64
	Passengers      *int
	AirConditioning *bool
}

func constraintActive(value string) bool {
	return value != "" && value != Any
}

// Matches reports whether a single vehicle satisfies every active
// constraint.
func (c Constraints) Matches(vehicle catalog.Vehicle) bool {
	if constraintActive(c.Category) && vehicle.Category != c.Category {
		return false
	}

	if constraintActive(c.Transmission) && string(vehicle.Transmission) != c.Transmission {
		return false
	}

	if c.MinPrice != nil && vehicle.PricePerDay < *c.MinPrice {
		return false
	}

	if c.MaxPrice != nil && vehicle.PricePerDay > *c.MaxPrice {
		return false
	}

	if c.Passengers != nil && vehicle.Passengers != *c.Passengers {
		return false
	}

	if c.AirConditioning != nil && *c.AirConditioning && !vehicle.AirConditioning {
		return false
	}

	return true
}

// Filter returns the subset of vehicles satisfying the constraints,
// preserving catalog order. The result is always a fresh non-nil slice so
// an empty result marshals as [] rather than null.
func Filter(vehicles []catalog.Vehicle, constraints Constraints) []catalog.Vehicle {
	filtered := []catalog.Vehicle{}
	for _, vehicle := range vehicles {
		if constraints.Matches(vehicle) {
			filtered = append(filtered, vehicle)
		}
	}

	return filtered
}

// Sort orders vehicles in place. Name ordering uses Brazilian Portuguese
// collation; ties keep their input order. An unknown order is a no-op.
func Sort(vehicles []catalog.Vehicle, order Order) {
	switch order {
	case OrderPriceAsc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].PricePerDay < vehicles[j].PricePerDay
		})
	case OrderPriceDesc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].PricePerDay > vehicles[j].PricePerDay
		})
	case OrderName:
		collator := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(vehicles, func(i, j int) bool {
			return collator.CompareString(vehicles[i].Name, vehicles[j].Name) < 0
		})
	}
}
