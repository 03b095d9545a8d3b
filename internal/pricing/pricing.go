// Package pricing computes the rental quote: daily rate times days, the
// selected optional add-ons, and a flat tax over everything. The output is
// fully determined by the inputs; currency rounding happens at the wire,
// never here.
package pricing

import (
	"os"
	"strconv"

	"github.com/celsinho/rental-hub/internal/catalog"
)

const (
	defaultTaxRate         = 0.10
	defaultInsurancePerDay = 35
	defaultCarWashFee      = 60
	defaultBabySeatPerDay  = 50
)

type Scaling string

const (
	PerDay  Scaling = "per-day"
	FlatFee Scaling = "flat-fee"
)

// Optional is a togglable add-on with a fixed unit price and a fixed
// scaling rule. The rule is configuration, not computation.
type Optional struct {
	Code      string
	Name      string
	UnitPrice float64
	Scaling   Scaling
}

type Selection struct {
	AdditionalInsurance bool
	CarWash             bool
	BabySeat            bool
}

type Config struct {
	TaxRate   float64
	Optionals []Optional
}

func envFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}

	return value
}

// ConfigFromEnv reads the tax rate and optional prices from the
// environment, keeping the original defaults when unset.
func ConfigFromEnv() Config {
	return Config{
		TaxRate: envFloat("TAX_RATE", defaultTaxRate),
		Optionals: []Optional{
			{
				Code:      "additionalInsurance",
				Name:      "Seguro Adicional",
				UnitPrice: envFloat("INSURANCE_PER_DAY", defaultInsurancePerDay),
				Scaling:   PerDay,
			},
			{
				Code:      "carWash",
				Name:      "Ducha na Devolução",
				UnitPrice: envFloat("CAR_WASH_FEE", defaultCarWashFee),
				Scaling:   FlatFee,
			},
			{
				Code:      "babySeat",
				Name:      "Bebê Conforto",
				UnitPrice: envFloat("BABY_SEAT_PER_DAY", defaultBabySeatPerDay),
				Scaling:   PerDay,
			},
		},
	}
}

func (s Selection) selected(code string) bool {
	switch code {
	case "additionalInsurance":
		return s.AdditionalInsurance
	case "carWash":
		return s.CarWash
	case "babySeat":
		return s.BabySeat
	}

	return false
}

type OptionalCost struct {
	Code   string
	Name   string
	Amount float64
}

type Quote struct {
	DailyRate      float64
	Days           int
	Subtotal       float64
	Optionals      []OptionalCost
	OptionalsTotal float64
	Taxes          float64
	Total          float64
}

// QuoteFor prices a vehicle for the given day count and selection. Days
// below 1 are clamped to 1; a rental never has zero billable days.
func (c Config) QuoteFor(vehicle catalog.Vehicle, days int, selection Selection) Quote {
	if days < 1 {
		days = 1
	}

	quote := Quote{
		DailyRate: vehicle.PricePerDay,
		Days:      days,
		Subtotal:  vehicle.PricePerDay * float64(days),
		Optionals: []OptionalCost{},
	}

	for _, optional := range c.Optionals {
		if !selection.selected(optional.Code) {
			continue
		}

		amount := optional.UnitPrice
		if optional.Scaling == PerDay {
			amount = optional.UnitPrice * float64(days)
		}

		quote.Optionals = append(quote.Optionals, OptionalCost{
			Code:   optional.Code,
			Name:   optional.Name,
			Amount: amount,
		})
		quote.OptionalsTotal += amount
	}

	beforeTaxes := quote.Subtotal + quote.OptionalsTotal
	quote.Taxes = beforeTaxes * c.TaxRate
	quote.Total = beforeTaxes + quote.Taxes

	return quote
}
