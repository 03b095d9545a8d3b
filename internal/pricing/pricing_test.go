package pricing_test

import (
	"testing"

	"github.com/celsinho/rental-hub/internal/catalog"
	"github.com/celsinho/rental-hub/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestQuoteFor(t *testing.T) {
	onix := catalog.Vehicle{Id: "1", Name: "Chevrolet Onix", PricePerDay: 89}

	t.Run("should price the rental period", func(t *testing.T) {
		tests := []struct {
			name                   string
			vehicle                catalog.Vehicle
			days                   int
			selection              pricing.Selection
			expectedSubtotal       float64
			expectedOptionalsTotal float64
			expectedTaxes          float64
			expectedTotal          float64
		}{
			{
				name:                   "three days without optionals",
				vehicle:                onix,
				days:                   3,
				expectedSubtotal:       267,
				expectedOptionalsTotal: 0,
				expectedTaxes:          26.7,
				expectedTotal:          293.7,
			},
			{
				name:    "insurance scales per day, car wash does not",
				vehicle: onix,
				days:    3,
				selection: pricing.Selection{
					AdditionalInsurance: true,
					CarWash:             true,
				},
				expectedSubtotal:       267,
				expectedOptionalsTotal: 165,
				expectedTaxes:          43.2,
				expectedTotal:          475.2,
			},
			{
				name:    "every optional selected",
				vehicle: onix,
				days:    2,
				selection: pricing.Selection{
					AdditionalInsurance: true,
					CarWash:             true,
					BabySeat:            true,
				},
				expectedSubtotal:       178,
				expectedOptionalsTotal: 230,
				expectedTaxes:          40.8,
				expectedTotal:          448.8,
			},
			{
				name:             "zero days clamps to one",
				vehicle:          onix,
				days:             0,
				expectedSubtotal: 89,
				expectedTaxes:    8.9,
				expectedTotal:    97.9,
			},
			{
				name:             "negative days clamps to one",
				vehicle:          onix,
				days:             -4,
				expectedSubtotal: 89,
				expectedTaxes:    8.9,
				expectedTotal:    97.9,
			},
		}

		config := pricing.ConfigFromEnv()

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				quote := config.QuoteFor(test.vehicle, test.days, test.selection)

				assert.Equal(t, test.vehicle.PricePerDay, quote.DailyRate)
				assert.InDelta(t, test.expectedSubtotal, quote.Subtotal, 1e-9)
				assert.InDelta(t, test.expectedOptionalsTotal, quote.OptionalsTotal, 1e-9)
				assert.InDelta(t, test.expectedTaxes, quote.Taxes, 1e-9)
				assert.InDelta(t, test.expectedTotal, quote.Total, 1e-9)
			})
		}
	})

	t.Run("should itemize only the selected optionals", func(t *testing.T) {
		config := pricing.ConfigFromEnv()

		quote := config.QuoteFor(onix, 3, pricing.Selection{
			AdditionalInsurance: true,
			CarWash:             true,
		})

		assert.Len(t, quote.Optionals, 2)
		assert.Equal(t, "additionalInsurance", quote.Optionals[0].Code)
		assert.Equal(t, "Seguro Adicional", quote.Optionals[0].Name)
		assert.InDelta(t, 105, quote.Optionals[0].Amount, 1e-9)
		assert.Equal(t, "carWash", quote.Optionals[1].Code)
		assert.InDelta(t, 60, quote.Optionals[1].Amount, 1e-9)
	})

	t.Run("should never return nil optionals", func(t *testing.T) {
		config := pricing.ConfigFromEnv()

		quote := config.QuoteFor(onix, 1, pricing.Selection{})

		assert.NotNil(t, quote.Optionals)
		assert.Len(t, quote.Optionals, 0)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("TAX_RATE", "0.20")
		t.Setenv("CAR_WASH_FEE", "80")

		config := pricing.ConfigFromEnv()
		quote := config.QuoteFor(onix, 1, pricing.Selection{CarWash: true})

		assert.InDelta(t, 80, quote.OptionalsTotal, 1e-9)
		assert.InDelta(t, (89+80)*0.20, quote.Taxes, 1e-9)
	})
}
