package site

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/celsinho/rental-hub/internal/booking"
	"github.com/celsinho/rental-hub/internal/catalog"
	"github.com/celsinho/rental-hub/internal/catalog/search"
	"github.com/celsinho/rental-hub/internal/contract"
	"github.com/celsinho/rental-hub/internal/middleware"
	"github.com/celsinho/rental-hub/internal/pricing"
	"github.com/celsinho/rental-hub/internal/schema"
	siteMiddleware "github.com/celsinho/rental-hub/internal/site/middleware"
	"github.com/celsinho/rental-hub/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"
)

func carNotFoundMessage(id string) string {
	return fmt.Sprintf("Carro com ID %s não encontrado.", id)
}

func listCars(options Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := c.MustGet("logger").(*zerolog.Logger)

		var params schema.SearchRequestParams
		err := c.ShouldBindQuery(&params)
		if err != nil {
			middleware.HandleError(c, http.StatusBadRequest, "Failed to bind search params", err)
			return
		}

		slowLog := slowlog.CreateLogger(logger)
		slowLog.Start("catalog:search")

		// Always filters the full inventory; constraints never stack
		// across requests.
		vehicles := search.Filter(options.Catalog.All(), search.Constraints{
			Category:        params.Category,
			Transmission:    params.Transmission,
			MinPrice:        params.MinPrice,
			MaxPrice:        params.MaxPrice,
			Passengers:      params.Passengers,
			AirConditioning: params.AirConditioning,
		})
		search.Sort(vehicles, search.Order(params.Sort))

		slowLog.Stop("catalog:search")

		c.JSON(http.StatusOK, vehicles)
	}
}

func getCar(options Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")

		vehicle, err := options.Catalog.Lookup(id)
		if err != nil {
			middleware.HandleError(c, http.StatusNotFound, carNotFoundMessage(id), err)
			return
		}

		c.JSON(http.StatusOK, vehicle)
	}
}

func listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories())
}

func getSuggestions(options Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		matches := options.Suggestions.Query(c.Request.Context(), c.Query("q"))
		c.JSON(http.StatusOK, matches)
	}
}

func selection(optionals schema.OptionalSelection) pricing.Selection {
	return pricing.Selection{
		AdditionalInsurance: optionals.AdditionalInsurance,
		CarWash:             optionals.CarWash,
		BabySeat:            optionals.BabySeat,
	}
}

func quoteResponse(carId string, quote pricing.Quote) schema.QuoteResponse {
	optionals := []schema.OptionalCost{}
	for _, optional := range quote.Optionals {
		optionals = append(optionals, schema.OptionalCost{
			Code:   optional.Code,
			Name:   optional.Name,
			Amount: schema.RoundedFloat(optional.Amount),
		})
	}

	return schema.QuoteResponse{
		CarId:          carId,
		DailyRate:      schema.RoundedFloat(quote.DailyRate),
		Days:           quote.Days,
		Subtotal:       schema.RoundedFloat(quote.Subtotal),
		Optionals:      optionals,
		OptionalsTotal: schema.RoundedFloat(quote.OptionalsTotal),
		Taxes:          schema.RoundedFloat(quote.Taxes),
		Total:          schema.RoundedFloat(quote.Total),
	}
}

func computeQuote(options Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, ok := c.MustGet(siteMiddleware.ParamsKey).(*schema.QuoteRequestParams)
		if !ok {
			middleware.HandleError(c, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		vehicle, err := options.Catalog.Lookup(params.CarId)
		if err != nil {
			middleware.HandleError(c, http.StatusNotFound, carNotFoundMessage(params.CarId), err)
			return
		}

		days := booking.DaysBetween(params.PickupDate.Time, params.DropoffDate.Time)
		quote := options.Pricing.QuoteFor(vehicle, days, selection(params.Optionals))

		c.JSON(http.StatusOK, quoteResponse(vehicle.Id, quote))
	}
}

func createReservation(options Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, ok := c.MustGet(siteMiddleware.ParamsKey).(*schema.CheckoutRequestParams)
		if !ok {
			middleware.HandleError(c, http.StatusInternalServerError, "Bad request params", nil)
			return
		}

		vehicle, err := options.Catalog.Lookup(params.CarId)
		if err != nil {
			middleware.HandleError(c, http.StatusNotFound, carNotFoundMessage(params.CarId), err)
			return
		}

		draft := booking.Draft{
			Pickup:      params.Pickup,
			Dropoff:     params.Dropoff,
			PickupDate:  params.PickupDate.Format(booking.DateFormat),
			PickupTime:  params.PickupTime,
			DropoffDate: params.DropoffDate.Format(booking.DateFormat),
			DropoffTime: params.DropoffTime,
			Category:    params.Category,
			CarId:       vehicle.Id,
			DriverName:  params.DriverName,
			DriverEmail: params.DriverEmail,
			DriverCPF:   params.DriverCPF,
		}.Normalized()

		err = draft.Validate()
		if err != nil {
			middleware.HandleError(c, http.StatusBadRequest, "Invalid booking details", err)
			return
		}

		days, err := draft.Days()
		if err != nil {
			middleware.HandleError(c, http.StatusBadRequest, "Invalid booking dates", err)
			return
		}

		quote := options.Pricing.QuoteFor(vehicle, days, selection(params.Optionals))

		// Simulated processing latency of the original site.
		if options.SubmitDelay > 0 {
			time.Sleep(options.SubmitDelay)
		}

		draft.ReservationNumber = booking.NewReservationNumber()
		draft.TotalPrice = strconv.FormatFloat(quote.Total, 'f', 2, 64)

		confirmationQuery, err := draft.EncodeQuery()
		if err != nil {
			middleware.HandleError(c, http.StatusBadGateway, "Failed to create reservation", err)
			return
		}

		response := reservationResponse(draft, &vehicle, quote.Total)
		quoted := quoteResponse(vehicle.Id, quote)
		response.Quote = &quoted
		response.ConfirmationQuery = confirmationQuery

		c.JSON(http.StatusCreated, response)
	}
}

func reservationResponse(draft booking.Draft, car *catalog.Vehicle, total float64) schema.ReservationResponse {
	return schema.ReservationResponse{
		ReservationNumber: draft.ReservationNumber,
		CarId:             draft.CarId,
		Pickup:            draft.Pickup,
		Dropoff:           draft.Dropoff,
		PickupDate:        draft.PickupDate,
		PickupTime:        draft.PickupTime,
		DropoffDate:       draft.DropoffDate,
		DropoffTime:       draft.DropoffTime,
		DriverName:        draft.DriverName,
		DriverEmail:       openapi_types.Email(draft.DriverEmail),
		DriverCPF:         draft.DriverCPF,
		TotalPrice:        schema.RoundedFloat(total),
		Car:               car,
	}
}

func getConfirmation(options Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft := booking.DecodeQuery(c.Request.URL.Query())

		// Without its query parameters the reservation cannot be
		// reconstructed; there is no backing store.
		if draft.ReservationNumber == "" || draft.CarId == "" {
			middleware.HandleError(c, http.StatusNotFound, "Reserva não encontrada.", booking.ErrMissingCar)
			return
		}

		vehicle, err := options.Catalog.Lookup(draft.CarId)
		if err != nil {
			middleware.HandleError(c, http.StatusNotFound, carNotFoundMessage(draft.CarId), err)
			return
		}

		total, _ := strconv.ParseFloat(draft.TotalPrice, 64)

		response := reservationResponse(draft, &vehicle, total)
		response.ConfirmationQuery = c.Request.URL.RawQuery

		c.JSON(http.StatusOK, response)
	}
}

func getContract(options Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft := booking.DecodeQuery(c.Request.URL.Query())

		if draft.ReservationNumber == "" || draft.CarId == "" {
			middleware.HandleError(c, http.StatusNotFound, "Reserva não encontrada.", booking.ErrMissingCar)
			return
		}

		vehicle, err := options.Catalog.Lookup(draft.CarId)
		if err != nil {
			middleware.HandleError(c, http.StatusNotFound, carNotFoundMessage(draft.CarId), err)
			return
		}

		document := contract.Render(contract.Details{
			ReservationNumber: draft.ReservationNumber,
			DriverName:        draft.DriverName,
			DriverCPF:         draft.DriverCPF,
			Pickup:            draft.Pickup,
			Dropoff:           draft.Dropoff,
			PickupDate:        draft.PickupDate,
			DropoffDate:       draft.DropoffDate,
			TotalPrice:        draft.TotalPrice,
			Vehicle:           vehicle,
			IssuedAt:          options.CurrentTimeFunc(),
		})

		c.JSON(http.StatusOK, document)
	}
}
