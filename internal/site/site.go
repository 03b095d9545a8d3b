// Package site wires the booking flow onto the router: catalog listing and
// lookup, location suggestions, quote computation, checkout submission,
// confirmation reconstruction and the printable contract.
package site

import (
	"os"
	"strconv"
	"time"

	"github.com/celsinho/rental-hub/internal/catalog"
	"github.com/celsinho/rental-hub/internal/pricing"
	"github.com/celsinho/rental-hub/internal/schema"
	siteMiddleware "github.com/celsinho/rental-hub/internal/site/middleware"
	"github.com/celsinho/rental-hub/internal/suggest"
	"github.com/gin-gonic/gin"
)

// Options carries the collaborators every handler closes over. All state
// is injected; nothing in this package is global.
type Options struct {
	Catalog     *catalog.Store
	Pricing     pricing.Config
	Suggestions *suggest.Cache

	// SubmitDelay simulates the reservation-processing latency of the
	// original site. Zero in tests.
	SubmitDelay time.Duration

	// CurrentTimeFunc stamps contract emission dates. Defaults to time.Now.
	CurrentTimeFunc func() time.Time
}

// SubmitDelayFromEnv reads SUBMIT_DELAY_MS; unset means no delay.
func SubmitDelayFromEnv() time.Duration {
	millis, err := strconv.Atoi(os.Getenv("SUBMIT_DELAY_MS"))
	if err != nil || millis < 0 {
		return 0
	}

	return time.Duration(millis) * time.Millisecond
}

func RegisterRoutes(router *gin.Engine, options Options) {
	if options.CurrentTimeFunc == nil {
		options.CurrentTimeFunc = time.Now
	}

	api := router.Group("/api")

	api.GET("/cars", listCars(options))
	api.GET("/cars/:id", getCar(options))
	api.GET("/categories", listCategories)
	api.GET("/suggestions", getSuggestions(options))

	api.POST("/quote",
		siteMiddleware.PrepareParams(schema.QuoteRequestParams{}),
		computeQuote(options),
	)

	api.POST("/reservations",
		siteMiddleware.OperationLogger,
		siteMiddleware.PrepareParams(schema.CheckoutRequestParams{}),
		createReservation(options),
	)

	api.GET("/reservations/confirmation", getConfirmation(options))
	api.GET("/contract", getContract(options))
}
