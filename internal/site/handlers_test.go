package site_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/celsinho/rental-hub/internal/catalog"
	"github.com/celsinho/rental-hub/internal/pricing"
	"github.com/celsinho/rental-hub/internal/site"
	"github.com/celsinho/rental-hub/internal/suggest"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type staticProvider struct{}

func (p staticProvider) States(ctx context.Context) ([]suggest.State, error) {
	return []suggest.State{{Id: 35, Code: "SP", Name: "São Paulo"}}, nil
}

func (p staticProvider) Municipalities(ctx context.Context, stateCode string) ([]suggest.Municipality, error) {
	return []suggest.Municipality{
		{Id: 1, Name: "São Paulo"},
		{Id: 2, Name: "Campinas"},
	}, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("logger", &log)
	})

	site.RegisterRoutes(router, site.Options{
		Catalog:     catalog.NewStore(catalog.Inventory()),
		Pricing:     pricing.ConfigFromEnv(),
		Suggestions: suggest.New(staticProvider{}, nil, nil, &log),
		CurrentTimeFunc: func() time.Time {
			return time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
		},
	})

	return router
}

func performRequest(router *gin.Engine, method, target string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	var payload struct {
		Message string `json:"message"`
	}
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	return payload.Message
}

func TestListCars(t *testing.T) {
	router := testRouter()

	t.Run("should list and narrow the catalog", func(t *testing.T) {
		tests := []struct {
			name        string
			target      string
			expectedIds []string
		}{
			{
				name:        "whole catalog",
				target:      "/api/cars",
				expectedIds: []string{"1", "4", "2", "5", "3", "6", "7", "8", "9"},
			},
			{
				name:        "by category",
				target:      "/api/cars?category=SUV",
				expectedIds: []string{"3", "6"},
			},
			{
				name:        "all values do not restrict",
				target:      "/api/cars?category=all&transmission=all",
				expectedIds: []string{"1", "4", "2", "5", "3", "6", "7", "8", "9"},
			},
			{
				name:        "price range with sorting",
				target:      "/api/cars?minPrice=100&maxPrice=200&sort=price-desc",
				expectedIds: []string{"8", "3", "6", "5", "2"},
			},
			{
				name:        "no matches give an empty array",
				target:      "/api/cars?category=Esportivo&maxPrice=100",
				expectedIds: []string{},
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				recorder := performRequest(router, http.MethodGet, test.target, "")

				assert.Equal(t, http.StatusOK, recorder.Code)

				var vehicles []catalog.Vehicle
				assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &vehicles))

				ids := []string{}
				for _, vehicle := range vehicles {
					ids = append(ids, vehicle.Id)
				}
				assert.Equal(t, test.expectedIds, ids)
			})
		}
	})

	t.Run("should reject malformed query values", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/api/cars?minPrice=cheap", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Failed to bind search params", errorMessage(t, recorder))
	})
}

func TestGetCar(t *testing.T) {
	router := testRouter()

	t.Run("should return the vehicle", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/api/cars/2", "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var vehicle catalog.Vehicle
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &vehicle))
		assert.Equal(t, "Toyota Corolla", vehicle.Name)
	})

	t.Run("should answer 404 with a message payload", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/api/cars/999", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Carro com ID 999 não encontrado.", errorMessage(t, recorder))
	})
}

func TestListCategories(t *testing.T) {
	router := testRouter()

	recorder := performRequest(router, http.MethodGet, "/api/categories", "")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var categories []catalog.Category
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &categories))
	assert.Len(t, categories, 6)
	assert.Equal(t, "Hatch", categories[0].Name)
}

func TestGetSuggestions(t *testing.T) {
	router := testRouter()

	t.Run("should suggest matching locations", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/api/suggestions?q=camp", "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var matches []string
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &matches))
		assert.Equal(t, []string{"Campinas, SP"}, matches)
	})

	t.Run("should answer short queries with an empty array", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/api/suggestions?q=c", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "[]", recorder.Body.String())
	})
}

func TestComputeQuote(t *testing.T) {
	router := testRouter()

	t.Run("should price the requested period", func(t *testing.T) {
		body := `{
			"carId": "1",
			"pickupDate": "2026-09-01",
			"dropoffDate": "2026-09-04",
			"optionals": {"additionalInsurance": true, "carWash": true}
		}`

		recorder := performRequest(router, http.MethodPost, "/api/quote", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var quote struct {
			CarId          string  `json:"carId"`
			Days           int     `json:"days"`
			Subtotal       float64 `json:"subtotal"`
			OptionalsTotal float64 `json:"optionalsTotal"`
			Taxes          float64 `json:"taxes"`
			Total          float64 `json:"total"`
		}
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &quote))

		assert.Equal(t, "1", quote.CarId)
		assert.Equal(t, 3, quote.Days)
		assert.InDelta(t, 267, quote.Subtotal, 0.001)
		assert.InDelta(t, 165, quote.OptionalsTotal, 0.001)
		assert.InDelta(t, 43.2, quote.Taxes, 0.001)
		assert.InDelta(t, 475.2, quote.Total, 0.001)
	})

	t.Run("should render money with two decimals", func(t *testing.T) {
		body := `{"carId": "1", "pickupDate": "2026-09-01", "dropoffDate": "2026-09-04"}`

		recorder := performRequest(router, http.MethodPost, "/api/quote", body)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"subtotal":267.00`)
		assert.Contains(t, recorder.Body.String(), `"taxes":26.70`)
		assert.Contains(t, recorder.Body.String(), `"total":293.70`)
	})

	t.Run("should reject a body without the required fields", func(t *testing.T) {
		recorder := performRequest(router, http.MethodPost, "/api/quote", `{"pickupDate": "2026-09-01"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Failed to bind request params", errorMessage(t, recorder))
	})

	t.Run("should answer 404 for an unknown car", func(t *testing.T) {
		body := `{"carId": "999", "pickupDate": "2026-09-01", "dropoffDate": "2026-09-04"}`

		recorder := performRequest(router, http.MethodPost, "/api/quote", body)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Carro com ID 999 não encontrado.", errorMessage(t, recorder))
	})
}

func checkoutBody() string {
	return `{
		"carId": "2",
		"pickup": "São Paulo, SP",
		"pickupDate": "2026-09-01",
		"pickupTime": "10:00",
		"dropoffDate": "2026-09-04",
		"dropoffTime": "10:00",
		"category": "Sedan",
		"driverName": "João da Silva",
		"driverEmail": "joao@example.com",
		"driverCPF": "123.456.789-00",
		"paymentMethod": "credit",
		"cardNumber": "4111111111111111",
		"acceptTerms": true
	}`
}

func TestCreateReservation(t *testing.T) {
	router := testRouter()

	t.Run("should confirm the reservation", func(t *testing.T) {
		recorder := performRequest(router, http.MethodPost, "/api/reservations", checkoutBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var reservation struct {
			ReservationNumber string  `json:"reservationNumber"`
			CarId             string  `json:"carId"`
			Pickup            string  `json:"pickup"`
			Dropoff           string  `json:"dropoff"`
			TotalPrice        float64 `json:"totalPrice"`
			Car               *struct {
				Name string `json:"name"`
			} `json:"car"`
			Quote *struct {
				Days  int     `json:"days"`
				Total float64 `json:"total"`
			} `json:"quote"`
			ConfirmationQuery string `json:"confirmationQuery"`
		}
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &reservation))

		assert.Regexp(t, `^[0-9A-Z]{9}$`, reservation.ReservationNumber)
		assert.Equal(t, "2", reservation.CarId)
		assert.Equal(t, "São Paulo, SP", reservation.Pickup)
		assert.Equal(t, "São Paulo, SP", reservation.Dropoff)
		assert.InDelta(t, 478.5, reservation.TotalPrice, 0.001)
		assert.Equal(t, "Toyota Corolla", reservation.Car.Name)
		assert.Equal(t, 3, reservation.Quote.Days)
		assert.InDelta(t, 478.5, reservation.Quote.Total, 0.001)

		values, err := url.ParseQuery(reservation.ConfirmationQuery)
		assert.Nil(t, err)
		assert.Equal(t, reservation.ReservationNumber, values.Get("reservationNumber"))
		assert.Equal(t, "2", values.Get("carId"))
		assert.Equal(t, "478.50", values.Get("totalPrice"))
		assert.Equal(t, "São Paulo, SP", values.Get("dropoff"))
	})

	t.Run("should never leak payment details", func(t *testing.T) {
		recorder := performRequest(router, http.MethodPost, "/api/reservations", checkoutBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "4111111111111111")
		assert.NotContains(t, recorder.Body.String(), "cardNumber")
	})

	t.Run("should reject an inverted rental period", func(t *testing.T) {
		body := strings.Replace(checkoutBody(), `"dropoffDate": "2026-09-04"`, `"dropoffDate": "2026-08-20"`, 1)

		recorder := performRequest(router, http.MethodPost, "/api/reservations", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid booking details", errorMessage(t, recorder))
	})

	t.Run("should reject a body without driver details", func(t *testing.T) {
		body := strings.Replace(checkoutBody(), `"driverName": "João da Silva",`, "", 1)

		recorder := performRequest(router, http.MethodPost, "/api/reservations", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("should answer 404 for an unknown car", func(t *testing.T) {
		body := strings.Replace(checkoutBody(), `"carId": "2"`, `"carId": "999"`, 1)

		recorder := performRequest(router, http.MethodPost, "/api/reservations", body)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetConfirmation(t *testing.T) {
	router := testRouter()

	t.Run("should rebuild the reservation from its query string", func(t *testing.T) {
		target := "/api/reservations/confirmation?" + url.Values{
			"reservationNumber": {"A1B2C3D4E"},
			"carId":             {"2"},
			"pickup":            {"São Paulo, SP"},
			"dropoff":           {"São Paulo, SP"},
			"pickupDate":        {"2026-09-01"},
			"dropoffDate":       {"2026-09-04"},
			"driverName":        {"João da Silva"},
			"driverEmail":       {"joao@example.com"},
			"totalPrice":        {"478.50"},
		}.Encode()

		recorder := performRequest(router, http.MethodGet, target, "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var reservation struct {
			ReservationNumber string  `json:"reservationNumber"`
			TotalPrice        float64 `json:"totalPrice"`
			Car               *struct {
				Name        string  `json:"name"`
				PricePerDay float64 `json:"pricePerDay"`
			} `json:"car"`
		}
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &reservation))

		assert.Equal(t, "A1B2C3D4E", reservation.ReservationNumber)
		assert.InDelta(t, 478.5, reservation.TotalPrice, 0.001)
		assert.Equal(t, "Toyota Corolla", reservation.Car.Name)
		assert.InDelta(t, 145, reservation.Car.PricePerDay, 0.001)
	})

	t.Run("should answer 404 without the reservation parameters", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/api/reservations/confirmation?carId=2", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Reserva não encontrada.", errorMessage(t, recorder))
	})

	t.Run("should answer 404 for an unknown car", func(t *testing.T) {
		target := "/api/reservations/confirmation?reservationNumber=A1B2C3D4E&carId=999"

		recorder := performRequest(router, http.MethodGet, target, "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Carro com ID 999 não encontrado.", errorMessage(t, recorder))
	})
}

func TestGetContract(t *testing.T) {
	router := testRouter()

	t.Run("should render the contract document", func(t *testing.T) {
		target := "/api/contract?" + url.Values{
			"reservationNumber": {"A1B2C3D4E"},
			"carId":             {"2"},
			"pickup":            {"São Paulo, SP"},
			"dropoff":           {"Campinas, SP"},
			"pickupDate":        {"2026-09-01"},
			"dropoffDate":       {"2026-09-04"},
			"driverName":        {"João da Silva"},
			"driverCPF":         {"123.456.789-00"},
			"totalPrice":        {"478.50"},
		}.Encode()

		recorder := performRequest(router, http.MethodGet, target, "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var document struct {
			Company string `json:"company"`
			Title   string `json:"title"`
			Pages   []struct {
				Sections []struct {
					Heading string   `json:"heading"`
					Lines   []string `json:"lines"`
				} `json:"sections"`
			} `json:"pages"`
		}
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &document))

		assert.Equal(t, "Celsinho Car Rental", document.Company)
		assert.Equal(t, "Contrato de Locação de Veículo", document.Title)
		assert.NotEmpty(t, document.Pages)
		assert.Contains(t, recorder.Body.String(), "Número da Reserva: A1B2C3D4E")
		assert.Contains(t, recorder.Body.String(), "Data de Emissão: 28/08/2026")
		assert.Contains(t, recorder.Body.String(), "Toyota Corolla")
	})

	t.Run("should answer 404 without the reservation parameters", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/api/contract", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Reserva não encontrada.", errorMessage(t, recorder))
	})
}
