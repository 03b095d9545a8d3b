package schema

import (
	"github.com/celsinho/rental-hub/internal/catalog"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// SearchRequestParams narrows and orders the catalog listing. Absent or
// "all" valued fields impose no restriction.
type SearchRequestParams struct {
	Category        string   `form:"category" json:"category,omitempty"`
	Transmission    string   `form:"transmission" json:"transmission,omitempty"`
	MinPrice        *float64 `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice        *float64 `form:"maxPrice" json:"maxPrice,omitempty"`
	Passengers      *int     `form:"passengers" json:"passengers,omitempty"`
	AirConditioning *bool    `form:"airConditioning" json:"airConditioning,omitempty"`
	Sort            string   `form:"sort" json:"sort,omitempty"`
}

// OptionalSelection is the set of togglable add-ons offered at checkout.
type OptionalSelection struct {
	AdditionalInsurance bool `form:"additionalInsurance" json:"additionalInsurance"`
	CarWash             bool `form:"carWash" json:"carWash"`
	BabySeat            bool `form:"babySeat" json:"babySeat"`
}

type QuoteRequestParams struct {
	CarId       string             `json:"carId" binding:"required"`
	PickupDate  openapi_types.Date `json:"pickupDate" binding:"required"`
	DropoffDate openapi_types.Date `json:"dropoffDate" binding:"required"`
	Optionals   OptionalSelection  `json:"optionals"`
}

type OptionalCost struct {
	Code   string       `json:"code"`
	Name   string       `json:"name"`
	Amount RoundedFloat `json:"amount"`
}

type QuoteResponse struct {
	CarId          string         `json:"carId"`
	DailyRate      RoundedFloat   `json:"dailyRate"`
	Days           int            `json:"days"`
	Subtotal       RoundedFloat   `json:"subtotal"`
	Optionals      []OptionalCost `json:"optionals"`
	OptionalsTotal RoundedFloat   `json:"optionalsTotal"`
	Taxes          RoundedFloat   `json:"taxes"`
	Total          RoundedFloat   `json:"total"`
}

// CheckoutRequestParams is the checkout submission. Per-field validation
// beyond the hard invariants lives in the OpenAPI document and is enforced
// only when the validation policy is enabled.
type CheckoutRequestParams struct {
	CarId       string             `json:"carId" binding:"required"`
	Pickup      string             `json:"pickup" binding:"required"`
	Dropoff     string             `json:"dropoff"`
	PickupDate  openapi_types.Date `json:"pickupDate" binding:"required"`
	PickupTime  string             `json:"pickupTime"`
	DropoffDate openapi_types.Date `json:"dropoffDate" binding:"required"`
	DropoffTime string             `json:"dropoffTime"`
	Category    string             `json:"category"`

	DriverName      string `json:"driverName" binding:"required"`
	DriverEmail     string `json:"driverEmail" binding:"required"`
	DriverPhone     string `json:"driverPhone"`
	DriverCPF       string `json:"driverCPF"`
	DriverBirthDate string `json:"driverBirthDate"`
	DriverLicense   string `json:"driverLicense"`

	// Payment details are collected but never forwarded to a processor.
	PaymentMethod string `json:"paymentMethod"`
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	CardExpiry    string `json:"cardExpiry"`
	CardCVV       string `json:"cardCVV"`

	AcceptTerms bool `json:"acceptTerms"`

	Optionals OptionalSelection `json:"optionals"`
}

type ReservationResponse struct {
	ReservationNumber string              `json:"reservationNumber"`
	CarId             string              `json:"carId"`
	Pickup            string              `json:"pickup"`
	Dropoff           string              `json:"dropoff"`
	PickupDate        string              `json:"pickupDate"`
	PickupTime        string              `json:"pickupTime,omitempty"`
	DropoffDate       string              `json:"dropoffDate"`
	DropoffTime       string              `json:"dropoffTime,omitempty"`
	DriverName        string              `json:"driverName"`
	DriverEmail       openapi_types.Email `json:"driverEmail"`
	DriverCPF         string              `json:"driverCPF,omitempty"`
	TotalPrice        RoundedFloat        `json:"totalPrice"`
	Car               *catalog.Vehicle    `json:"car,omitempty"`
	Quote             *QuoteResponse      `json:"quote,omitempty"`

	// ConfirmationQuery is the flat query string that deep-links the
	// confirmation page. It is the only place the reservation survives.
	ConfirmationQuery string `json:"confirmationQuery"`
}
