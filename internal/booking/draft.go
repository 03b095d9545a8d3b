// Package booking threads the reservation-in-progress between pages. The
// draft is an immutable value object; its only transport representation is
// the flat query string, so any page can be deep-linked or reloaded without
// server-side session state.
package booking

import (
	"errors"
	"math"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

const DateFormat = "2006-01-02"

var (
	ErrMissingPickup = errors.New("pickup location is required")
	ErrMissingDates  = errors.New("pickup and dropoff dates are required")
	ErrInvalidPeriod = errors.New("dropoff date precedes pickup date")
	ErrMissingCar    = errors.New("no car selected")
)

// Draft carries the query-string contract. Every field is a string on the
// wire; dates are ISO-8601 and locale formatting is display-only.
type Draft struct {
	Pickup            string `url:"pickup,omitempty" form:"pickup"`
	Dropoff           string `url:"dropoff,omitempty" form:"dropoff"`
	PickupDate        string `url:"pickupDate,omitempty" form:"pickupDate"`
	PickupTime        string `url:"pickupTime,omitempty" form:"pickupTime"`
	DropoffDate       string `url:"dropoffDate,omitempty" form:"dropoffDate"`
	DropoffTime       string `url:"dropoffTime,omitempty" form:"dropoffTime"`
	Category          string `url:"category,omitempty" form:"category"`
	CarId             string `url:"carId,omitempty" form:"carId"`
	ReservationNumber string `url:"reservationNumber,omitempty" form:"reservationNumber"`
	DriverName        string `url:"driverName,omitempty" form:"driverName"`
	DriverEmail       string `url:"driverEmail,omitempty" form:"driverEmail"`
	DriverCPF         string `url:"driverCPF,omitempty" form:"driverCPF"`
	TotalPrice        string `url:"totalPrice,omitempty" form:"totalPrice"`
}

// EncodeQuery serializes the draft into the navigable query string.
func (d Draft) EncodeQuery() (string, error) {
	values, err := query.Values(d)
	if err != nil {
		return "", err
	}

	return values.Encode(), nil
}

// DecodeQuery reconstructs a draft from the raw query parameters of any
// page in the flow.
func DecodeQuery(values url.Values) Draft {
	return Draft{
		Pickup:            values.Get("pickup"),
		Dropoff:           values.Get("dropoff"),
		PickupDate:        values.Get("pickupDate"),
		PickupTime:        values.Get("pickupTime"),
		DropoffDate:       values.Get("dropoffDate"),
		DropoffTime:       values.Get("dropoffTime"),
		Category:          values.Get("category"),
		CarId:             values.Get("carId"),
		ReservationNumber: values.Get("reservationNumber"),
		DriverName:        values.Get("driverName"),
		DriverEmail:       values.Get("driverEmail"),
		DriverCPF:         values.Get("driverCPF"),
		TotalPrice:        values.Get("totalPrice"),
	}
}

// WithPickupDate returns the draft with a new pickup date. A dropoff date
// earlier than the new pickup is cleared and must be picked again, so an
// invalid interval can never be submitted.
func (d Draft) WithPickupDate(date string) Draft {
	d.PickupDate = date

	if d.DropoffDate == "" || d.PickupDate == "" {
		return d
	}

	pickup, pickupErr := time.Parse(DateFormat, d.PickupDate)
	dropoff, dropoffErr := time.Parse(DateFormat, d.DropoffDate)
	if pickupErr == nil && dropoffErr == nil && pickup.After(dropoff) {
		d.DropoffDate = ""
	}

	return d
}

// Normalized fills the dropoff location from the pickup location when the
// "different dropoff" option was not used.
func (d Draft) Normalized() Draft {
	if d.Dropoff == "" {
		d.Dropoff = d.Pickup
	}

	return d
}

// Validate checks the hard invariants needed to proceed past the search
// form. Field-level rules beyond these belong to the validation policy.
func (d Draft) Validate() error {
	if d.Pickup == "" {
		return ErrMissingPickup
	}

	if d.PickupDate == "" || d.DropoffDate == "" {
		return ErrMissingDates
	}

	pickup, err := time.Parse(DateFormat, d.PickupDate)
	if err != nil {
		return ErrMissingDates
	}

	dropoff, err := time.Parse(DateFormat, d.DropoffDate)
	if err != nil {
		return ErrMissingDates
	}

	if dropoff.Before(pickup) {
		return ErrInvalidPeriod
	}

	return nil
}

// Days derives the billable day count from the draft dates. Equal dates
// count as one day, never zero.
func (d Draft) Days() (int, error) {
	pickup, err := time.Parse(DateFormat, d.PickupDate)
	if err != nil {
		return 0, ErrMissingDates
	}

	dropoff, err := time.Parse(DateFormat, d.DropoffDate)
	if err != nil {
		return 0, ErrMissingDates
	}

	return DaysBetween(pickup, dropoff), nil
}

// DaysBetween is ceil of the absolute difference in days, clamped to a
// minimum of one.
func DaysBetween(pickup, dropoff time.Time) int {
	hours := dropoff.Sub(pickup).Hours()
	if hours < 0 {
		hours = -hours
	}

	days := int(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}

	return days
}
