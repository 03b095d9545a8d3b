// Package catalog holds the fixed vehicle inventory. Records are loaded
// once at process start and never mutated; every downstream page resolves
// vehicles through Lookup.
package catalog

import (
	"errors"
	"fmt"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automático"
)

type Vehicle struct {
	Id              string       `json:"id"`
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Image           string       `json:"image"`
	Transmission    Transmission `json:"transmission"`
	Passengers      int          `json:"passengers"`
	Luggage         int          `json:"luggage"`
	AirConditioning bool         `json:"airConditioning"`
	PricePerDay     float64      `json:"pricePerDay"`
	Features        []string     `json:"features"`
}

type Store struct {
	vehicles []Vehicle
	byId     map[string]int
}

func NewStore(vehicles []Vehicle) *Store {
	byId := make(map[string]int, len(vehicles))
	for i, vehicle := range vehicles {
		byId[vehicle.Id] = i
	}

	return &Store{
		vehicles: vehicles,
		byId:     byId,
	}
}

// All returns the full inventory in catalog order. Callers must not
// mutate the returned slice.
func (s *Store) All() []Vehicle {
	return s.vehicles
}

func (s *Store) Lookup(id string) (Vehicle, error) {
	index, ok := s.byId[id]
	if !ok {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id)
	}

	return s.vehicles[index], nil
}

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Categories lists the category-selection step entries in display order.
func Categories() []Category {
	return []Category{
		{Name: "Hatch", Description: "Versatilidade e economia para o seu dia a dia."},
		{Name: "Sedan", Description: "Conforto e espaço para toda a família."},
		{Name: "SUV", Description: "Aventura e robustez para qualquer terreno."},
		{Name: "Executivo", Description: "Luxo e performance para viagens de negócios."},
		{Name: "Minivan", Description: "Espaço de sobra para grandes grupos e bagagens."},
		{Name: "Esportivo", Description: "Emoção e design para quem ama dirigir."},
	}
}
