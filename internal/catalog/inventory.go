package catalog

// Inventory is the whole rentable fleet. Prices are per day in BRL.
func Inventory() []Vehicle {
	return []Vehicle{
		{
			Id:              "1",
			Name:            "Chevrolet Onix",
			Category:        "Hatch",
			Image:           "https://a.storyblok.com/f/241094/1280x720/3b464fbed1/polo-track.png",
			Transmission:    TransmissionManual,
			Passengers:      5,
			Luggage:         2,
			AirConditioning: true,
			PricePerDay:     89,
			Features:        []string{"Ar Condicionado", "Direção Hidráulica", "Vidros Elétricos"},
		},
		{
			Id:              "4",
			Name:            "Hyundai HB20",
			Category:        "Hatch",
			Image:           "https://placehold.co/300x200/f97316/ffffff?text=HB20",
			Transmission:    TransmissionAutomatic,
			Passengers:      5,
			Luggage:         2,
			AirConditioning: true,
			PricePerDay:     99,
			Features:        []string{"Ar Condicionado", "Câmbio Automático", "Central Multimídia"},
		},
		{
			Id:              "2",
			Name:            "Toyota Corolla",
			Category:        "Sedan",
			Image:           "https://placehold.co/300x200/1e293b/ffffff?text=Corolla",
			Transmission:    TransmissionAutomatic,
			Passengers:      5,
			Luggage:         4,
			AirConditioning: true,
			PricePerDay:     145,
			Features:        []string{"Ar Condicionado", "Câmbio Automático", "GPS", "Bluetooth"},
		},
		{
			Id:              "5",
			Name:            "Honda Civic",
			Category:        "Sedan",
			Image:           "https://placehold.co/300x200/1e293b/ffffff?text=Civic",
			Transmission:    TransmissionAutomatic,
			Passengers:      5,
			Luggage:         4,
			AirConditioning: true,
			PricePerDay:     155,
			Features:        []string{"Ar Condicionado", "Teto Solar", "Bancos de Couro", "Câmera de Ré"},
		},
		{
			Id:              "3",
			Name:            "Jeep Compass",
			Category:        "SUV",
			Image:           "https://placehold.co/300x200/4d7c0f/ffffff?text=Compass",
			Transmission:    TransmissionAutomatic,
			Passengers:      5,
			Luggage:         4,
			AirConditioning: true,
			PricePerDay:     189,
			Features:        []string{"Ar Condicionado", "Câmbio Automático", "GPS", "4x4", "Teto Solar"},
		},
		{
			Id:              "6",
			Name:            "Hyundai Creta",
			Category:        "SUV",
			Image:           "https://placehold.co/300x200/4d7c0f/ffffff?text=Creta",
			Transmission:    TransmissionAutomatic,
			Passengers:      5,
			Luggage:         4,
			AirConditioning: true,
			PricePerDay:     165,
			Features:        []string{"Ar Condicionado", "Central Multimídia", "Sensor de Estacionamento"},
		},
		{
			Id:              "7",
			Name:            "BMW 320i",
			Category:        "Executivo",
			Image:           "https://placehold.co/300x200/1d4ed8/ffffff?text=BMW+320i",
			Transmission:    TransmissionAutomatic,
			Passengers:      5,
			Luggage:         3,
			AirConditioning: true,
			PricePerDay:     350,
			Features:        []string{"Bancos de Couro", "Teto Solar", "GPS Integrado", "Modos de Condução"},
		},
		{
			Id:              "8",
			Name:            "Chevrolet Spin",
			Category:        "Minivan",
			Image:           "https://placehold.co/300x200/6b21a8/ffffff?text=Spin",
			Transmission:    TransmissionAutomatic,
			Passengers:      7,
			Luggage:         5,
			AirConditioning: true,
			PricePerDay:     195,
			Features:        []string{"7 Lugares", "Amplo Porta-malas", "Sensor de Estacionamento"},
		},
		{
			Id:              "9",
			Name:            "Ford Mustang",
			Category:        "Esportivo",
			Image:           "https://placehold.co/300x200/be123c/ffffff?text=Mustang",
			Transmission:    TransmissionAutomatic,
			Passengers:      4,
			Luggage:         2,
			AirConditioning: true,
			PricePerDay:     450,
			Features:        []string{"Motor V8", "Controle de Largada", "Bancos Esportivos", "Sistema de Som Premium"},
		},
	}
}
