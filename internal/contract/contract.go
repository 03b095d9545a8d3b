// Package contract renders a completed reservation into the printable
// rental contract: a fixed-layout document model the front end turns into
// the exported pages.
package contract

import (
	"fmt"
	"time"

	"github.com/celsinho/rental-hub/internal/catalog"
)

const (
	companyName   = "Celsinho Car Rental"
	documentTitle = "Contrato de Locação de Veículo"

	// linesPerPage is the fixed page capacity; content past it flows onto
	// the next page.
	linesPerPage = 48

	displayDateFormat = "02/01/2006"
	wireDateFormat    = "2006-01-02"
)

type Details struct {
	ReservationNumber string
	DriverName        string
	DriverCPF         string
	Pickup            string
	Dropoff           string
	PickupDate        string
	DropoffDate       string
	TotalPrice        string
	Vehicle           catalog.Vehicle
	IssuedAt          time.Time
}

type Section struct {
	Heading string   `json:"heading,omitempty"`
	Lines   []string `json:"lines"`
}

type Page struct {
	Number   int       `json:"number"`
	Sections []Section `json:"sections"`
}

type Document struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Pages    []Page `json:"pages"`
	CarImage string `json:"carImage,omitempty"`
}

func formatDate(wireDate string) string {
	if wireDate == "" {
		return "N/A"
	}

	parsed, err := time.Parse(wireDateFormat, wireDate)
	if err != nil {
		return "N/A"
	}

	return parsed.Format(displayDateFormat)
}

func sections(details Details) []Section {
	return []Section{
		{
			Lines: []string{
				fmt.Sprintf("Número da Reserva: %s", details.ReservationNumber),
				fmt.Sprintf("Data de Emissão: %s", details.IssuedAt.Format(displayDateFormat)),
			},
		},
		{
			Heading: "1. Dados do Locatário",
			Lines: []string{
				fmt.Sprintf("Nome: %s", details.DriverName),
				fmt.Sprintf("CPF: %s", details.DriverCPF),
			},
		},
		{
			Heading: "2. Detalhes da Locação",
			Lines: []string{
				fmt.Sprintf("Retirada: %s em %s", details.Pickup, formatDate(details.PickupDate)),
				fmt.Sprintf("Devolução: %s em %s", details.Dropoff, formatDate(details.DropoffDate)),
				fmt.Sprintf("Valor Total da Reserva: %s", details.TotalPrice),
			},
		},
		{
			Heading: "3. Veículo",
			Lines: []string{
				fmt.Sprintf("Modelo: %s (%s)", details.Vehicle.Name, details.Vehicle.Category),
				fmt.Sprintf("Transmissão: %s", details.Vehicle.Transmission),
				"Placa: (a ser preenchido na retirada)",
			},
		},
		{
			Heading: "4. Vistoria do Veículo (Checklist de Retirada)",
			Lines: []string{
				"A ser preenchido no balcão no momento da retirada.",
				"[  ] Lataria (sem avarias)",
				"[  ] Pneus e Calotas (sem avarias)",
				"[  ] Vidros e Faróis (sem trincas)",
				"[  ] Interior e Estofados (limpo e sem furos)",
				"[  ] Nível de Combustível: ____ / ____",
				"Observações: ____________________________________________",
			},
		},
		{
			Heading: "5. Assinatura",
			Lines: []string{
				"Declaro que li e concordo com os termos e condições gerais de",
				"locação da " + companyName + " e que as informações de vistoria",
				"acima estão corretas.",
				"",
				"_________________________________",
				details.DriverName,
			},
		},
	}
}

// Render builds the paginated document. A section that does not fit on the
// remaining page moves to the next one; a section longer than a whole page
// is split.
func Render(details Details) Document {
	document := Document{
		Company:  companyName,
		Title:    documentTitle,
		CarImage: details.Vehicle.Image,
	}

	page := Page{Number: 1}
	remaining := linesPerPage

	flush := func() {
		document.Pages = append(document.Pages, page)
		page = Page{Number: page.Number + 1}
		remaining = linesPerPage
	}

	for _, section := range sections(details) {
		height := len(section.Lines)
		if section.Heading != "" {
			height++
		}

		if height > remaining && len(page.Sections) > 0 {
			flush()
		}

		for height > remaining {
			// Split an oversized section across page boundaries.
			take := remaining
			if section.Heading != "" {
				take--
			}
			page.Sections = append(page.Sections, Section{
				Heading: section.Heading,
				Lines:   section.Lines[:take],
			})
			section = Section{Lines: section.Lines[take:]}
			height = len(section.Lines)
			flush()
		}

		page.Sections = append(page.Sections, section)
		remaining -= height
	}

	if len(page.Sections) > 0 {
		document.Pages = append(document.Pages, page)
	}

	return document
}
