package reservation

import (
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
)

type MakeReservationInput struct {
	UserID          int64 `json:"userId"`
	AirlineTicketID int64 `json:"airlineTicketId"`
}

// Ticket is the light view of an airline ticket returned by the favourite-place search.
type Ticket struct {
	TicketID      int64     `json:"ticketId"`
	Depart        string    `json:"depart"`
	Arrival       string    `json:"arrival"`
	DepartureTime time.Time `json:"departureTime"`
	ReturnTime    time.Time `json:"returnTime"`
}

// ReservationResult carries every amount truncated toward zero.
type ReservationResult struct {
	Prices     []int `json:"prices"`
	Charges    []int `json:"charges"`
	Tax        int   `json:"tax"`
	TotalPrice int   `json:"totalPrice"`
	Success    bool  `json:"success"`
}

type TicketSummary struct {
	FlightID          int64     `json:"flightId"`
	DepartAt          time.Time `json:"departAt"`
	ArrivalAt         time.Time `json:"arrivalAt"`
	DepartureLocation string    `json:"departureLocation"`
	ArrivalLocation   string    `json:"arrivalLocation"`
}

func toTicket(t domain.AirlineTicket) Ticket {
	return Ticket{
		TicketID:      t.ID,
		Depart:        t.DepartureLocation,
		Arrival:       t.ArrivalLocation,
		DepartureTime: t.DepartureAt,
		ReturnTime:    t.ReturnAt,
	}
}

func toTicketSummary(t domain.AirlineTicket) TicketSummary {
	return TicketSummary{
		FlightID:          t.ID,
		DepartAt:          t.DepartureAt,
		ArrivalAt:         t.ReturnAt,
		DepartureLocation: t.DepartureLocation,
		ArrivalLocation:   t.ArrivalLocation,
	}
}

func newReservationResult(t *domain.AirlineTicket) *ReservationResult {
	prices := make([]int, 0, len(t.Flights))
	charges := make([]int, 0, len(t.Flights))
	for _, f := range t.Flights {
		prices = append(prices, int(f.FlightPrice))
		charges = append(charges, int(f.Charge))
	}
	return &ReservationResult{
		Prices:     prices,
		Charges:    charges,
		Tax:        int(t.Tax),
		TotalPrice: int(t.TotalPrice),
		Success:    true,
	}
}
