package domain

import "time"

const (
	TicketTypeOneWay    = "one-way"
	TicketTypeRoundTrip = "round-trip"
)

// IsSupportedTicketType reports whether t is one of the two sellable ticket types.
func IsSupportedTicketType(t string) bool {
	return t == TicketTypeOneWay || t == TicketTypeRoundTrip
}

type AirlineTicket struct {
	ID                int64
	TicketType        string
	DepartureLocation string
	ArrivalLocation   string
	DepartureAt       time.Time
	ReturnAt          time.Time
	Tax               float64
	TotalPrice        float64
	// Flights are ordered by flight id. Only populated by lookups that load legs.
	Flights []Flight
}

// Flight is one leg of an airline ticket.
type Flight struct {
	ID                int64
	TicketID          int64
	DepartureAt       time.Time
	ArrivalAt         time.Time
	DepartureLocation string
	ArrivalLocation   string
	FlightPrice       float64
	Charge            float64
}
