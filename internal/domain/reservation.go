package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending ReservationStatus = "PENDING"
)

type Reservation struct {
	ID              int64
	PassengerID     int64
	AirlineTicketID int64
	Status          ReservationStatus
	ReserveAt       time.Time
}

// FlightPriceAndCharge is the price pair of one leg reachable from a user's reservations.
type FlightPriceAndCharge struct {
	FlightPrice float64
	Charge      float64
}
