package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirlineTicketRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AirlineTicket, error)
	FindByArrivalLocationAndType(ctx context.Context, arrivalLocation, ticketType string) ([]domain.AirlineTicket, error)
	FindByType(ctx context.Context, ticketType string) ([]domain.AirlineTicket, error)
}

type PGAirlineTicketRepository struct {
	db *pgxpool.Pool
}

func NewAirlineTicketRepository(db *pgxpool.Pool) AirlineTicketRepository {
	return &PGAirlineTicketRepository{db: db}
}

const ticketColumns = `ticket_id, ticket_type, departure_location, arrival_location, departure_at, return_at, tax, total_price`

// GetByID loads the ticket together with its flight legs. Returns nil, nil when the ticket does not exist.
func (r *PGAirlineTicketRepository) GetByID(ctx context.Context, id int64) (*domain.AirlineTicket, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM airline_ticket WHERE ticket_id=$1`, id)
	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get airline ticket %d: %w", id, err)
	}

	flights, err := r.flightsByTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Flights = flights
	return t, nil
}

func (r *PGAirlineTicketRepository) FindByArrivalLocationAndType(ctx context.Context, arrivalLocation, ticketType string) ([]domain.AirlineTicket, error) {
	return r.queryTickets(ctx, `SELECT `+ticketColumns+` FROM airline_ticket WHERE arrival_location=$1 AND ticket_type=$2`, arrivalLocation, ticketType)
}

func (r *PGAirlineTicketRepository) FindByType(ctx context.Context, ticketType string) ([]domain.AirlineTicket, error) {
	return r.queryTickets(ctx, `SELECT `+ticketColumns+` FROM airline_ticket WHERE ticket_type=$1 ORDER BY ticket_id`, ticketType)
}

func (r *PGAirlineTicketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]domain.AirlineTicket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query airline tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.AirlineTicket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan airline ticket: %w", err)
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

func (r *PGAirlineTicketRepository) flightsByTicket(ctx context.Context, ticketID int64) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_id, ticket_id, departure_at, arrival_at, departure_location, arrival_location, flight_price, charge
		FROM flight WHERE ticket_id=$1 ORDER BY flight_id`, ticketID)
	if err != nil {
		return nil, fmt.Errorf("query flights of ticket %d: %w", ticketID, err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.TicketID, &f.DepartureAt, &f.ArrivalAt, &f.DepartureLocation, &f.ArrivalLocation, &f.FlightPrice, &f.Charge); err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func scanTicket(row pgx.Row) (*domain.AirlineTicket, error) {
	var t domain.AirlineTicket
	if err := row.Scan(&t.ID, &t.TicketType, &t.DepartureLocation, &t.ArrivalLocation, &t.DepartureAt, &t.ReturnAt, &t.Tax, &t.TotalPrice); err != nil {
		return nil, err
	}
	return &t, nil
}

var _ AirlineTicketRepository = (*PGAirlineTicketRepository)(nil)
