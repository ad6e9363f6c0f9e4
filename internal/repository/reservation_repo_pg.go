package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	FindFlightPriceAndCharge(ctx context.Context, userID int64) ([]domain.FlightPriceAndCharge, error)
	FindArrivalLocationsByUsername(ctx context.Context, username string) ([]string, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// Create inserts the reservation in its own transaction and fills ID and ReserveAt from the stored row.
func (r *PGReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin reservation tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if reservation.Status == "" {
		reservation.Status = domain.ReservationStatusPending
	}
	if err := tx.QueryRow(ctx, `INSERT INTO reservation (passenger_id, airline_ticket_id, reservation_status, reserve_at)
		VALUES ($1, $2, $3, now())
		RETURNING reservation_id, reserve_at`, reservation.PassengerID, reservation.AirlineTicketID, reservation.Status).
		Scan(&reservation.ID, &reservation.ReserveAt); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PGReservationRepository) FindFlightPriceAndCharge(ctx context.Context, userID int64) ([]domain.FlightPriceAndCharge, error) {
	rows, err := r.db.Query(ctx, `SELECT f.flight_price, f.charge
		FROM reservation r
		JOIN passenger p ON p.passenger_id = r.passenger_id
		JOIN airline_ticket a ON a.ticket_id = r.airline_ticket_id
		JOIN flight f ON f.ticket_id = a.ticket_id
		WHERE p.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query flight prices for user %d: %w", userID, err)
	}
	defer rows.Close()

	pairs := make([]domain.FlightPriceAndCharge, 0)
	for rows.Next() {
		var pc domain.FlightPriceAndCharge
		if err := rows.Scan(&pc.FlightPrice, &pc.Charge); err != nil {
			return nil, fmt.Errorf("scan flight price: %w", err)
		}
		pairs = append(pairs, pc)
	}
	return pairs, rows.Err()
}

func (r *PGReservationRepository) FindArrivalLocationsByUsername(ctx context.Context, username string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT f.arrival_location
		FROM reservation r
		JOIN passenger p ON p.passenger_id = r.passenger_id
		JOIN users u ON u.user_id = p.user_id
		JOIN airline_ticket a ON a.ticket_id = r.airline_ticket_id
		JOIN flight f ON f.ticket_id = a.ticket_id
		WHERE u.user_name = $1`, username)
	if err != nil {
		return nil, fmt.Errorf("query arrival locations for %q: %w", username, err)
	}
	defer rows.Close()

	locations, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan arrival location: %w", err)
	}
	return locations, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
