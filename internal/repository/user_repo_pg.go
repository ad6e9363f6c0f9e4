package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type PassengerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Passenger, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

// GetByID returns nil, nil when the user does not exist.
func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, user_name, like_travel_place, phone_num FROM users WHERE user_id=$1`, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.LikeTravelPlace, &u.PhoneNum); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

// GetByUserID returns nil, nil when the user has no passenger record.
func (r *PGPassengerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT passenger_id, user_id, passport_num FROM passenger WHERE user_id=$1`, userID)
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.UserID, &p.PassportNum); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get passenger for user %d: %w", userID, err)
	}
	return &p, nil
}

var (
	_ UserRepository      = (*PGUserRepository)(nil)
	_ PassengerRepository = (*PGPassengerRepository)(nil)
)
