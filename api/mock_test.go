package api

import (
	"context"

	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/stretchr/testify/mock"
)

// MockReservationUseCase is a mock implementation of reservation.ReservationUseCase
type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) FindFavoritePlaceTickets(ctx context.Context, userID int64, ticketType string) ([]reservation.Ticket, error) {
	args := m.Called(ctx, userID, ticketType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservation.Ticket), args.Error(1)
}

func (m *MockReservationUseCase) MakeReservation(ctx context.Context, input reservation.MakeReservationInput) (*reservation.ReservationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.ReservationResult), args.Error(1)
}

func (m *MockReservationUseCase) SumUserFlightCosts(ctx context.Context, userID int64) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReservationUseCase) ListTicketsByType(ctx context.Context, ticketType string, page reservation.PageRequest) (*reservation.TicketPage, error) {
	args := m.Called(ctx, ticketType, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.TicketPage), args.Error(1)
}

func (m *MockReservationUseCase) ListArrivalLocationsByUsername(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	return args.Get(0).([]string), args.Error(1)
}
