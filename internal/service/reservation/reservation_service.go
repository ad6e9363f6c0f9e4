package reservation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/metrics"
	"github.com/Domenick1991/airreservation/internal/repository"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	FindFavoritePlaceTickets(ctx context.Context, userID int64, ticketType string) ([]Ticket, error)
	MakeReservation(ctx context.Context, input MakeReservationInput) (*ReservationResult, error)
	SumUserFlightCosts(ctx context.Context, userID int64) (float64, error)
	ListTicketsByType(ctx context.Context, ticketType string, page PageRequest) (*TicketPage, error)
	ListArrivalLocationsByUsername(ctx context.Context, username string) ([]string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	users        repository.UserRepository
	passengers   repository.PassengerRepository
	tickets      repository.AirlineTicketRepository
	reservations repository.ReservationRepository
	producer     Producer
	eventsTopic  string
}

type ReservationServiceOption func(*ReservationService)

// WithEventPublisher makes MakeReservation announce every committed reservation on topic.
func WithEventPublisher(producer Producer, topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewReservationService(
	users repository.UserRepository,
	passengers repository.PassengerRepository,
	tickets repository.AirlineTicketRepository,
	reservations repository.ReservationRepository,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		users:        users,
		passengers:   passengers,
		tickets:      tickets,
		reservations: reservations,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// FindFavoritePlaceTickets returns the tickets of ticketType that fly to the user's preferred destination.
// An empty match is reported as ErrNotFound rather than an empty list.
func (s *ReservationService) FindFavoritePlaceTickets(ctx context.Context, userID int64, ticketType string) ([]Ticket, error) {
	if !domain.IsSupportedTicketType(ticketType) {
		return nil, fmt.Errorf("%w: ticket type %q is not supported", domain.ErrInvalidInput, ticketType)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	airlineTickets, err := s.tickets.FindByArrivalLocationAndType(ctx, user.LikeTravelPlace, ticketType)
	if err != nil {
		return nil, err
	}
	if len(airlineTickets) == 0 {
		return nil, fmt.Errorf("%w: no %s tickets to %q", domain.ErrNotFound, ticketType, user.LikeTravelPlace)
	}

	tickets := make([]Ticket, 0, len(airlineTickets))
	for _, t := range airlineTickets {
		tickets = append(tickets, toTicket(t))
	}
	return tickets, nil
}

func (s *ReservationService) MakeReservation(ctx context.Context, input MakeReservationInput) (*ReservationResult, error) {
	ticket, err := s.tickets.GetByID(ctx, input.AirlineTicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fmt.Errorf("%w: airline ticket %d", domain.ErrNotFound, input.AirlineTicketID)
	}

	passenger, err := s.passengers.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, fmt.Errorf("%w: passenger for user %d", domain.ErrNotFound, input.UserID)
	}

	if len(ticket.Flights) == 0 {
		return nil, fmt.Errorf("%w: airline ticket %d has no flights", domain.ErrNotFound, ticket.ID)
	}

	reservation := &domain.Reservation{
		PassengerID:     passenger.ID,
		AirlineTicketID: ticket.ID,
		Status:          domain.ReservationStatusPending,
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		metrics.ReservationsRejected.Inc()
		slog.WarnContext(ctx, "reservation refused by store",
			"passenger_id", passenger.ID, "airline_ticket_id", ticket.ID, "error", err)
		return nil, fmt.Errorf("%w: reservation of ticket %d was refused", domain.ErrRejected, ticket.ID)
	}
	metrics.ReservationsCreated.Inc()

	result := newReservationResult(ticket)
	s.publishCreated(ctx, input.UserID, reservation, result)
	return result, nil
}

func (s *ReservationService) SumUserFlightCosts(ctx context.Context, userID int64) (float64, error) {
	pairs, err := s.reservations.FindFlightPriceAndCharge(ctx, userID)
	if err != nil {
		return 0, err
	}

	var flightSum, chargeSum float64
	for _, pc := range pairs {
		flightSum += pc.FlightPrice
	}
	for _, pc := range pairs {
		chargeSum += pc.Charge
	}
	return flightSum + chargeSum, nil
}

// ListTicketsByType accepts any type string; unknown types simply produce an empty page.
func (s *ReservationService) ListTicketsByType(ctx context.Context, ticketType string, page PageRequest) (*TicketPage, error) {
	airlineTickets, err := s.tickets.FindByType(ctx, ticketType)
	if err != nil {
		return nil, err
	}

	summaries := make([]TicketSummary, 0, len(airlineTickets))
	for _, t := range airlineTickets {
		summaries = append(summaries, toTicketSummary(t))
	}
	return paginate(summaries, page), nil
}

// ListArrivalLocationsByUsername returns each destination once; an unknown username yields an empty list.
func (s *ReservationService) ListArrivalLocationsByUsername(ctx context.Context, username string) ([]string, error) {
	locations, err := s.reservations.FindArrivalLocationsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(locations))
	distinct := make([]string, 0, len(locations))
	for _, l := range locations {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		distinct = append(distinct, l)
	}
	return distinct, nil
}

func (s *ReservationService) publishCreated(ctx context.Context, userID int64, r *domain.Reservation, result *ReservationResult) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		ID:              uuid.NewString(),
		Type:            kafka.EventReservationCreated,
		ReservationID:   r.ID,
		UserID:          userID,
		PassengerID:     r.PassengerID,
		AirlineTicketID: r.AirlineTicketID,
		TotalPrice:      result.TotalPrice,
		Status:          string(r.Status),
		ReserveAt:       r.ReserveAt,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, strconv.FormatInt(r.ID, 10), event); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		slog.WarnContext(ctx, "failed to publish reservation event", "reservation_id", r.ID, "error", err)
		return
	}
	metrics.EventsPublished.WithLabelValues("ok").Inc()
}

var _ ReservationUseCase = (*ReservationService)(nil)
