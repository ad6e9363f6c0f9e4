package email

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/airreservation/internal/kafka"
)

// Sender stands in for a mail gateway; it records the confirmation in the log.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	s.logger.InfoContext(ctx, "reservation confirmation sent",
		"event", event.Type,
		"reservation_id", event.ReservationID,
		"user_id", event.UserID,
		"airline_ticket_id", event.AirlineTicketID,
		"total_price", event.TotalPrice,
	)
	return nil
}
