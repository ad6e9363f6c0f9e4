package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/metrics"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Deduper interface {
	MarkNotified(ctx context.Context, reservationID int64) (bool, error)
	UnmarkNotified(ctx context.Context, reservationID int64) error
}

type Sender interface {
	Send(ctx context.Context, event kafka.ReservationEvent) error
}

// Notifier turns reservation events into confirmations, at most once per reservation.
type Notifier struct {
	deduper Deduper
	sender  Sender
}

func NewNotifier(deduper Deduper, sender Sender) *Notifier {
	return &Notifier{deduper: deduper, sender: sender}
}

// Handle is a kafka.Consumer handler. Undecodable or foreign events are skipped so they do not block the partition.
func (n *Notifier) Handle(ctx context.Context, msg kafkaGo.Message) error {
	var event kafka.ReservationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		slog.WarnContext(ctx, "decode reservation event", "offset", msg.Offset, "error", err)
		metrics.NotificationsSent.WithLabelValues("malformed").Inc()
		return nil
	}
	if event.Type != kafka.EventReservationCreated {
		return nil
	}

	if n.deduper != nil {
		first, err := n.deduper.MarkNotified(ctx, event.ReservationID)
		if err != nil {
			return err
		}
		if !first {
			metrics.NotificationsSent.WithLabelValues("duplicate").Inc()
			return nil
		}
	}

	if err := n.sender.Send(ctx, event); err != nil {
		if n.deduper != nil {
			_ = n.deduper.UnmarkNotified(ctx, event.ReservationID)
		}
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return err
	}
	metrics.NotificationsSent.WithLabelValues("sent").Inc()
	return nil
}
