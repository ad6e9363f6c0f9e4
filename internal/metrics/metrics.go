package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "air_reservations_created_total",
		Help: "The total number of reservations persisted",
	})
	ReservationsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "air_reservations_rejected_total",
		Help: "The total number of reservation writes refused by the store",
	})
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "air_reservation_events_published_total",
		Help: "The total number of reservation events handed to Kafka, by outcome",
	}, []string{"outcome"})
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "air_reservation_notifications_total",
		Help: "The total number of reservation notifications processed, by outcome",
	}, []string{"outcome"})
)
