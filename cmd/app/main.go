package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/bootstrap"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/repository"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var opts []reservation.ReservationServiceOption
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.ReservationTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			slog.Warn("kafka unavailable, reservation events will fail to publish", "error", err)
		}
		opts = append(opts, reservation.WithEventPublisher(producer, cfg.Kafka.ReservationTopic))
	}

	reservationService := reservation.NewReservationService(
		repository.NewUserRepository(pool),
		repository.NewPassengerRepository(pool),
		repository.NewAirlineTicketRepository(pool),
		repository.NewReservationRepository(pool),
		opts...,
	)

	if err := bootstrap.Run(ctx, cfg, reservationService); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
