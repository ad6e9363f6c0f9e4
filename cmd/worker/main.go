package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/cache"
	"github.com/Domenick1991/airreservation/internal/email"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/notify"
	"github.com/joho/godotenv"
)

const defaultDedupeTTL = 24 * time.Hour

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
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dedupeTTL := defaultDedupeTTL
	if cfg.Notify.DedupeTTLHours > 0 {
		dedupeTTL = time.Duration(cfg.Notify.DedupeTTLHours) * time.Hour
	}
	redisCache := cache.NewRedisCache(cfg.Redis, dedupeTTL)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		slog.Error("connect redis", "error", err)
		os.Exit(1)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ReservationTopic)
	defer consumer.Close()

	notifier := notify.NewNotifier(redisCache, email.NewSender(logger))

	slog.Info("notification worker started", "topic", cfg.Kafka.ReservationTopic, "group_id", cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, notifier.Handle); err != nil {
		slog.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("notification worker stopped")
}
