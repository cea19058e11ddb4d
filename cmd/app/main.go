package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dlevchenko/airagency/config"
	"github.com/dlevchenko/airagency/internal/bootstrap"
	"github.com/dlevchenko/airagency/internal/cache"
	"github.com/dlevchenko/airagency/internal/kafka"
	"github.com/dlevchenko/airagency/internal/repository"
	"github.com/dlevchenko/airagency/internal/service/bookings"
	"github.com/dlevchenko/airagency/internal/service/customers"
	"github.com/dlevchenko/airagency/internal/service/flights"
)

func main() {
	log := newLogger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.Log.Env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	listTTL := time.Duration(cfg.Cache.ListTTLSeconds) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, listTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	customerRepo := repository.NewCustomerRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	customerService := customers.NewCustomerService(customerRepo, redisCache, producer, cfg.Kafka.EventsTopic, log)
	flightService := flights.NewFlightService(flightRepo, redisCache, producer, cfg.Kafka.EventsTopic, log)
	bookingService := bookings.NewBookingService(
		bookingRepo,
		customerRepo,
		flightRepo,
		producer,
		cfg.Kafka.EventsTopic,
		log,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, log, customerService, flightService, bookingService); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Str("service", "airagency").Logger()
}
