package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Domenick1991/airtransport/config"
	"github.com/Domenick1991/airtransport/internal/cache"
	"github.com/Domenick1991/airtransport/internal/console"
	"github.com/Domenick1991/airtransport/internal/kafka"
	"github.com/Domenick1991/airtransport/internal/repository"
	"github.com/Domenick1991/airtransport/internal/service"
	"github.com/Domenick1991/airtransport/internal/service/fleet"
	"github.com/Domenick1991/airtransport/internal/service/flights"
	"github.com/Domenick1991/airtransport/internal/service/tickets"
	"github.com/Domenick1991/airtransport/internal/shell"
	"github.com/Domenick1991/airtransport/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	// SIGINT keeps its default action: the process ends at once, like the
	// exit option. Every change is already on disk.
	ctx := context.Background()

	store := repository.NewStore()

	var storeOpts []storage.Option
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		storeOpts = append(storeOpts, storage.WithMirror(redisCache))
	}
	jsonStore := storage.NewJSONStore(cfg.Storage.DataDir, store, storeOpts...)
	jsonStore.LoadAll()

	var commitOpts []service.CommitterOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := producer.CheckConnection(checkCtx)
		cancel()
		if err != nil {
			slog.Warn("kafka unavailable, events are disabled", "error", err)
		} else {
			commitOpts = append(commitOpts, service.WithProducer(producer, cfg.Kafka.EventsTopic))
		}
	}
	committer := service.NewCommitter(jsonStore, commitOpts...)

	flightService := flights.NewFlightService(store.Flights, committer)
	ticketService := tickets.NewTicketService(
		store.Flights,
		store.Tickets,
		committer,
		tickets.WithCashRegisters(cfg.Tickets.CashRegisters),
	)
	fleetService := fleet.NewFleetService(store.Airplanes, store.Airports, committer)

	c := console.New(os.Stdin, os.Stdout, console.Options{
		Width: cfg.Console.Width,
		Color: cfg.Console.Color,
		Pause: cfg.Console.Pause,
	})

	if err := shell.New(c, flightService, ticketService, fleetService).Run(ctx); err != nil {
		log.Fatalf("shell error: %v", err)
	}
}
