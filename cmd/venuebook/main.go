package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/handlers/bookingflow"
	catalogapp "venuebook/internal/app/handlers/catalog"
	"venuebook/internal/app/handlers/dashboard"
	"venuebook/internal/app/middleware"
	appoutbox "venuebook/internal/app/outbox"
	"venuebook/internal/app/queries"
	"venuebook/internal/infra/broker/kafka"
	"venuebook/internal/infra/catalog"
	"venuebook/internal/infra/config"
	mongodb "venuebook/internal/infra/db/mongo"
	ginserver "venuebook/internal/infra/http/gin"
	"venuebook/internal/infra/obs"
	infraoutbox "venuebook/internal/infra/outbox"
	"venuebook/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, cleanup := buildApplication(ctx, cfg, logger)
	defer cleanup()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	ready    func() error
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (application, func()) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	client := catalog.New(cfg.CatalogBaseURL, cfg.CatalogAPIKey, &http.Client{}, logger)

	// Stores: mongo when configured, in-memory otherwise.
	var idStore middleware.IdempotencyStore = memory.NewIdempotencyStore(cfg.IdempotencyTTL)
	var outboxStore infraoutbox.Store = memory.NewOutbox()
	ready := func() error { return nil }
	if cfg.MongoURI != "" {
		mongoClient, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", "error", err)
			os.Exit(1)
		}
		idStore = mongodb.NewIdempotencyStore(mongoClient.DB, cfg.IdempotencyTTL)
		outboxStore = infraoutbox.NewMongoStore(mongoClient.DB)
		ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return mongoClient.Ping(pingCtx)
		}
	} else {
		logger.Warn("MONGO_URI not set, using in-memory stores")
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			logger.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		cleanups = append(cleanups, func() { _ = producer.Close() })
		worker := &infraoutbox.Worker{
			Store:       outboxStore,
			Producer:    producer,
			Logger:      logger,
			Interval:    cfg.OutboxPollInterval,
			TopicPrefix: cfg.KafkaTopicPrefix,
			Backoff:     cfg.RetryBackoff,
		}
		go func() {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
	} else {
		logger.Warn("KAFKA_BROKERS not set, events stay in the outbox")
	}

	encoder := appoutbox.JSONEventEncoder{}

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, bookingflow.CreateBookingCommand{}.Key(), &bookingflow.CreateBookingHandler{
		Catalog: client,
		Gateway: client,
		Outbox:  outboxStore,
		Encoder: encoder,
	})
	commands.RegisterHandler(commandBus, bookingflow.UpdateGuestsCommand{}.Key(), &bookingflow.UpdateGuestsHandler{
		Profiles: client,
		Catalog:  client,
		Gateway:  client,
		Outbox:   outboxStore,
		Encoder:  encoder,
	})
	commands.RegisterHandler(commandBus, bookingflow.CancelBookingCommand{}.Key(), &bookingflow.CancelBookingHandler{
		Profiles: client,
		Gateway:  client,
		Outbox:   outboxStore,
		Encoder:  encoder,
	})
	commands.RegisterHandler(commandBus, bookingflow.DeleteVenueCommand{}.Key(), &bookingflow.DeleteVenueHandler{
		Catalog: client,
		Manager: client,
		Outbox:  outboxStore,
		Encoder: encoder,
	})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, catalogapp.SearchVenuesQuery{}.Key(), &catalogapp.SearchVenuesHandler{Catalog: client})
	queries.RegisterHandler(queryBus, catalogapp.GetVenueQuery{}.Key(), &catalogapp.GetVenueHandler{Catalog: client})
	queries.RegisterHandler(queryBus, dashboard.CustomerBookingsQuery{}.Key(), &dashboard.CustomerBookingsHandler{Profiles: client})
	queries.RegisterHandler(queryBus, dashboard.ManagerOverviewQuery{}.Key(), &dashboard.ManagerOverviewHandler{Profiles: client})

	inflight := middleware.NewInFlightRegistry()
	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Idempotency(idStore, nil),
		middleware.InFlight(inflight),
	)
	queryBusWithMiddleware := middleware.ChainQueries(
		queryBus,
		middleware.QueryInFlight(inflight),
	)

	return application{
		handlers: ginserver.Handlers{
			Venue:   ginserver.VenueHandler{Queries: queryBusWithMiddleware},
			Booking: ginserver.BookingHandler{Commands: commandBusWithMiddleware},
			Profile: ginserver.ProfileHandler{Queries: queryBusWithMiddleware},
			Manager: ginserver.ManagerHandler{Commands: commandBusWithMiddleware},
		},
		ready: ready,
	}, cleanup
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
