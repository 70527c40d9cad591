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

	availabilityapp "namunjari/internal/app/availability"
	bookingapp "namunjari/internal/app/booking"
	"namunjari/internal/app/policies"
	syncapp "namunjari/internal/app/sync"
	"namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/infra/broker/kafka"
	"namunjari/internal/infra/config"
	mongodb "namunjari/internal/infra/db/mongo"
	ginserver "namunjari/internal/infra/http/gin"
	"namunjari/internal/infra/notify"
	"namunjari/internal/infra/obs"
	"namunjari/internal/infra/security"
	"namunjari/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	app, cleanup, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	health := obs.NewHealth()
	health.Check("storage", app.ready)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, health, app.handlers)

	if len(cfg.FeedURLs) > 0 {
		runner := &syncapp.Runner{Syncer: app.syncer, Interval: cfg.SyncInterval}
		go func() {
			if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("sync runner stopped", "error", err)
			}
		}()
	} else {
		logger.Warn("no calendar feeds configured, sync disabled")
	}

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
	syncer   *syncapp.Syncer
	ready    func(context.Context) error
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (application, func(), error) {
	cleanup := func() {}

	var (
		reservations reservation.Repository
		syncStore    availability.SyncStore
		ready        = func(context.Context) error { return nil }
	)
	if cfg.MongoURI != "" {
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return application{}, cleanup, err
		}
		if err := client.Ping(ctx); err != nil {
			return application{}, cleanup, err
		}
		reservations = mongodb.NewReservationRepository(client)
		syncStore = mongodb.NewSyncRepository(client)
		ready = func(ctx context.Context) error {
			return client.Ping(ctx)
		}
		logger.Info("using mongo storage", "db", cfg.MongoDB)
	} else {
		reservations = memory.NewReservationRepository()
		syncStore = memory.NewSyncStore()
		logger.Warn("MONGO_URI not set, using in-memory storage")
	}

	var notifier policies.Notifier
	if cfg.TelegramToken != "" {
		notifier = notify.NewRelay(&notify.Telegram{
			Token:   cfg.TelegramToken,
			ChatIDs: cfg.TelegramChatIDs,
		})
	} else {
		logger.Warn("TELEGRAM_TOKEN not set, operator notifications disabled")
	}

	var sms policies.SMSSender
	if cfg.MMSAppKey != "" {
		sms = &notify.MMSClient{
			AppKey:    cfg.MMSAppKey,
			SecretKey: cfg.MMSSecretKey,
			SendNo:    cfg.MMSSendNo,
		}
	}

	var publisher policies.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, nil)
		if err != nil {
			return application{}, cleanup, err
		}
		cleanup = func() {
			if err := kp.Close(); err != nil {
				logger.Warn("kafka close failed", "error", err)
			}
		}
		publisher = kp
	}

	availabilitySvc := &availabilityapp.Service{
		Reservations: reservations,
		SyncBlocks:   syncStore,
		Logger:       logger,
	}
	bookingSvc := &bookingapp.Service{
		Availability: availabilitySvc,
		Reservations: reservations,
		Notifier:     notifier,
		Publisher:    publisher,
		SMS:          sms,
		Logger:       logger,
	}

	feeds := make(map[property.ID]string, len(cfg.FeedURLs))
	for id, url := range cfg.FeedURLs {
		feeds[property.ID(id)] = url
	}
	syncer := &syncapp.Syncer{
		Store:     syncStore,
		Notifier:  notifier,
		Publisher: publisher,
		Client:    &http.Client{Timeout: cfg.FeedFetchTimeout},
		Feeds:     feeds,
		Logger:    logger,
	}

	var adminAuth *ginserver.AdminAuth
	if cfg.AdminPasswordHash != "" {
		adminAuth = &ginserver.AdminAuth{Verifier: security.PasswordVerifier{Hash: cfg.AdminPasswordHash}}
	} else {
		logger.Warn("ADMIN_PASSWORD_HASH not set, admin endpoints locked")
		adminAuth = &ginserver.AdminAuth{}
	}

	handlers := ginserver.Handlers{
		Availability: ginserver.AvailabilityHandler{
			Availability: availabilitySvc,
			Now:          func() dateutil.Day { return dateutil.Today(time.Now()) },
		},
		Reservation: ginserver.ReservationHandler{Booking: bookingSvc},
		Admin:       ginserver.AdminHandler{Booking: bookingSvc},
		AdminAuth:   adminAuth.Handle,
	}

	return application{handlers: handlers, syncer: syncer, ready: ready}, cleanup, nil
}
