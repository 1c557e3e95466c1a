package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	changeStepHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/change_step"
	confirmBookingHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/confirm_booking"
	createSessionHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/create_session"
	getSessionHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/get_session"
	getUpcomingHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/get_upcoming_appointments"
	resetSessionHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/reset_session"
	selectDateHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/select_date"
	selectServiceHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/select_service"
	selectSlotHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/select_slot"
	setCustomerHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/set_customer"
	toggleExtraHandler "github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers/toggle_extra"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/middleware"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/availability"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/config"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	catalogCache "github.com/lavaderolesan/LSN-BookingFlow/internal/infra/cache/catalog"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/seed"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/session"
	appointmentRepo "github.com/lavaderolesan/LSN-BookingFlow/internal/infra/storage/appointment"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/integrations/schedcore"
	confirmBookingUC "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/confirm_booking"
	getDaySlotsUC "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/get_day_slots"
	loadCatalogUC "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/load_catalog"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/logger"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LSN-BookingFlow...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	classifier := domain.NewClassifier(
		cfg.Classifier.AddOnKeywords,
		classifierRules(cfg.Classifier.Categories),
		cfg.Classifier.AddOnCategory,
		cfg.Classifier.FallbackCategory,
	)

	// Session store
	store := session.NewStore(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		time.Duration(cfg.Session.CleanupIntervalMinutes)*time.Minute,
	)
	defer store.Close()

	// Optional local appointment records database
	var recorder confirmBookingUC.Recorder
	var appointmentRepository *appointmentRepo.Repository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		appointmentRepository = appointmentRepo.NewRepository(db)
		recorder = appointmentRepository
	}

	// Optional catalog cache
	var cache loadCatalogUC.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Connected to redis (addr=%s)", cfg.Redis.Addr)

		cache = catalogCache.New(redisClient, time.Duration(cfg.Redis.CatalogTTLHours)*time.Hour)
	}

	// Catalog, availability and scheduling sources: built-in seed data or a
	// remote scheduling backend.
	var (
		catalogSource loadCatalogUC.CatalogSource
		slotSource    getDaySlotsUC.SlotSource
		scheduler     confirmBookingUC.SchedulerClient
	)

	if cfg.Backend.Mock {
		seedCatalog := seed.NewCatalog()
		catalogSource = seedCatalog
		slotSource = availability.NewEngine(
			cfg.Booking.SlotStepMinutes,
			cfg.Booking.AdvanceBookingDays,
			cfg.Booking.ProviderID,
			cfg.Booking.ProviderName,
			nil,
		)
		scheduler = seed.NewBackend(seedCatalog)
		log.Info("Running in mock mode with the built-in catalog")
	} else {
		client := schedcore.NewClient(cfg.Backend.URL, time.Duration(cfg.Backend.Timeout)*time.Second, log)
		catalogSource = client
		slotSource = client
		scheduler = client
		log.Info("Scheduling backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)
	}

	// Use cases
	loadCatalogUseCase := loadCatalogUC.NewUsecase(catalogSource, cache, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUsecase(slotSource, log)
	confirmBookingUseCase := confirmBookingUC.NewUsecase(scheduler, recorder, log)

	// Handlers
	createSession := createSessionHandler.NewHandler(
		loadCatalogUseCase, getDaySlotsUseCase, store, classifier, cfg.Backend.BusinessSlug, log)
	getSession := getSessionHandler.NewHandler(store, classifier, log)
	selectDate := selectDateHandler.NewHandler(getDaySlotsUseCase, store, classifier, log)
	selectSlot := selectSlotHandler.NewHandler(store, classifier, log)
	selectService := selectServiceHandler.NewHandler(store, classifier, log)
	toggleExtra := toggleExtraHandler.NewHandler(store, classifier, log)
	setCustomer := setCustomerHandler.NewHandler(store, classifier, log)
	changeStep := changeStepHandler.NewHandler(store, classifier, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, store, classifier, log)
	resetSession := resetSessionHandler.NewHandler(store, classifier, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/slot", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/service", selectService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/extras", toggleExtra.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/customer", setCustomer.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/step", changeStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/reset", resetSession.Handle).Methods(http.MethodPost)

	if appointmentRepository != nil {
		getUpcoming := getUpcomingHandler.NewHandler(appointmentRepository, log)
		api.HandleFunc("/appointments/upcoming", getUpcoming.Handle).Methods(http.MethodGet)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func classifierRules(rules []config.CategoryRule) []domain.CategoryRule {
	out := make([]domain.CategoryRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, domain.CategoryRule{Name: r.Name, Keywords: r.Keywords})
	}
	return out
}
