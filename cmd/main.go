package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers/create_booking"
	downloadICSHandler "github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers/download_ics"
	getBookingsHandler "github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers/get_bookings"
	getSettingsHandler "github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers/get_settings"
	getTimeSlotsHandler "github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers/get_time_slots"
	googleAuthHandler "github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers/google_auth"
	updateSettingsHandler "github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers/update_settings"
	"github.com/Zero-Index-Tech/ZeroBook/internal/api/middleware"
	"github.com/Zero-Index-Tech/ZeroBook/internal/config"
	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	bookingRepo "github.com/Zero-Index-Tech/ZeroBook/internal/infra/storage/booking"
	"github.com/Zero-Index-Tech/ZeroBook/internal/integrations/authservice"
	"github.com/Zero-Index-Tech/ZeroBook/internal/integrations/googlecalendar"
	bookingsService "github.com/Zero-Index-Tech/ZeroBook/internal/service/bookings"
	settingsService "github.com/Zero-Index-Tech/ZeroBook/internal/service/settings"
	"github.com/Zero-Index-Tech/ZeroBook/internal/state"
	createBookingUC "github.com/Zero-Index-Tech/ZeroBook/internal/usecase/create_booking"
	getTimeSlotsUC "github.com/Zero-Index-Tech/ZeroBook/internal/usecase/get_time_slots"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/logger"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ZeroBook...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Состояние сессии: настройки по умолчанию и слоты стандартного окна
	appState := state.New(domain.DefaultSettings(), cfg.Booking.WindowDays)
	log.Info("Application state initialized: window_days=%d, slots=%d",
		cfg.Booking.WindowDays, len(appState.Slots()))

	// Подключаемся к базе данных (опционально)
	var bookingRepository *bookingRepo.Repository
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
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		bookingRepository = bookingRepo.NewRepository(db)

		// Восстанавливаем сохраненные бронирования в состояние сессии
		hydrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		saved, err := bookingRepository.List(hydrateCtx)
		cancel()
		switch {
		case err == nil:
			appState.Restore(saved)
			log.Info("Restored %d bookings from store", len(saved))
		case errors.Is(err, bookingRepo.ErrTableNotFound):
			log.Warn("Bookings table does not exist, starting with empty state")
		default:
			log.Fatal("Failed to load bookings from store: %v", err)
		}
	} else {
		log.Info("Database disabled, bookings kept in memory only")
	}

	// Инициализируем интеграционных клиентов (опционально)
	var authClient *authservice.Client
	if cfg.AuthService.URL != "" {
		authClient = authservice.NewClient(
			cfg.AuthService.URL,
			cfg.AuthService.AnonKey,
			time.Duration(cfg.AuthService.Timeout)*time.Second,
			log,
		)
		log.Info("Auth service client initialized (url=%s, timeout=%ds)",
			cfg.AuthService.URL, cfg.AuthService.Timeout)
	} else {
		log.Info("Auth service disabled, emails and calendar sync are off")
	}

	location, err := time.LoadLocation(cfg.Calendar.TimeZone)
	if err != nil {
		log.Fatal("Failed to load calendar timezone %q: %v", cfg.Calendar.TimeZone, err)
	}
	calendarClient := googlecalendar.NewClient(location, log)

	// Опциональные зависимости use case: typed nil в интерфейсе не равен nil,
	// поэтому интерфейсные переменные заполняются только при включении
	var (
		repoDep    createBookingUC.BookingRepository
		authDep    createBookingUC.AuthServiceClient
		metricsDep createBookingUC.Metrics
	)
	if bookingRepository != nil {
		repoDep = bookingRepository
	}
	if authClient != nil {
		authDep = authClient
	}
	if metricsCollector != nil {
		metricsDep = metricsCollector
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(appState, log)
	bookingsSvc := bookingsService.NewService(appState, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.New(
		appState,
		repoDep,
		authDep,
		calendarClient,
		metricsDep,
		log,
	)
	getTimeSlotsUseCase := getTimeSlotsUC.New(appState, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	downloadICS := downloadICSHandler.NewHandler(bookingsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; роль вызывающего берется из заголовка X-User-Role
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Role)

	// --- Слоты и бронирования ---
	api.HandleFunc("/slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/ics", downloadICS.Handle).Methods(http.MethodGet)

	// --- Настройки (владелец) ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Подключение календаря (владелец, требует auth-сервис) ---
	if authClient != nil {
		googleAuth := googleAuthHandler.NewHandler(authClient, cfg.AuthService.RedirectURL, log)
		api.HandleFunc("/calendar/status", googleAuth.HandleStatus).Methods(http.MethodGet)
		api.HandleFunc("/calendar/connect", googleAuth.HandleConnect).Methods(http.MethodPost)
		api.HandleFunc("/calendar/disconnect", googleAuth.HandleDisconnect).Methods(http.MethodDelete)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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
