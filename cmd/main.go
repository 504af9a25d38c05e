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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	getCalendarHandler "github.com/Abdo0422/GestionReservation/internal/api/handlers/get_calendar"
	getDepartmentsHandler "github.com/Abdo0422/GestionReservation/internal/api/handlers/get_departments"
	selectDayHandler "github.com/Abdo0422/GestionReservation/internal/api/handlers/select_day"
	toggleStatusHandler "github.com/Abdo0422/GestionReservation/internal/api/handlers/toggle_status"
	"github.com/Abdo0422/GestionReservation/internal/api/middleware"
	"github.com/Abdo0422/GestionReservation/internal/config"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	reservationCache "github.com/Abdo0422/GestionReservation/internal/infra/cache/reservation"
	reservationRepo "github.com/Abdo0422/GestionReservation/internal/infra/storage/reservation"
	"github.com/Abdo0422/GestionReservation/internal/integrations/reservationservice"
	reservationsService "github.com/Abdo0422/GestionReservation/internal/service/reservations"
	getCalendarUC "github.com/Abdo0422/GestionReservation/internal/usecase/get_calendar"
	selectDayUC "github.com/Abdo0422/GestionReservation/internal/usecase/select_day"
	toggleStatusUC "github.com/Abdo0422/GestionReservation/internal/usecase/toggle_status"
	"github.com/Abdo0422/GestionReservation/pkg/dbmetrics"
	"github.com/Abdo0422/GestionReservation/pkg/logger"
	"github.com/Abdo0422/GestionReservation/pkg/metrics"
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

	if _, err := maxprocs.Set(maxprocs.Logger(log.Info)); err != nil {
		log.Warn("Failed to set GOMAXPROCS: %v", err)
	}

	log.Info("Starting reservation calendar service...")
	log.Info("Configuration loaded from config.toml (source=%s)", cfg.Source.Kind)

	location, err := cfg.Calendar.LoadLocation()
	if err != nil {
		log.Fatal("Failed to load calendar location %q: %v", cfg.Calendar.Location, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник бронирований: REST backend или БД backend'а
	var source reservationsService.ReservationSource

	switch cfg.Source.Kind {
	case domain.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			source = reservationRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			source = reservationRepo.NewRepository(db)
		}

	default:
		source = reservationservice.NewClient(cfg.Backend.URL, cfg.Backend.TimeoutDuration(), log.With("integration", "reservation-backend"))
		log.Info("Reservation backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)
	}

	// Инициализируем сервисы
	var svcOpts []reservationsService.Option
	if cfg.Metrics.Enabled {
		svcOpts = append(svcOpts, reservationsService.WithMetrics(metricsCollector))
	}

	if cfg.Cache.Enabled {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := reservationCache.Connect(pingCtx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		cancel()
		if err != nil {
			log.Warn("Redis cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			svcOpts = append(svcOpts, reservationsService.WithCache(reservationCache.NewCache(redisClient, cfg.Cache.TTLDuration())))
			log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
		}
	}

	reservationsSvc := reservationsService.NewService(source, cfg.Source.Kind, log, svcOpts...)

	// Инициализируем use cases
	var calendarMetrics getCalendarUC.Metrics
	if cfg.Metrics.Enabled {
		calendarMetrics = metricsCollector
	}
	getCalendarUseCase := getCalendarUC.NewUseCase(reservationsSvc, calendarMetrics, location, cfg.Calendar.DefaultLanguage, log)
	selectDayUseCase := selectDayUC.NewUseCase(reservationsSvc, location, cfg.Calendar.DefaultLanguage, log)
	toggleStatusUseCase := toggleStatusUC.NewUseCase(reservationsSvc, location, cfg.Calendar.DefaultLanguage, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	selectDay := selectDayHandler.NewHandler(selectDayUseCase, log)
	toggleStatus := toggleStatusHandler.NewHandler(toggleStatusUseCase, log)
	getDepartments := getDepartmentsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log.With("component", "http")))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 10*time.Minute)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (%.1f req/s, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Список отделов
	api.HandleFunc("/departments", getDepartments.Handle).Methods(http.MethodGet)

	// Сетка месяца отдела
	api.HandleFunc("/departments/{departmentId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Клик по дню
	api.HandleFunc("/departments/{departmentId}/calendar/days/{day}", selectDay.Handle).Methods(http.MethodPost)

	// Переключение статуса "En attente" <-> "Confirmé"
	api.HandleFunc("/departments/{departmentId}/reservations/{reservationId}/status", toggleStatus.Handle).Methods(http.MethodPatch)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
