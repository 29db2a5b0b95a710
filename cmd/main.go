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

	clearDayHandler "github.com/bandicon/jam-schedule-service/internal/api/handlers/clear_day"
	confirmSelectionHandler "github.com/bandicon/jam-schedule-service/internal/api/handlers/confirm_selection"
	getDayGridHandler "github.com/bandicon/jam-schedule-service/internal/api/handlers/get_day_grid"
	getRosterHandler "github.com/bandicon/jam-schedule-service/internal/api/handlers/get_roster"
	listSchedulesHandler "github.com/bandicon/jam-schedule-service/internal/api/handlers/list_schedules"
	"github.com/bandicon/jam-schedule-service/internal/api/middleware"
	"github.com/bandicon/jam-schedule-service/internal/config"
	"github.com/bandicon/jam-schedule-service/internal/infra/storage/migrations"
	scheduleRepo "github.com/bandicon/jam-schedule-service/internal/infra/storage/schedule"
	bandiconClient "github.com/bandicon/jam-schedule-service/internal/integrations/bandicon"
	schedulesService "github.com/bandicon/jam-schedule-service/internal/service/schedules"
	confirmSelectionUC "github.com/bandicon/jam-schedule-service/internal/usecase/confirm_selection"
	getDayGridUC "github.com/bandicon/jam-schedule-service/internal/usecase/get_day_grid"
	"github.com/bandicon/jam-schedule-service/pkg/dbmetrics"
	"github.com/bandicon/jam-schedule-service/pkg/logger"
	"github.com/bandicon/jam-schedule-service/pkg/metrics"
	"github.com/bandicon/jam-schedule-service/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := defaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting jam-schedule-service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Применяем миграции
	if cfg.Database.RunMigrations {
		if err := migrations.Up(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем клиента основного API
	rosterClient := bandiconClient.NewClient(
		cfg.Bandicon.URL,
		time.Duration(cfg.Bandicon.Timeout)*time.Second,
		log,
	)
	log.Info("Bandicon client initialized (url=%s, timeout=%ds)", cfg.Bandicon.URL, cfg.Bandicon.Timeout)

	// Инициализируем репозиторий и transaction manager
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	scheduleSvc := schedulesService.NewService(scheduleRepository, rosterClient, log)

	// Инициализируем use cases
	getDayGridUseCase := getDayGridUC.NewUseCase(scheduleRepository, rosterClient, log)

	confirmSelectionUseCase := confirmSelectionUC.NewUseCase(
		scheduleRepository,
		getDayGridUseCase,
		txMgr,
		metricsCollector,
		confirmSelectionUC.Options{
			Atomic:  cfg.Schedule.AtomicSubmission,
			Title:   cfg.Schedule.Title,
			Content: cfg.Schedule.Content,
		},
		log,
	)
	log.Info("Schedule submission mode: atomic=%t", cfg.Schedule.AtomicSubmission)

	// Инициализируем handlers
	getRoster := getRosterHandler.NewHandler(scheduleSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(scheduleSvc, log)
	getDayGrid := getDayGridHandler.NewHandler(getDayGridUseCase, log)
	confirmSelection := confirmSelectionHandler.NewHandler(confirmSelectionUseCase, log)
	clearDay := clearDayHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(middleware.RateLimiterOptions{
			RPS:            cfg.RateLimit.RPS,
			Burst:          cfg.RateLimit.Burst,
			IdleTTL:        time.Duration(cfg.RateLimit.IdleTTL) * time.Second,
			TrustedProxies: cfg.RateLimit.TrustedProxies,
		}, log)
		if err != nil {
			log.Fatal("Failed to create rate limiter: %v", err)
		}
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: rps=%.1f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Состав джема
	api.HandleFunc("/jams/{jamId}/roster", getRoster.Handle).Methods(http.MethodGet)

	// Интервалы за дату или месяц
	api.HandleFunc("/jams/{jamId}/schedules", listSchedules.Handle).Methods(http.MethodGet)

	// Сетка доступности на дату
	api.HandleFunc("/jams/{jamId}/schedules/{date}/grid", getDayGrid.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Подтверждение выбранных часов
	protected.HandleFunc("/jams/{jamId}/schedules/{date}/selection", confirmSelection.Handle).Methods(http.MethodPost)

	// Удаление своих интервалов за дату
	protected.HandleFunc("/jams/{jamId}/schedules/{date}", clearDay.Handle).Methods(http.MethodDelete)

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
