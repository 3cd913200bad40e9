package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	createCustomerHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/create_customer"
	createReservationHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/delete_reservation"
	getAgendaHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/get_agenda"
	getCalendarHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/get_calendar"
	getReportsHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/get_reports"
	getReservationsHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/get_reservations"
	loginHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/login"
	quoteReservationHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/quote_reservation"
	registerHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/register"
	updateReservationHandler "github.com/m04kA/UA-BookingService/internal/api/handlers/update_reservation"
	"github.com/m04kA/UA-BookingService/internal/api/middleware"
	"github.com/m04kA/UA-BookingService/internal/config"
	"github.com/m04kA/UA-BookingService/internal/infra/cache"
	customerRepo "github.com/m04kA/UA-BookingService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/UA-BookingService/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/UA-BookingService/internal/infra/storage/user"
	"github.com/m04kA/UA-BookingService/internal/integrations/sheetstore"
	authService "github.com/m04kA/UA-BookingService/internal/service/auth"
	customersService "github.com/m04kA/UA-BookingService/internal/service/customers"
	reportsService "github.com/m04kA/UA-BookingService/internal/service/reports"
	reservationsService "github.com/m04kA/UA-BookingService/internal/service/reservations"
	createReservationUC "github.com/m04kA/UA-BookingService/internal/usecase/create_reservation"
	deleteReservationUC "github.com/m04kA/UA-BookingService/internal/usecase/delete_reservation"
	getAgendaUC "github.com/m04kA/UA-BookingService/internal/usecase/get_agenda"
	getCalendarUC "github.com/m04kA/UA-BookingService/internal/usecase/get_calendar"
	quoteReservationUC "github.com/m04kA/UA-BookingService/internal/usecase/quote_reservation"
	updateReservationUC "github.com/m04kA/UA-BookingService/internal/usecase/update_reservation"
	"github.com/m04kA/UA-BookingService/pkg/logger"
	"github.com/m04kA/UA-BookingService/pkg/metrics"
)

func main() {
	// Секреты локальной разработки: отсутствие .env не ошибка
	_ = godotenv.Load()

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

	log.Info("Starting UA-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент внешнего табличного хранилища
	var storeMetrics sheetstore.MetricsRecorder
	if metricsCollector != nil {
		storeMetrics = metricsCollector
	}
	sheetClient := sheetstore.NewClient(
		cfg.SheetStore.URL,
		cfg.SheetStore.SpreadsheetID,
		cfg.SheetStore.Token,
		time.Duration(cfg.SheetStore.Timeout)*time.Second,
		storeMetrics,
		log,
	)
	log.Info("Sheet store client initialized (url=%s, spreadsheet=%s, timeout=%ds)",
		cfg.SheetStore.URL, cfg.SheetStore.SpreadsheetID, cfg.SheetStore.Timeout)

	// Кеш чтения реестра бронирований (если включен)
	var reservationCache *cache.ReservationCache
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		var cacheMetrics cache.MetricsRecorder
		if metricsCollector != nil {
			cacheMetrics = metricsCollector
		}
		reservationCache = cache.NewReservationCache(
			redisClient,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			cacheMetrics,
		)
		log.Info("Reservation read cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(sheetClient, cfg.SheetStore.ReservationWorksheet)
	customerRepository := customerRepo.NewRepository(sheetClient, cfg.SheetStore.CustomerWorksheet)
	userRepository := userRepo.NewRepository(sheetClient, cfg.SheetStore.UserWorksheet)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, cacheOrNil(reservationCache), log)
	customersSvc := customersService.NewService(customerRepository, log)
	reportsSvc := reportsService.NewService(customerRepository, log)
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)

	// Инициализируем use cases
	quoteReservationUseCase := quoteReservationUC.NewUseCase(log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		invalidatorOrNil(reservationCache),
		&createReservationUC.RealTimeProvider{},
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		invalidatorOrNil(reservationCache),
		log,
	)
	deleteReservationUseCase := deleteReservationUC.NewUseCase(
		reservationRepository,
		invalidatorOrNil(reservationCache),
		log,
	)
	getAgendaUseCase := getAgendaUC.NewUseCase(reservationsSvc, &getAgendaUC.RealTimeProvider{}, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(reservationsSvc, log)

	// Инициализируем handlers
	quoteReservation := quoteReservationHandler.NewHandler(quoteReservationUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(deleteReservationUseCase, log)
	getAgenda := getAgendaHandler.NewHandler(getAgendaUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	createCustomer := createCustomerHandler.NewHandler(customersSvc, log)
	getReports := getReportsHandler.NewHandler(reportsSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Бронирования ---
	// Проверка черновика: валидация, расчет цены, сводка подтверждения
	protected.HandleFunc("/reservations/quote", quoteReservation.Handle).Methods(http.MethodPost)

	// Подтверждение и сохранение бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Реестр бронирований (весь или последние N через ?limit=)
	protected.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Редактирование бронирования
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Представления ---
	// Повестка по диапазону дат
	protected.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)

	// Календарь месяца
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Клиенты и отчеты ---
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reports/summary", getReports.Handle).Methods(http.MethodGet)

	// CORS для браузерного фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

// cacheOrNil превращает нетипизированный nil указателя в nil интерфейса
// Без этого выключенный кеш выглядел бы для сервиса включенным
func cacheOrNil(c *cache.ReservationCache) reservationsService.ReservationCache {
	if c == nil {
		return nil
	}
	return c
}

// invalidatorOrNil то же для стороны мутаций
func invalidatorOrNil(c *cache.ReservationCache) createReservationUC.CacheInvalidator {
	if c == nil {
		return nil
	}
	return c
}
