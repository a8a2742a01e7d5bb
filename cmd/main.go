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

	cancelBookingHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/get_booking"
	getTurfBookingsHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/get_turf_bookings"
	getTurfScheduleHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/get_turf_schedule"
	getUserBookingsHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/get_user_bookings"
	updateTurfScheduleHandler "github.com/playgrid/turf-booking-service/internal/api/handlers/update_turf_schedule"
	"github.com/playgrid/turf-booking-service/internal/api/middleware"
	"github.com/playgrid/turf-booking-service/internal/config"
	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/internal/infra/cache/slotcache"
	reservationRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/schedule"
	playerServiceClient "github.com/playgrid/turf-booking-service/internal/integrations/playerservice"
	turfServiceClient "github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
	bookingsService "github.com/playgrid/turf-booking-service/internal/service/bookings"
	scheduleService "github.com/playgrid/turf-booking-service/internal/service/schedule"
	createBookingUC "github.com/playgrid/turf-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/playgrid/turf-booking-service/internal/usecase/get_available_slots"
	"github.com/playgrid/turf-booking-service/pkg/dbmetrics"
	"github.com/playgrid/turf-booking-service/pkg/logger"
	"github.com/playgrid/turf-booking-service/pkg/metrics"
	"github.com/playgrid/turf-booking-service/pkg/simpletxmanager"
	"github.com/playgrid/turf-booking-service/pkg/txmanager"
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

	log.Info("Starting turf-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем кэш сеток слотов (если включен Redis)
	type SlotCache interface {
		Get(ctx context.Context, turfID int64, date time.Time) ([]byte, bool)
		Set(ctx context.Context, turfID int64, date time.Time, payload []byte)
		Invalidate(ctx context.Context, turfID int64, dates ...time.Time)
	}
	var slotCache SlotCache = slotcache.Nop{}

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		slotCache = slotcache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
		log.Info("Slot cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	} else {
		log.Info("Slot cache disabled, slot grids computed on every request")
	}

	// Инициализируем интеграционных клиентов
	turfClient := turfServiceClient.NewClient(
		cfg.TurfService.URL,
		time.Duration(cfg.TurfService.Timeout)*time.Second,
		log,
	)
	playerClient := playerServiceClient.NewClient(
		cfg.PlayerService.URL,
		time.Duration(cfg.PlayerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (TurfService=%s timeout=%ds, PlayerService=%s timeout=%ds)",
		cfg.TurfService.URL, cfg.TurfService.Timeout, cfg.PlayerService.URL, cfg.PlayerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс transaction manager (используется в use case создания бронирования)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		reservationRepository,
		turfClient,
		slotCache,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		turfClient,
		log,
	)

	// Инициализируем use cases
	emptyRecurrencePolicy := domain.EmptyRecurrencePolicy(cfg.Booking.EmptyRecurrencePolicy)

	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		turfClient,
		playerClient,
		txMgr,
		slotCache,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		turfClient,
		slotCache,
		emptyRecurrencePolicy,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTurfBookings := getTurfBookingsHandler.NewHandler(bookingSvc, log)
	getTurfSchedule := getTurfScheduleHandler.NewHandler(scheduleSvc, log)
	updateTurfSchedule := updateTurfScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной ID запроса
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступных слотов площадки на дату
	api.HandleFunc("/turfs/{turfId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Действующее расписание площадки
	api.HandleFunc("/turfs/{turfId}/schedule",
		getTurfSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для менеджеров) ---
	// Список бронирований площадки
	protected.HandleFunc("/turfs/{turfId}/bookings", getTurfBookings.Handle).Methods(http.MethodGet)

	// Обновление расписания площадки
	protected.HandleFunc("/turfs/{turfId}/schedule", updateTurfSchedule.Handle).Methods(http.MethodPut)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
