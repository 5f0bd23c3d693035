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
	"github.com/rs/cors"

	assignTableHandler "github.com/rms-platform/table-service/internal/api/handlers/assign_table"
	cancelBookingHandler "github.com/rms-platform/table-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/rms-platform/table-service/internal/api/handlers/check_availability"
	createBookingHandler "github.com/rms-platform/table-service/internal/api/handlers/create_booking"
	createTableHandler "github.com/rms-platform/table-service/internal/api/handlers/create_table"
	deactivateTableHandler "github.com/rms-platform/table-service/internal/api/handlers/deactivate_table"
	getBookingHandler "github.com/rms-platform/table-service/internal/api/handlers/get_booking"
	getRestaurantBookingsHandler "github.com/rms-platform/table-service/internal/api/handlers/get_restaurant_bookings"
	getScheduleHandler "github.com/rms-platform/table-service/internal/api/handlers/get_schedule"
	listTablesHandler "github.com/rms-platform/table-service/internal/api/handlers/list_tables"
	updateBookingStatusHandler "github.com/rms-platform/table-service/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/rms-platform/table-service/internal/api/handlers/update_schedule"
	updateTableHandler "github.com/rms-platform/table-service/internal/api/handlers/update_table"
	"github.com/rms-platform/table-service/internal/api/middleware"
	"github.com/rms-platform/table-service/internal/config"
	bookingRepo "github.com/rms-platform/table-service/internal/infra/storage/booking"
	restaurantRepo "github.com/rms-platform/table-service/internal/infra/storage/restaurant"
	scheduleRepo "github.com/rms-platform/table-service/internal/infra/storage/schedule"
	tableRepo "github.com/rms-platform/table-service/internal/infra/storage/table"
	bookingsService "github.com/rms-platform/table-service/internal/service/bookings"
	scheduleService "github.com/rms-platform/table-service/internal/service/schedule"
	tablesService "github.com/rms-platform/table-service/internal/service/tables"
	assignTableUC "github.com/rms-platform/table-service/internal/usecase/assign_table"
	checkAvailabilityUC "github.com/rms-platform/table-service/internal/usecase/check_availability"
	createBookingUC "github.com/rms-platform/table-service/internal/usecase/create_booking"
	"github.com/rms-platform/table-service/pkg/dbmetrics"
	"github.com/rms-platform/table-service/pkg/logger"
	"github.com/rms-platform/table-service/pkg/metrics"
	"github.com/rms-platform/table-service/pkg/simpletxmanager"
	"github.com/rms-platform/table-service/pkg/txmanager"
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

	log.Info("Starting rms-table-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		tableRepository      *tableRepo.Repository
		scheduleRepository   *scheduleRepo.Repository
		restaurantRepository *restaurantRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	tableSvc := tablesService.NewService(tableRepository, restaurantRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, restaurantRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		tableRepository,
		scheduleRepository,
		restaurantRepository,
		checkAvailabilityUC.AllocationConfig{
			DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
			SlotIntervalMinutes:    cfg.Booking.SlotIntervalMinutes,
			DefaultOpenTime:        cfg.Booking.DefaultOpenTime,
			DefaultCloseTime:       cfg.Booking.DefaultCloseTime,
		},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tableRepository,
		scheduleRepository,
		restaurantRepository,
		txMgr,
		createBookingUC.AllocationConfig{
			DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
			DefaultOpenTime:        cfg.Booking.DefaultOpenTime,
			DefaultCloseTime:       cfg.Booking.DefaultCloseTime,
			NumberPrefix:           cfg.Booking.NumberPrefix,
		},
		log,
	)

	assignTableUseCase := assignTableUC.NewUseCase(
		bookingRepository,
		tableRepository,
		txMgr,
		cfg.Booking.DefaultDurationMinutes,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	assignTable := assignTableHandler.NewHandler(assignTableUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	createTable := createTableHandler.NewHandler(tableSvc, log)
	listTables := listTablesHandler.NewHandler(tableSvc, log)
	updateTable := updateTableHandler.NewHandler(tableSvc, log)
	deactivateTable := deactivateTableHandler.NewHandler(tableSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Доступность слотов на дату (по ресторану и ресторан по умолчанию)
	api.HandleFunc("/restaurants/{restaurantId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Недельное расписание ресторана
	api.HandleFunc("/restaurants/{restaurantId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-ID header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	staff.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	staff.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	staff.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования
	staff.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Назначение / снятие стола
	staff.HandleFunc("/bookings/{bookingId}/table", assignTable.Handle).Methods(http.MethodPatch)

	// Список бронирований ресторана
	staff.HandleFunc("/restaurants/{restaurantId}/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)

	// --- Столы ---
	staff.HandleFunc("/restaurants/{restaurantId}/tables", createTable.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/restaurants/{restaurantId}/tables", listTables.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/tables/{tableId}/deactivate", deactivateTable.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	staff.HandleFunc("/restaurants/{restaurantId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// CORS для браузерных клиентов панели ресторана
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", middleware.StaffHeader},
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
