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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/create_reservation"
	deleteDatePriceHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/delete_date_price"
	getAvailableSlotsHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/get_available_slots"
	getPriceQuoteHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/get_price_quote"
	getReservationHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/get_reservation"
	getRoomReservationsHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/get_room_reservations"
	getUserReservationsHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/get_user_reservations"
	listDatePricesHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/list_date_prices"
	rescheduleReservationHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/reschedule_reservation"
	upsertDatePriceHandler "github.com/aitzhn/PS-BookingService/internal/api/handlers/upsert_date_price"
	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	"github.com/aitzhn/PS-BookingService/internal/config"
	datepriceRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/dateprice"
	reservationRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/reservation"
	profileServiceClient "github.com/aitzhn/PS-BookingService/internal/integrations/profileservice"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
	datepricesService "github.com/aitzhn/PS-BookingService/internal/service/dateprices"
	reservationsService "github.com/aitzhn/PS-BookingService/internal/service/reservations"
	createReservationUC "github.com/aitzhn/PS-BookingService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/aitzhn/PS-BookingService/internal/usecase/get_available_slots"
	getPriceQuoteUC "github.com/aitzhn/PS-BookingService/internal/usecase/get_price_quote"
	rescheduleReservationUC "github.com/aitzhn/PS-BookingService/internal/usecase/reschedule_reservation"
	"github.com/aitzhn/PS-BookingService/pkg/dbmetrics"
	"github.com/aitzhn/PS-BookingService/pkg/logger"
	"github.com/aitzhn/PS-BookingService/pkg/metrics"
	"github.com/aitzhn/PS-BookingService/pkg/simpletxmanager"
	"github.com/aitzhn/PS-BookingService/pkg/txmanager"
)

func main() {
	// .env опционален: в проде переменные приходят из окружения
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

	log.Info("Starting PS-BookingService...")
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

	// Клиент профильного сервиса (лояльность, баллы, рефералы)
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Profile service client initialized (url=%s, timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Собираем ценовой движок из конфигурации
	holidays, err := cfg.HolidayTable()
	if err != nil {
		log.Fatal("Failed to parse holiday table: %v", err)
	}
	calendar := pricing.NewCalendar(holidays)
	engine := pricing.NewEngine(calendar,
		pricing.Tiers{
			Normal:  cfg.Pricing.NormalPrice,
			Weekend: cfg.Pricing.WeekendPrice,
			Holiday: cfg.Pricing.HolidayPrice,
		},
		pricing.Rates{
			LastMinutePercent:    cfg.Pricing.LastMinutePercent,
			LastMinuteWindowDays: cfg.Pricing.LastMinuteWindowDays,
			LoyaltySecondPercent: cfg.Pricing.LoyaltySecondPercent,
			LoyaltyThirdPercent:  cfg.Pricing.LoyaltyThirdPercent,
			LoyaltyFourthPercent: cfg.Pricing.LoyaltyFourthPercent,
			ReferralPercent:      cfg.Pricing.ReferralPercent,
		},
	)
	log.Info("Pricing engine initialized (holiday years=%d, managers=%d)",
		len(holidays), len(cfg.Booking.Managers))

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		datepriceRepository   *datepriceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		datepriceRepository = datepriceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		datepriceRepository = datepriceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		calendar,
		cfg.Booking,
		cfg.Booking.CancelNoticeBusinessDays,
		log,
	)
	datepriceSvc := datepricesService.NewService(
		datepriceRepository,
		cfg.Booking,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		datepriceRepository,
		profileClient,
		engine,
		txMgr,
		log,
	)
	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		reservationRepository,
		datepriceRepository,
		engine,
		cfg.Booking,
		cfg.Booking.RescheduleNoticeBusinessDays,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationRepository, log)
	getPriceQuoteUseCase := getPriceQuoteUC.NewUseCase(engine, datepriceRepository, profileClient, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getPriceQuote := getPriceQuoteHandler.NewHandler(getPriceQuoteUseCase, log)
	listDatePrices := listDatePricesHandler.NewHandler(datepriceSvc, log)
	upsertDatePrice := upsertDatePriceHandler.NewHandler(datepriceSvc, log)
	deleteDatePrice := deleteDatePriceHandler.NewHandler(datepriceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка слотов зала на дату
	api.HandleFunc("/rooms/{roomId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расчет стоимости (анонимный или персональный при наличии X-User-ID)
	api.HandleFunc("/rooms/{roomId}/price-quote",
		getPriceQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Управление залом (для менеджеров студии) ---
	protected.HandleFunc("/rooms/{roomId}/reservations", getRoomReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}/date-prices", listDatePrices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}/date-prices", upsertDatePrice.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}/date-prices/{date}", deleteDatePrice.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}
