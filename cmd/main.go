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

	addServiceHandler "github.com/m04kA/parlourease/internal/api/handlers/add_service"
	bookingActionHandler "github.com/m04kA/parlourease/internal/api/handlers/booking_action"
	createBookingHandler "github.com/m04kA/parlourease/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/parlourease/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/parlourease/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/parlourease/internal/api/handlers/get_dashboard"
	getPaymentHandler "github.com/m04kA/parlourease/internal/api/handlers/get_payment"
	getSettingsHandler "github.com/m04kA/parlourease/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/m04kA/parlourease/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/parlourease/internal/api/handlers/list_services"
	liveHandler "github.com/m04kA/parlourease/internal/api/handlers/live"
	recordPaymentHandler "github.com/m04kA/parlourease/internal/api/handlers/record_payment"
	updateBookingHandler "github.com/m04kA/parlourease/internal/api/handlers/update_booking"
	updateSettingsHandler "github.com/m04kA/parlourease/internal/api/handlers/update_settings"
	"github.com/m04kA/parlourease/internal/api/middleware"
	"github.com/m04kA/parlourease/internal/config"
	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/infra/notify/local"
	"github.com/m04kA/parlourease/internal/infra/notify/pgnotify"
	"github.com/m04kA/parlourease/internal/infra/notify/redisnotify"
	bookingRepo "github.com/m04kA/parlourease/internal/infra/storage/booking"
	"github.com/m04kA/parlourease/internal/infra/storage/schema"
	serviceRepo "github.com/m04kA/parlourease/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/parlourease/internal/infra/storage/settings"
	"github.com/m04kA/parlourease/internal/integrations/events"
	"github.com/m04kA/parlourease/internal/realtime"
	"github.com/m04kA/parlourease/internal/seed"
	bookingsService "github.com/m04kA/parlourease/internal/service/bookings"
	catalogService "github.com/m04kA/parlourease/internal/service/catalog"
	"github.com/m04kA/parlourease/internal/service/dashboard"
	settingsService "github.com/m04kA/parlourease/internal/service/settings"
	createBookingUC "github.com/m04kA/parlourease/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/parlourease/internal/usecase/get_available_slots"
	"github.com/m04kA/parlourease/pkg/dbmetrics"
	"github.com/m04kA/parlourease/pkg/logger"
	"github.com/m04kA/parlourease/pkg/metrics"
	"github.com/m04kA/parlourease/pkg/txmanager"
)

// changeNotifier уведомитель об изменениях: и публикует, и слушает
type changeNotifier interface {
	realtime.Notifier
	realtime.Publisher
}

// eventPublisher публикатор доменных событий
type eventPublisher interface {
	bookingsService.EventPublisher
	Close() error
}

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

	log.Info("Starting ParlourEase...")

	location, err := cfg.Salon.Location()
	if err != nil {
		log.Fatal("Failed to load salon timezone %q: %v", cfg.Salon.Timezone, err)
	}
	log.Info("Salon timezone: %s", location)

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

	// Без метрик обёртка просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	if cfg.Database.AutoMigrate {
		if err := schema.Apply(context.Background(), wrappedDB); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema applied")
	}

	// Инициализируем репозитории
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Уведомитель об изменениях коллекций
	notifier, closeNotifier, err := newNotifier(cfg, wrappedDB, log)
	if err != nil {
		log.Fatal("Failed to initialize %s notifier: %v", cfg.Sync.Notifier, err)
	}
	defer closeNotifier()
	log.Info("Change notifier: %s (channel=%s)", cfg.Sync.Notifier, cfg.Sync.Channel)

	// Публикация событий в RabbitMQ (если включена)
	var eventPub eventPublisher = events.Noop{}
	if cfg.Events.Enabled {
		eventPub = events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		log.Info("Event publishing enabled (exchange=%s)", cfg.Events.Exchange)
	}
	defer eventPub.Close()

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, notifier, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		serviceRepository,
		notifier,
		eventPub,
		&createBookingUC.RealTimeProvider{},
		location,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		settingsSvc,
		notifier,
		txMgr,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		location,
		log,
	)

	// Демо-данные: ошибки не мешают запуску
	if cfg.Seed.Enabled {
		seed.NewSeeder(
			serviceRepository,
			bookingRepository,
			txMgr,
			notifier,
			&createBookingUC.RealTimeProvider{},
			location,
			log,
		).Run(context.Background())
	}

	// Живые коллекции
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	hub := realtime.NewHub(
		realtime.NewStoreLoader(serviceRepository, bookingRepository),
		notifier,
		metricsCollector,
		log,
	)
	if err := hub.Start(appCtx); err != nil {
		log.Fatal("Failed to start realtime hub: %v", err)
	}

	projection := dashboard.NewProjection(hub, &createBookingUC.RealTimeProvider{}, location, log)
	if err := projection.Start(appCtx); err != nil {
		log.Fatal("Failed to start dashboard projection: %v", err)
	}

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	addService := addServiceHandler.NewHandler(catalogSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, location, log)
	startBooking := bookingActionHandler.NewHandler(bookingSvc, domain.ActionStart, log)
	completeBooking := bookingActionHandler.NewHandler(bookingSvc, domain.ActionComplete, log)
	getPayment := getPaymentHandler.NewHandler(bookingSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(projection, log)
	live := liveHandler.NewHandler(hub, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог услуг ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", addService.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/start", startBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/payment", getPayment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/payment", recordPayment.Handle).Methods(http.MethodPut)

	// --- Слоты и настройки ---
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Панель администратора и живые снимки ---
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/live/{collection}", live.Handle).Methods(http.MethodGet)

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

	// Закрытие хаба завершает подписки, WebSocket-соединения получают close frame
	projection.Close()
	hub.Close()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	close(stopMetricsCh)
	log.Info("Server stopped gracefully")
}

// newNotifier выбирает реализацию уведомителя по конфигурации
func newNotifier(cfg *config.Config, db *dbmetrics.DB, log *logger.Logger) (changeNotifier, func(), error) {
	switch cfg.Sync.Notifier {
	case config.NotifierPostgres:
		n := pgnotify.New(
			db,
			cfg.Database.DSN(),
			cfg.Sync.Channel,
			time.Duration(cfg.Sync.PingInterval)*time.Second,
			log,
		)
		return n, func() {}, nil

	case config.NotifierRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn("Failed to close redis client: %v", err)
			}
		}
		return redisnotify.New(client, cfg.Sync.Channel, log), closeFn, nil

	default:
		return local.New(), func() {}, nil
	}
}
