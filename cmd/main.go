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

	cancelReservationHandler "github.com/drilan/barbershop-booking/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/drilan/barbershop-booking/internal/api/handlers/create_reservation"
	deleteScheduleOverrideHandler "github.com/drilan/barbershop-booking/internal/api/handlers/delete_schedule_override"
	getDayScheduleHandler "github.com/drilan/barbershop-booking/internal/api/handlers/get_day_schedule"
	getReservationHandler "github.com/drilan/barbershop-booking/internal/api/handlers/get_reservation"
	getShopProfileHandler "github.com/drilan/barbershop-booking/internal/api/handlers/get_shop_profile"
	getUserReservationsHandler "github.com/drilan/barbershop-booking/internal/api/handlers/get_user_reservations"
	googleOAuthHandler "github.com/drilan/barbershop-booking/internal/api/handlers/google_oauth"
	listScheduleOverridesHandler "github.com/drilan/barbershop-booking/internal/api/handlers/list_schedule_overrides"
	setScheduleOverrideHandler "github.com/drilan/barbershop-booking/internal/api/handlers/set_schedule_override"
	updateShopHoursHandler "github.com/drilan/barbershop-booking/internal/api/handlers/update_shop_hours"
	"github.com/drilan/barbershop-booking/internal/api/middleware"
	"github.com/drilan/barbershop-booking/internal/config"
	profileRepo "github.com/drilan/barbershop-booking/internal/infra/storage/profile"
	reservationRepo "github.com/drilan/barbershop-booking/internal/infra/storage/reservation"
	scheduleRepo "github.com/drilan/barbershop-booking/internal/infra/storage/schedule"
	googleAuthClient "github.com/drilan/barbershop-booking/internal/integrations/googleauth"
	sendgridClient "github.com/drilan/barbershop-booking/internal/integrations/sendgrid"
	profileService "github.com/drilan/barbershop-booking/internal/service/profile"
	reservationsService "github.com/drilan/barbershop-booking/internal/service/reservations"
	scheduleService "github.com/drilan/barbershop-booking/internal/service/schedule"
	createReservationUC "github.com/drilan/barbershop-booking/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/drilan/barbershop-booking/internal/usecase/get_day_schedule"
	"github.com/drilan/barbershop-booking/pkg/dbmetrics"
	"github.com/drilan/barbershop-booking/pkg/logger"
	"github.com/drilan/barbershop-booking/pkg/metrics"
	"github.com/drilan/barbershop-booking/pkg/simpletxmanager"
	"github.com/drilan/barbershop-booking/pkg/txmanager"
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

	log.Info("Starting barbershop-booking...")
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

	// Инициализируем интеграционных клиентов
	mailClient := sendgridClient.NewClient(
		cfg.SendGrid.BaseURL,
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		time.Duration(cfg.SendGrid.Timeout)*time.Second,
		log,
	)
	googleClient := googleAuthClient.NewClient(
		cfg.GoogleOAuth.ClientID,
		cfg.GoogleOAuth.ClientSecret,
		cfg.GoogleOAuth.RedirectURL,
		log,
	)
	log.Info("Integration clients initialized (SendGrid=%s timeout=%ds, GoogleOAuth configured=%t)",
		cfg.SendGrid.BaseURL, cfg.SendGrid.Timeout, googleClient.IsConfigured())

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		profileRepository     *profileRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	profileSvc := profileService.NewService(profileRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		profileRepository,
		scheduleRepository,
		reservationRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		profileRepository,
		scheduleRepository,
		mailClient,
		txMgr,
		cfg.Shop.OwnerEmail,
		log,
	)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getShopProfile := getShopProfileHandler.NewHandler(profileSvc, log)
	updateShopHours := updateShopHoursHandler.NewHandler(profileSvc, log)
	setScheduleOverride := setScheduleOverrideHandler.NewHandler(scheduleSvc, log)
	deleteScheduleOverride := deleteScheduleOverrideHandler.NewHandler(scheduleSvc, log)
	listScheduleOverrides := listScheduleOverridesHandler.NewHandler(scheduleSvc, log)
	googleOAuth := googleOAuthHandler.NewHandler(googleClient, profileSvc, log)

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

	// Расписание на день со статусами слотов
	api.HandleFunc("/schedule/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История броней пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	// --- Профиль магазина ---
	admin.HandleFunc("/profile", getShopProfile.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/profile/hours", updateShopHours.Handle).Methods(http.MethodPut)

	// --- Переопределения расписания ---
	admin.HandleFunc("/schedule", listScheduleOverrides.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/{date}", setScheduleOverride.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/schedule/{date}", deleteScheduleOverride.Handle).Methods(http.MethodDelete)

	// --- Привязка Google Calendar ---
	admin.HandleFunc("/google/connect", googleOAuth.HandleConnect).Methods(http.MethodGet)
	admin.HandleFunc("/google/callback", googleOAuth.HandleCallback).Methods(http.MethodGet)

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
