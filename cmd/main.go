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

	bookMeetingHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/book_meeting"
	createMeetingHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/create_meeting"
	deleteMeetingHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/delete_meeting"
	editAvailabilityHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/edit_availability"
	getAvailabilityHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/get_availability"
	getBookingOptionsHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/get_booking_options"
	getMeetingHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/get_meeting"
	getMeetingBookingsHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/get_meeting_bookings"
	getTimeOptionsHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/get_time_options"
	getUserMeetingsHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/get_user_meetings"
	updateMeetingHandler "github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers/update_meeting"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/middleware"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/config"
	availabilityRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/availability"
	guestMeetingRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/guestmeeting"
	meetingRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/meeting"
	authServiceClient "github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/authservice"
	calendarServiceClient "github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/calendarservice"
	mailServiceClient "github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/mailservice"
	meetingsService "github.com/chungmangjie200/ZCal-MeetingService/internal/service/meetings"
	bookMeetingUC "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/book_meeting"
	createMeetingUC "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/create_meeting"
	editAvailabilityUC "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/edit_availability"
	getAvailabilityUC "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/get_availability"
	getBookingOptionsUC "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/get_booking_options"
	updateMeetingUC "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/update_meeting"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/dbmetrics"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/logger"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/metrics"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/simpletxmanager"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/txmanager"
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

	log.Info("Starting ZCal-MeetingService...")
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
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	calendarClient := calendarServiceClient.NewClient(
		cfg.CalendarService.URL,
		time.Duration(cfg.CalendarService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s, MailService=%s, CalendarService=%s)",
		cfg.AuthService.URL, cfg.MailService.URL, cfg.CalendarService.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		meetingRepository      *meetingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *guestMeetingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисе)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		meetingRepository = meetingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = guestMeetingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		meetingRepository = meetingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = guestMeetingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	meetingsSvc := meetingsService.NewService(
		meetingRepository,
		availabilityRepository,
		bookingRepository,
		authClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createMeetingUseCase := createMeetingUC.NewUseCase(
		meetingRepository,
		availabilityRepository,
		txMgr,
		log,
	)
	updateMeetingUseCase := updateMeetingUC.NewUseCase(
		meetingRepository,
		availabilityRepository,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		meetingRepository,
		availabilityRepository,
		log,
	)
	editAvailabilityUseCase := editAvailabilityUC.NewUseCase(log)
	getBookingOptionsUseCase := getBookingOptionsUC.NewUseCase(
		meetingRepository,
		availabilityRepository,
		bookingRepository,
		log,
	)
	bookMeetingUseCase := bookMeetingUC.NewUseCase(
		meetingRepository,
		availabilityRepository,
		bookingRepository,
		authClient,
		mailClient,
		calendarClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createMeeting := createMeetingHandler.NewHandler(createMeetingUseCase, log)
	updateMeeting := updateMeetingHandler.NewHandler(updateMeetingUseCase, log)
	deleteMeeting := deleteMeetingHandler.NewHandler(meetingsSvc, log)
	getMeeting := getMeetingHandler.NewHandler(meetingsSvc, log)
	getUserMeetings := getUserMeetingsHandler.NewHandler(meetingsSvc, log)
	getMeetingBookings := getMeetingBookingsHandler.NewHandler(meetingsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	editAvailability := editAvailabilityHandler.NewHandler(editAvailabilityUseCase, log)
	getTimeOptions := getTimeOptionsHandler.NewHandler(meetingsSvc, log)
	getBookingOptions := getBookingOptionsHandler.NewHandler(getBookingOptionsUseCase, log)
	bookMeeting := bookMeetingHandler.NewHandler(bookMeetingUseCase, log)

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
	// PUBLIC ROUTES (страница бронирования гостя, без аутентификации)
	// ============================================================

	// Страница встречи для гостя
	api.HandleFunc("/meetings/{meetingId}", getMeeting.Handle).Methods(http.MethodGet)

	// Доступные даты и слоты для бронирования
	api.HandleFunc("/meetings/{meetingId}/booking-options", getBookingOptions.Handle).Methods(http.MethodGet)

	// Бронирование слота гостем
	api.HandleFunc("/meetings/{meetingId}/bookings", bookMeeting.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-UID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Встречи ---
	// Создание встречи с расписанием
	protected.HandleFunc("/meetings", createMeeting.Handle).Methods(http.MethodPost)

	// Обновление встречи (и опционально расписания)
	protected.HandleFunc("/meetings/{meetingId}", updateMeeting.Handle).Methods(http.MethodPut)

	// Удаление встречи со всеми бронями
	protected.HandleFunc("/meetings/{meetingId}", deleteMeeting.Handle).Methods(http.MethodDelete)

	// Список встреч владельца
	protected.HandleFunc("/users/{userUid}/meetings", getUserMeetings.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	// Окна доступности встречи (сохранённые или синтезированные)
	protected.HandleFunc("/meetings/{meetingId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Правка одного поля окна в сессии редактирования
	protected.HandleFunc("/availability/edit", editAvailability.Handle).Methods(http.MethodPost)

	// Варианты времени для виджетов начала и конца окна
	protected.HandleFunc("/meetings/{meetingId}/time-options", getTimeOptions.Handle).Methods(http.MethodGet)

	// --- Брони ---
	// Список броней встречи (только владелец)
	protected.HandleFunc("/meetings/{meetingId}/bookings", getMeetingBookings.Handle).Methods(http.MethodGet)

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
