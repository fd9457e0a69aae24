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

	createBookingHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/create_booking"
	deleteBookedSlotHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/delete_booked_slot"
	deleteWorkingDayHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/delete_working_day"
	getBookedSlotsHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/get_booked_slots"
	getDateTimesHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/get_date_times"
	getDaySlotsHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/get_day_slots"
	getWorkingDaysHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/get_working_days"
	healthHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/health"
	setWorkingDayHandler "github.com/antoniozubakha/salon-booking-service/internal/api/handlers/set_working_day"
	"github.com/antoniozubakha/salon-booking-service/internal/api/middleware"
	"github.com/antoniozubakha/salon-booking-service/internal/calendar"
	"github.com/antoniozubakha/salon-booking-service/internal/config"
	reservationRepo "github.com/antoniozubakha/salon-booking-service/internal/infra/storage/reservation"
	workingdayRepo "github.com/antoniozubakha/salon-booking-service/internal/infra/storage/workingday"
	"github.com/antoniozubakha/salon-booking-service/internal/lockguard"
	reservationsService "github.com/antoniozubakha/salon-booking-service/internal/service/reservations"
	workingdaysService "github.com/antoniozubakha/salon-booking-service/internal/service/workingdays"
	"github.com/antoniozubakha/salon-booking-service/internal/slotgrid"
	createBookingUC "github.com/antoniozubakha/salon-booking-service/internal/usecase/create_booking"
	getDaySlotsUC "github.com/antoniozubakha/salon-booking-service/internal/usecase/get_day_slots"
	"github.com/antoniozubakha/salon-booking-service/pkg/logger"
	"github.com/antoniozubakha/salon-booking-service/pkg/metrics"
	"github.com/antoniozubakha/salon-booking-service/pkg/txmanager"
)

func main() {
	// .env нужен только для локальной разработки, отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-booking-service...")

	if cfg.Admin.Token == "" {
		log.Warn("Admin token is not configured, admin endpoints will respond with 500")
	}

	// Метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Сетка слотов — единственная точка, где задаётся политика расписания
	grid, err := slotgrid.New(cfg.Schedule.OpenTime, cfg.Schedule.CloseTime, cfg.Schedule.SlotMinutes)
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Slot grid: open=%s, close=%s, slot=%d min, last start=%s",
		cfg.Schedule.OpenTime, cfg.Schedule.CloseTime, cfg.Schedule.SlotMinutes, grid.LastStart())

	// Координатор блокировок слотов
	locks := lockguard.NewCoordinator(
		time.Duration(cfg.Schedule.LockTTLSeconds)*time.Second,
		time.Duration(cfg.Schedule.LockSweepMinutes)*time.Minute,
		log,
		gaugeOrNil(metricsCollector),
	)
	locks.Start()
	defer locks.Stop()

	// Репозитории и сервисы
	reservationRepository := reservationRepo.NewRepository(db)
	workingdayRepository := workingdayRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	reservationSvc := reservationsService.NewService(
		reservationRepository,
		cfg.Schedule.RetentionMonths,
		log,
	)
	workingdaySvc := workingdaysService.NewService(
		workingdayRepository,
		calendar.DefaultPolicy(),
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		locks,
		grid,
		txMgr,
		metricsOrNil(metricsCollector),
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		workingdaySvc,
		reservationRepository,
		grid,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, cfg.Admin.Token, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(reservationSvc, log)
	getDateTimes := getDateTimesHandler.NewHandler(reservationSvc, log)
	deleteBookedSlot := deleteBookedSlotHandler.NewHandler(reservationSvc, log)
	getWorkingDays := getWorkingDaysHandler.NewHandler(workingdaySvc, log)
	setWorkingDay := setWorkingDayHandler.NewHandler(workingdaySvc, log)
	deleteWorkingDay := deleteWorkingDayHandler.NewHandler(workingdaySvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	health := healthHandler.NewHandler()

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Публичные маршруты
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booked-slots", getBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booked-slots/{date}", getDateTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booked-slots", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/working-days", getWorkingDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/day-slots/{date}", getDaySlots.Handle).Methods(http.MethodGet)

	// Админские маршруты (x-admin-token)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))
	admin.HandleFunc("/booked-slots/{date}/{time}", deleteBookedSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/working-days/{date}", setWorkingDay.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/working-days/{date}", deleteWorkingDay.Handle).Methods(http.MethodDelete)

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

// gaugeOrNil возвращает nil-интерфейс при выключенных метриках
func gaugeOrNil(m *metrics.Metrics) lockguard.Gauge {
	if m == nil {
		return nil
	}
	return m
}

// metricsOrNil возвращает nil-интерфейс при выключенных метриках
func metricsOrNil(m *metrics.Metrics) createBookingUC.Metrics {
	if m == nil {
		return nil
	}
	return m
}
