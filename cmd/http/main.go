package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"posyandu-console/internal/app/config"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/delivery/http/controllers"
	"posyandu-console/internal/app/delivery/http/middlewares"
	"posyandu-console/internal/app/delivery/http/routers"
	"posyandu-console/internal/app/drivers/database"
	"posyandu-console/internal/app/drivers/logger"
	"posyandu-console/internal/app/drivers/messaging"
	"posyandu-console/internal/app/drivers/storage"
	"posyandu-console/internal/app/services/core/auth"
	"posyandu-console/internal/app/services/core/dashboard"
	"posyandu-console/internal/app/services/core/examinations"
	"posyandu-console/internal/app/services/core/kaders"
	"posyandu-console/internal/app/services/core/patients"
	"posyandu-console/internal/app/services/core/schedules"
	"posyandu-console/internal/app/services/core/vaccinations"
	"posyandu-console/internal/app/services/shared/cache"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/jwtmanager"
	"posyandu-console/internal/app/services/shared/locker"
	"posyandu-console/internal/app/services/shared/metrics"
	"posyandu-console/internal/app/services/shared/posyanduapi"
	"posyandu-console/internal/app/services/shared/ratelimiter"
	"posyandu-console/internal/app/services/shared/realtime"
	"posyandu-console/internal/app/services/shared/redis"
	"posyandu-console/internal/app/services/shared/search"
	"posyandu-console/internal/app/services/shared/session"
	photoStorage "posyandu-console/internal/app/services/shared/storage"
	"posyandu-console/internal/pkg/health"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	loginBurst     = 5
	loginPer       = 12 * time.Second
	loginBlockTime = time.Minute
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewAccessLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.KaderPhotoBucket)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		AccessLog:      accessLog,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	bpPolicy, err := health.ParseBloodPressurePolicy(cfg.Health.BloodPressurePolicy)
	if err != nil {
		log.Fatal("invalid HEALTH_BLOOD_PRESSURE_POLICY", zap.Error(err))
	}

	// Observability
	collector := metrics.NewCollector()

	// Redis backed shared state
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	entityCache := cache.NewEntityCache(redisRepository, time.Duration(cfg.App.CacheTTLInSeconds)*time.Second, collector, log)
	lockerService := locker.NewLockService(redisRepository, log)
	sessionStore := session.NewSessionStore(redisRepository, log)
	loginLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	sessionTTL := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	tokenManager, err := jwtmanager.NewJWTManager(cfg.JWT.Secret, sessionTTL, log)
	if err != nil {
		log.Fatal("failed to initialize session token manager", zap.Error(err))
	}

	// Events: every instance invalidates its cache and notifies its tabs
	hub := realtime.NewHub(cfg.App.FrontendOrigins, log)
	dispatcher := events.NewDispatcher(cache.NewInvalidationHandler(entityCache, log), hub)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()
		hub.Run(workerCtx)
	}()

	publisher := newEventPublisher(workerCtx, bootstrap, dispatcher, collector, &workers)
	announcer := events.NewAnnouncer(entityCache, publisher, log)
	bootstrap.WorkerStop = func() {
		stopWorkers()
		workers.Wait()
	}

	// Remote Posyandu API
	httpClient := &http.Client{Timeout: time.Duration(cfg.PosyanduAPI.RequestTimeoutInSeconds) * time.Second}
	apiClient := posyanduapi.NewClient(cfg.PosyanduAPI.BaseUrl, httpClient, log, collector)

	searchCoordinator := search.NewCoordinator(time.Duration(cfg.App.SearchDebounceInMilliseconds) * time.Millisecond)

	var kaderPhotos contracts.PhotoStorage
	if bootstrap.Minio != nil {
		kaderPhotos = photoStorage.NewMinioPhotoStorage(bootstrap.Minio, cfg.Minio.KaderPhotoBucket, log)
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(apiClient, sessionStore, tokenManager, searchCoordinator, publisher, cfg.PosyanduAPI.AdminRoleCode, sessionTTL, log)
	patientUsecase := patients.NewPatientUsecase(apiClient, entityCache, announcer, searchCoordinator, bpPolicy, log)
	kaderUsecase := kaders.NewKaderUsecase(apiClient, entityCache, kaderPhotos, announcer, searchCoordinator, log)
	examinationUsecase := examinations.NewExaminationUsecase(apiClient, entityCache, announcer, searchCoordinator, log)
	scheduleUsecase := schedules.NewScheduleUsecase(apiClient, entityCache, lockerService, announcer, time.Duration(cfg.App.WeeklyLockTTLInSeconds)*time.Second, log)
	vaccinationUsecase := vaccinations.NewVaccinationUsecase(apiClient, entityCache, announcer, log)
	dashboardUsecase := dashboard.NewDashboardUsecase(apiClient, log)

	// Delivery
	mw := middlewares.NewMiddlewares(log, bootstrap.AccessLog, authUsecase, collector, cfg)
	loginRateLimiter := middlewares.NewRateLimiter(log, loginBurst, loginPer, loginBlockTime)

	routers.SetupRoutes(bootstrap.Router, cfg, mw, loginRateLimiter, collector.Handler(), routers.Controllers{
		Auth:        controllers.NewAuthController(log, authUsecase, loginLimiter, cfg),
		Patient:     controllers.NewPatientController(log, patientUsecase),
		Kader:       controllers.NewKaderController(log, kaderUsecase, cfg),
		Examination: controllers.NewExaminationController(log, examinationUsecase),
		Schedule:    controllers.NewScheduleController(log, scheduleUsecase),
		Vaccination: controllers.NewVaccinationController(log, vaccinationUsecase),
		Dashboard:   controllers.NewDashboardController(log, dashboardUsecase),
		Realtime:    controllers.NewRealtimeController(log, hub),
		Health:      controllers.NewHealthController(log, redisRepository, hub.ClientCount),
	})
}

// newEventPublisher fans events out through RabbitMQ when a broker is configured,
// otherwise straight to this instance's dispatcher.
func newEventPublisher(
	ctx context.Context,
	bootstrap *config.Bootstrap,
	dispatcher *events.Dispatcher,
	collector *metrics.Collector,
	workers *sync.WaitGroup,
) contracts.EventPublisher {
	log := bootstrap.Logger
	if bootstrap.RabbitMQ == nil {
		return events.NewLocalPublisher(dispatcher, collector)
	}

	exchange := bootstrap.InternalConfig.RabbitMQ.EventsExchange
	publishChannel, err := bootstrap.RabbitMQ.Channel()
	if err != nil {
		log.Fatal("failed to open rabbitMQ publish channel", zap.Error(err))
	}
	if err := events.DeclareExchange(publishChannel, exchange); err != nil {
		log.Fatal("failed to declare events exchange", zap.Error(err))
	}

	consumeChannel, err := bootstrap.RabbitMQ.Channel()
	if err != nil {
		log.Fatal("failed to open rabbitMQ consume channel", zap.Error(err))
	}
	consumer := events.NewConsumer(consumeChannel, exchange, dispatcher, collector, log)
	if err := consumer.Start(ctx); err != nil {
		log.Fatal("failed to start events consumer", zap.Error(err))
	}
	workers.Add(1)
	go func() {
		defer workers.Done()
		<-consumer.Done()
	}()

	return events.NewRabbitPublisher(publishChannel, exchange, collector, log)
}
