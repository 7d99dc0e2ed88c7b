package main

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/delivery/http/routers"
	"medflow-service/internal/app/drivers/database"
	"medflow-service/internal/app/drivers/logger"
	"medflow-service/internal/app/drivers/messaging"
	"medflow-service/internal/app/services/core/departments"
	"medflow-service/internal/app/services/core/flow"
	"medflow-service/internal/app/services/core/ot"
	"medflow-service/internal/app/services/core/patients"
	"medflow-service/internal/app/services/core/pharmacy"
	"medflow-service/internal/app/services/core/wards"
	"medflow-service/internal/app/services/shared/eventqueue"
	"medflow-service/internal/app/services/shared/locker"
	"medflow-service/internal/app/services/shared/notifier"
	sharedredis "medflow-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	hub := notifier.NewHub(zapLogger)
	go hub.Run()

	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	defer stopBridge()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Hub:            hub,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, bridgeCtx, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	<-shutdownCtx.Done()

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, bridgeCtx context.Context, log *logrus.Logger) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Event queue
	eventQueue, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Notifier.EventQueueName, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to declare event queue: %v", err)
	}

	// Notification publisher, one instance id shared with the bridge so
	// an instance skips its own redis publications
	instanceID := uuid.NewString()
	publisher := notifier.NewPublisher(
		bootstrap.Hub,
		redisRepository,
		eventQueue,
		bootstrap.InternalConfig.Notifier.RedisChannel,
		instanceID,
		bootstrap.Logger,
	)
	go notifier.RunBridge(
		bridgeCtx,
		bootstrap.Redis,
		bootstrap.Hub,
		bootstrap.InternalConfig.Notifier.RedisChannel,
		instanceID,
		bootstrap.Logger,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	bootstrap.Router.Use(middlewares.RequestLogger(bootstrap.InternalConfig.App, log))

	// Bed pool
	bedPool := wards.NewBedPool(wards.DefaultWards(), bootstrap.Logger)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, publisher, bootstrap.Logger)

	// Department
	departmentMongoRepository := departments.NewDepartmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	departmentUsecase := departments.NewDepartmentUsecase(departmentMongoRepository, patientMongoRepository, bootstrap.Logger)
	departmentController := departments.NewDepartmentController(departmentUsecase, bootstrap.Logger)

	// Operation theatres
	otBoardUsecase := ot.NewOTBoardUsecase(patientMongoRepository, bootstrap.Logger)

	// Flow engine
	wardLockTTL := time.Second * time.Duration(bootstrap.InternalConfig.Notifier.WardLockTTLSeconds)
	flowUsecase := flow.NewFlowUsecase(
		patientMongoRepository,
		departmentMongoRepository,
		bedPool,
		lockerService,
		publisher,
		otBoardUsecase,
		wardLockTTL,
		bootstrap.Logger,
	)

	patientController := patients.NewPatientController(patientUsecase, flowUsecase, bootstrap.Logger)
	otController := ot.NewOTController(otBoardUsecase, flowUsecase, bootstrap.Logger)
	wardController := wards.NewWardController(bedPool, flowUsecase, bootstrap.Logger)

	// Pharmacy
	drugMongoRepository := pharmacy.NewDrugMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	billMongoRepository := pharmacy.NewBillMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	pharmacyUsecase := pharmacy.NewPharmacyUsecase(drugMongoRepository, billMongoRepository, bootstrap.Logger)
	pharmacyController := pharmacy.NewPharmacyController(pharmacyUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		bootstrap.Hub,
		patientController,
		departmentController,
		otController,
		wardController,
		pharmacyController,
	)
}
