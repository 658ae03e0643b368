package main

import (
	"context"
	"geics-service/internal/app/config"
	"geics-service/internal/app/delivery/http/middlewares"
	"geics-service/internal/app/delivery/http/routers"
	"geics-service/internal/app/drivers/database"
	"geics-service/internal/app/drivers/logger"
	mailerdriver "geics-service/internal/app/drivers/mailer"
	"geics-service/internal/app/services/appointments"
	"geics-service/internal/app/services/auth"
	sharedmailer "geics-service/internal/app/services/shared/mailer"
	"geics-service/internal/app/services/shared/session"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Log:            log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Printf("Server running on http://localhost:%s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Session store: Redis when reachable, in-process otherwise.
	sessionStore := session.NewSessionStore(bootstrap.Redis)

	// Record store: durable Mongo collection when reachable, volatile list
	// otherwise. Both satisfy the same contract and ordering.
	appointmentRepository := appointments.NewAppointmentRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Notifier
	smtpClient := mailerdriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerService := sharedmailer.NewMailerService(smtpClient, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(sessionStore, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.ZapLogger, authUsecase, bootstrap.InternalConfig)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		mailerService,
		bootstrap.ZapLogger,
		bootstrap.InternalConfig,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, appointmentController, authController)
}
