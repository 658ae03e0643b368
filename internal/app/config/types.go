package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	// Bootstrap carries everything the route wiring needs. MongoDB and Redis
	// are nil when the startup probe found them unreachable; the bootstrap
	// then falls back to the in-memory backends.
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Log            *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		SMTP    SMTP
		Logger  Logger
	}

	MongoDB struct {
		URI    string
		DbName string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App     App
		Session Session
		Admin   Admin
		Mailer  Mailer
	}

	App struct {
		Env             string
		Port            string
		PublicDir       string
		FrontendOrigin  string
		MaxRequests     int
		ShutdownTimeout int
	}
	Session struct {
		Secret             string
		CookieName         string
		CookieSecure       bool
		ExpiredTimeInHours int
	}
	Admin struct {
		Username string
		Password string
	}
	Mailer struct {
		SenderName string
		ReplyTo    string
	}
)
