package config

import (
	"geics-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:    utils.GetEnvString("MONGODB_URI", "mongodb://localhost:27017"),
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "geics_appointments"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "smtp.gmail.com"),
			Port:     utils.GetEnvInt("SMTP_PORT", 587),
			Username: utils.GetEnvString("EMAIL_USER", ""),
			Password: utils.GetEnvString("EMAIL_PASS", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("PORT", "3000"),
			PublicDir:       utils.GetEnvString("APP_PUBLIC_DIR", "web/public"),
			FrontendOrigin:  utils.GetEnvString("APP_FRONTEND_ORIGIN", "https://appointments.geics.net"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Session: Session{
			Secret:             utils.GetEnvString("SESSION_SECRET", "geics-super-secret"),
			CookieName:         utils.GetEnvString("SESSION_COOKIE_NAME", "geics.sid"),
			CookieSecure:       utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 8),
		},
		Admin: Admin{
			Username: utils.GetEnvString("ADMIN_USER", "admin"),
			Password: utils.GetEnvString("ADMIN_PASS", "admin123"),
		},
		Mailer: Mailer{
			SenderName: utils.GetEnvString("FROM_NAME", "GEICS Consultancy"),
			ReplyTo:    utils.GetEnvString("REPLY_TO", utils.GetEnvString("EMAIL_USER", "")),
		},
	}
}
