package config

import (
	"clinichours-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "clinichours"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "UTC"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),

			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUESTS", 50),
			CreateRuleMaxRequestsPerMinute: utils.GetEnvInt("APP_CREATE_RULE_MAX_REQUESTS_PER_MINUTE", 30),
			CreateRuleBlockTimeInMinutes:   utils.GetEnvInt("APP_CREATE_RULE_BLOCK_TIME_IN_MINUTES", 1),

			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),

			CreateLockExpirationInSeconds: utils.GetEnvInt("APP_CREATE_LOCK_EXPIRATION_IN_SECONDS", 5),
			CreateLockMaxAttempts:         utils.GetEnvInt("APP_CREATE_LOCK_MAX_ATTEMPTS", 5),
			CreateLockRetryDelayInMillis:  utils.GetEnvInt("APP_CREATE_LOCK_RETRY_DELAY_IN_MILLIS", 100),
		},
	}
}
