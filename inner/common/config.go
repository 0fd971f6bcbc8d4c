package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Общая конфигурация всего приложения
type Config struct {
	DbDriverName   string `validate:"required"`
	Dsn            string `validate:"required"`
	AppName        string `validate:"required"`
	AppVersion     string `validate:"required"`
	AppPort        string `validate:"required,numeric"`
	LogLevel       string `validate:"omitempty,oneof=debug DEBUG info INFO warn WARN error ERROR panic PANIC fatal FATAL"`
	LogDevelopMode bool
}

// порт по умолчанию, если APP_PORT не задан
const defaultAppPort = "8080"

// Получение конфигурации из .env файла или переменных окружения.
// Отсутствие .env файла не является ошибкой, но без обязательных
// переменных окружения функция паникует.
func GetConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	var cfg = Config{
		DbDriverName:   os.Getenv("DB_DRIVER_NAME"),
		Dsn:            os.Getenv("DB_DSN"),
		AppName:        os.Getenv("APP_NAME"),
		AppVersion:     os.Getenv("APP_VERSION"),
		AppPort:        getEnvOrDefault("APP_PORT", defaultAppPort),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogDevelopMode: parseBool(os.Getenv("LOG_DEVELOP_MODE")),
	}
	if err := validator.New().Struct(cfg); err != nil {
		panic(fmt.Sprintf("config validation error: %v", err))
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
