package config

import (
	"os"
	"strconv"
)

// Config структура конфигурации приложения
type Config struct {
	Server struct {
		Port int
		Host string
	}
	Gemini struct {
		BaseURL string
		Model   string
		APIKey  string
		Timeout int // в секундах
	}
	Classifier struct {
		ModelPath string // Путь к файлу обученной модели
	}
	Logging struct {
		Level string
	}
	Environment string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() *Config {
	cfg := &Config{}

	// Конфигурация сервера
	cfg.Server.Port = getEnvInt("SERVER_PORT", 8080)
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")

	// Конфигурация Gemini API
	cfg.Gemini.BaseURL = getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com")
	cfg.Gemini.Model = getEnv("GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", "")
	cfg.Gemini.Timeout = getEnvInt("GEMINI_TIMEOUT_SECONDS", 60)

	// Конфигурация обученного классификатора
	cfg.Classifier.ModelPath = getEnv("MODEL_PATH", "model/seizure_classifier.h5")

	// Конфигурация логирования
	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")

	cfg.Environment = getEnv("ENVIRONMENT", "development")

	return cfg
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает int значение переменной окружения или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
