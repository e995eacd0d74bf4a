package main

import (
	"fmt"
	"net/http"
	"time"

	"eeg-analyzer-go/internal/classifier"
	"eeg-analyzer-go/internal/client"
	"eeg-analyzer-go/internal/config"
	"eeg-analyzer-go/internal/database"
	"eeg-analyzer-go/internal/handler"
	"eeg-analyzer-go/internal/repository"
	"eeg-analyzer-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Получаем конфигурацию из переменных окружения
	cfg := config.LoadConfig()

	// Инициализируем логгер
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.Info("Запуск EEG Analysis API Server")

	// Инициализируем базу данных
	logger.Info("Подключение к базе данных...")
	if err := database.Connect(); err != nil {
		logger.Fatalf("Ошибка подключения к базе данных: %v", err)
	}

	// Выполняем миграции
	logger.Info("Выполнение миграций базы данных...")
	if err := database.Migrate(); err != nil {
		logger.Fatalf("Ошибка выполнения миграций: %v", err)
	}

	// Проверяем здоровье базы данных
	if err := database.HealthCheck(); err != nil {
		logger.Fatalf("База данных недоступна: %v", err)
	}

	logger.Info("База данных успешно подключена и готова к работе")

	// Инициализируем репозитории
	analysisRepo := repository.NewAnalysisRepository(database.DB)

	// Инициализируем клиент Gemini и probe обученной модели
	geminiClient := client.NewGeminiClient(
		cfg.Gemini.BaseURL,
		cfg.Gemini.Model,
		cfg.Gemini.APIKey,
		time.Duration(cfg.Gemini.Timeout)*time.Second,
		logger,
	)
	probe := classifier.NewProbe(cfg.Classifier.ModelPath, logger)

	// Инициализируем сервисы
	analyzerService := service.NewAnalyzerService(geminiClient, probe, logger)
	historyService := service.NewHistoryService(analysisRepo, logger)

	// Инициализируем обработчики
	analysisHandler := handler.NewAnalysisHandler(analyzerService, historyService, logger)

	// Настраиваем Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Добавляем middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Регистрируем маршруты
	analysisHandler.RegisterRoutes(router)

	// Добавляем базовый маршрут для проверки
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "EEG Analysis API Server",
			"version": service.Version,
			"status":  "running",
		})
	})

	// Запускаем сервер
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Сервер запущен на порту %d", cfg.Server.Port)
	logger.Infof("API доступно по адресу: http://localhost:%d/api/v1", cfg.Server.Port)

	if err := router.Run(serverAddr); err != nil {
		logger.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// corsMiddleware добавляет заголовки CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
