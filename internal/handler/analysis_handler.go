package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"eeg-analyzer-go/internal/client"
	"eeg-analyzer-go/internal/model"
	"eeg-analyzer-go/internal/service"
	"eeg-analyzer-go/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AnalysisHandler обрабатывает HTTP запросы анализа ЭЭГ
type AnalysisHandler struct {
	analyzerService *service.AnalyzerService
	historyService  *service.HistoryService
	logger          *logrus.Logger
}

// NewAnalysisHandler создает новый экземпляр AnalysisHandler
func NewAnalysisHandler(analyzerService *service.AnalyzerService, historyService *service.HistoryService, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzerService: analyzerService,
		historyService:  historyService,
		logger:          logger,
	}
}

// RegisterRoutes регистрирует маршруты API
func (h *AnalysisHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/analyze/csv", h.AnalyzeCSV)
		api.POST("/analyze/image", h.AnalyzeImage)
		api.GET("/health", h.CheckHealth)
		api.GET("/model/info", h.GetModelInfo)
		api.GET("/analyses", h.ListAnalyses)
		api.GET("/analyses/:id", h.GetAnalysis)
		api.DELETE("/analyses/:id", h.DeleteAnalysis)
	}
}

// AnalyzeCSV обрабатывает запрос на анализ числового сигнала ЭЭГ
func (h *AnalysisHandler) AnalyzeCSV(c *gin.Context) {
	h.logger.Info("Получен запрос на анализ числового сигнала ЭЭГ")
	startTime := time.Now()

	// values разбирается в два шага: отсутствие поля и поле неверного типа
	// должны давать разные сообщения об ошибке
	var raw struct {
		Values       json.RawMessage `json:"values"`
		SamplingRate float64         `json:"samplingRate"`
		Channel      string          `json:"channel"`
	}
	if err := c.ShouldBindJSON(&raw); err != nil || raw.Values == nil {
		h.logger.Errorf("Отсутствует поле values в теле запроса: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'values' in request body"})
		return
	}

	var values []float64
	if err := json.Unmarshal(raw.Values, &values); err != nil || len(values) == 0 {
		h.logger.Error("Поле values не является непустым массивом чисел")
		c.JSON(http.StatusBadRequest, gin.H{"error": "'values' must be a non-empty array"})
		return
	}

	request := models.AnalyzeCSVRequest{
		Values:       values,
		SamplingRate: raw.SamplingRate,
		Channel:      raw.Channel,
	}

	analysisReport, err := h.analyzerService.AnalyzeSignal(request)
	if err != nil {
		h.logger.Errorf("Ошибка анализа сигнала: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed. Please try again."})
		return
	}

	analysisReport.InferenceTimeMs = time.Since(startTime).Milliseconds()

	samplingRate := request.SamplingRate
	if samplingRate <= 0 {
		samplingRate = models.DefaultSamplingRate
	}

	// Ошибка сохранения истории не должна ломать сам анализ
	if _, err := h.historyService.SaveReport(model.SourceCSV, request.Channel, samplingRate, len(request.Values), analysisReport); err != nil {
		h.logger.Warnf("Не удалось сохранить анализ в истории: %v", err)
	}

	h.logger.Info("Анализ сигнала завершен успешно")
	c.JSON(http.StatusOK, analysisReport)
}

// AnalyzeImage обрабатывает запрос на анализ изображения ЭЭГ
func (h *AnalysisHandler) AnalyzeImage(c *gin.Context) {
	h.logger.Info("Получен запрос на анализ изображения ЭЭГ")
	startTime := time.Now()

	var request models.AnalyzeImageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Errorf("Ошибка парсинга тела запроса: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'image' in request body"})
		return
	}

	if request.Image == "" {
		h.logger.Error("Пустое изображение в запросе")
		c.JSON(http.StatusBadRequest, gin.H{"error": "'image' must be a non-empty base64 string"})
		return
	}

	analysisReport, err := h.analyzerService.AnalyzeImage(c.Request.Context(), request.Image)
	if err != nil {
		if errors.Is(err, client.ErrAPIKeyMissing) {
			h.logger.Error("Ключ Gemini API не настроен")
			c.JSON(http.StatusBadRequest, gin.H{"error": client.ErrAPIKeyMissing.Error()})
			return
		}
		h.logger.Errorf("Ошибка анализа изображения: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed: " + err.Error()})
		return
	}

	analysisReport.InferenceTimeMs = time.Since(startTime).Milliseconds()

	if _, err := h.historyService.SaveReport(model.SourceImage, "", 0, 0, analysisReport); err != nil {
		h.logger.Warnf("Не удалось сохранить анализ в истории: %v", err)
	}

	h.logger.Info("Анализ изображения завершен успешно")
	c.JSON(http.StatusOK, analysisReport)
}

// CheckHealth возвращает состояние сервиса
func (h *AnalysisHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzerService.CheckHealth())
}

// GetModelInfo возвращает информацию об обученном классификаторе
func (h *AnalysisHandler) GetModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzerService.ModelInfo())
}

// ListAnalyses возвращает список сохранённых анализов с пагинацией
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	h.logger.Info("Получен запрос на получение списка анализов")

	pageStr := c.DefaultQuery("page", "1")
	sizeStr := c.DefaultQuery("size", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 || size > 100 {
		size = 10
	}

	analyses, total, err := h.historyService.ListAnalyses(page, size)
	if err != nil {
		h.logger.Errorf("Ошибка получения списка анализов: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list analyses"})
		return
	}

	response := service.ListAnalysesResponse{
		Analyses: analyses,
		Total:    total,
		Page:     page,
		Size:     size,
	}

	h.logger.Infof("Возвращено %d анализов из %d", len(analyses), total)
	c.JSON(http.StatusOK, response)
}

// GetAnalysis возвращает сохранённый анализ по ID
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	h.logger.Infof("Получен запрос на получение анализа с ID: %s", analysisID)

	analysis, err := h.historyService.GetAnalysis(analysisID)
	if err != nil {
		h.logger.Errorf("Ошибка получения анализа: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// DeleteAnalysis удаляет сохранённый анализ по ID
func (h *AnalysisHandler) DeleteAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	h.logger.Infof("Получен запрос на удаление анализа с ID: %s", analysisID)

	if err := h.historyService.DeleteAnalysis(analysisID); err != nil {
		h.logger.Errorf("Ошибка удаления анализа: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted"})
}
