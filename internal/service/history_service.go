package service

import (
	"fmt"

	"eeg-analyzer-go/internal/model"
	"eeg-analyzer-go/internal/repository"
	"eeg-analyzer-go/pkg/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HistoryService сервис для работы с историей анализов
type HistoryService struct {
	analysisRepo repository.AnalysisRepository
	logger       *logrus.Logger
}

// NewHistoryService создает новый сервис истории анализов
func NewHistoryService(analysisRepo repository.AnalysisRepository, logger *logrus.Logger) *HistoryService {
	return &HistoryService{
		analysisRepo: analysisRepo,
		logger:       logger,
	}
}

// SaveReport сохраняет сводку отчёта в базе данных и возвращает ID записи.
// Сырые отсчёты сигнала не сохраняются.
func (s *HistoryService) SaveReport(source, channel string, samplingRate float64, sampleCount int, analysisReport *models.AnalysisReport) (string, error) {
	analysis := &model.Analysis{
		ID:              uuid.New().String(),
		Source:          source,
		Channel:         channel,
		SamplingRate:    samplingRate,
		SampleCount:     sampleCount,
		Prediction:      analysisReport.Prediction,
		Confidence:      analysisReport.Confidence,
		SignalQuality:   string(analysisReport.SignalQuality),
		DominantBand:    string(analysisReport.DominantBand),
		Mean:            analysisReport.Stats.Mean,
		Std:             analysisReport.Stats.Std,
		Entropy:         analysisReport.Stats.Entropy,
		InferenceTimeMs: analysisReport.InferenceTimeMs,
	}

	if err := s.analysisRepo.Create(analysis); err != nil {
		s.logger.Errorf("Ошибка сохранения анализа в БД: %v", err)
		return "", fmt.Errorf("failed to save analysis: %w", err)
	}

	s.logger.Infof("Анализ %s сохранен в БД (источник: %s)", analysis.ID, source)
	return analysis.ID, nil
}

// GetAnalysis получает сохранённый анализ по ID
func (s *HistoryService) GetAnalysis(id string) (*AnalysisResponse, error) {
	analysis, err := s.analysisRepo.GetByID(id)
	if err != nil {
		s.logger.Errorf("Ошибка получения анализа: %v", err)
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	response := s.modelToResponse(analysis)
	return &response, nil
}

// ListAnalyses получает список сохранённых анализов с пагинацией
func (s *HistoryService) ListAnalyses(page, pageSize int) ([]AnalysisResponse, int64, error) {
	analyses, total, err := s.analysisRepo.List(page, pageSize)
	if err != nil {
		s.logger.Errorf("Ошибка получения списка анализов: %v", err)
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}

	responses := make([]AnalysisResponse, 0, len(analyses))
	for _, analysis := range analyses {
		responses = append(responses, s.modelToResponse(analysis))
	}
	return responses, total, nil
}

// DeleteAnalysis удаляет сохранённый анализ по ID
func (s *HistoryService) DeleteAnalysis(id string) error {
	if err := s.analysisRepo.Delete(id); err != nil {
		s.logger.Errorf("Ошибка удаления анализа: %v", err)
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	s.logger.Infof("Анализ %s удален", id)
	return nil
}

// modelToResponse преобразует модель базы данных в ответ API
func (s *HistoryService) modelToResponse(analysis *model.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:              analysis.ID,
		Source:          analysis.Source,
		Channel:         analysis.Channel,
		SamplingRate:    analysis.SamplingRate,
		SampleCount:     analysis.SampleCount,
		Prediction:      analysis.Prediction,
		Confidence:      analysis.Confidence,
		SignalQuality:   analysis.SignalQuality,
		DominantBand:    analysis.DominantBand,
		Stats: models.SignalStats{
			Mean:    analysis.Mean,
			Std:     analysis.Std,
			Entropy: analysis.Entropy,
		},
		InferenceTimeMs: analysis.InferenceTimeMs,
		CreatedAt:       analysis.CreatedAt,
	}
}
