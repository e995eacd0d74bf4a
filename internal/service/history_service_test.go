package service

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"eeg-analyzer-go/internal/model"
	"eeg-analyzer-go/pkg/models"
)

// fakeAnalysisRepository хранит анализы в памяти для тестов сервиса
type fakeAnalysisRepository struct {
	analyses  []*model.Analysis
	createErr error
}

func (r *fakeAnalysisRepository) Create(analysis *model.Analysis) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.analyses = append(r.analyses, analysis)
	return nil
}

func (r *fakeAnalysisRepository) GetByID(id string) (*model.Analysis, error) {
	for _, analysis := range r.analyses {
		if analysis.ID == id {
			return analysis, nil
		}
	}
	return nil, errors.New("analysis with id " + id + " not found")
}

func (r *fakeAnalysisRepository) List(page, pageSize int) ([]*model.Analysis, int64, error) {
	start := (page - 1) * pageSize
	if start >= len(r.analyses) {
		return nil, int64(len(r.analyses)), nil
	}
	end := start + pageSize
	if end > len(r.analyses) {
		end = len(r.analyses)
	}
	return r.analyses[start:end], int64(len(r.analyses)), nil
}

func (r *fakeAnalysisRepository) Delete(id string) error {
	for i, analysis := range r.analyses {
		if analysis.ID == id {
			r.analyses = append(r.analyses[:i], r.analyses[i+1:]...)
			return nil
		}
	}
	return errors.New("analysis with id " + id + " not found")
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func sampleReport() *models.AnalysisReport {
	return &models.AnalysisReport{
		Prediction:    models.PredictionNonSeizure,
		Confidence:    97.0,
		SignalQuality: models.QualityExcellent,
		DominantBand:  models.BandAlpha,
		Stats: models.SignalStats{
			Mean:    1.5,
			Std:     120.0,
			Entropy: 0.65,
		},
		InferenceTimeMs: 12,
	}
}

func TestSaveReportStoresSummary(t *testing.T) {
	repo := &fakeAnalysisRepository{}
	historyService := NewHistoryService(repo, testLogger())

	id, err := historyService.SaveReport(model.SourceCSV, "Fp1", 256, 1024, sampleReport())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if id == "" {
		t.Fatal("SaveReport вернул пустой ID")
	}

	if len(repo.analyses) != 1 {
		t.Fatalf("сохранено %d записей, ожидалась 1", len(repo.analyses))
	}
	saved := repo.analyses[0]
	if saved.Source != model.SourceCSV || saved.Channel != "Fp1" {
		t.Errorf("источник/канал = %q/%q", saved.Source, saved.Channel)
	}
	if saved.SamplingRate != 256 || saved.SampleCount != 1024 {
		t.Errorf("samplingRate/sampleCount = %v/%v", saved.SamplingRate, saved.SampleCount)
	}
	if saved.Prediction != models.PredictionNonSeizure || saved.Confidence != 97.0 {
		t.Errorf("prediction/confidence = %q/%v", saved.Prediction, saved.Confidence)
	}
	if saved.Std != 120.0 || saved.Entropy != 0.65 {
		t.Errorf("статистики = %+v", saved)
	}
}

func TestSaveReportPropagatesError(t *testing.T) {
	repo := &fakeAnalysisRepository{createErr: errors.New("connection refused")}
	historyService := NewHistoryService(repo, testLogger())

	if _, err := historyService.SaveReport(model.SourceImage, "", 0, 0, sampleReport()); err == nil {
		t.Fatal("ожидалась ошибка сохранения")
	}
}

func TestGetAnalysis(t *testing.T) {
	repo := &fakeAnalysisRepository{}
	historyService := NewHistoryService(repo, testLogger())

	id, err := historyService.SaveReport(model.SourceCSV, "Cz", 512, 2048, sampleReport())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	response, err := historyService.GetAnalysis(id)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if response.ID != id || response.Channel != "Cz" {
		t.Errorf("response = %+v", response)
	}
	if response.Stats.Std != 120.0 {
		t.Errorf("Stats.Std = %v", response.Stats.Std)
	}

	if _, err := historyService.GetAnalysis("missing-id"); err == nil {
		t.Error("ожидалась ошибка для несуществующего ID")
	}
}

func TestListAnalysesPagination(t *testing.T) {
	repo := &fakeAnalysisRepository{}
	historyService := NewHistoryService(repo, testLogger())

	for i := 0; i < 5; i++ {
		if _, err := historyService.SaveReport(model.SourceCSV, "", 256, 100, sampleReport()); err != nil {
			t.Fatalf("неожиданная ошибка: %v", err)
		}
	}

	responses, total, err := historyService.ListAnalyses(1, 2)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, ожидалось 5", total)
	}
	if len(responses) != 2 {
		t.Errorf("len(responses) = %d, ожидалось 2", len(responses))
	}

	responses, _, err = historyService.ListAnalyses(3, 2)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(responses) != 1 {
		t.Errorf("на последней странице ожидалась 1 запись: %d", len(responses))
	}
}

func TestDeleteAnalysis(t *testing.T) {
	repo := &fakeAnalysisRepository{}
	historyService := NewHistoryService(repo, testLogger())

	id, err := historyService.SaveReport(model.SourceCSV, "", 256, 100, sampleReport())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if err := historyService.DeleteAnalysis(id); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if _, err := historyService.GetAnalysis(id); err == nil {
		t.Error("анализ должен быть удален")
	}
	if err := historyService.DeleteAnalysis(id); err == nil {
		t.Error("повторное удаление должно вернуть ошибку")
	}
}
