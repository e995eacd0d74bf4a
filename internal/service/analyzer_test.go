package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"eeg-analyzer-go/internal/classifier"
	"eeg-analyzer-go/internal/client"
	"eeg-analyzer-go/pkg/models"
)

func testAnalyzerService(t *testing.T) *AnalyzerService {
	t.Helper()
	logger := testLogger()
	geminiClient := client.NewGeminiClient("http://localhost", "gemini-2.0-flash", "", time.Second, logger)
	probe := classifier.NewProbe(filepath.Join(t.TempDir(), "missing.h5"), logger)
	return NewAnalyzerService(geminiClient, probe, logger)
}

func TestAnalyzeSignal(t *testing.T) {
	analyzerService := testAnalyzerService(t)

	analysisReport, err := analyzerService.AnalyzeSignal(models.AnalyzeCSVRequest{
		Values: make([]float64, 256),
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if analysisReport.Prediction != models.PredictionNonSeizure {
		t.Errorf("Prediction = %q", analysisReport.Prediction)
	}
	if analysisReport.Confidence != 97.0 {
		t.Errorf("Confidence = %v, ожидалось 97.0", analysisReport.Confidence)
	}
	if len(analysisReport.Findings) == 0 || len(analysisReport.Recommendations) == 0 {
		t.Error("отчёт должен содержать наблюдения и рекомендации")
	}
}

func TestAnalyzeSignalEmpty(t *testing.T) {
	analyzerService := testAnalyzerService(t)

	if _, err := analyzerService.AnalyzeSignal(models.AnalyzeCSVRequest{}); err == nil {
		t.Fatal("ожидалась ошибка для пустого сигнала")
	}
}

func TestAnalyzeSignalSeizure(t *testing.T) {
	analyzerService := testAnalyzerService(t)

	// Знакопеременный сигнал с большой амплитудой: maxAbs > 800
	values := make([]float64, 100)
	for i := range values {
		if i%2 == 0 {
			values[i] = 900
		} else {
			values[i] = -900
		}
	}

	analysisReport, err := analyzerService.AnalyzeSignal(models.AnalyzeCSVRequest{Values: values, SamplingRate: 512})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if analysisReport.Prediction != models.PredictionSeizure {
		t.Errorf("Prediction = %q, ожидался Seizure", analysisReport.Prediction)
	}
	if !analysisReport.SeizureClassification.IsSeizure {
		t.Error("SeizureClassification.IsSeizure = false")
	}
}

func TestAnalyzeImageMissingKey(t *testing.T) {
	analyzerService := testAnalyzerService(t)

	_, err := analyzerService.AnalyzeImage(context.Background(), "aGVsbG8=")
	if err == nil {
		t.Fatal("ожидалась ошибка без ключа API")
	}
}

func TestCheckHealth(t *testing.T) {
	analyzerService := testAnalyzerService(t)

	health := analyzerService.CheckHealth()
	if health.Status != "ok" {
		t.Errorf("Status = %q", health.Status)
	}
	if health.Version != Version {
		t.Errorf("Version = %q", health.Version)
	}
	if health.ModelLoaded {
		t.Error("ModelLoaded = true без файла модели")
	}
}

func TestModelInfo(t *testing.T) {
	analyzerService := testAnalyzerService(t)

	info := analyzerService.ModelInfo()
	if info.Status != "not_available" {
		t.Errorf("Status = %q", info.Status)
	}
	if info.Fallback != "heuristic_analysis" {
		t.Errorf("Fallback = %q", info.Fallback)
	}
}
