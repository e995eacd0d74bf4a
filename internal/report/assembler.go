package report

import (
	"math"

	"eeg-analyzer-go/internal/classifier"
	"eeg-analyzer-go/internal/signal"
	"eeg-analyzer-go/pkg/models"
)

// Фиксированная уверенность после защитного переопределения: заявка
// AI-сервиса о приступе с уверенностью ниже 0.5 наружу не выдается
const overrideConfidence = 0.6

// AssembleSignalReport собирает итоговый отчёт для числового пути анализа
func AssembleSignalReport(features signal.FeatureSet, result classifier.Result, samplingRate float64) models.AnalysisReport {
	band := signal.DetermineBand(features.Std)
	quality := signal.AssessQuality(features.Std)
	bands := signal.FrequencyBands(features.Std)
	metrics := signal.Metrics(features, samplingRate)

	prediction := models.PredictionNonSeizure
	if result.IsSeizure {
		prediction = models.PredictionSeizure
	}

	return models.AnalysisReport{
		Prediction:    prediction,
		Confidence:    round(result.Confidence*100, 1),
		SignalQuality: quality,
		DominantBand:  band,
		Stats: models.SignalStats{
			Mean:    round(features.Mean, 4),
			Std:     round(features.Std, 4),
			Entropy: round(features.Entropy, 2),
		},
		FrequencyAnalysis: models.FrequencyAnalysis{
			Delta: round(bands.Delta, 2),
			Theta: round(bands.Theta, 2),
			Alpha: round(bands.Alpha, 2),
			Beta:  round(bands.Beta, 2),
			Gamma: round(bands.Gamma, 2),
		},
		SignalMetrics: models.SignalMetrics{
			SNR:              round(metrics.SNR, 2),
			PeakFrequency:    round(metrics.PeakFrequency, 2),
			SpectralCentroid: round(metrics.SpectralCentroid, 2),
		},
		Findings:              GenerateFindings(features, result.IsSeizure, band),
		RiskIndicators:        GenerateRiskIndicators(features, result.IsSeizure, band),
		Recommendations:       GenerateRecommendations(result.IsSeizure, quality, band),
		SeizureClassification: classifier.ClassifySeizureType(result.IsSeizure, band, result.Confidence),
	}
}

// AssembleImageReport собирает отчёт по ответу AI-сервиса (путь анализа
// изображения). Нормализует уверенность, применяет защитный порог и
// накладывает явную классификацию сервиса поверх табличной записи.
func AssembleImageReport(analysis models.GeminiAnalysis) models.AnalysisReport {
	// Защитный порог: неуверенная заявка о приступе превращается в Non-Seizure
	if analysis.Confidence < 0.5 && analysis.Prediction == models.PredictionSeizure {
		analysis.Prediction = models.PredictionNonSeizure
		analysis.Confidence = overrideConfidence
		analysis.SeizureType = nil
		analysis.MotorComponent = nil
		analysis.AwarenessStatus = nil
	}

	// Сервис может вернуть уверенность как долю или как процент
	confidence := analysis.Confidence
	if confidence <= 1 {
		confidence = confidence * 100
	}

	isSeizure := analysis.Prediction == models.PredictionSeizure
	band := models.Band(analysis.DominantBand)
	quality := models.SignalQuality(analysis.SignalQuality)

	// maxAbs по изображению не измеряется, оценивается через std
	features := signal.FeatureSet{
		Mean:    analysis.Stats.Mean,
		Std:     analysis.Stats.Std,
		Entropy: analysis.Stats.Entropy,
		MaxAbs:  analysis.Stats.Std * 50,
	}

	// Частотное распределение и метрики для изображения фиксированы:
	// численного сигнала нет, реальную мощность вычислить не из чего
	bands := models.FrequencyAnalysis{
		Delta: 25.0,
		Theta: 30.0,
		Alpha: 35.0,
		Beta:  25.0,
		Gamma: 10.0,
	}

	snr := 8.5
	if quality == models.QualityExcellent || quality == models.QualityGood {
		snr = 12.5
	}
	metrics := models.SignalMetrics{
		SNR:              snr,
		PeakFrequency:    10.5,
		SpectralCentroid: 12.0,
	}

	seizureClassification := classifier.ClassifySeizureType(isSeizure, band, confidence)

	// Явный тип от сервиса накладывается на табличную запись по полям,
	// остальная структура записи сохраняется
	if isSeizure && analysis.SeizureType != nil {
		seizureClassification.SpecificTypes = []string{*analysis.SeizureType}
		seizureClassification.Type = *analysis.SeizureType
		if analysis.MotorComponent != nil {
			seizureClassification.MotorSubtype = analysis.MotorComponent
		}
		if analysis.AwarenessStatus != nil {
			seizureClassification.AwarenessStatus = analysis.AwarenessStatus
		}
	}

	return models.AnalysisReport{
		Prediction:    analysis.Prediction,
		Confidence:    round(confidence, 1),
		SignalQuality: quality,
		DominantBand:  band,
		Stats: models.SignalStats{
			Mean:    analysis.Stats.Mean,
			Std:     analysis.Stats.Std,
			Entropy: round(analysis.Stats.Entropy, 2),
		},
		FrequencyAnalysis:     bands,
		SignalMetrics:         metrics,
		Findings:              GenerateFindings(features, isSeizure, band),
		RiskIndicators:        GenerateRiskIndicators(features, isSeizure, band),
		Recommendations:       GenerateRecommendations(isSeizure, quality, band),
		SeizureClassification: seizureClassification,
	}
}

// round округляет значение до заданного числа знаков после запятой
func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
