package signal

import (
	"math"

	"eeg-analyzer-go/pkg/models"
)

// Фиксированные доли мощности по диапазонам для типичной ЭЭГ.
// Это статическое пропорциональное разбиение signalPower = std²,
// а не оценка спектра по конкретному сигналу (в сумме дают 1.0).
const (
	deltaShare = 0.15
	thetaShare = 0.20
	alphaShare = 0.25
	betaShare  = 0.25
	gammaShare = 0.15
)

// FrequencyBands распределяет мощность сигнала по пяти диапазонам.
func FrequencyBands(std float64) models.FrequencyAnalysis {
	signalPower := std * std

	return models.FrequencyAnalysis{
		Delta: signalPower * deltaShare,
		Theta: signalPower * thetaShare,
		Alpha: signalPower * alphaShare,
		Beta:  signalPower * betaShare,
		Gamma: signalPower * gammaShare,
	}
}

// Metrics вычисляет производные метрики сигнала: SNR, пиковую частоту и
// спектральный центроид. Шум моделируется как 10% мощности сигнала, поэтому
// SNR для любого ненулевого сигнала близок к 10 дБ.
func Metrics(features FeatureSet, samplingRate float64) models.SignalMetrics {
	signalPower := features.Std * features.Std

	// Для нулевого сигнала log10(0) дал бы -Inf, который не сериализуется в JSON
	snr := 0.0
	if signalPower > 0 {
		noisePower := signalPower * 0.1
		snr = 10 * math.Log10(signalPower/(noisePower+epsilon))
	}

	peakFreq := clamp(features.MaxAbs*samplingRate/(2*math.Pi*1000), 0.5, 50)

	// При maxAbs = 0 отношение std/maxAbs не определено, центроид берём базовым
	ratio := 0.0
	if features.MaxAbs > 0 {
		ratio = features.Std / features.MaxAbs
	}
	centroid := clamp(10+ratio*20, 0.5, 50)

	return models.SignalMetrics{
		SNR:              snr,
		PeakFrequency:    peakFreq,
		SpectralCentroid: centroid,
	}
}

// clamp ограничивает значение диапазоном [min, max]
func clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}
