package signal

import (
	"math"
	"testing"

	"eeg-analyzer-go/pkg/models"
)

func TestFrequencyBandsSumToSignalPower(t *testing.T) {
	for _, std := range []float64{0, 1, 50, 123.4, 900} {
		bands := FrequencyBands(std)
		signalPower := std * std

		sum := bands.Delta + bands.Theta + bands.Alpha + bands.Beta + bands.Gamma
		if math.Abs(sum-signalPower) > 1e-6*math.Max(signalPower, 1) {
			t.Errorf("std=%v: сумма долей %v != мощности сигнала %v", std, sum, signalPower)
		}
	}
}

func TestFrequencyBandsFixedShares(t *testing.T) {
	bands := FrequencyBands(100) // signalPower = 10000

	if bands.Delta != 1500 || bands.Theta != 2000 || bands.Alpha != 2500 ||
		bands.Beta != 2500 || bands.Gamma != 1500 {
		t.Errorf("неверное распределение долей: %+v", bands)
	}
}

func TestMetricsSNRNearConstant(t *testing.T) {
	// Шум моделируется как 10% мощности, SNR близок к 10 дБ для любого сигнала
	for _, std := range []float64{1, 42, 350, 900} {
		metrics := Metrics(FeatureSet{Std: std, MaxAbs: std}, models.DefaultSamplingRate)
		if math.Abs(metrics.SNR-10) > 1e-6 {
			t.Errorf("std=%v: SNR = %v, ожидалось ~10 дБ", std, metrics.SNR)
		}
	}
}

func TestMetricsZeroSignalGuards(t *testing.T) {
	metrics := Metrics(FeatureSet{}, models.DefaultSamplingRate)

	if metrics.SNR != 0 {
		t.Errorf("SNR для нулевого сигнала = %v, ожидалось 0", metrics.SNR)
	}
	if metrics.PeakFrequency != 0.5 {
		t.Errorf("PeakFrequency = %v, ожидался нижний предел 0.5", metrics.PeakFrequency)
	}
	// При maxAbs = 0 центроид принимает базовое значение
	if metrics.SpectralCentroid != 10 {
		t.Errorf("SpectralCentroid = %v, ожидалось 10", metrics.SpectralCentroid)
	}

	// Ни одна метрика не должна быть NaN или Inf, иначе сломается сериализация JSON
	for _, v := range []float64{metrics.SNR, metrics.PeakFrequency, metrics.SpectralCentroid} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("метрика не является конечным числом: %+v", metrics)
		}
	}
}

func TestMetricsPeakFrequency(t *testing.T) {
	// maxAbs*fs/(2*pi*1000) с ограничением [0.5, 50]
	metrics := Metrics(FeatureSet{Std: 10, MaxAbs: 50}, 256)
	expected := 50 * 256 / (2 * math.Pi * 1000)
	if math.Abs(metrics.PeakFrequency-expected) > 1e-9 {
		t.Errorf("PeakFrequency = %v, ожидалось %v", metrics.PeakFrequency, expected)
	}

	// Верхний предел
	metrics = Metrics(FeatureSet{Std: 10, MaxAbs: 1e7}, 256)
	if metrics.PeakFrequency != 50 {
		t.Errorf("PeakFrequency = %v, ожидался верхний предел 50", metrics.PeakFrequency)
	}
}

func TestMetricsSpectralCentroid(t *testing.T) {
	metrics := Metrics(FeatureSet{Std: 100, MaxAbs: 200}, 256)
	if math.Abs(metrics.SpectralCentroid-20) > 1e-9 {
		t.Errorf("SpectralCentroid = %v, ожидалось 20 (10 + 0.5*20)", metrics.SpectralCentroid)
	}

	// std много больше maxAbs: центроид упирается в верхний предел
	metrics = Metrics(FeatureSet{Std: 1000, MaxAbs: 10}, 256)
	if metrics.SpectralCentroid != 50 {
		t.Errorf("SpectralCentroid = %v, ожидался верхний предел 50", metrics.SpectralCentroid)
	}
}
