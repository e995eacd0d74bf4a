package signal

import (
	"testing"

	"eeg-analyzer-go/pkg/models"
)

func TestDetermineBand(t *testing.T) {
	tests := []struct {
		std  float64
		want models.Band
	}{
		{0, models.BandDelta},
		{99.9, models.BandDelta},
		{100, models.BandTheta},
		{199.9, models.BandTheta},
		{200, models.BandAlpha},
		{299.9, models.BandAlpha},
		{300, models.BandBeta},
		{499.9, models.BandBeta},
		{500, models.BandGamma},
		{900, models.BandGamma},
	}

	for _, tt := range tests {
		if got := DetermineBand(tt.std); got != tt.want {
			t.Errorf("DetermineBand(%v) = %v, ожидалось %v", tt.std, got, tt.want)
		}
	}
}

func TestAssessQuality(t *testing.T) {
	// Порядок проверок исходной таблицы: очень высокое std даёт Fair, а не Poor
	tests := []struct {
		std  float64
		want models.SignalQuality
	}{
		{0, models.QualityPoor},
		{9.9, models.QualityPoor},
		{10, models.QualityExcellent},
		{400, models.QualityExcellent},
		{400.1, models.QualityGood},
		{800, models.QualityGood},
		{800.1, models.QualityFair},
		{5000, models.QualityFair},
	}

	for _, tt := range tests {
		if got := AssessQuality(tt.std); got != tt.want {
			t.Errorf("AssessQuality(%v) = %v, ожидалось %v", tt.std, got, tt.want)
		}
	}
}

// Каждое значение std должно отображаться ровно в один диапазон и один уровень качества
func TestBandAndQualityTotal(t *testing.T) {
	for std := 0.0; std < 1200; std += 0.5 {
		band := DetermineBand(std)
		switch band {
		case models.BandDelta, models.BandTheta, models.BandAlpha, models.BandBeta, models.BandGamma:
		default:
			t.Fatalf("DetermineBand(%v) вернул неизвестный диапазон %q", std, band)
		}

		quality := AssessQuality(std)
		switch quality {
		case models.QualityPoor, models.QualityFair, models.QualityGood, models.QualityExcellent:
		default:
			t.Fatalf("AssessQuality(%v) вернул неизвестное качество %q", std, quality)
		}
	}
}
