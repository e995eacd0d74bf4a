package signal

import (
	"errors"
	"math"
	"testing"
)

func TestExtractFeaturesEmptySignal(t *testing.T) {
	_, err := ExtractFeatures(nil)
	if !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("ожидалась ошибка ErrEmptySignal, получено: %v", err)
	}

	_, err = ExtractFeatures([]float64{})
	if !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("ожидалась ошибка ErrEmptySignal, получено: %v", err)
	}
}

func TestExtractFeaturesBasicStats(t *testing.T) {
	features, err := ExtractFeatures([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if math.Abs(features.Mean-2.5) > 1e-12 {
		t.Errorf("Mean = %v, ожидалось 2.5", features.Mean)
	}
	// Популяционное стандартное отклонение: sqrt(1.25)
	if math.Abs(features.Std-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("Std = %v, ожидалось %v", features.Std, math.Sqrt(1.25))
	}
	if features.MaxAbs != 4 {
		t.Errorf("MaxAbs = %v, ожидалось 4", features.MaxAbs)
	}
}

func TestExtractFeaturesMaxAbsUsesAbsoluteValues(t *testing.T) {
	features, err := ExtractFeatures([]float64{-750, 10, 20})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if features.MaxAbs != 750 {
		t.Errorf("MaxAbs = %v, ожидалось 750", features.MaxAbs)
	}
}

func TestExtractFeaturesAllZeros(t *testing.T) {
	values := make([]float64, 10)
	features, err := ExtractFeatures(values)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if features.Mean != 0 || features.Std != 0 || features.MaxAbs != 0 {
		t.Errorf("для нулевого сигнала ожидались нулевые статистики, получено: %+v", features)
	}

	// Равномерное распределение по 10 отсчётам: энтропия log2(10)/10
	expected := math.Log2(10) / 10
	if math.Abs(features.Entropy-expected) > 1e-6 {
		t.Errorf("Entropy = %v, ожидалось %v", features.Entropy, expected)
	}
}

func TestEntropyBounded(t *testing.T) {
	inputs := [][]float64{
		{1},
		{5, 5, 5, 5},
		{-100, 0, 100, 250, -80, 42, 17},
		make([]float64, 1000),
	}

	for _, values := range inputs {
		features, err := ExtractFeatures(values)
		if err != nil {
			t.Fatalf("неожиданная ошибка: %v", err)
		}
		if features.Entropy < 0 || features.Entropy > 1 {
			t.Errorf("Entropy = %v вне диапазона [0,1] для %v", features.Entropy, values)
		}
	}
}

func TestExtractFeaturesDeterministic(t *testing.T) {
	values := []float64{12.5, -33.1, 408.2, 0.004, -17}

	first, err := ExtractFeatures(values)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	second, err := ExtractFeatures(values)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if first != second {
		t.Errorf("повторный вызов дал другой результат: %+v != %+v", first, second)
	}
}
