package signal

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptySignal возвращается, если последовательность отсчётов пуста
var ErrEmptySignal = errors.New("signal contains no samples")

// epsilon для сдвига значений и защиты логарифма от нуля
const epsilon = 1e-10

// FeatureSet сводные статистики сигнала ЭЭГ.
// Вычисляются один раз на запрос и дальше не изменяются.
type FeatureSet struct {
	Mean    float64 // Среднее значение
	Std     float64 // Популяционное стандартное отклонение
	MaxAbs  float64 // Максимум модуля амплитуды
	Entropy float64 // Ограниченная энтропия Шеннона [0,1]
}

// ExtractFeatures извлекает статистики из последовательности отсчётов.
// NaN и Inf не фильтруются и проходят в статистики как есть (известное
// ограничение конвейера, унаследованное от исходной модели).
func ExtractFeatures(values []float64) (FeatureSet, error) {
	if len(values) == 0 {
		return FeatureSet{}, ErrEmptySignal
	}

	maxAbs := 0.0
	for _, v := range values {
		if abs := math.Abs(v); abs > maxAbs {
			maxAbs = abs
		}
	}

	return FeatureSet{
		Mean:    stat.Mean(values, nil),
		Std:     stat.PopStdDev(values, nil),
		MaxAbs:  maxAbs,
		Entropy: boundedEntropy(values),
	}, nil
}

// boundedEntropy вычисляет энтропию Шеннона в битах по нормированному
// распределению сдвинутых значений и ограничивает результат диапазоном [0,1].
// Это эвристический показатель сложности сигнала, а не калиброванная
// скорость энтропии.
func boundedEntropy(values []float64) float64 {
	shifted := make([]float64, len(values))
	min := floats.Min(values)
	sum := 0.0
	for i, v := range values {
		shifted[i] = v - min + epsilon
		sum += shifted[i]
	}

	entropy := 0.0
	for _, s := range shifted {
		p := s / sum
		entropy -= p * math.Log2(p+epsilon)
	}

	return math.Min(entropy/10, 1.0)
}
