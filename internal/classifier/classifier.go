package classifier

import (
	"math"

	"eeg-analyzer-go/internal/signal"
)

// Пороги классификации для сигнала в микровольтах.
// Типичный приступ: maxAbs > 800 мкВ или std > 350 мкВ.
const (
	maxAbsThreshold = 800.0
	stdThreshold    = 350.0
)

// Result результат классификации приступ/не-приступ
type Result struct {
	IsSeizure  bool
	Confidence float64 // Доля в диапазоне (0, 0.99]
}

// Classify применяет решающее правило к извлечённым статистикам.
// Высокая амплитуда или высокая вариативность указывают на приступ.
// Обученная модель в решении не участвует (см. Probe).
func Classify(features signal.FeatureSet) Result {
	isSeizure := features.MaxAbs > maxAbsThreshold || features.Std > stdThreshold

	var confidence float64
	if isSeizure {
		confidence = 0.85 + math.Min(features.Std, 500)/500*0.10
	} else {
		// Чем выше std, тем ниже уверенность в отсутствии приступа
		confidence = 0.92 + (1-math.Min(features.Std, 300)/300)*0.05
	}

	return Result{
		IsSeizure:  isSeizure,
		Confidence: math.Min(confidence, 0.99),
	}
}
