package signal

import (
	"eeg-analyzer-go/pkg/models"
)

// DetermineBand определяет доминирующий частотный диапазон по стандартному
// отклонению. Пороги фиксированы и подобраны для реальных данных ЭЭГ в
// микровольтах, калибровка не выполняется.
func DetermineBand(std float64) models.Band {
	switch {
	case std < 100:
		return models.BandDelta
	case std < 200:
		return models.BandTheta
	case std < 300:
		return models.BandAlpha
	case std < 500:
		return models.BandBeta
	default:
		return models.BandGamma
	}
}

// AssessQuality оценивает качество записи по стандартному отклонению.
// Порядок проверок воспроизводит исходную таблицу правил: очень высокое std
// даёт Fair, а не Poor.
func AssessQuality(std float64) models.SignalQuality {
	switch {
	case std < 10:
		return models.QualityPoor // Слишком плоский сигнал, возможно отключён электрод
	case std > 800:
		return models.QualityFair // Очень шумный сигнал
	case std > 400:
		return models.QualityGood
	default:
		return models.QualityExcellent
	}
}
