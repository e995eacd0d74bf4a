package classifier

import (
	"os"
	"sync"

	"eeg-analyzer-go/pkg/models"

	"github.com/sirupsen/logrus"
)

// Probe ленивая проверка доступности обученного LSTM классификатора.
// Результат проверки влияет только на логирование и /model/info:
// само решение всегда принимает эвристическое правило Classify.
type Probe struct {
	modelPath string
	logger    *logrus.Logger

	once      sync.Once
	available bool
}

// NewProbe создает новый probe для файла модели
func NewProbe(modelPath string, logger *logrus.Logger) *Probe {
	return &Probe{
		modelPath: modelPath,
		logger:    logger,
	}
}

// IsAvailable проверяет наличие файла модели. Проверка выполняется один раз,
// результат переиспользуется на всех последующих запросах.
func (p *Probe) IsAvailable() bool {
	p.once.Do(func() {
		info, err := os.Stat(p.modelPath)
		p.available = err == nil && !info.IsDir()

		if p.available {
			p.logger.Infof("Модель классификатора найдена: %s", p.modelPath)
		} else {
			p.logger.Warnf("Модель классификатора недоступна (%s), используется эвристический конвейер", p.modelPath)
		}
	})
	return p.available
}

// Info возвращает информацию о состоянии модели для /model/info
func (p *Probe) Info() models.ModelInfoResponse {
	if p.IsAvailable() {
		return models.ModelInfoResponse{
			Status:    "loaded",
			ModelPath: p.modelPath,
			Type:      "LSTM",
		}
	}
	return models.ModelInfoResponse{
		Status:    "not_available",
		ModelPath: p.modelPath,
		Fallback:  "heuristic_analysis",
	}
}
