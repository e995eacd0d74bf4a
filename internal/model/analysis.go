package model

import (
	"time"

	"gorm.io/gorm"
)

// Источники анализа
const (
	SourceCSV   = "csv"
	SourceImage = "image"
)

// Analysis представляет сохранённый результат анализа ЭЭГ в базе данных.
// Хранится только сводка отчёта: сырые отсчёты сигнала не персистируются.
type Analysis struct {
	ID           string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Source       string  `gorm:"type:varchar(16);not null" json:"source"` // csv или image
	Channel      string  `gorm:"type:varchar(32)" json:"channel"`
	SamplingRate float64 `gorm:"not null;default:0" json:"sampling_rate"`
	SampleCount  int     `gorm:"not null;default:0" json:"sample_count"`

	// Итог классификации
	Prediction    string  `gorm:"type:varchar(16);not null" json:"prediction"`
	Confidence    float64 `gorm:"not null" json:"confidence"`
	SignalQuality string  `gorm:"type:varchar(16)" json:"signal_quality"`
	DominantBand  string  `gorm:"type:varchar(16)" json:"dominant_band"`

	// Сводная статистика сигнала
	Mean    float64 `gorm:"not null;default:0" json:"mean"`
	Std     float64 `gorm:"not null;default:0" json:"std"`
	Entropy float64 `gorm:"not null;default:0" json:"entropy"`

	InferenceTimeMs int64 `gorm:"not null;default:0" json:"inference_time_ms"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName указывает имя таблицы для Analysis
func (Analysis) TableName() string {
	return "analyses"
}
