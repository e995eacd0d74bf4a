package service

import (
	"time"

	"eeg-analyzer-go/pkg/models"
)

// AnalysisResponse ответ с сохранённым результатом анализа
type AnalysisResponse struct {
	ID              string             `json:"id"`
	Source          string             `json:"source"`
	Channel         string             `json:"channel,omitempty"`
	SamplingRate    float64            `json:"samplingRate,omitempty"`
	SampleCount     int                `json:"sampleCount,omitempty"`
	Prediction      string             `json:"prediction"`
	Confidence      float64            `json:"confidence"`
	SignalQuality   string             `json:"signalQuality"`
	DominantBand    string             `json:"dominantBand"`
	Stats           models.SignalStats `json:"stats"`
	InferenceTimeMs int64              `json:"inferenceTimeMs"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ListAnalysesResponse ответ со списком сохранённых анализов
type ListAnalysesResponse struct {
	Analyses []AnalysisResponse `json:"analyses"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	Size     int                `json:"size"`
}
