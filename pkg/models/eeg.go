package models

// Band имя доминирующего частотного диапазона ЭЭГ
type Band string

// Частотные диапазоны ЭЭГ (упорядочены по порогам std)
const (
	BandDelta Band = "Delta"
	BandTheta Band = "Theta"
	BandAlpha Band = "Alpha"
	BandBeta  Band = "Beta"
	BandGamma Band = "Gamma"
)

// SignalQuality оценка качества записи сигнала
type SignalQuality string

// Уровни качества сигнала
const (
	QualityPoor      SignalQuality = "Poor"
	QualityFair      SignalQuality = "Fair"
	QualityGood      SignalQuality = "Good"
	QualityExcellent SignalQuality = "Excellent"
)

// Метки предсказания
const (
	PredictionSeizure    = "Seizure"
	PredictionNonSeizure = "Non-Seizure"
)

// DefaultSamplingRate частота дискретизации по умолчанию в Гц
const DefaultSamplingRate = 256.0

// AnalyzeCSVRequest запрос на анализ числового сигнала ЭЭГ
type AnalyzeCSVRequest struct {
	Values       []float64 `json:"values"`       // Отсчёты сигнала в микровольтах
	SamplingRate float64   `json:"samplingRate"` // Частота дискретизации, Гц (по умолчанию 256)
	Channel      string    `json:"channel"`      // Метка канала, например FP1-F7 (не влияет на анализ)
}

// AnalyzeImageRequest запрос на анализ изображения ЭЭГ через AI-сервис
type AnalyzeImageRequest struct {
	Image string `json:"image"` // base64, опционально с префиксом data:<mime>;base64,
}

// SignalStats сводная статистика сигнала
type SignalStats struct {
	Mean    float64 `json:"mean"`    // Среднее значение амплитуды
	Std     float64 `json:"std"`     // Стандартное отклонение (популяционное)
	Entropy float64 `json:"entropy"` // Ограниченная энтропия Шеннона [0,1]
}

// FrequencyAnalysis распределение мощности по диапазонам
type FrequencyAnalysis struct {
	Delta float64 `json:"delta"`
	Theta float64 `json:"theta"`
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

// SignalMetrics производные метрики сигнала
type SignalMetrics struct {
	SNR              float64 `json:"snr"`              // Отношение сигнал/шум, дБ
	PeakFrequency    float64 `json:"peakFrequency"`    // Пиковая частота, Гц
	SpectralCentroid float64 `json:"spectralCentroid"` // Спектральный центроид, Гц
}

// SeizureClassification структурированная классификация типа приступа по ILAE
type SeizureClassification struct {
	IsSeizure          bool     `json:"isSeizure"`
	Type               string   `json:"type"`
	OnsetType          *string  `json:"onsetType"`
	MotorSubtype       *string  `json:"motorSubtype"`
	AwarenessStatus    *string  `json:"awarenessStatus"`
	SpecificTypes      []string `json:"specificTypes"`
	MotorTypes         []string `json:"motorTypes"`
	NonMotorTypes      []string `json:"nonMotorTypes"`
	ILAEClassification *string  `json:"ilaeClassification"`
	Description        string   `json:"description,omitempty"`
	FocusLocation      string   `json:"focusLocation,omitempty"`
	Urgency            string   `json:"urgency,omitempty"`
}

// AnalysisReport итоговый отчёт анализа ЭЭГ
type AnalysisReport struct {
	Prediction            string                `json:"prediction"`
	Confidence            float64               `json:"confidence"` // Процент 0-100, один знак после запятой
	SignalQuality         SignalQuality         `json:"signalQuality"`
	DominantBand          Band                  `json:"dominantBand"`
	InferenceTimeMs       int64                 `json:"inferenceTimeMs"`
	Stats                 SignalStats           `json:"stats"`
	FrequencyAnalysis     FrequencyAnalysis     `json:"frequencyAnalysis"`
	SignalMetrics         SignalMetrics         `json:"signalMetrics"`
	Findings              []string              `json:"findings"`
	RiskIndicators        []string              `json:"riskIndicators"`
	Recommendations       []string              `json:"recommendations"`
	SeizureClassification SeizureClassification `json:"seizureClassification"`
}

// GeminiStats статистика сигнала, оценённая AI-сервисом по изображению
type GeminiStats struct {
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
	Entropy float64 `json:"entropy"`
}

// GeminiAnalysis структура JSON-ответа AI-сервиса (контракт промпта)
type GeminiAnalysis struct {
	Prediction      string      `json:"prediction"`
	Confidence      float64     `json:"confidence"`
	DominantBand    string      `json:"dominantBand"`
	SeizureType     *string     `json:"seizureType"`
	MotorComponent  *string     `json:"motorComponent"`
	AwarenessStatus *string     `json:"awarenessStatus"`
	SignalQuality   string      `json:"signalQuality"`
	Stats           GeminiStats `json:"stats"`
}

// HealthResponse ответ проверки здоровья сервиса
type HealthResponse struct {
	Status      string `json:"status"`      // Статус сервиса (ok/unhealthy)
	Message     string `json:"message"`     // Сообщение о состоянии
	ModelLoaded bool   `json:"modelLoaded"` // Доступен ли обученный классификатор
	Version     string `json:"version"`     // Версия сервиса
}

// ModelInfoResponse информация об обученном классификаторе
type ModelInfoResponse struct {
	Status    string `json:"status"`             // loaded / not_available
	ModelPath string `json:"modelPath"`          // Путь к файлу модели
	Type      string `json:"type,omitempty"`     // Архитектура модели
	Fallback  string `json:"fallback,omitempty"` // Используемый запасной конвейер
}
