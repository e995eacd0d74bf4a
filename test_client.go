package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"
)

func main() {
	// Проверяем health endpoint
	fmt.Println("Проверяем health endpoint...")
	resp, err := http.Get("http://localhost:8080/api/v1/health")
	if err != nil {
		fmt.Printf("Ошибка при обращении к health endpoint: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Ошибка чтения ответа: %v\n", err)
		return
	}

	fmt.Printf("Health check ответ (статус %d):\n%s\n\n", resp.StatusCode, string(body))

	// Отправляем синтетический сигнал на анализ
	fmt.Println("Отправляем синтетический сигнал ЭЭГ на анализ...")
	if err := testAnalyzeCSV(); err != nil {
		fmt.Printf("Ошибка при тестировании анализа сигнала: %v\n", err)
	}

	// Если передан путь к изображению, отправляем его тоже
	if len(os.Args) > 1 {
		imagePath := os.Args[1]
		fmt.Printf("Отправляем изображение %s на анализ...\n", imagePath)

		if err := testAnalyzeImage(imagePath); err != nil {
			fmt.Printf("Ошибка при тестировании анализа изображения: %v\n", err)
		}
	} else {
		fmt.Println("Для тестирования анализа изображения запустите: go run test_client.go <путь_к_изображению>")
	}
}

func testAnalyzeCSV() error {
	// Синусоида 10 Гц с амплитудой 120 мкВ, 256 отсчётов
	values := make([]float64, 256)
	for i := range values {
		values[i] = 120 * math.Sin(2*math.Pi*10*float64(i)/256)
	}

	payload := map[string]interface{}{
		"values":       values,
		"samplingRate": 256,
		"channel":      "FP1-F7",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post("http://localhost:8080/api/v1/analyze/csv", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ошибка отправки запроса: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	fmt.Printf("Ответ анализа сигнала (статус %d):\n%s\n\n", resp.StatusCode, string(respBody))
	return nil
}

func testAnalyzeImage(imagePath string) error {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла изображения: %w", err)
	}

	payload := map[string]string{
		"image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageData),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Post("http://localhost:8080/api/v1/analyze/image", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ошибка отправки запроса: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	fmt.Printf("Ответ анализа изображения (статус %d):\n%s\n", resp.StatusCode, string(respBody))
	return nil
}
