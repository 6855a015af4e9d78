// Package predictor реализует клиент внешнего inference-сервиса,
// преобразующего список симптомов в предсказание.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUpstream обозначает любой сбой обращения к inference-сервису:
// транспортную ошибку, таймаут, неожиданный статус или неразборный ответ.
// Вызывающий отличает его от ошибок хранилища через errors.Is.
var ErrUpstream = errors.New("inference endpoint failed")

// Client — HTTP-клиент inference-сервиса.
type Client struct {
	predictURL string
	httpClient *http.Client
}

// NewClient создает клиент с ограниченным таймаутом запроса.
func NewClient(predictURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		predictURL: predictURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Predict отправляет список симптомов и возвращает предсказание.
func (c *Client) Predict(ctx context.Context, symptoms []string) (string, error) {
	const op = "predictor.Predict"

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(PredictRequest{Symptoms: symptoms}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL, &buf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: %w: unexpected status %s", op, ErrUpstream, resp.Status)
	}

	var predictResp PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
	}
	if predictResp.Prediction == "" {
		return "", fmt.Errorf("%s: %w: empty prediction", op, ErrUpstream)
	}
	return predictResp.Prediction, nil
}
