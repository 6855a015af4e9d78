// Package services содержит бизнес-логику предсказаний: проксирование
// списка симптомов во внешний inference-сервис, сохранение истории
// и выдачу справочника симптомов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medscope/symptom-checker/internal/lib/sl"
	"github.com/medscope/symptom-checker/internal/metrics"
	"github.com/medscope/symptom-checker/internal/models"
)

// ErrUpstream обозначает сбой внешнего inference-сервиса. Ошибки
// хранилища им не оборачиваются: источники сбоя различаются типами,
// а не текстом.
var ErrUpstream = errors.New("inference endpoint failed")

const symptomsCacheKey = "symptoms:all"

// HistoryRepository описывает контракт для истории предсказаний.
type HistoryRepository interface {
	// CreateHistory сохраняет запись и возвращает ее с id и created_at.
	CreateHistory(ctx context.Context, history models.History) (*models.History, error)

	// ListHistoriesByUser возвращает историю пользователя с его именем.
	ListHistoriesByUser(ctx context.Context, userID string) ([]models.History, error)
}

// SymptomRepository описывает контракт для справочника симптомов.
type SymptomRepository interface {
	ListSymptoms(ctx context.Context) ([]models.Symptom, error)
}

// PredictClient описывает клиент внешнего inference-сервиса.
type PredictClient interface {
	Predict(ctx context.Context, symptoms []string) (string, error)
}

// Cache описывает сквозной кэш справочника симптомов.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// EventPublisher публикует события о созданных предсказаниях.
type EventPublisher interface {
	PublishPrediction(message any) error
}

// PredictionEvent — сообщение, публикуемое после успешного предсказания.
type PredictionEvent struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// PredictionService оркестрирует предсказание и чтение истории.
type PredictionService struct {
	histories   HistoryRepository
	symptoms    SymptomRepository
	client      PredictClient
	cache       Cache
	symptomsTTL time.Duration
	publisher   EventPublisher
	collector   *metrics.Collector
	log         *slog.Logger
}

// NewPredictionService создает новый экземпляр PredictionService.
// Publisher может быть nil: публикация событий необязательна.
func NewPredictionService(histories HistoryRepository, symptoms SymptomRepository,
	client PredictClient, cache Cache, symptomsTTL time.Duration,
	publisher EventPublisher, collector *metrics.Collector, log *slog.Logger) *PredictionService {
	return &PredictionService{
		histories:   histories,
		symptoms:    symptoms,
		client:      client,
		cache:       cache,
		symptomsTTL: symptomsTTL,
		publisher:   publisher,
		collector:   collector,
		log:         log,
	}
}

// Predict отправляет симптомы во внешний сервис и сохраняет результат
// в историю. Сбой внешнего сервиса оборачивается в ErrUpstream, сбой
// записи в хранилище возвращается как есть: успешный ответ внешнего
// сервиса без сохраненной истории не считается успехом.
func (s *PredictionService) Predict(ctx context.Context, userID string, symptoms []string) (*models.History, error) {
	result, err := s.client.Predict(ctx, symptoms)
	if err != nil {
		s.recordPrediction("upstream_error")
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	history, err := s.histories.CreateHistory(ctx, models.History{
		UserID:   userID,
		Symptoms: symptoms,
		Result:   result,
	})
	if err != nil {
		s.recordPrediction("storage_error")
		return nil, err
	}
	s.recordPrediction("ok")

	if s.publisher != nil {
		event := PredictionEvent{
			EventID:   uuid.NewString(),
			UserID:    userID,
			Result:    result,
			CreatedAt: history.CreatedAt,
		}
		// Потеря брокера не должна ронять предсказание.
		if err = s.publisher.PublishPrediction(event); err != nil {
			s.log.Error("failed to publish prediction event", sl.Err(err))
		}
	}

	return history, nil
}

// ListHistories возвращает историю предсказаний пользователя.
func (s *PredictionService) ListHistories(ctx context.Context, userID string) ([]models.History, error) {
	return s.histories.ListHistoriesByUser(ctx, userID)
}

// ListSymptoms возвращает справочник симптомов через кэш. Недоступный
// кэш деградирует до чтения из хранилища.
func (s *PredictionService) ListSymptoms(ctx context.Context) ([]models.Symptom, error) {
	if s.cache != nil {
		var cached []models.Symptom
		found, err := s.cache.Get(ctx, symptomsCacheKey, &cached)
		if err != nil {
			s.log.Error("symptoms cache read failed", sl.Err(err))
		}
		if found {
			return cached, nil
		}
	}

	symptoms, err := s.symptoms.ListSymptoms(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err = s.cache.Set(ctx, symptomsCacheKey, symptoms, s.symptomsTTL); err != nil {
			s.log.Error("symptoms cache write failed", sl.Err(err))
		}
	}
	return symptoms, nil
}

func (s *PredictionService) recordPrediction(outcome string) {
	if s.collector != nil {
		s.collector.RecordPrediction(outcome)
	}
}
