package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/medscope/symptom-checker/internal/models"
)

// CreateHistory сохраняет запись истории предсказания. Список симптомов
// сериализуется в JSON, как его прислал клиент, с сохранением порядка.
func (s *Storage) CreateHistory(ctx context.Context, history models.History) (*models.History, error) {
	const op = "storage.CreateHistory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	symptomsJSON, err := json.Marshal(history.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO histories (user_id, symptoms, result)
			  VALUES ($1, $2, $3)
			  RETURNING history_id, created_at;`
	if err = s.DB.QueryRowContext(ctx, query,
		history.UserID, string(symptomsJSON), history.Result).Scan(&history.ID, &history.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &history, nil
}

// ListHistoriesByUser возвращает историю предсказаний пользователя вместе
// с его именем из users. Порядок — по history_id, то есть порядок создания.
func (s *Storage) ListHistoriesByUser(ctx context.Context, userID string) ([]models.History, error) {
	const op = "storage.ListHistoriesByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT h.history_id, h.user_id, u.name, h.symptoms, h.result, h.created_at
			  FROM histories h
			  INNER JOIN users u ON h.user_id = u.user_id
			  WHERE h.user_id = $1
			  ORDER BY h.history_id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.History
	for rows.Next() {
		var h models.History
		var symptomsJSON string
		if err = rows.Scan(&h.ID, &h.UserID, &h.UserName, &symptomsJSON, &h.Result, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal([]byte(symptomsJSON), &h.Symptoms); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
