package repository

import (
	"context"
	"fmt"

	"github.com/medscope/symptom-checker/internal/models"
)

// ListSymptoms возвращает весь справочник симптомов.
func (s *Storage) ListSymptoms(ctx context.Context) ([]models.Symptom, error) {
	const op = "storage.ListSymptoms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT symptom_id, name FROM symptoms ORDER BY symptom_id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Symptom
	for rows.Next() {
		var sym models.Symptom
		if err = rows.Scan(&sym.ID, &sym.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, sym)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
