package repository

import (
	"context"
	"fmt"

	"github.com/medscope/symptom-checker/internal/models"
)

// SaveToken сохраняет выданный refresh-токен. Несколько строк на одного
// пользователя допустимы: каждая соответствует своему устройству.
func (s *Storage) SaveToken(ctx context.Context, token models.Token) error {
	const op = "storage.SaveToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO tokens (user_id, token, created_at, expires_at)
			  VALUES ($1, $2, $3, $4);`
	if _, err := s.DB.ExecContext(ctx, query,
		token.UserID, token.Token, token.CreatedAt, token.ExpiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// TokenExists проверяет, что refresh-токен все еще числится выданным.
// Удаленный из таблицы токен считается отозванным, даже если его
// подпись и срок действия корректны.
func (s *Storage) TokenExists(ctx context.Context, token string) (bool, error) {
	const op = "storage.TokenExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS(SELECT 1 FROM tokens WHERE token = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// DeleteToken удаляет строку refresh-токена и возвращает число
// удаленных строк. Ноль строк — не ошибка, решение об идемпотентности
// принимает вызывающий.
func (s *Storage) DeleteToken(ctx context.Context, token string) (int64, error) {
	const op = "storage.DeleteToken"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM tokens WHERE token = $1`
	result, err := s.DB.ExecContext(ctx, query, token)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}
