package models

import "time"

// Token представляет сохраненный refresh-токен. Одна строка на выданный
// токен, несколько строк на пользователя допустимы (несколько устройств).
// CreatedAt и ExpiresAt берутся из claims самого токена (iat/exp),
// а не из часов на момент вставки.
type Token struct {
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
