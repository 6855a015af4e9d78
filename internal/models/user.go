// Package models содержит доменные структуры системы: пользователей,
// refresh-токены, справочник симптомов и историю предсказаний.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           string    // Уникальный идентификатор пользователя
	Name         string    // Отображаемое имя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Bcrypt-хэш пароля, никогда не отдается клиенту
	CreatedAt    time.Time // Дата создания учетной записи
}
