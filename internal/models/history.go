package models

import "time"

// History представляет одну запись истории предсказаний пользователя.
// Записи неизменяемы и не удаляются.
type History struct {
	ID        int64     `json:"history_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"name,omitempty"` // Имя пользователя из join с users
	Symptoms  []string  `json:"symptoms"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
