// Package repository реализует хранилище данных на основе PostgreSQL:
// пользователи, refresh-токены, справочник симптомов и история предсказаний.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисы проверяют их через errors.Is
// вместо разбора текста ошибки.
var (
	// ErrNotFound возвращается, когда запрошенная строка отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken возвращается при нарушении уникальности email.
	// Уникальность обеспечивается ограничением в БД, а не блокировкой
	// в процессе: инстансов сервиса может быть несколько.
	ErrEmailTaken = errors.New("email already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создает подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}
