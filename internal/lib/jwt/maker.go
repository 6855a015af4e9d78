// Package jwt реализует генерацию и парсинг JWT токенов с claims
// пользователя (user_id, name, email).
//
// Maker описывает интерфейс создания и проверки токена. Один экземпляр
// MakerImpl подписывает один класс токенов: приложение создает два
// экземпляра с разными секретами — для access-токенов (1 час) и
// refresh-токенов (365 дней). Токен одного класса не проходит проверку
// у maker другого класса.
package jwt

import (
	"time"

	"github.com/medscope/symptom-checker/internal/models"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает подписанный токен с claims пользователя.
	GenerateToken(user *models.User) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует Maker поверх секретного ключа и времени жизни токена.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создает новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
