// Package password реализует безопасное хеширование и проверку паролей.
//
// GetHash создает bcrypt-хеш пароля для хранения в базе данных.
// CompareHash проверяет соответствие введенного пароля сохраненному хешу.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Стоимость bcrypt фиксирована на 10 раундах, хеш самодостаточен
// и содержит соль.
const hashCost = 10

// GetHash принимает пароль пользователя и возвращает его bcrypt-хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt-хэш с введенным паролем.
//
// Возвращает nil, если пароль соответствует хэшу. Несовпадение и
// некорректный хэш равно возвращают ошибку, без паники.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
