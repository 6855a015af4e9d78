// Package services содержит бизнес-логику регистрации и жизненного цикла
// сессии: выдачу, обновление и отзыв токенов.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/medscope/symptom-checker/internal/lib/jwt"
	"github.com/medscope/symptom-checker/internal/lib/password"
	"github.com/medscope/symptom-checker/internal/metrics"
	"github.com/medscope/symptom-checker/internal/models"
	"github.com/medscope/symptom-checker/internal/storage/repository"
)

// Ошибки бизнес-уровня. Обработчики переводят их в HTTP-статусы
// через errors.Is.
var (
	// ErrEmailTaken — email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials возвращается и для неизвестного email,
	// и для неверного пароля: ответ не должен выдавать существование
	// учетной записи.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenRepository описывает контракт для хранения refresh-токенов.
type TokenRepository interface {
	// SaveToken сохраняет выданный refresh-токен.
	SaveToken(ctx context.Context, token models.Token) error

	// DeleteToken удаляет строку токена и возвращает число удаленных строк.
	DeleteToken(ctx context.Context, token string) (int64, error)
}

// AuthService отвечает за регистрацию, вход, выдачу и отзыв токенов.
type AuthService struct {
	users        UserRepository
	tokens       TokenRepository
	accessMaker  jwt.Maker
	refreshMaker jwt.Maker
	collector    *metrics.Collector
}

// NewAuthService создает новый экземпляр AuthService. Два maker'а
// подписывают разные классы токенов разными секретами.
func NewAuthService(users UserRepository, tokens TokenRepository,
	accessMaker, refreshMaker jwt.Maker, collector *metrics.Collector) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		accessMaker:  accessMaker,
		refreshMaker: refreshMaker,
		collector:    collector,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Открытый пароль после хэширования нигде не сохраняется.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return id, nil
}

// Login проверяет пароль пользователя и выдает пару токенов.
// Строка refresh-токена сохраняется в хранилище: created_at и expires_at
// берутся из iat/exp самого токена, чтобы запись совпадала с тем,
// что токен утверждает о себе.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (access, refresh string, err error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err = s.accessMaker.GenerateToken(user)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.refreshMaker.GenerateToken(user)
	if err != nil {
		return "", "", err
	}

	claims, err := s.refreshMaker.ParseToken(refresh)
	if err != nil {
		return "", "", fmt.Errorf("parse own refresh token: %w", err)
	}
	err = s.tokens.SaveToken(ctx, models.Token{
		UserID:    user.ID,
		Token:     refresh,
		CreatedAt: claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if err != nil {
		return "", "", err
	}

	if s.collector != nil {
		s.collector.RecordTokenIssued("access")
		s.collector.RecordTokenIssued("refresh")
	}
	return access, refresh, nil
}

// RefreshAccess выдает новый access-токен по claims уже проверенного
// refresh-токена. Сам refresh-токен не ротируется и не пересохраняется.
func (s *AuthService) RefreshAccess(_ context.Context, claims *jwt.Claims) (string, error) {
	user := &models.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	}
	access, err := s.accessMaker.GenerateToken(user)
	if err != nil {
		return "", err
	}
	if s.collector != nil {
		s.collector.RecordTokenIssued("access")
	}
	return access, nil
}

// Logout удаляет строку refresh-токена. Отсутствие строки означает,
// что выход уже произошел, и не считается ошибкой.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	_, err := s.tokens.DeleteToken(ctx, refreshToken)
	return err
}
