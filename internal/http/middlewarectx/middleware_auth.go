// Package middlewarectx содержит HTTP middleware для проверки JWT токенов.
//
// AccessTokenMiddleware проверяет access-токен в заголовке Authorization
// и кладет claims пользователя в контекст запроса.
//
// RefreshTokenMiddleware проверяет refresh-токен тем же способом и
// дополнительно требует, чтобы строка токена еще числилась в хранилище:
// удаленный при logout токен отклоняется, даже если подпись и срок
// действия корректны.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/medscope/symptom-checker/internal/http/response"
	"github.com/medscope/symptom-checker/internal/lib/jwt"
	"github.com/medscope/symptom-checker/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// ClaimsKey — ключ для claims пользователя в контексте
	ClaimsKey Key = "claims"
	// RefreshTokenKey — ключ для строки refresh-токена в контексте
	RefreshTokenKey Key = "refreshToken"
)

// TokenStore описывает проверку, что refresh-токен не отозван.
type TokenStore interface {
	TokenExists(ctx context.Context, token string) (bool, error)
}

// ClaimsFromContext возвращает claims пользователя, положенные middleware.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims)
	return claims, ok
}

// RefreshTokenFromContext возвращает строку refresh-токена из контекста.
func RefreshTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(RefreshTokenKey).(string)
	return token, ok
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// AccessTokenMiddleware возвращает middleware, проверяющий access-токен.
//
// Если токен валиден, claims пользователя добавляются в контекст запроса,
// иначе возвращается HTTP 401 Unauthorized.
func AccessTokenMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AccessTokenMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr, ok := bearerToken(r)
			if !ok {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "missing or invalid authorization header"))
				return
			}

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired access token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RefreshTokenMiddleware возвращает middleware, проверяющий refresh-токен
// по подписи и по наличию строки в хранилище. В контекст кладутся claims
// и сама строка токена: она нужна logout для удаления.
func RefreshTokenMiddleware(maker jwt.Maker, tokens TokenStore, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RefreshTokenMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr, ok := bearerToken(r)
			if !ok {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "missing or invalid authorization header"))
				return
			}

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired refresh token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid or expired token"))
				return
			}

			exists, err := tokens.TokenExists(r.Context(), tokenStr)
			if err != nil {
				log.Error("failed to check refresh token", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to check token"))
				return
			}
			if !exists {
				log.Error("refresh token is revoked")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			ctx = context.WithValue(ctx, RefreshTokenKey, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
