// Package token реализует HTTP-обработчик обновления access-токена.
//
// Проверка refresh-токена выполняется middleware: сюда запрос попадает
// с уже проверенными claims в контексте. Новый access-токен несет те же
// данные о пользователе; refresh-токен не ротируется.
package token

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/medscope/symptom-checker/internal/http/middlewarectx"
	"github.com/medscope/symptom-checker/internal/http/response"
	"github.com/medscope/symptom-checker/internal/lib/jwt"
	"github.com/medscope/symptom-checker/internal/lib/sl"
)

// Service описывает интерфейс выдачи нового access-токена.
type Service interface {
	RefreshAccess(ctx context.Context, claims *jwt.Claims) (string, error)
}

// Handler обрабатывает HTTP-запросы обновления токена.
type Handler struct {
	log  *slog.Logger
	auth Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:  log,
		auth: auth,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, ok := middlewarectx.ClaimsFromContext(r.Context())
	if !ok {
		log.Error("no claims in request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid or expired token"))
		return
	}

	access, err := h.auth.RefreshAccess(r.Context(), claims)
	if err != nil {
		log.Error("failed to issue access token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to issue token"))
		return
	}

	log.Info("access token refreshed", slog.String("user_id", claims.UserID))
	render.JSON(w, r, response.OK(map[string]any{
		"accessToken": access,
	}))
}
