// Package logout реализует HTTP-обработчик выхода: удаление строки
// refresh-токена из хранилища. Повторный выход с тем же токеном до
// обработчика не дойдет — middleware отклонит отозванный токен.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/medscope/symptom-checker/internal/http/middlewarectx"
	"github.com/medscope/symptom-checker/internal/http/response"
	"github.com/medscope/symptom-checker/internal/lib/sl"
)

// Service описывает интерфейс отзыва refresh-токена.
type Service interface {
	Logout(ctx context.Context, refreshToken string) error
}

// Handler обрабатывает HTTP-запросы выхода.
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
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	refreshToken, ok := middlewarectx.RefreshTokenFromContext(r.Context())
	if !ok {
		log.Error("no refresh token in request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid or expired token"))
		return
	}

	if err := h.auth.Logout(r.Context(), refreshToken); err != nil {
		log.Error("logout failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to sign out"))
		return
	}

	log.Info("user signed out")
	render.JSON(w, r, response.OK(map[string]any{
		"message": "sign out success",
	}))
}
