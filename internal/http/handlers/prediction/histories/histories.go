// Package histories реализует HTTP-обработчик чтения истории
// предсказаний пользователя.
package histories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/medscope/symptom-checker/internal/http/middlewarectx"
	"github.com/medscope/symptom-checker/internal/http/response"
	"github.com/medscope/symptom-checker/internal/lib/sl"
	"github.com/medscope/symptom-checker/internal/models"
)

// Service описывает интерфейс чтения истории предсказаний.
type Service interface {
	ListHistories(ctx context.Context, userID string) ([]models.History, error)
}

// Handler обрабатывает HTTP-запросы истории.
type Handler struct {
	log        *slog.Logger
	prediction Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prediction Service) *Handler {
	return &Handler{
		log:        log,
		prediction: prediction,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prediction.histories"

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

	histories, err := h.prediction.ListHistories(r.Context(), claims.UserID)
	if err != nil {
		log.Error("failed to list histories", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to fetch histories"))
		return
	}

	if histories == nil {
		histories = []models.History{}
	}
	render.JSON(w, r, response.OK(histories))
}
