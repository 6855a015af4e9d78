// Package predict реализует HTTP-обработчик предсказания по симптомам.
//
// Пустой или отсутствующий список симптомов отклоняется до обращения
// к внешнему inference-сервису и хранилищу. Сбой внешнего сервиса и
// сбой записи истории различаются и кодом ответа, и строкой лога.
package predict

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/medscope/symptom-checker/internal/http/middlewarectx"
	"github.com/medscope/symptom-checker/internal/http/response"
	"github.com/medscope/symptom-checker/internal/lib/sl"
	"github.com/medscope/symptom-checker/internal/models"
	services "github.com/medscope/symptom-checker/internal/services/prediction"
)

// Request — входные данные предсказания.
type Request struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

// Service описывает интерфейс сервиса предсказаний.
type Service interface {
	Predict(ctx context.Context, userID string, symptoms []string) (*models.History, error)
}

// Handler обрабатывает HTTP-запросы предсказания.
type Handler struct {
	log        *slog.Logger
	prediction Service
	validate   *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prediction Service) *Handler {
	return &Handler{
		log:        log,
		prediction: prediction,
		validate:   validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prediction.predict"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid symptoms input"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid symptoms input"))
		return
	}

	history, err := h.prediction.Predict(r.Context(), claims.UserID, req.Symptoms)
	if err != nil {
		if errors.Is(err, services.ErrUpstream) {
			log.Error("inference endpoint call failed", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error(http.StatusBadGateway, "failed to get prediction"))
			return
		}
		log.Error("failed to store prediction history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to store prediction"))
		return
	}

	log.Info("prediction created",
		slog.String("user_id", claims.UserID),
		slog.Int64("history_id", history.ID))
	render.JSON(w, r, response.OK(map[string]any{
		"userHistories": history,
	}))
}
