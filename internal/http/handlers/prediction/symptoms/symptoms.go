// Package symptoms реализует HTTP-обработчик выдачи справочника симптомов.
// Справочник отдается в поле symptoms на верхнем уровне конверта —
// формат закреплен клиентами.
package symptoms

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/medscope/symptom-checker/internal/http/response"
	"github.com/medscope/symptom-checker/internal/lib/sl"
	"github.com/medscope/symptom-checker/internal/models"
)

// Service описывает интерфейс чтения справочника симптомов.
type Service interface {
	ListSymptoms(ctx context.Context) ([]models.Symptom, error)
}

// Response — конверт ответа со списком симптомов на верхнем уровне.
type Response struct {
	Code     int              `json:"code"`
	Status   string           `json:"status"`
	Symptoms []models.Symptom `json:"symptoms"`
}

// Handler обрабатывает HTTP-запросы справочника.
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
	const op = "handlers.prediction.symptoms"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	symptoms, err := h.prediction.ListSymptoms(r.Context())
	if err != nil {
		log.Error("failed to list symptoms", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to fetch symptoms"))
		return
	}

	render.JSON(w, r, Response{
		Code:     http.StatusOK,
		Status:   response.StatusSuccess,
		Symptoms: symptoms,
	})
}
