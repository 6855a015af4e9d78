// Package symptomchecker собирает приложение: маршруты, middleware и
// жизненный цикл HTTP-сервера.
package symptomchecker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/medscope/symptom-checker/internal/http/handlers/auth/login"
	"github.com/medscope/symptom-checker/internal/http/handlers/auth/logout"
	"github.com/medscope/symptom-checker/internal/http/handlers/auth/register"
	"github.com/medscope/symptom-checker/internal/http/handlers/auth/token"
	"github.com/medscope/symptom-checker/internal/http/handlers/health"
	"github.com/medscope/symptom-checker/internal/http/handlers/prediction/histories"
	"github.com/medscope/symptom-checker/internal/http/handlers/prediction/predict"
	"github.com/medscope/symptom-checker/internal/http/handlers/prediction/symptoms"
	"github.com/medscope/symptom-checker/internal/http/middlewarectx"
	"github.com/medscope/symptom-checker/internal/lib/jwt"
	authservice "github.com/medscope/symptom-checker/internal/services/auth"
	predictionservice "github.com/medscope/symptom-checker/internal/services/prediction"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService, predictionService *predictionservice.PredictionService,
	accessMaker, refreshMaker jwt.Maker, tokenStore middlewarectx.TokenStore) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с проверкой refresh-токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RefreshTokenMiddleware(refreshMaker, tokenStore, logger))
			r.Post("/token", token.New(logger, authService).ServeHTTP)
			r.Post("/logout", logout.New(logger, authService).ServeHTTP)
		})

		// Группа с проверкой access-токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AccessTokenMiddleware(accessMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/symptoms", symptoms.New(logger, predictionService).ServeHTTP)
			r.Post("/predict", predict.New(logger, predictionService).ServeHTTP)
			r.Get("/getHistories", histories.New(logger, predictionService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
