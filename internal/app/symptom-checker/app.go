package symptomchecker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"

	"github.com/medscope/symptom-checker/internal/cache"
	"github.com/medscope/symptom-checker/internal/config"
	"github.com/medscope/symptom-checker/internal/lib/jwt"
	"github.com/medscope/symptom-checker/internal/lib/rabbitmq"
	"github.com/medscope/symptom-checker/internal/metrics"
	"github.com/medscope/symptom-checker/internal/migrations"
	"github.com/medscope/symptom-checker/internal/predictor"
	authservice "github.com/medscope/symptom-checker/internal/services/auth"
	predictionservice "github.com/medscope/symptom-checker/internal/services/prediction"
	"github.com/medscope/symptom-checker/internal/storage/repository"
)

// App держит собранный HTTP-сервер и ресурсы, которые нужно закрыть
// при остановке.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	cache    *cache.Cache
	amqpConn *amqp.Connection
}

// New собирает приложение: хранилище, миграции, кэш, опциональный
// publisher событий, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	// Публикация событий включается только при заданном URL.
	// Интерфейсная переменная остается nil, если publisher не настроен.
	var amqpConn *amqp.Connection
	var publisher predictionservice.EventPublisher
	if cfg.RabbitMQConnection.URL != "" {
		amqpConn, err = rabbitmq.Connect(cfg.RabbitMQConnection.URL,
			cfg.RabbitMQConnection.Retries, cfg.RabbitMQConnection.RetryDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(amqpConn, rabbitmq.GetPredictionQueues())
		if err != nil {
			return nil, err
		}
		publisher = rabbitmq.NewPublisher(ch)
	} else {
		logger.Info("prediction events publishing is disabled")
	}

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	accessMaker := jwt.NewMaker(cfg.Tokens.AccessSecretKey, cfg.Tokens.AccessTTL)
	refreshMaker := jwt.NewMaker(cfg.Tokens.RefreshSecretKey, cfg.Tokens.RefreshTTL)

	authService := authservice.NewAuthService(db, db, accessMaker, refreshMaker, collector)

	predictClient := predictor.NewClient(cfg.Predictor.PredictURL, cfg.Predictor.PredictTimeout)
	predictionService := predictionservice.NewPredictionService(db, db, predictClient,
		cacheRedis, cfg.RedisConnection.SymptomsTTL, publisher, collector, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, predictionService, accessMaker, refreshMaker, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		cache:    cacheRedis,
		amqpConn: amqpConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.amqpConn != nil {
			_ = a.amqpConn.Close()
		}
		_ = a.cache.DB.Close()
		_ = a.db.DB.Close()
		return err
	}
}
