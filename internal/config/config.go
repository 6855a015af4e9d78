// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitMQConnection      `yaml:"rabbitmq_connection"`
	HTTPServer              `yaml:"http_server"`
	Tokens                  `yaml:"tokens"`
	Predictor               `yaml:"predictor"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"0.0.0.0:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
	SymptomsTTL  time.Duration `yaml:"symptoms_ttl" env-default:"12h"`
}

// RabbitMQConnection структура для настройки публикации событий предсказаний.
// Пустой URL отключает публикацию.
type RabbitMQConnection struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Retries    int           `yaml:"retries" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// Tokens структура с секретами подписи и временем жизни обоих классов токенов.
// Секреты берутся только из окружения и никогда не пишутся в лог.
type Tokens struct {
	AccessSecretKey  string        `yaml:"-" env:"ACCESS_TOKEN_KEY" env-required:"true"`
	RefreshSecretKey string        `yaml:"-" env:"REFRESH_TOKEN_KEY" env-required:"true"`
	AccessTTL        time.Duration `yaml:"access_ttl" env-default:"1h"`
	RefreshTTL       time.Duration `yaml:"refresh_ttl" env-default:"8760h"`
}

// Predictor структура для настройки клиента внешнего inference-сервиса
type Predictor struct {
	PredictURL     string        `yaml:"predict_url" env:"PREDICT_URL" env-required:"true"`
	PredictTimeout time.Duration `yaml:"predict_timeout" env-default:"10s"`
}

// MustLoad загружает конфиг из файла, указанного в CONFIG_PATH,
// с переопределением из переменных окружения. Завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
