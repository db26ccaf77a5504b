package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyRole    = key("role")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Centrifuge Centrifuge
	Kafka      Kafka
	Logger     Logger
	Metrics    Metrics
	Platform   Platform
}

type Service struct {
	Port string `env:"TELEMED_CHAT_SERVICE_PORT"`
	Name string `env:"TELEMED_CHAT_SERVICE_NAME" env-default:"telemed-chat-service"`
}

type Postgres struct {
	User     string `env:"TELEMED_CHAT_SERVICE_POSTGRES_USER"`
	Password string `env:"TELEMED_CHAT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"TELEMED_CHAT_SERVICE_POSTGRES_DB"`
	Host     string `env:"TELEMED_CHAT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"TELEMED_CHAT_SERVICE_POSTGRES_PORT"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	WSURL     string        `env:"CENTRIFUGO_WS_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Kafka struct {
	Host        string `env:"KAFKA_HOST"`
	Port        string `env:"KAFKA_PORT"`
	IntakeTopic string `env:"KAFKA_INTAKE_TOPIC"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}
	return cfg
}
