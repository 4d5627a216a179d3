package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string

	// Провайдер Onbid
	OnbidBaseURL    string
	OnbidServiceKey string
	OnbidTimeout    time.Duration
	OnbidRateLimit  int // запросов в минуту к провайдеру

	// База данных
	DatabasePath    string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Аутентификация
	JWTSecret   string
	TokenExpiry time.Duration
}

// LoadConfig загружает конфигурацию из переменных окружения с значениями по умолчанию.
// Ключ сервиса провайдера обязателен: без него исходящие запросы бессмысленны.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		OnbidBaseURL:    getEnv("ONBID_BASE_URL", "http://openapi.onbid.co.kr/openapi/services/ThingInfoInquireSvc/getUnifyUsageCltr"),
		OnbidServiceKey: os.Getenv("ONBID_SERVICE_KEY"),
		OnbidTimeout:    getEnvDuration("ONBID_TIMEOUT", 30*time.Second),
		OnbidRateLimit:  getEnvInt("ONBID_RATE_LIMIT", 50),
		DatabasePath:    getEnv("DATABASE_PATH", "bid_data.db"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenExpiry:     getEnvDuration("TOKEN_EXPIRY", 24*time.Hour),
	}

	if cfg.OnbidServiceKey == "" {
		return nil, fmt.Errorf("переменная окружения ONBID_SERVICE_KEY не задана")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("переменная окружения JWT_SECRET не задана")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
