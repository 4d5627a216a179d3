package config

import (
	"testing"
	"time"
)

// TestLoadConfig_Defaults значения по умолчанию применяются при пустом окружении
func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ONBID_SERVICE_KEY", "test-key")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, ожидалось 8080", cfg.Port)
	}
	if cfg.OnbidTimeout != 30*time.Second {
		t.Errorf("OnbidTimeout = %v", cfg.OnbidTimeout)
	}
	if cfg.DatabasePath != "bid_data.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
}

// TestLoadConfig_MissingServiceKey без ключа сервиса конфигурация не загружается
func TestLoadConfig_MissingServiceKey(t *testing.T) {
	t.Setenv("ONBID_SERVICE_KEY", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := LoadConfig(); err == nil {
		t.Error("ожидалась ошибка при отсутствующем ONBID_SERVICE_KEY")
	}
}

// TestLoadConfig_Overrides переменные окружения перекрывают значения по умолчанию
func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ONBID_SERVICE_KEY", "test-key")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ONBID_TIMEOUT", "10s")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.OnbidTimeout != 10*time.Second {
		t.Errorf("OnbidTimeout = %v", cfg.OnbidTimeout)
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("MaxOpenConns = %d", cfg.MaxOpenConns)
	}
}

// TestLoadConfig_BadIntFallsBack нечисловое значение откатывается к умолчанию
func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("ONBID_SERVICE_KEY", "test-key")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "не число")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns = %d, ожидался откат к 10", cfg.MaxOpenConns)
	}
}
