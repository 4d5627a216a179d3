package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestOnbidClient_FetchFeed_Success успешный запрос возвращает тело как есть
func TestOnbidClient_FetchFeed_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<response><TotalCount>1</TotalCount></response>`))
	}))
	defer ts.Close()

	client := NewOnbidClient(5*time.Second, 1000)

	body, err := client.FetchFeed(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("FetchFeed() error = %v", err)
	}
	if !strings.Contains(body, "TotalCount") {
		t.Errorf("тело ответа потеряно: %q", body)
	}
}

// TestOnbidClient_FetchFeed_Non2xx не-2xx статус это ошибка транспорта
func TestOnbidClient_FetchFeed_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewOnbidClient(5*time.Second, 1000)

	if _, err := client.FetchFeed(context.Background(), ts.URL); err == nil {
		t.Error("ожидалась ошибка при статусе 503")
	}
}

// TestOnbidClient_FetchFeed_EmptyBody пустое тело это ошибка транспорта
func TestOnbidClient_FetchFeed_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewOnbidClient(5*time.Second, 1000)

	if _, err := client.FetchFeed(context.Background(), ts.URL); err == nil {
		t.Error("ожидалась ошибка при пустом теле")
	}
}

// TestOnbidClient_CircuitBreakerOpens после серии ошибок breaker блокирует запросы
// не доходя до сети
func TestOnbidClient_CircuitBreakerOpens(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewOnbidClient(5*time.Second, 100000)

	for i := 0; i < 10; i++ {
		client.FetchFeed(context.Background(), ts.URL)
	}

	if client.BreakerState() != BreakerOpen {
		t.Errorf("BreakerState() = %v, ожидалось открытое состояние", client.BreakerState())
	}
	if requests >= 10 {
		t.Errorf("breaker не остановил запросы: до сервера дошло %d", requests)
	}
}

// TestCircuitBreaker_HalfOpenRecovery после cooldown пробные успехи закрывают breaker
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker()
	cb.cooldown = 10 * time.Millisecond

	for i := 0; i < cb.failureThreshold; i++ {
		cb.RecordFailure()
	}
	if cb.State() != BreakerOpen {
		t.Fatalf("State() = %v, ожидалось открытое состояние", cb.State())
	}
	if cb.CanProceed() {
		t.Error("открытый breaker не должен пропускать запросы до cooldown")
	}

	time.Sleep(20 * time.Millisecond)

	if !cb.CanProceed() {
		t.Fatal("после cooldown breaker должен пропустить пробный запрос")
	}
	cb.RecordSuccess()
	cb.RecordSuccess()

	if cb.State() != BreakerClosed {
		t.Errorf("State() = %v, ожидалось закрытое состояние после восстановления", cb.State())
	}
}
