package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// OnbidClient клиент для работы с открытым API Onbid.
// Отвечает только за транспорт: полностью сформированный URL на входе,
// сырое тело ответа на выходе. Повторных попыток нет: один неудавшийся
// запрос означает отказ всего обращения к фиду.
type OnbidClient struct {
	httpClient     *http.Client
	limiter        *rate.Limiter
	circuitBreaker *CircuitBreaker
}

// NewOnbidClient создает клиент Onbid.
// requestsPerMinute ограничивает частоту обращений к провайдеру,
// timeout — предел ожидания одного запроса.
func NewOnbidClient(timeout time.Duration, requestsPerMinute int) *OnbidClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 50
	}

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxConnsPerHost:     5,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}

	return &OnbidClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute),
		circuitBreaker: NewCircuitBreaker(),
	}
}

// FetchFeed выполняет GET по готовому URL и возвращает сырое XML-тело.
// Не-2xx статус, пустое тело и сетевые сбои схлопываются в одну ошибку:
// вызывающая сторона не различает причины отказа транспорта.
func (c *OnbidClient) FetchFeed(ctx context.Context, rawURL string) (string, error) {
	if !c.circuitBreaker.CanProceed() {
		return "", fmt.Errorf("circuit breaker открыт: провайдер временно недоступен")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("ожидание rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.circuitBreaker.RecordFailure()
		return "", fmt.Errorf("запрос к провайдеру: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.circuitBreaker.RecordFailure()
		return "", fmt.Errorf("провайдер вернул статус %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.circuitBreaker.RecordFailure()
		return "", fmt.Errorf("чтение тела ответа: %w", err)
	}
	if len(body) == 0 {
		c.circuitBreaker.RecordFailure()
		return "", fmt.Errorf("провайдер вернул пустое тело")
	}

	c.circuitBreaker.RecordSuccess()
	return string(body), nil
}

// BreakerState текущее состояние circuit breaker, для health-проверок
func (c *OnbidClient) BreakerState() BreakerState {
	return c.circuitBreaker.State()
}
