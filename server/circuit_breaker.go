package server

import (
	"sync"
	"time"
)

// BreakerState состояние Circuit Breaker исходящего клиента
type BreakerState int

const (
	BreakerClosed   BreakerState = iota // нормальная работа
	BreakerOpen                         // запросы блокируются
	BreakerHalfOpen                     // пробное восстановление
)

// CircuitBreaker защита от каскадных сбоев при обращении к провайдеру.
// После серии ошибок запросы блокируются на время cooldown, затем пропускается
// ограниченное число пробных запросов.
type CircuitBreaker struct {
	mu               sync.Mutex
	state            BreakerState
	failureCount     int
	successCount     int
	failureThreshold int
	successThreshold int
	cooldown         time.Duration
	lastFailureTime  time.Time
}

// NewCircuitBreaker создает breaker с порогами по умолчанию:
// открытие после 5 ошибок, закрытие после 2 успехов, пауза 30 секунд
func NewCircuitBreaker() *CircuitBreaker {
	return &CircuitBreaker{
		state:            BreakerClosed,
		failureThreshold: 5,
		successThreshold: 2,
		cooldown:         30 * time.Second,
	}
}

// String текстовое представление состояния, для логов и health-проверок
func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// CanProceed сообщает, можно ли выполнить запрос.
// В открытом состоянии по истечении cooldown переводит breaker в half-open.
func (cb *CircuitBreaker) CanProceed() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerClosed, BreakerHalfOpen:
		return true
	case BreakerOpen:
		if time.Since(cb.lastFailureTime) > cb.cooldown {
			cb.state = BreakerHalfOpen
			cb.successCount = 0
			return true
		}
		return false
	default:
		return false
	}
}

// RecordSuccess записывает успешный запрос
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerClosed:
		cb.failureCount = 0
	case BreakerHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.successThreshold {
			cb.state = BreakerClosed
			cb.failureCount = 0
			cb.successCount = 0
		}
	}
}

// RecordFailure записывает неудачный запрос
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case BreakerClosed:
		cb.failureCount++
		if cb.failureCount >= cb.failureThreshold {
			cb.state = BreakerOpen
		}
	case BreakerHalfOpen:
		// пробный запрос провалился - снова открываем
		cb.state = BreakerOpen
		cb.successCount = 0
	}
}

// State возвращает текущее состояние breaker
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
