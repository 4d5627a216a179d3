package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger проверка доступности базы данных
type Pinger interface {
	Ping() error
}

// ComponentHealth здоровье отдельного компонента
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse результат проверки здоровья сервера
type HealthResponse struct {
	Status     string                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
}

// HealthHandler обработчик проверки здоровья
type HealthHandler struct {
	db           Pinger
	breakerState func() string
}

// NewHealthHandler создает обработчик проверки здоровья.
// breakerState возвращает текстовое состояние circuit breaker провайдера.
func NewHealthHandler(db Pinger, breakerState func() string) *HealthHandler {
	return &HealthHandler{db: db, breakerState: breakerState}
}

// HandleHealth обработчик проверки здоровья
// @Summary Проверка здоровья сервера
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Сервер здоров"
// @Failure 503 {object} HealthResponse "Часть компонентов недоступна"
// @Router /health [get]
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	components := map[string]ComponentHealth{}
	status := "healthy"
	code := http.StatusOK

	if err := h.db.Ping(); err != nil {
		components["database"] = ComponentHealth{Status: "unhealthy", Message: err.Error()}
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	} else {
		components["database"] = ComponentHealth{Status: "healthy"}
	}

	breaker := h.breakerState()
	if breaker == "open" {
		components["onbid_feed"] = ComponentHealth{Status: "degraded", Message: "circuit breaker открыт"}
		if status == "healthy" {
			status = "degraded"
		}
	} else {
		components["onbid_feed"] = ComponentHealth{Status: "healthy"}
	}

	c.JSON(code, HealthResponse{
		Status:     status,
		Timestamp:  time.Now(),
		Components: components,
	})
}
