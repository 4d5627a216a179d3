package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bidserver/server/errors"
	"bidserver/server/middleware"
)

// ErrorResponse структура ошибки
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// SendJSONError отправляет JSON-ошибку с указанным статусом
func SendJSONError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: true, Message: message})
}

// respondError логирует ошибку и отдает клиенту статус и сообщение из AppError.
// Произвольная ошибка без статуса превращается в 500 с общим сообщением.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.WrapError(err, c.FullPath())
	}

	slog.Error("HTTP error",
		"error", err.Error(),
		"status_code", appErr.StatusCode(),
		"request_id", middleware.GetRequestID(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
}

// requireUserID достает пользователя из контекста; 401 если его там нет
func requireUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		SendJSONError(c, http.StatusUnauthorized, "требуется аутентификация")
	}
	return userID, ok
}
