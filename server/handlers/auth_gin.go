package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bidserver/server/services"
)

// AuthHandler обработчик регистрации и входа
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler создает обработчик аутентификации
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest тело запроса регистрации и входа
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse ответ с токеном доступа
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// RegisterResponse ответ на регистрацию
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// HandleRegister обработчик регистрации
// @Summary Зарегистрировать пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Учетные данные"
// @Success 201 {object} RegisterResponse "Пользователь создан"
// @Failure 400 {object} ErrorResponse "Неверные данные"
// @Failure 409 {object} ErrorResponse "Пользователь уже существует"
// @Router /auth/register [post]
func (h *AuthHandler) HandleRegister(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "имя пользователя и пароль обязательны")
		return
	}

	id, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{ID: id, Username: req.Username})
}

// HandleLogin обработчик входа
// @Summary Войти и получить токен доступа
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Учетные данные"
// @Success 200 {object} LoginResponse "Токен доступа"
// @Failure 401 {object} ErrorResponse "Неверное имя пользователя или пароль"
// @Router /auth/login [post]
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "имя пользователя и пароль обязательны")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Username: req.Username})
}
