package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bidserver/database"
	"bidserver/onbid"
)

// FavoritesHandler обработчик сохраненных тендеров пользователя
type FavoritesHandler struct {
	db *database.DB
}

// NewFavoritesHandler создает обработчик сохраненных тендеров
func NewFavoritesHandler(db *database.DB) *FavoritesHandler {
	return &FavoritesHandler{db: db}
}

// FavoritesListResponse список сохраненных тендеров
type FavoritesListResponse struct {
	Favorites []database.Favorite `json:"favorites"`
	Count     int                 `json:"count"`
}

// FavoriteCreatedResponse ответ на сохранение тендера
type FavoriteCreatedResponse struct {
	ID int64 `json:"id"`
}

// HandleFavoritesList обработчик списка сохраненных тендеров
// @Summary Список сохраненных тендеров
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FavoritesListResponse "Сохраненные тендеры"
// @Failure 401 {object} ErrorResponse "Требуется аутентификация"
// @Router /favorites [get]
func (h *FavoritesHandler) HandleFavoritesList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	favorites, err := h.db.ListFavorites(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FavoritesListResponse{Favorites: favorites, Count: len(favorites)})
}

// HandleFavoriteAdd обработчик сохранения тендера
// @Summary Сохранить тендер
// @Description Сохраняет снимок нормализованного тендера в личный список
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body onbid.Tender true "Тендер"
// @Success 201 {object} FavoriteCreatedResponse "Тендер сохранен"
// @Failure 401 {object} ErrorResponse "Требуется аутентификация"
// @Failure 409 {object} ErrorResponse "Тендер уже сохранен"
// @Router /favorites [post]
func (h *FavoritesHandler) HandleFavoriteAdd(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var tender onbid.Tender
	if err := c.ShouldBindJSON(&tender); err != nil {
		SendJSONError(c, http.StatusBadRequest, "некорректное тело запроса")
		return
	}

	id, err := h.db.AddFavorite(userID, tender)
	if err != nil {
		if errors.Is(err, database.ErrFavoriteExists) {
			SendJSONError(c, http.StatusConflict, "тендер уже сохранен")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, FavoriteCreatedResponse{ID: id})
}

// HandleFavoriteDelete обработчик удаления сохраненного тендера
// @Summary Удалить сохраненный тендер
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Идентификатор сохраненного тендера"
// @Success 204 "Удалено"
// @Failure 401 {object} ErrorResponse "Требуется аутентификация"
// @Failure 404 {object} ErrorResponse "Не найдено"
// @Router /favorites/{id} [delete]
func (h *FavoritesHandler) HandleFavoriteDelete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	favoriteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "некорректный идентификатор")
		return
	}

	if err := h.db.DeleteFavorite(userID, favoriteID); err != nil {
		if errors.Is(err, database.ErrFavoriteNotFound) {
			SendJSONError(c, http.StatusNotFound, "сохраненный тендер не найден")
			return
		}
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
