package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bidserver/onbid"
	"bidserver/server/services"
)

// TenderHandler обработчик запросов к фиду тендеров
type TenderHandler struct {
	tenderService *services.TenderService
}

// NewTenderHandler создает обработчик тендеров
func NewTenderHandler(tenderService *services.TenderService) *TenderHandler {
	return &TenderHandler{tenderService: tenderService}
}

// TenderListResponse список тендеров без пагинации
type TenderListResponse struct {
	Tenders []onbid.Tender `json:"tenders"`
	Count   int            `json:"count"`
}

// HandleTendersList обработчик общего списка тендеров
// @Summary Получить список тендеров
// @Description Возвращает дедуплицированный список тендеров Onbid по фиксированному запросу
// @Tags tenders
// @Produce json
// @Success 200 {object} TenderListResponse "Список тендеров"
// @Failure 502 {object} ErrorResponse "Фид провайдера недоступен"
// @Router /tenders [get]
func (h *TenderHandler) HandleTendersList(c *gin.Context) {
	tenders, err := h.tenderService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TenderListResponse{Tenders: tenders, Count: len(tenders)})
}

// HandleTendersSearch обработчик детального поиска
// @Summary Детальный поиск тендеров
// @Description Ищет тендеры по фильтрам провайдера и возвращает страницу с общим количеством
// @Tags tenders
// @Produce json
// @Param cltrNm query string false "Подстрока наименования объекта"
// @Param dpslMtdCd query string false "Код способа реализации"
// @Param sido query string false "Регион"
// @Param sgk query string false "Район"
// @Param emd query string false "Квартал"
// @Param goodsPriceFrom query string false "Цена объекта от"
// @Param goodsPriceTo query string false "Цена объекта до"
// @Param openPriceFrom query string false "Начальная цена от"
// @Param openPriceTo query string false "Начальная цена до"
// @Param pbctBegnDtm query string false "Начало приема заявок (yyyyMMddHHmmss)"
// @Param pbctClsDtm query string false "Окончание приема заявок (yyyyMMddHHmmss)"
// @Param pageNo query int false "Номер страницы" default(1)
// @Param numOfRows query int false "Размер страницы" default(10)
// @Success 200 {object} onbid.Page "Страница тендеров"
// @Failure 502 {object} ErrorResponse "Фид провайдера недоступен"
// @Router /tenders/search [get]
func (h *TenderHandler) HandleTendersSearch(c *gin.Context) {
	query := searchQueryFromRequest(c)

	page, err := h.tenderService.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// searchQueryFromRequest собирает SearchQuery из query-параметров запроса.
// Нечисловые pageNo и numOfRows молча заменяются умолчаниями сервиса.
func searchQueryFromRequest(c *gin.Context) onbid.SearchQuery {
	pageNo, _ := strconv.Atoi(c.DefaultQuery("pageNo", "1"))
	numOfRows, _ := strconv.Atoi(c.DefaultQuery("numOfRows", strconv.Itoa(services.DefaultNumOfRows)))

	return onbid.SearchQuery{
		TenderName:     c.Query("cltrNm"),
		DisposalMethod: c.Query("dpslMtdCd"),
		Sido:           c.Query("sido"),
		Sgk:            c.Query("sgk"),
		Emd:            c.Query("emd"),
		GoodsPriceFrom: c.Query("goodsPriceFrom"),
		GoodsPriceTo:   c.Query("goodsPriceTo"),
		OpenPriceFrom:  c.Query("openPriceFrom"),
		OpenPriceTo:    c.Query("openPriceTo"),
		BidBeginFrom:   c.Query("pbctBegnDtm"),
		BidCloseTo:     c.Query("pbctClsDtm"),
		PageNo:         pageNo,
		NumOfRows:      numOfRows,
	}
}
