package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"bidserver/onbid"
	"bidserver/server/services"
)

// ExportFormat формат экспорта результатов поиска
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "xlsx"
)

// exportHeader колонки табличных форматов
var exportHeader = []string{
	"tender_id", "auction_no", "management_no", "history_no",
	"title", "organization", "bid_no", "announced_at", "deadline_at",
}

// ExportHandler обработчик экспорта результатов поиска в файл
type ExportHandler struct {
	tenderService *services.TenderService
}

// NewExportHandler создает обработчик экспорта
func NewExportHandler(tenderService *services.TenderService) *ExportHandler {
	return &ExportHandler{tenderService: tenderService}
}

// HandleTendersExport обработчик экспорта
// @Summary Экспортировать результаты поиска
// @Description Выполняет поиск с теми же фильтрами, что и /tenders/search, и отдает файл
// @Tags tenders
// @Produce json
// @Param format query string false "Формат: json, csv или xlsx" default(json)
// @Param cltrNm query string false "Подстрока наименования объекта"
// @Param pageNo query int false "Номер страницы" default(1)
// @Param numOfRows query int false "Размер страницы" default(100)
// @Success 200 "Файл с результатами"
// @Failure 400 {object} ErrorResponse "Неизвестный формат"
// @Failure 502 {object} ErrorResponse "Фид провайдера недоступен"
// @Router /tenders/export [get]
func (h *ExportHandler) HandleTendersExport(c *gin.Context) {
	format := ExportFormat(c.DefaultQuery("format", string(FormatJSON)))

	query := searchQueryFromRequest(c)
	if c.Query("numOfRows") == "" {
		query.NumOfRows = services.MaxNumOfRows
	}

	page, err := h.tenderService.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("tenders_%s", time.Now().Format("20060102_150405"))

	switch format {
	case FormatJSON:
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", filename))
		c.JSON(http.StatusOK, page)
	case FormatCSV:
		h.writeCSV(c, page.Tenders, filename)
	case FormatExcel:
		h.writeExcel(c, page.Tenders, filename)
	default:
		SendJSONError(c, http.StatusBadRequest, fmt.Sprintf("неизвестный формат экспорта: %s", format))
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, tenders []onbid.Tender, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write(exportHeader)
	for _, t := range tenders {
		w.Write(tenderRow(t))
	}
	w.Flush()
}

func (h *ExportHandler) writeExcel(c *gin.Context, tenders []onbid.Tender, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Tenders"
	f.SetSheetName("Sheet1", sheet)

	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for row, t := range tenders {
		for col, value := range tenderRow(t) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
	c.Status(http.StatusOK)

	if _, err := f.WriteTo(c.Writer); err != nil {
		respondError(c, err)
	}
}

// tenderRow строка табличного экспорта; nil-поля дают пустые ячейки
func tenderRow(t onbid.Tender) []string {
	return []string{
		formatInt(t.TenderID),
		formatInt(t.AuctionNo),
		formatStr(t.ManagementNo),
		formatStr(t.HistoryNo),
		t.Title,
		t.Organization,
		formatStr(t.BidNo),
		formatTime(t.AnnouncedAt),
		formatTime(t.DeadlineAt),
	}
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(time.RFC3339)
}
