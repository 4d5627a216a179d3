package onbid

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchQuery параметры исходящего запроса к API Onbid.
// Все фильтры опциональны: пустая строка означает "не передавать параметр".
// Семантика диапазонов (цены, даты) здесь не проверяется — провайдер сам
// отклоняет некорректные диапазоны.
type SearchQuery struct {
	TenderName     string // CLTR_NM, подстрока наименования объекта
	DisposalMethod string // DPSL_MTD_CD, код способа реализации
	Sido           string // SIDO, регион
	Sgk            string // SGK, район
	Emd            string // EMD, квартал
	GoodsPriceFrom string // GOODS_PRICE_FROM
	GoodsPriceTo   string // GOODS_PRICE_TO
	OpenPriceFrom  string // OPEN_PRICE_FROM
	OpenPriceTo    string // OPEN_PRICE_TO
	BidBeginFrom   string // PBCT_BEGN_DTM
	BidCloseTo     string // PBCT_CLS_DTM
	Sort           string // sort, поле сортировки провайдера

	PageNo    int
	NumOfRows int
}

// queryParam пара имя-значение; порядок параметров в URL сохраняется
type queryParam struct {
	name  string
	value string
}

// BuildURL строит полный URL запроса к провайдеру.
// Ключ сервиса, pageNo и numOfRows присутствуют всегда; каждый непустой фильтр
// добавляет ровно один параметр, пустые фильтры не передаются вовсе.
func (q SearchQuery) BuildURL(baseURL, serviceKey string) string {
	params := []queryParam{
		{"serviceKey", serviceKey},
		{"pageNo", strconv.Itoa(q.PageNo)},
		{"numOfRows", strconv.Itoa(q.NumOfRows)},
	}

	optional := []queryParam{
		{"CLTR_NM", q.TenderName},
		{"DPSL_MTD_CD", q.DisposalMethod},
		{"SIDO", q.Sido},
		{"SGK", q.Sgk},
		{"EMD", q.Emd},
		{"GOODS_PRICE_FROM", q.GoodsPriceFrom},
		{"GOODS_PRICE_TO", q.GoodsPriceTo},
		{"OPEN_PRICE_FROM", q.OpenPriceFrom},
		{"OPEN_PRICE_TO", q.OpenPriceTo},
		{"PBCT_BEGN_DTM", q.BidBeginFrom},
		{"PBCT_CLS_DTM", q.BidCloseTo},
		{"sort", q.Sort},
	}
	for _, p := range optional {
		if p.value != "" {
			params = append(params, p)
		}
	}

	var sb strings.Builder
	sb.WriteString(baseURL)
	for i, p := range params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(p.name)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
