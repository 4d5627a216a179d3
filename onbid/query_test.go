package onbid

import (
	"net/url"
	"strings"
	"testing"
)

// TestSearchQuery_BuildURL_OnlyRequiredParams проверяет, что без фильтров
// в URL попадают только ключ сервиса и параметры страницы
func TestSearchQuery_BuildURL_OnlyRequiredParams(t *testing.T) {
	q := SearchQuery{PageNo: 1, NumOfRows: 10}

	rawURL := q.BuildURL("http://openapi.onbid.co.kr/openapi/services/ThingInfoInquireSvc/getUnifyUsageCltr", "secret-key")

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("BuildURL вернул неразбираемый URL: %v", err)
	}

	values := u.Query()
	if len(values) != 3 {
		t.Errorf("ожидалось 3 параметра, получено %d: %v", len(values), values)
	}
	if values.Get("serviceKey") != "secret-key" {
		t.Errorf("serviceKey = %q", values.Get("serviceKey"))
	}
	if values.Get("pageNo") != "1" || values.Get("numOfRows") != "10" {
		t.Errorf("pageNo/numOfRows = %q/%q", values.Get("pageNo"), values.Get("numOfRows"))
	}
}

// TestSearchQuery_BuildURL_NameFilter сценарий: pageNo=2, numOfRows=50 и фильтр
// по наименованию — в URL ровно четыре параметра и никаких других
func TestSearchQuery_BuildURL_NameFilter(t *testing.T) {
	q := SearchQuery{TenderName: "아파트", PageNo: 2, NumOfRows: 50}

	u, err := url.Parse(q.BuildURL("http://example.test/feed", "key"))
	if err != nil {
		t.Fatalf("BuildURL вернул неразбираемый URL: %v", err)
	}

	values := u.Query()
	if len(values) != 4 {
		t.Fatalf("ожидалось 4 параметра, получено %d: %v", len(values), values)
	}
	if values.Get("CLTR_NM") != "아파트" {
		t.Errorf("CLTR_NM = %q", values.Get("CLTR_NM"))
	}
	if values.Get("pageNo") != "2" || values.Get("numOfRows") != "50" {
		t.Errorf("pageNo/numOfRows = %q/%q", values.Get("pageNo"), values.Get("numOfRows"))
	}
}

// TestSearchQuery_BuildURL_EmptyFiltersOmitted пустой фильтр не передается
// даже пустым значением
func TestSearchQuery_BuildURL_EmptyFiltersOmitted(t *testing.T) {
	q := SearchQuery{Sido: "", GoodsPriceFrom: "", PageNo: 1, NumOfRows: 10}

	rawURL := q.BuildURL("http://example.test/feed", "key")

	if strings.Contains(rawURL, "SIDO") || strings.Contains(rawURL, "GOODS_PRICE_FROM") {
		t.Errorf("пустые фильтры попали в URL: %s", rawURL)
	}
}

// TestSearchQuery_BuildURL_AllFilters каждый заданный фильтр дает ровно один параметр
func TestSearchQuery_BuildURL_AllFilters(t *testing.T) {
	q := SearchQuery{
		TenderName:     "창고",
		DisposalMethod: "0001",
		Sido:           "11",
		Sgk:            "110",
		Emd:            "1100",
		GoodsPriceFrom: "1000000",
		GoodsPriceTo:   "5000000",
		OpenPriceFrom:  "900000",
		OpenPriceTo:    "4500000",
		BidBeginFrom:   "20250101000000",
		BidCloseTo:     "20251231235959",
		Sort:           "PBCT_BEGN_DTM",
		PageNo:         3,
		NumOfRows:      100,
	}

	u, err := url.Parse(q.BuildURL("http://example.test/feed", "key"))
	if err != nil {
		t.Fatalf("BuildURL вернул неразбираемый URL: %v", err)
	}

	values := u.Query()
	// 3 обязательных + 12 фильтров
	if len(values) != 15 {
		t.Errorf("ожидалось 15 параметров, получено %d", len(values))
	}
	if values.Get("GOODS_PRICE_FROM") != "1000000" {
		t.Errorf("GOODS_PRICE_FROM = %q", values.Get("GOODS_PRICE_FROM"))
	}
	if values.Get("PBCT_CLS_DTM") != "20251231235959" {
		t.Errorf("PBCT_CLS_DTM = %q", values.Get("PBCT_CLS_DTM"))
	}
}

// TestSearchQuery_BuildURL_MalformedRangePassedThrough некорректный диапазон цен
// уходит провайдеру как есть: валидация диапазонов не наша забота
func TestSearchQuery_BuildURL_MalformedRangePassedThrough(t *testing.T) {
	q := SearchQuery{GoodsPriceFrom: "5000000", GoodsPriceTo: "1000", PageNo: 1, NumOfRows: 10}

	u, _ := url.Parse(q.BuildURL("http://example.test/feed", "key"))
	values := u.Query()

	if values.Get("GOODS_PRICE_FROM") != "5000000" || values.Get("GOODS_PRICE_TO") != "1000" {
		t.Errorf("диапазон изменился при построении URL: %v", values)
	}
}
