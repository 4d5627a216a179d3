package onbid

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<response>
	<header>
		<resultCode>00</resultCode>
		<resultMsg>OK</resultMsg>
	</header>
	<body>
		<items>
			<item>
				<PLNM_NO>2025001</PLNM_NO>
				<PBCT_NO>77</PBCT_NO>
				<CLTR_HSTR_NO>H-1</CLTR_HSTR_NO>
				<CLTR_MNMT_NO>2024-05100-001</CLTR_MNMT_NO>
				<CLTR_NM>서울 아파트 101동</CLTR_NM>
				<DPSL_MTD_NM>매각</DPSL_MTD_NM>
				<BID_MNMT_NO>B-100</BID_MNMT_NO>
				<PBCT_BEGN_DTM>20250101090000</PBCT_BEGN_DTM>
				<PBCT_CLS_DTM>20250131180000</PBCT_CLS_DTM>
			</item>
			<item>
				<PLNM_NO>2025002</PLNM_NO>
				<CLTR_NM>창고 부지</CLTR_NM>
			</item>
		</items>
		<TotalCount>42</TotalCount>
	</body>
</response>`

// TestDecodeFeed_WellFormed полный документ: все известные теги первого item
// собраны, во втором item отсутствующие теги не создают записей
func TestDecodeFeed_WellFormed(t *testing.T) {
	items, total := DecodeFeed(sampleFeed)

	if total != 42 {
		t.Errorf("TotalCount = %d, ожидалось 42", total)
	}
	if len(items) != 2 {
		t.Fatalf("разобрано %d item, ожидалось 2", len(items))
	}

	first := items[0]
	if first[TagPlnmNo] != "2025001" {
		t.Errorf("PLNM_NO = %q", first[TagPlnmNo])
	}
	if first[TagCltrMnmtNo] != "2024-05100-001" {
		t.Errorf("CLTR_MNMT_NO = %q", first[TagCltrMnmtNo])
	}
	if first[TagPbctClsDtm] != "20250131180000" {
		t.Errorf("PBCT_CLS_DTM = %q", first[TagPbctClsDtm])
	}

	second := items[1]
	if _, ok := second[TagCltrMnmtNo]; ok {
		t.Error("отсутствующий тег не должен создавать запись в RawItem")
	}
	if second[TagCltrNm] != "창고 부지" {
		t.Errorf("CLTR_NM = %q", second[TagCltrNm])
	}
}

// TestDecodeFeed_MissingTotalCount сценарий: TotalCount отсутствует,
// но 3 элемента item разбираются
func TestDecodeFeed_MissingTotalCount(t *testing.T) {
	xmlText := `<response><body><items>` +
		`<item><CLTR_NM>A</CLTR_NM></item>` +
		`<item><CLTR_NM>B</CLTR_NM></item>` +
		`<item><CLTR_NM>C</CLTR_NM></item>` +
		`</items></body></response>`

	items, total := DecodeFeed(xmlText)

	if total != 0 {
		t.Errorf("TotalCount = %d, ожидалось 0 при отсутствующем теге", total)
	}
	if len(items) != 3 {
		t.Errorf("разобрано %d item, ожидалось 3", len(items))
	}
}

// TestDecodeFeed_NonNumericTotalCount нечисловой TotalCount дает 0, item сохраняются
func TestDecodeFeed_NonNumericTotalCount(t *testing.T) {
	xmlText := `<response><TotalCount>many</TotalCount><item><CLTR_NM>A</CLTR_NM></item></response>`

	items, total := DecodeFeed(xmlText)

	if total != 0 {
		t.Errorf("TotalCount = %d, ожидалось 0", total)
	}
	if len(items) != 1 {
		t.Errorf("разобрано %d item, ожидалось 1", len(items))
	}
}

// TestDecodeFeed_Malformed некорректный XML дает пустой результат, а не ошибку,
// даже если до места поломки уже встречались item
func TestDecodeFeed_Malformed(t *testing.T) {
	cases := map[string]string{
		"обрыв документа":     `<response><item><CLTR_NM>A</CLTR_NM>`,
		"незакрытый тег":      `<response><item><CLTR_NM>A</item></response>`,
		"не XML":              `{"items": []}`,
		"поломка после item":  `<r><item><CLTR_NM>A</CLTR_NM></item><broken</r>`,
	}

	for name, xmlText := range cases {
		items, total := DecodeFeed(xmlText)
		if len(items) != 0 || total != 0 {
			t.Errorf("%s: ожидался пустой результат, получено %d item, total %d", name, len(items), total)
		}
	}
}

// TestDecodeFeed_EmptyTags пустой тег эквивалентен отсутствующему
func TestDecodeFeed_EmptyTags(t *testing.T) {
	xmlText := `<response><item><CLTR_MNMT_NO></CLTR_MNMT_NO><CLTR_NM>A</CLTR_NM></item></response>`

	items, _ := DecodeFeed(xmlText)

	if len(items) != 1 {
		t.Fatalf("разобрано %d item, ожидалось 1", len(items))
	}
	if _, ok := items[0][TagCltrMnmtNo]; ok {
		t.Error("пустой тег не должен создавать запись в RawItem")
	}
}

// TestDecodeFeed_ItemsAtAnyDepth элементы item находятся независимо от вложенности
func TestDecodeFeed_ItemsAtAnyDepth(t *testing.T) {
	xmlText := `<a><b><c><item><CLTR_NM>deep</CLTR_NM></item></c></b><item><CLTR_NM>shallow</CLTR_NM></item></a>`

	items, _ := DecodeFeed(xmlText)

	if len(items) != 2 {
		t.Errorf("разобрано %d item, ожидалось 2", len(items))
	}
}

// TestDecodeFeed_EUCKR ответ в кодировке EUC-KR декодируется через CharsetReader
func TestDecodeFeed_EUCKR(t *testing.T) {
	utf8Doc := `<?xml version="1.0" encoding="euc-kr"?><response><item><CLTR_NM>서울</CLTR_NM></item><TotalCount>1</TotalCount></response>`

	var buf bytes.Buffer
	w := transform.NewWriter(&buf, korean.EUCKR.NewEncoder())
	if _, err := w.Write([]byte(utf8Doc)); err != nil {
		t.Fatalf("не удалось закодировать фикстуру в EUC-KR: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("не удалось закодировать фикстуру в EUC-KR: %v", err)
	}

	items, total := DecodeFeed(buf.String())

	if total != 1 || len(items) != 1 {
		t.Fatalf("EUC-KR документ не разобран: %d item, total %d", len(items), total)
	}
	if items[0][TagCltrNm] != "서울" {
		t.Errorf("CLTR_NM = %q, ожидалось восстановление UTF-8 текста", items[0][TagCltrNm])
	}
}
