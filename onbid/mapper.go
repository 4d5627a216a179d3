package onbid

import (
	"strconv"
	"time"
)

// onbidTimeLayout формат даты-времени провайдера: ровно 14 цифр yyyyMMddHHmmss
const onbidTimeLayout = "20060102150405"

// MapItem преобразует RawItem в нормализованную запись Tender.
//
// Правила приведения типов:
//   - числовые поля: десятичный разбор, при отсутствии или мусоре — nil,
//     никогда не 0 и никогда не паника;
//   - даты: строго 14 символов формата yyyyMMddHHmmss, иначе nil,
//     альтернативные форматы не пробуются;
//   - строки: передаются как есть, без обрезки пробелов.
//
// Кросс-полевые проверки (например, что дата начала раньше даты окончания)
// здесь не выполняются.
func MapItem(raw RawItem) Tender {
	return Tender{
		TenderID:     parseOptionalInt(raw, TagPlnmNo),
		AuctionNo:    parseOptionalInt(raw, TagPbctNo),
		HistoryNo:    optionalString(raw, TagCltrHstrNo),
		ManagementNo: optionalString(raw, TagCltrMnmtNo),
		Title:        raw[TagCltrNm],
		Organization: raw[TagDpslMtdNm],
		BidNo:        optionalString(raw, TagBidMnmtNo),
		AnnouncedAt:  parseOptionalTime(raw, TagPbctBegnDtm),
		DeadlineAt:   parseOptionalTime(raw, TagPbctClsDtm),
	}
}

// MapItems маппит последовательность RawItem, сохраняя порядок провайдера
func MapItems(raws []RawItem) []Tender {
	tenders := make([]Tender, 0, len(raws))
	for _, raw := range raws {
		tenders = append(tenders, MapItem(raw))
	}
	return tenders
}

func optionalString(raw RawItem, tag string) *string {
	v, ok := raw[tag]
	if !ok {
		return nil
	}
	return &v
}

func parseOptionalInt(raw RawItem, tag string) *int64 {
	v, ok := raw[tag]
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseOptionalTime(raw RawItem, tag string) *time.Time {
	v, ok := raw[tag]
	if !ok || len(v) != len(onbidTimeLayout) {
		return nil
	}
	t, err := time.Parse(onbidTimeLayout, v)
	if err != nil {
		return nil
	}
	return &t
}
