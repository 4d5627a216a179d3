package onbid

import "time"

// Имена тегов, которые провайдер Onbid возвращает внутри элемента <item>.
// Декодер собирает надмножество всех тегов, когда-либо использовавшихся маппером,
// чтобы новые поля не требовали изменения схемы разбора.
const (
	TagPlnmNo     = "PLNM_NO"       // номер объявления
	TagPbctNo     = "PBCT_NO"       // номер торгов
	TagCltrHstrNo = "CLTR_HSTR_NO"  // номер истории объекта
	TagCltrMnmtNo = "CLTR_MNMT_NO"  // номер управления объектом (бизнес-ключ)
	TagCltrNm     = "CLTR_NM"       // наименование объекта
	TagDpslMtdNm  = "DPSL_MTD_NM"   // наименование способа реализации
	TagBidMnmtNo  = "BID_MNMT_NO"   // номер заявки
	TagPbctBegnDtm = "PBCT_BEGN_DTM" // дата начала приема заявок
	TagPbctClsDtm  = "PBCT_CLS_DTM"  // дата окончания приема заявок
)

// itemTags фиксированный набор тегов, извлекаемых из каждого <item>
var itemTags = []string{
	TagPlnmNo,
	TagPbctNo,
	TagCltrHstrNo,
	TagCltrMnmtNo,
	TagCltrNm,
	TagDpslMtdNm,
	TagBidMnmtNo,
	TagPbctBegnDtm,
	TagPbctClsDtm,
}

// RawItem плоское отображение тег -> текст одного элемента <item>.
// Отсутствующий тег просто не имеет записи в map, пустого значения не создается.
// Живет только на время разбора одного ответа провайдера.
type RawItem map[string]string

// Tender нормализованная запись тендера.
// После маппинга запись не изменяется; nil-указатель означает, что провайдер
// не прислал поле или прислал неразбираемое значение.
type Tender struct {
	TenderID     *int64     `json:"tenderId"`         // PLNM_NO
	AuctionNo    *int64     `json:"pbctNo"`           // PBCT_NO
	HistoryNo    *string    `json:"cltrHstrNo"`       // CLTR_HSTR_NO
	ManagementNo *string    `json:"cltrMnmtNo"`       // CLTR_MNMT_NO, ключ дедупликации
	Title        string     `json:"tenderTitle"`      // CLTR_NM
	Organization string     `json:"organization"`     // DPSL_MTD_NM
	BidNo        *string    `json:"bidNumber"`        // BID_MNMT_NO
	AnnouncedAt  *time.Time `json:"announcementDate"` // PBCT_BEGN_DTM
	DeadlineAt   *time.Time `json:"deadline"`         // PBCT_CLS_DTM
}

// Page страница результатов поиска.
// TotalCount — общее количество по данным провайдера для всего запроса,
// а не длина Tenders после дедупликации: значения могут законно расходиться.
type Page struct {
	Tenders    []Tender `json:"tenders"`
	TotalCount int      `json:"totalCount"`
	PageNo     int      `json:"pageNo"`
	NumOfRows  int      `json:"numOfRows"`
}

// AssemblePage собирает страницу результатов без дополнительных преобразований.
// Пустой список тендеров — валидный результат, а не ошибка: слой представления
// сам решает, как отдавать "ничего не найдено".
func AssemblePage(tenders []Tender, totalCount, pageNo, numOfRows int) Page {
	if tenders == nil {
		tenders = []Tender{}
	}
	return Page{
		Tenders:    tenders,
		TotalCount: totalCount,
		PageNo:     pageNo,
		NumOfRows:  numOfRows,
	}
}
