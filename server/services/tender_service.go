package services

import (
	"context"
	"log"

	"bidserver/onbid"
	apperrors "bidserver/server/errors"
)

const (
	// DefaultNumOfRows размер страницы, если вызывающая сторона его не задала
	DefaultNumOfRows = 10
	// MaxNumOfRows верхняя граница размера страницы
	MaxNumOfRows = 100

	// allTendersDisposalMethod фиксированный код способа реализации для общего списка
	allTendersDisposalMethod = "0001"
	// allTendersSort сортировка общего списка по дате начала приема заявок
	allTendersSort = "PBCT_BEGN_DTM"
)

// FeedFetcher транспорт к провайдеру: готовый URL на входе, сырое XML-тело на выходе.
// Повторы, TLS и таймауты — забота реализации.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, rawURL string) (string, error)
}

// TenderService прогоняет запросы к фиду Onbid через конвейер
// запрос -> разбор XML -> маппинг -> дедупликация -> сборка страницы.
// Сервис не хранит состояния между запросами и безопасен для параллельного
// использования.
type TenderService struct {
	fetcher    FeedFetcher
	baseURL    string
	serviceKey string
}

// NewTenderService создает сервис работы с фидом тендеров
func NewTenderService(fetcher FeedFetcher, baseURL, serviceKey string) *TenderService {
	return &TenderService{
		fetcher:    fetcher,
		baseURL:    baseURL,
		serviceKey: serviceKey,
	}
}

// Search выполняет детальный поиск по фиду провайдера и возвращает страницу
// нормализованных, дедуплицированных тендеров.
//
// Сбой транспорта завершает весь запрос ошибкой 502; некорректный XML, напротив,
// деградирует до пустой страницы. Пустая страница — валидный успешный результат.
func (s *TenderService) Search(ctx context.Context, query onbid.SearchQuery) (onbid.Page, error) {
	if query.PageNo < 1 {
		query.PageNo = 1
	}
	if query.NumOfRows < 1 {
		query.NumOfRows = DefaultNumOfRows
	}
	if query.NumOfRows > MaxNumOfRows {
		query.NumOfRows = MaxNumOfRows
	}

	rawURL := query.BuildURL(s.baseURL, s.serviceKey)

	body, err := s.fetcher.FetchFeed(ctx, rawURL)
	if err != nil {
		return onbid.Page{}, apperrors.NewFeedUnavailableError(err)
	}

	items, totalCount := onbid.DecodeFeed(body)
	if len(items) == 0 {
		// либо по запросу действительно ничего нет, либо провайдер прислал
		// некорректный XML — для вызывающей стороны оба случая выглядят
		// как пустая страница, различить их можно только по этому логу
		log.Printf("Onbid: пустой результат разбора фида, totalCount=%d, тело %d байт", totalCount, len(body))
	}

	tenders := onbid.Deduplicate(onbid.MapItems(items))

	return onbid.AssemblePage(tenders, totalCount, query.PageNo, query.NumOfRows), nil
}

// GetAll возвращает общий список тендеров фиксированным запросом к провайдеру:
// способ реализации 0001, первая страница на 100 записей, сортировка по дате
// начала приема заявок.
func (s *TenderService) GetAll(ctx context.Context) ([]onbid.Tender, error) {
	page, err := s.Search(ctx, onbid.SearchQuery{
		DisposalMethod: allTendersDisposalMethod,
		Sort:           allTendersSort,
		PageNo:         1,
		NumOfRows:      MaxNumOfRows,
	})
	if err != nil {
		return nil, err
	}
	return page.Tenders, nil
}
